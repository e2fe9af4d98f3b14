package textutil

import (
	"reflect"
	"testing"
)

func TestPrefixes(t *testing.T) {
	got := Prefixes("cats", 1, 3)
	want := []string{"c", "ca", "cat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Prefixes = %v, want %v", got, want)
	}

	got = Prefixes("ab", 1, 3)
	want = []string{"a", "ab"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Prefixes short = %v, want %v", got, want)
	}
}

func TestSuffixes(t *testing.T) {
	got := Suffixes("cats", 1, 3)
	want := []string{"s", "ts", "ats"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suffixes = %v, want %v", got, want)
	}
}

func TestNumberPattern(t *testing.T) {
	tests := []struct {
		in    string
		ratio float64
		want  string
	}{
		{"2024", 0.5, "XXXX"},
		{"abc", 0.5, ""},
		{"ab12", 0.5, "CCXX"},
		{"", 0.5, ""},
	}
	for _, tt := range tests {
		if got := NumberPattern(tt.in, tt.ratio); got != tt.want {
			t.Errorf("NumberPattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
