package corpus

import (
	"io"
	"strings"
	"testing"
)

func TestParseSentence(t *testing.T) {
	sent, err := ParseSentence("the cat sleeps ||| kot|kot|Nms spi|spac|Vs3 ||| 0-1 1-2")
	if err != nil {
		t.Fatal(err)
	}
	if len(sent.Source) != 3 {
		t.Errorf("source len = %d, want 3", len(sent.Source))
	}
	if len(sent.Target) != 2 {
		t.Fatalf("target len = %d, want 2", len(sent.Target))
	}
	if sent.Target[0] != (TargetWord{Surface: "kot", Lemma: "kot", Tag: "Nms"}) {
		t.Errorf("target[0] = %+v", sent.Target[0])
	}
	if len(sent.Alignment) != 2 {
		t.Fatalf("alignment len = %d", len(sent.Alignment))
	}
	if sent.Alignment[0] != (AlignPair{Target: 0, Source: 1}) {
		t.Errorf("alignment[0] = %+v", sent.Alignment[0])
	}
}

func TestParseSentenceErrors(t *testing.T) {
	cases := []string{
		"just source ||| kot|kot|Nms",             // two fields
		"src ||| badtoken ||| ",                   // malformed triple
		"src ||| kot|kot|Nms ||| 5-0",             // target index out of range
		"src ||| kot|kot|Nms ||| 0-7",             // source index out of range
		"src ||| kot|kot|Nms ||| x-0",             // non-numeric
	}
	for _, line := range cases {
		if _, err := ParseSentence(line); err == nil {
			t.Errorf("expected error for %q", line)
		}
	}
}

func TestReaderSkipsBlankLines(t *testing.T) {
	in := "a ||| x|x|Nms ||| 0-0\n\n\nb ||| y|y|Nms ||| 0-0\n"
	sents, err := ReadAll(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(sents) != 2 {
		t.Fatalf("got %d sentences, want 2", len(sents))
	}
}

func TestReaderReportsLine(t *testing.T) {
	r := NewReader(strings.NewReader("a ||| x|x|Nms ||| 0-0\nbroken line\n"))
	if _, err := r.Next(); err != nil {
		t.Fatal(err)
	}
	_, err := r.Next()
	if err == nil || err == io.EOF {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %v, want line number", err)
	}
}

func idFeature(source []string, lemma string, j int) Features {
	return Features{"src": source[j]}
}

func TestExtractOneToOneOnly(t *testing.T) {
	ext := &Extractor{Tags: "N", Feats: []FeatureFunc{idFeature}}

	// One target word aligned to two source positions: excluded entirely.
	sent := &Sentence{
		Source: []string{"a", "b"},
		Target: []TargetWord{{Surface: "x", Lemma: "x", Tag: "Nms"}},
		Alignment: []AlignPair{
			{Target: 0, Source: 0},
			{Target: 0, Source: 1},
		},
	}
	if got := ext.Extract(sent); len(got) != 0 {
		t.Errorf("multiply-aligned word extracted: %d instances", len(got))
	}

	// Unaligned word: excluded.
	sent.Alignment = nil
	if got := ext.Extract(sent); len(got) != 0 {
		t.Errorf("unaligned word extracted: %d instances", len(got))
	}

	// Exactly one alignment: extracted.
	sent.Alignment = []AlignPair{{Target: 0, Source: 1}}
	got := ext.Extract(sent)
	if len(got) != 1 {
		t.Fatalf("got %d instances, want 1", len(got))
	}
	if got[0].Features["src"] != "b" {
		t.Errorf("src feature = %q, want b", got[0].Features["src"])
	}
}

func TestExtractCategoryFilter(t *testing.T) {
	ext := &Extractor{Tags: "N", Feats: []FeatureFunc{idFeature}}
	sent := &Sentence{
		Source: []string{"a"},
		Target: []TargetWord{
			{Surface: "x", Lemma: "x", Tag: "Vs3"},
			{Surface: "y", Lemma: "y", Tag: "Nms"},
		},
		Alignment: []AlignPair{
			{Target: 0, Source: 0},
			{Target: 1, Source: 0},
		},
	}
	got := ext.Extract(sent)
	if len(got) != 1 {
		t.Fatalf("got %d instances, want 1", len(got))
	}
	if got[0].Tag != "Nms" {
		t.Errorf("tag = %q", got[0].Tag)
	}
}

func TestExtractFeatureUnion(t *testing.T) {
	second := func(source []string, lemma string, j int) Features {
		return Features{"lemma": lemma}
	}
	ext := &Extractor{Tags: "N", Feats: []FeatureFunc{idFeature, second}}
	sent := &Sentence{
		Source:    []string{"chat"},
		Target:    []TargetWord{{Surface: "kot", Lemma: "kot", Tag: "Nms"}},
		Alignment: []AlignPair{{Target: 0, Source: 0}},
	}
	got := ext.Extract(sent)
	if len(got) != 1 {
		t.Fatal("expected 1 instance")
	}
	if got[0].Features["src"] != "chat" || got[0].Features["lemma"] != "kot" {
		t.Errorf("features = %v", got[0].Features)
	}
}

func TestDefaultFeatures(t *testing.T) {
	source := []string{"the", "chats", "2024"}
	feats := make(Features)
	for _, ff := range DefaultFeatures() {
		for k, v := range ff(source, "cat", 1) {
			feats[k] = v
		}
	}
	if feats["src"] != "chats" {
		t.Errorf("src = %q", feats["src"])
	}
	if feats["src-1"] != "the" || feats["src+1"] != "2024" {
		t.Errorf("window = %q / %q", feats["src-1"], feats["src+1"])
	}
	if feats["lemma"] != "cat" {
		t.Errorf("lemma = %q", feats["lemma"])
	}
	if feats["src-suf1"] != "s" || feats["src-suf3"] != "ats" {
		t.Errorf("suffixes = %q / %q", feats["src-suf1"], feats["src-suf3"])
	}

	// Boundary markers at sentence edges, shape feature on digits.
	feats = make(Features)
	for _, ff := range DefaultFeatures() {
		for k, v := range ff(source, "2024", 2) {
			feats[k] = v
		}
	}
	if feats["src+1"] != "</s>" {
		t.Errorf("src+1 at edge = %q", feats["src+1"])
	}
	if feats["src-shape"] != "XXXX" {
		t.Errorf("src-shape = %q", feats["src-shape"])
	}
}
