// Package textutil provides text helpers for feature extraction.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefixes returns the minN to maxN character prefixes of s (rune-aware).
func Prefixes(s string, minN, maxN int) []string {
	runes := []rune(s)
	textLen := len(runes)
	var res []string
	for n := minN; n <= maxN && n <= textLen; n++ {
		res = append(res, string(runes[:n]))
	}
	return res
}

// Suffixes returns the minN to maxN character suffixes of s (rune-aware).
func Suffixes(s string, minN, maxN int) []string {
	runes := []rune(s)
	textLen := len(runes)
	var res []string
	for n := minN; n <= maxN && n <= textLen; n++ {
		res = append(res, string(runes[textLen-n:]))
	}
	return res
}

var digitRe = regexp.MustCompile(`\d`)

// NumberPattern replaces digits with X and letters with C if the digit ratio >= threshold.
// Returns empty string otherwise.
func NumberPattern(text string, ratio float64) string {
	if text == "" {
		return ""
	}

	total := utf8.RuneCountInString(text)
	digitCount := 0
	for _, r := range text {
		if unicode.IsDigit(r) {
			digitCount++
		}
	}

	digitRatio := float64(digitCount) / float64(total)
	if digitRatio >= ratio {
		result := digitRe.ReplaceAllString(text, "X")
		var buf strings.Builder
		for _, r := range result {
			if r == 'X' || !unicode.IsLetter(r) {
				buf.WriteRune(r)
			} else {
				buf.WriteRune('C')
			}
		}
		return buf.String()
	}
	return ""
}
