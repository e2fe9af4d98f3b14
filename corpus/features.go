package corpus

import (
	"fmt"

	"github.com/inflectlab/morph/internal/textutil"
)

// AlignedWord emits the aligned source token.
func AlignedWord(source []string, lemma string, j int) Features {
	return Features{"src": source[j]}
}

// WindowWords emits the tokens adjacent to the aligned source position,
// with sentence-boundary markers.
func WindowWords(source []string, lemma string, j int) Features {
	prev := "<s>"
	if j > 0 {
		prev = source[j-1]
	}
	next := "</s>"
	if j < len(source)-1 {
		next = source[j+1]
	}
	return Features{"src-1": prev, "src+1": next}
}

// LemmaFeature emits the target lemma itself.
func LemmaFeature(source []string, lemma string, j int) Features {
	return Features{"lemma": lemma}
}

// SourceAffixes emits 1-3 character prefixes and suffixes of the aligned
// source token.
func SourceAffixes(source []string, lemma string, j int) Features {
	feats := make(Features)
	for _, p := range textutil.Prefixes(source[j], 1, 3) {
		feats[fmt.Sprintf("src-pre%d", len([]rune(p)))] = p
	}
	for _, s := range textutil.Suffixes(source[j], 1, 3) {
		feats[fmt.Sprintf("src-suf%d", len([]rune(s)))] = s
	}
	return feats
}

// SourceShape emits a digit-shape pattern of the aligned source token when
// at least half of it is digits.
func SourceShape(source []string, lemma string, j int) Features {
	if shape := textutil.NumberPattern(source[j], 0.5); shape != "" {
		return Features{"src-shape": shape}
	}
	return nil
}

// DefaultFeatures returns the standard feature function set.
func DefaultFeatures() []FeatureFunc {
	return []FeatureFunc{
		AlignedWord,
		WindowWords,
		LemmaFeature,
		SourceAffixes,
		SourceShape,
	}
}
