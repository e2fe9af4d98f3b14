package corpus

import "strings"

// Features maps feature names to values.
type Features = map[string]string

// FeatureFunc produces named feature values for a target lemma aligned to
// source position j.
type FeatureFunc func(source []string, lemma string, j int) Features

// Instance is one extracted (word, features) example.
type Instance struct {
	Surface  string // gold inflected form
	Lemma    string
	Tag      string // category code + attribute string
	Features Features
}

// Extractor turns aligned sentence pairs into prediction instances.
type Extractor struct {
	// Tags holds the category codes to extract, e.g. "NVA".
	Tags string
	// Feats is the configured feature function set.
	Feats []FeatureFunc
}

// Extract emits one instance per target word whose category is extracted
// and which is aligned to exactly one source position. Unaligned and
// multiply-aligned words are skipped: that is a filtering policy, not an
// error.
func (e *Extractor) Extract(sent *Sentence) []Instance {
	var instances []Instance
	for i, word := range sent.Target {
		if word.Tag == "" || !strings.ContainsRune(e.Tags, rune(word.Tag[0])) {
			continue
		}

		j := -1
		ambiguous := false
		for _, pair := range sent.Alignment {
			if pair.Target != i {
				continue
			}
			if j >= 0 {
				ambiguous = true
				break
			}
			j = pair.Source
		}
		if j < 0 || ambiguous {
			continue
		}

		features := make(Features)
		for _, ff := range e.Feats {
			for name, value := range ff(sent.Source, word.Lemma, j) {
				features[name] = value
			}
		}

		instances = append(instances, Instance{
			Surface:  word.Surface,
			Lemma:    word.Lemma,
			Tag:      word.Tag,
			Features: features,
		})
	}
	return instances
}
