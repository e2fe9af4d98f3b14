package model

import (
	"math"

	"github.com/inflectlab/morph/corpus"
	"github.com/inflectlab/morph/inflection"
	"github.com/inflectlab/morph/maxent"
	"github.com/inflectlab/morph/tagset"
	"github.com/inflectlab/morph/internal/vectorizer"
)

// Factorized scores candidates position by position: one classifier per
// attribute position, treated as conditionally independent given the
// context. Positions whose attribute was constant in training carry no
// classifier and contribute zero to every candidate, so arbitrarily
// composed candidate sets can be scored without retraining.
//
// Attribute strings are treated as byte-per-position; shorter strings are
// right-padded with the tagset placeholder.
type Factorized struct {
	Cat tagset.Category
	Vec *vectorizer.DictVectorizer
	// Pos is indexed by attribute position and has exactly Cat.Length
	// entries; a nil entry means the position was univalued in training.
	Pos []*maxent.Classifier
}

// Category returns the category this model predicts.
func (m *Factorized) Category() tagset.Category {
	return m.Cat
}

// ScoreAll implements Scorer.
func (m *Factorized) ScoreAll(cands []inflection.Candidate, feats corpus.Features) ([]Scored, error) {
	if len(cands) == 0 {
		return nil, ErrEmptyCandidates
	}

	x := m.Vec.Transform(feats)
	posLogp := make([][]float64, len(m.Pos))
	for p, clf := range m.Pos {
		if clf != nil {
			posLogp[p] = clf.LogProba(x)
		}
	}

	scores := make([]float64, len(cands))
	for i, c := range cands {
		padded := m.Cat.Pad(c.Attrs)
		total := 0.0
		for p, clf := range m.Pos {
			if clf == nil {
				continue
			}
			idx := clf.ClassIndex(string(padded[p]))
			if idx < 0 {
				// Value never observed at this position: hard zero,
				// mirroring the monolithic model's unseen-tag behavior.
				total = math.Inf(-1)
				break
			}
			total += posLogp[p][idx]
		}
		scores[i] = total
	}
	normalize(scores)

	scored := make([]Scored, len(cands))
	for i, c := range cands {
		scored[i] = Scored{LogProb: scores[i], Attrs: c.Attrs, Surface: c.Surface}
	}
	return scored, nil
}
