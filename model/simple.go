package model

import (
	"math"

	"github.com/inflectlab/morph/corpus"
	"github.com/inflectlab/morph/inflection"
	"github.com/inflectlab/morph/maxent"
	"github.com/inflectlab/morph/tagset"
	"github.com/inflectlab/morph/internal/vectorizer"
)

// Monolithic scores candidates with a single multiclass classifier trained
// over full attribute strings. Candidates whose attribute string the
// classifier never observed score -Inf: a hard zero, not smoothed.
type Monolithic struct {
	Cat tagset.Category
	Vec *vectorizer.DictVectorizer
	Clf *maxent.Classifier
}

// Category returns the category this model predicts.
func (m *Monolithic) Category() tagset.Category {
	return m.Cat
}

// ScoreAll implements Scorer.
func (m *Monolithic) ScoreAll(cands []inflection.Candidate, feats corpus.Features) ([]Scored, error) {
	if len(cands) == 0 {
		return nil, ErrEmptyCandidates
	}

	x := m.Vec.Transform(feats)
	logp := m.Clf.LogProba(x)

	scores := make([]float64, len(cands))
	for i, c := range cands {
		if idx := m.Clf.ClassIndex(c.Attrs); idx >= 0 {
			scores[i] = logp[idx]
		} else {
			scores[i] = math.Inf(-1)
		}
	}
	normalize(scores)

	scored := make([]Scored, len(cands))
	for i, c := range cands {
		scored[i] = Scored{LogProb: scores[i], Attrs: c.Attrs, Surface: c.Surface}
	}
	return scored, nil
}
