// Package model implements the candidate-constrained scoring models and the
// structured trainer that fits them.
package model

import (
	"errors"
	"sort"

	"github.com/inflectlab/morph/corpus"
	"github.com/inflectlab/morph/inflection"
	"github.com/inflectlab/morph/tagset"
)

// ErrEmptyCandidates is returned when a scoring model is handed an empty
// candidate set. Normalizing over an empty set has no defined result, so
// this is a precondition violation rather than a benign skip.
var ErrEmptyCandidates = errors.New("model: empty candidate set")

// Scored is one candidate with its normalized log-probability.
type Scored struct {
	LogProb float64
	Attrs   string
	Surface string
}

// Scorer ranks a fixed candidate set against a feature vector.
// There are exactly two implementations: Monolithic and Factorized.
type Scorer interface {
	// Category returns the morphological category this model predicts.
	Category() tagset.Category
	// ScoreAll returns one entry per input candidate, in input order, with
	// log-probabilities normalized over the candidate set (exponentiated
	// values sum to 1). An empty candidate set is an error.
	ScoreAll(cands []inflection.Candidate, feats corpus.Features) ([]Scored, error)
}

// Rank returns the candidates sorted by descending log-probability.
// The sort is stable: candidates with equal scores keep their input order,
// which is the reverse-inflection-map order.
func Rank(scored []Scored) []Scored {
	ranked := make([]Scored, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].LogProb > ranked[j].LogProb
	})
	return ranked
}
