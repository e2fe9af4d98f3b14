package model

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
)

// normalize subtracts the log-sum-exp of scores in place, restricting the
// model's distribution to the candidate set. If every candidate scored -Inf
// the log-sum-exp is undefined; the scores collapse to the uniform
// distribution instead, which also keeps the singleton-set score at exactly
// zero.
func normalize(scores []float64) {
	z := floats.LogSumExp(scores)
	if math.IsInf(z, -1) || math.IsNaN(z) {
		slog.Debug("All candidates unseen, falling back to uniform", "candidates", len(scores))
		u := -math.Log(float64(len(scores)))
		for i := range scores {
			scores[i] = u
		}
		return
	}
	for i := range scores {
		scores[i] -= z
	}
}
