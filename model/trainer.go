package model

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/inflectlab/morph/corpus"
	"github.com/inflectlab/morph/internal/vectorizer"
	"github.com/inflectlab/morph/maxent"
	"github.com/inflectlab/morph/tagset"
)

// SGDConfig holds stochastic-gradient training hyperparameters.
type SGDConfig struct {
	Iterations int
	Rate       float64
}

// DefaultSGDConfig returns the default training config.
func DefaultSGDConfig() SGDConfig {
	return SGDConfig{
		Iterations: 10,
		Rate:       0.05,
	}
}

// Checkpoint receives the fitted model after each full pass over the data,
// so the best iteration can be chosen externally. The model handed over is
// an independent snapshot and stays valid after training continues.
type Checkpoint func(iteration int, m *Factorized) error

// TrainStructured fits the per-position classifiers of a factorized model
// jointly, by stochastic-gradient ascent on the total conditional
// log-likelihood of the correct candidate within its group. Positions whose
// attribute is univalued across the pool get no classifier. Termination is
// the fixed iteration budget; there is no early stopping.
func TrainStructured(pool *Pool, cfg SGDConfig, checkpoint Checkpoint) (*Factorized, error) {
	if pool.Len() == 0 {
		return nil, fmt.Errorf("model: empty training pool for category %s", pool.Cat.Code)
	}
	if cfg.Iterations < 1 {
		return nil, fmt.Errorf("model: iteration count %d", cfg.Iterations)
	}

	vec := vectorizer.NewDictVectorizer()
	xs := vec.FitTransform(pool.Feats)
	dim := vec.VocabSize()
	L := pool.Cat.Length

	// Expand pooled rows into per-position label IDs.
	alphas := make([]*maxent.Alphabet, L)
	for p := range alphas {
		alphas[p] = maxent.NewAlphabet()
	}
	rowCls := make([][]int, pool.NumRows())
	for r, row := range pool.Rows {
		rowCls[r] = make([]int, L)
		for p := 0; p < L; p++ {
			rowCls[r][p] = alphas[p].Add(string(row[p]))
		}
	}

	active := make([]bool, L)
	for p := 0; p < L; p++ {
		active[p] = alphas[p].Size() > 1
	}

	coef := make([][][]float64, L)
	intercept := make([][]float64, L)
	for p := 0; p < L; p++ {
		if !active[p] {
			continue
		}
		k := alphas[p].Size()
		coef[p] = make([][]float64, k)
		for c := 0; c < k; c++ {
			coef[p][c] = make([]float64, dim)
		}
		intercept[p] = make([]float64, k)
	}

	slog.Info("Training structured model",
		"category", pool.Cat.Code,
		"instances", pool.Len(),
		"rows", pool.NumRows(),
		"features", dim)

	var m *Factorized
	n := pool.Len()
	for iter := 1; iter <= cfg.Iterations; iter++ {
		ll := 0.0
		for idx := 0; idx < n; idx++ {
			x := xs[idx]
			rng := pool.Ranges[idx]
			k := rng.End - rng.Start

			scores := make([]float64, k)
			for r := 0; r < k; r++ {
				cls := rowCls[rng.Start+r]
				s := 0.0
				for p := 0; p < L; p++ {
					if !active[p] {
						continue
					}
					c := cls[p]
					s += x.Dot(coef[p][c]) + intercept[p][c]
				}
				scores[r] = s
			}

			z := floats.LogSumExp(scores)
			ll += scores[pool.Gold[idx]] - z

			for r := 0; r < k; r++ {
				g := math.Exp(scores[r] - z)
				if r == pool.Gold[idx] {
					g -= 1.0
				}
				if g == 0 {
					continue
				}
				cls := rowCls[rng.Start+r]
				for p := 0; p < L; p++ {
					if !active[p] {
						continue
					}
					c := cls[p]
					w := coef[p][c]
					for i, fi := range x.Indices {
						w[fi] -= cfg.Rate * g * x.Values[i]
					}
					intercept[p][c] -= cfg.Rate * g
				}
			}
		}

		slog.Debug("Structured training iteration", "iteration", iter, "log_likelihood", ll)

		m = snapshotFactorized(pool.Cat, vec, alphas, active, coef, intercept)
		if checkpoint != nil {
			if err := checkpoint(iter, m); err != nil {
				return nil, fmt.Errorf("model: checkpoint iteration %d: %w", iter, err)
			}
		}
	}

	return m, nil
}

// snapshotFactorized copies the current weights into an immutable model.
func snapshotFactorized(cat tagset.Category, vec *vectorizer.DictVectorizer, alphas []*maxent.Alphabet, active []bool, coef [][][]float64, intercept [][]float64) *Factorized {
	pos := make([]*maxent.Classifier, cat.Length)
	for p := 0; p < cat.Length; p++ {
		if !active[p] {
			continue
		}
		classes := make([]string, alphas[p].Size())
		copy(classes, alphas[p].ToStr)
		clf := maxent.NewClassifier(classes, 0)
		clf.Coef = make([][]float64, len(classes))
		for c := range classes {
			clf.Coef[c] = make([]float64, len(coef[p][c]))
			copy(clf.Coef[c], coef[p][c])
		}
		clf.Intercept = make([]float64, len(intercept[p]))
		copy(clf.Intercept, intercept[p])
		pos[p] = clf
	}
	return &Factorized{Cat: cat, Vec: vec, Pos: pos}
}

// TrainMonolithic fits a single multiclass classifier over full attribute
// strings, for the monolithic scoring variant.
func TrainMonolithic(cat tagset.Category, feats []corpus.Features, attrs []string, cfg SGDConfig) (*Monolithic, error) {
	if len(feats) == 0 {
		return nil, fmt.Errorf("model: no training instances for category %s", cat.Code)
	}
	if len(feats) != len(attrs) {
		return nil, fmt.Errorf("model: %d feature vectors for %d labels", len(feats), len(attrs))
	}
	if cfg.Iterations < 1 {
		return nil, fmt.Errorf("model: iteration count %d", cfg.Iterations)
	}

	vec := vectorizer.NewDictVectorizer()
	xs := vec.FitTransform(feats)

	classAlpha := maxent.NewAlphabet()
	y := make([]int, len(attrs))
	for i, a := range attrs {
		y[i] = classAlpha.Add(a)
	}
	classes := make([]string, classAlpha.Size())
	copy(classes, classAlpha.ToStr)

	clf := maxent.NewClassifier(classes, vec.VocabSize())

	for iter := 1; iter <= cfg.Iterations; iter++ {
		ll := 0.0
		for idx, x := range xs {
			logp := clf.LogProba(x)
			ll += logp[y[idx]]
			for c := range classes {
				g := math.Exp(logp[c])
				if c == y[idx] {
					g -= 1.0
				}
				if g == 0 {
					continue
				}
				w := clf.Coef[c]
				for i, fi := range x.Indices {
					w[fi] -= cfg.Rate * g * x.Values[i]
				}
				clf.Intercept[c] -= cfg.Rate * g
			}
		}
		slog.Debug("Monolithic training iteration", "iteration", iter, "log_likelihood", ll)
	}

	return &Monolithic{Cat: cat, Vec: vec, Clf: clf}, nil
}
