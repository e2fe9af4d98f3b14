package morph

import (
	"fmt"
	"io"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/inflectlab/morph/corpus"
	"github.com/inflectlab/morph/model"
	"github.com/inflectlab/morph/tagset"
)

// Result aggregates evaluation metrics for one category. Instances whose
// gold candidate is absent from the legal set are counted as misses and
// excluded from every aggregate.
type Result struct {
	Instances  int
	Misses     int
	MRR        float64
	Accuracy   float64
	Perplexity float64
}

type categoryStats struct {
	rranks   []float64
	logProbs []float64
	correct  int
	misses   int
}

func (s *categoryStats) finalize() *Result {
	r := &Result{
		Instances: len(s.rranks),
		Misses:    s.misses,
	}
	if r.Instances == 0 {
		return r
	}
	r.MRR = stat.Mean(s.rranks, nil)
	r.Accuracy = float64(s.correct) / float64(r.Instances)
	r.Perplexity = math.Exp(-stat.Mean(s.logProbs, nil))
	return r
}

// EvalConfig configures corpus evaluation.
type EvalConfig struct {
	// Categories holds the category codes to evaluate, e.g. "NVA".
	Categories string
	// Features overrides the default feature function set when non-nil.
	Features []corpus.FeatureFunc
}

// Evaluate scores every extractable instance of the configured categories,
// writing one report line per instance to w, followed by one summary line
// per category. A requested category without a loaded model aborts the run.
//
// Correctness is surface-form equality: a prediction with a different tag
// realizing the same surface form counts as correct.
func (p *Predictor) Evaluate(corpusIn io.Reader, cfg EvalConfig, w io.Writer) (map[string]*Result, error) {
	feats := cfg.Features
	if feats == nil {
		feats = corpus.DefaultFeatures()
	}
	ext := &corpus.Extractor{Tags: cfg.Categories, Feats: feats}
	stats := make(map[byte]*categoryStats)

	reader := corpus.NewReader(corpusIn)
	for {
		sent, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("morph: %w", err)
		}

		for _, inst := range ext.Extract(sent) {
			code, attrs := tagset.Split(inst.Tag)
			st := stats[code]
			if st == nil {
				st = &categoryStats{}
				stats[code] = st
			}

			cands := p.revMap.Lookup(inst.Lemma, code)
			gold := -1
			for i, c := range cands {
				if c.Attrs == attrs && c.Surface == inst.Surface {
					gold = i
					break
				}
			}
			if gold < 0 {
				fmt.Fprintf(w, "miss: %s (%s) not found\n", inst.Surface, attrs)
				st.misses++
				continue
			}

			m, err := p.Model(code)
			if err != nil {
				return nil, err
			}
			scored, err := m.ScoreAll(cands, inst.Features)
			if err != nil {
				return nil, fmt.Errorf("morph: %w", err)
			}
			ranked := model.Rank(scored)

			goldRank := 0
			goldScore := 0.0
			for i, s := range ranked {
				if s.Attrs == attrs {
					goldRank = i + 1
					goldScore = s.LogProb
					break
				}
			}
			pred := ranked[0]

			fmt.Fprintf(w, "gold: %s (%s) rank=%d score=%.3f | predicted: %s (%s) score=%.3f\n",
				inst.Surface, attrs, goldRank, goldScore,
				pred.Surface, pred.Attrs, pred.LogProb)

			st.rranks = append(st.rranks, 1/float64(goldRank))
			st.logProbs = append(st.logProbs, goldScore)
			if pred.Surface == inst.Surface {
				st.correct++
			}
		}
	}

	results := make(map[string]*Result, len(stats))
	codes := make([]byte, 0, len(stats))
	for code := range stats {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	for _, code := range codes {
		r := stats[code].finalize()
		results[string(code)] = r
		fmt.Fprintf(w, "category %c: MRR=%.3f acc=%.3f ppl=%.1f (%d instances, %d misses)\n",
			code, r.MRR, r.Accuracy, r.Perplexity, r.Instances, r.Misses)
	}
	return results, nil
}
