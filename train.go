package morph

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/inflectlab/morph/corpus"
	"github.com/inflectlab/morph/inflection"
	"github.com/inflectlab/morph/model"
	"github.com/inflectlab/morph/tagset"
)

// TrainConfig configures structured training for one category.
type TrainConfig struct {
	Iterations int
	Rate       float64
	// Features overrides the default feature function set when non-nil.
	Features []corpus.FeatureFunc
}

// Train builds the pooled training set for one category from an aligned
// corpus and fits a factorized scoring model, invoking checkpoint after
// each iteration.
//
// The reverse inflection map is loaded here rather than accepted as an
// argument: it is only needed while the pool is built, and the map and the
// pooled arrays are too large to coexist on realistic corpora. Scoping it
// to pool construction releases it before optimization starts.
func Train(corpusIn io.Reader, revMapPath string, ts *tagset.Tagset, category byte, cfg TrainConfig, checkpoint model.Checkpoint) (*model.Factorized, error) {
	cat, ok := ts.Get(category)
	if !ok {
		return nil, fmt.Errorf("morph: unknown category %c", category)
	}

	feats := cfg.Features
	if feats == nil {
		feats = corpus.DefaultFeatures()
	}

	pool, err := buildPool(corpusIn, revMapPath, cat, feats)
	if err != nil {
		return nil, err
	}

	sgd := model.DefaultSGDConfig()
	if cfg.Iterations > 0 {
		sgd.Iterations = cfg.Iterations
	}
	if cfg.Rate > 0 {
		sgd.Rate = cfg.Rate
	}

	m, err := model.TrainStructured(pool, sgd, checkpoint)
	if err != nil {
		return nil, fmt.Errorf("morph: %w", err)
	}
	return m, nil
}

// buildPool owns the reverse inflection map for the duration of pool
// construction; the map becomes collectable when this function returns.
func buildPool(corpusIn io.Reader, revMapPath string, cat tagset.Category, feats []corpus.FeatureFunc) (*model.Pool, error) {
	slog.Info("Loading reverse inflection map", "path", revMapPath)
	revMap, err := inflection.LoadMap(revMapPath)
	if err != nil {
		return nil, fmt.Errorf("morph: %w", err)
	}

	slog.Info("Generating the training data", "category", cat.Code)
	ext := &corpus.Extractor{Tags: cat.Code, Feats: feats}
	builder := model.NewPoolBuilder(cat)

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
			_, attrs := tagset.Split(inst.Tag)
			cands := revMap.Lookup(inst.Lemma, cat.CodeByte())
			builder.Add(inst.Lemma, attrs, inst.Surface, inst.Features, cands)
		}
	}

	pool := builder.Build()
	slog.Info("Training pool built",
		"instances", pool.Len(),
		"rows", pool.NumRows(),
		"skipped_singletons", builder.Singletons,
		"skipped_gold_misses", builder.GoldMisses)
	return pool, nil
}
