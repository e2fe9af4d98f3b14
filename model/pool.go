package model

import (
	"github.com/inflectlab/morph/corpus"
	"github.com/inflectlab/morph/inflection"
	"github.com/inflectlab/morph/tagset"
)

// Range is a [Start, End) span of pool rows.
type Range struct {
	Start int
	End   int
}

// Pool is the pooled training set for one category: one label row per
// distinct candidate, shared across all instances with the same
// (lemma, category) candidate group.
type Pool struct {
	Cat tagset.Category
	// Feats holds one feature vector per instance.
	Feats []corpus.Features
	// Rows holds padded attribute strings, one per pooled candidate. The
	// trainer expands them into per-position label IDs.
	Rows []string
	// Ranges maps each instance to its candidate group's rows.
	Ranges []Range
	// Gold holds, per instance, the index of the correct candidate within
	// its range.
	Gold []int
}

// Len returns the number of training instances.
func (p *Pool) Len() int {
	return len(p.Feats)
}

// NumRows returns the number of pooled candidate rows.
func (p *Pool) NumRows() int {
	return len(p.Rows)
}

// PoolBuilder accumulates pool rows, deduplicating candidate groups by
// lemma. It is a one-shot session: Build finalizes the pool and drops the
// dedup cache with the builder.
type PoolBuilder struct {
	pool *Pool
	lims map[string]Range

	// Singletons counts instances skipped because their candidate set has
	// cardinality 1 (nothing to predict).
	Singletons int
	// GoldMisses counts instances skipped because the gold candidate is
	// absent from the legal set (data/alignment inconsistency).
	GoldMisses int
}

// NewPoolBuilder creates a builder for one category.
func NewPoolBuilder(cat tagset.Category) *PoolBuilder {
	return &PoolBuilder{
		pool: &Pool{Cat: cat},
		lims: make(map[string]Range),
	}
}

// Add records one instance. It returns false when the instance is skipped
// under the singleton or gold-miss policy.
func (b *PoolBuilder) Add(lemma, attrs, surface string, feats corpus.Features, cands []inflection.Candidate) bool {
	if len(cands) == 1 {
		b.Singletons++
		return false
	}

	gold := -1
	for i, c := range cands {
		if c.Attrs == attrs && c.Surface == surface {
			gold = i
			break
		}
	}
	if gold < 0 {
		b.GoldMisses++
		return false
	}

	rng, ok := b.lims[lemma]
	if !ok {
		start := len(b.pool.Rows)
		for _, c := range cands {
			b.pool.Rows = append(b.pool.Rows, b.pool.Cat.Pad(c.Attrs))
		}
		rng = Range{Start: start, End: len(b.pool.Rows)}
		b.lims[lemma] = rng
	}

	b.pool.Feats = append(b.pool.Feats, feats)
	b.pool.Ranges = append(b.pool.Ranges, rng)
	b.pool.Gold = append(b.pool.Gold, gold)
	return true
}

// Build finalizes and returns the pool. The builder and its dedup cache
// must not be reused afterwards.
func (b *PoolBuilder) Build() *Pool {
	p := b.pool
	b.pool = nil
	b.lims = nil
	return p
}
