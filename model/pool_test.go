package model

import (
	"testing"

	"github.com/inflectlab/morph/corpus"
	"github.com/inflectlab/morph/inflection"
)

func TestPoolBuilderSharesRanges(t *testing.T) {
	b := NewPoolBuilder(testCat)

	if !b.Add("kot", "ms", "kot", corpus.Features{"num": "sg"}, nounCands) {
		t.Fatal("first instance skipped")
	}
	if !b.Add("kot", "mp", "koty", corpus.Features{"num": "pl"}, nounCands) {
		t.Fatal("second instance skipped")
	}

	pool := b.Build()
	if pool.Len() != 2 {
		t.Fatalf("instances = %d", pool.Len())
	}
	// Same lemma: candidate rows stored once and shared.
	if pool.NumRows() != 2 {
		t.Fatalf("rows = %d, want 2", pool.NumRows())
	}
	if pool.Ranges[0] != pool.Ranges[1] {
		t.Errorf("ranges differ: %v vs %v", pool.Ranges[0], pool.Ranges[1])
	}
	if pool.Gold[0] != 0 || pool.Gold[1] != 1 {
		t.Errorf("gold = %v", pool.Gold)
	}
}

func TestPoolBuilderNewLemmaNewRange(t *testing.T) {
	b := NewPoolBuilder(testCat)
	other := []inflection.Candidate{
		{Attrs: "ms", Surface: "pies"},
		{Attrs: "mp", Surface: "psy"},
	}
	b.Add("kot", "ms", "kot", corpus.Features{"num": "sg"}, nounCands)
	b.Add("pies", "mp", "psy", corpus.Features{"num": "pl"}, other)

	pool := b.Build()
	if pool.NumRows() != 4 {
		t.Fatalf("rows = %d, want 4", pool.NumRows())
	}
	if pool.Ranges[1] != (Range{Start: 2, End: 4}) {
		t.Errorf("second range = %v", pool.Ranges[1])
	}
}

func TestPoolBuilderSkipsSingletons(t *testing.T) {
	b := NewPoolBuilder(testCat)
	single := []inflection.Candidate{{Attrs: "ms", Surface: "kot"}}

	if b.Add("kot", "ms", "kot", corpus.Features{"num": "sg"}, single) {
		t.Error("singleton candidate set accepted")
	}
	if b.Singletons != 1 {
		t.Errorf("Singletons = %d", b.Singletons)
	}
	if pool := b.Build(); pool.Len() != 0 {
		t.Errorf("pool has %d instances", pool.Len())
	}
}

func TestPoolBuilderSkipsGoldMisses(t *testing.T) {
	b := NewPoolBuilder(testCat)

	// Right attributes, wrong surface form: not the gold candidate.
	if b.Add("kot", "ms", "kotek", corpus.Features{"num": "sg"}, nounCands) {
		t.Error("gold miss accepted")
	}
	// Attributes absent from the candidate set.
	if b.Add("kot", "fs", "kot", corpus.Features{"num": "sg"}, nounCands) {
		t.Error("gold miss accepted")
	}
	if b.GoldMisses != 2 {
		t.Errorf("GoldMisses = %d", b.GoldMisses)
	}
}

func TestPoolBuilderPadsRows(t *testing.T) {
	b := NewPoolBuilder(testCat)
	cands := []inflection.Candidate{
		{Attrs: "m", Surface: "kot"},
		{Attrs: "mp", Surface: "koty"},
	}
	b.Add("kot", "m", "kot", corpus.Features{"num": "sg"}, cands)

	pool := b.Build()
	if pool.Rows[0] != "m-" {
		t.Errorf("row = %q, want padded m-", pool.Rows[0])
	}
}
