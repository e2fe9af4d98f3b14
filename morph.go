// Package morph predicts the inflected surface form of a lemma in context.
//
// Candidate inflections come from a precomputed reverse inflection map and
// are ranked by a per-category scoring model (monolithic or factorized):
//
//	p, _ := morph.Load("revmap.json", "model.N.json")
//	ranked, _ := p.Predict("cat", 'N', corpus.Features{"src": "chats"})
//	fmt.Println(ranked[0].Surface) // "cats"
package morph

import (
	"fmt"

	"github.com/inflectlab/morph/corpus"
	"github.com/inflectlab/morph/inflection"
	"github.com/inflectlab/morph/model"
)

// Predictor ranks candidate inflections using per-category scoring models.
type Predictor struct {
	revMap *inflection.Map
	models map[byte]model.Scorer
}

// NewPredictor creates a Predictor from a loaded reverse inflection map and
// scoring models. Duplicate categories are an error.
func NewPredictor(revMap *inflection.Map, scorers ...model.Scorer) (*Predictor, error) {
	if revMap == nil {
		return nil, fmt.Errorf("morph: nil reverse inflection map")
	}
	models := make(map[byte]model.Scorer, len(scorers))
	for _, s := range scorers {
		code := s.Category().CodeByte()
		if _, ok := models[code]; ok {
			return nil, fmt.Errorf("morph: duplicate model for category %c", code)
		}
		models[code] = s
	}
	return &Predictor{revMap: revMap, models: models}, nil
}

// Load reads a reverse inflection map and one model artifact per category.
func Load(revMapPath string, modelPaths ...string) (*Predictor, error) {
	revMap, err := inflection.LoadMap(revMapPath)
	if err != nil {
		return nil, fmt.Errorf("morph: %w", err)
	}
	scorers := make([]model.Scorer, 0, len(modelPaths))
	for _, path := range modelPaths {
		s, err := model.Load(path)
		if err != nil {
			return nil, fmt.Errorf("morph: %w", err)
		}
		scorers = append(scorers, s)
	}
	return NewPredictor(revMap, scorers...)
}

// Model returns the scoring model for a category. A missing category is an
// error, never a silent skip.
func (p *Predictor) Model(category byte) (model.Scorer, error) {
	s, ok := p.models[category]
	if !ok {
		return nil, fmt.Errorf("morph: category %c not loaded", category)
	}
	return s, nil
}

// Categories returns the category codes with a loaded model.
func (p *Predictor) Categories() []byte {
	codes := make([]byte, 0, len(p.models))
	for code := range p.models {
		codes = append(codes, code)
	}
	return codes
}

// Candidates returns the legal inflection set for (lemma, category), empty
// if the pair is unknown.
func (p *Predictor) Candidates(lemma string, category byte) []inflection.Candidate {
	return p.revMap.Lookup(lemma, category)
}

// Predict ranks the candidate inflections of a lemma against a feature
// vector. A lemma with no known candidates is an error.
func (p *Predictor) Predict(lemma string, category byte, feats corpus.Features) ([]model.Scored, error) {
	m, err := p.Model(category)
	if err != nil {
		return nil, err
	}
	cands := p.revMap.Lookup(lemma, category)
	if len(cands) == 0 {
		return nil, fmt.Errorf("morph: no candidates for lemma %q in category %c", lemma, category)
	}
	scored, err := m.ScoreAll(cands, feats)
	if err != nil {
		return nil, fmt.Errorf("morph: %w", err)
	}
	return model.Rank(scored), nil
}
