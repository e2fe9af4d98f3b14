package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/inflectlab/morph/maxent"
	"github.com/inflectlab/morph/tagset"
	"github.com/inflectlab/morph/internal/vectorizer"
)

// Artifact is the JSON-persisted form of a trained scoring model. Exactly
// one of Classifier (monolithic) and Positions (factorized) is set; the
// variant is selected by this shape when the artifact is loaded.
type Artifact struct {
	Category string `json:"category"`
	Name     string `json:"name,omitempty"`
	Length   int    `json:"length"`

	Vectorizer *vectorizer.DictVectorizer `json:"vectorizer"`
	Classifier *maxent.Classifier         `json:"classifier,omitempty"`
	Positions  []*maxent.Classifier       `json:"positions,omitempty"`
}

// NewArtifact captures a scoring model into its persisted form.
func NewArtifact(s Scorer) (*Artifact, error) {
	switch m := s.(type) {
	case *Monolithic:
		return &Artifact{
			Category:   m.Cat.Code,
			Name:       m.Cat.Name,
			Length:     m.Cat.Length,
			Vectorizer: m.Vec,
			Classifier: m.Clf,
		}, nil
	case *Factorized:
		return &Artifact{
			Category:   m.Cat.Code,
			Name:       m.Cat.Name,
			Length:     m.Cat.Length,
			Vectorizer: m.Vec,
			Positions:  m.Pos,
		}, nil
	default:
		return nil, fmt.Errorf("model: unknown scorer type %T", s)
	}
}

// Model reconstructs the scoring model described by the artifact.
func (a *Artifact) Model() (Scorer, error) {
	if len(a.Category) != 1 {
		return nil, fmt.Errorf("model: artifact category %q must be a single character", a.Category)
	}
	if a.Length < 1 {
		return nil, fmt.Errorf("model: artifact category %s has tag length %d", a.Category, a.Length)
	}
	if a.Vectorizer == nil {
		return nil, fmt.Errorf("model: artifact for category %s has no vectorizer", a.Category)
	}
	a.Vectorizer.InitRuntime()

	cat := tagset.Category{Code: a.Category, Name: a.Name, Length: a.Length}

	switch {
	case a.Classifier != nil && a.Positions != nil:
		return nil, fmt.Errorf("model: artifact for category %s has both classifier shapes", a.Category)
	case a.Classifier != nil:
		a.Classifier.InitRuntime()
		return &Monolithic{Cat: cat, Vec: a.Vectorizer, Clf: a.Classifier}, nil
	case a.Positions != nil:
		if len(a.Positions) != a.Length {
			return nil, fmt.Errorf("model: artifact for category %s has %d position classifiers for tag length %d",
				a.Category, len(a.Positions), a.Length)
		}
		for _, clf := range a.Positions {
			if clf != nil {
				clf.InitRuntime()
			}
		}
		return &Factorized{Cat: cat, Vec: a.Vectorizer, Pos: a.Positions}, nil
	default:
		return nil, fmt.Errorf("model: artifact for category %s has no classifier", a.Category)
	}
}

// Save writes a scoring model to a JSON artifact file.
func Save(path string, s Scorer) error {
	a, err := NewArtifact(s)
	if err != nil {
		return err
	}
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("model: marshal artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("model: write %s: %w", path, err)
	}
	return nil
}

// Load reads a JSON artifact file and reconstructs its scoring model.
func Load(path string) (Scorer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: read %s: %w", path, err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("model: decode %s: %w", path, err)
	}
	return a.Model()
}
