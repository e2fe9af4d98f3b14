// Package maxent implements a multiclass maximum-entropy classifier over
// sparse feature vectors.
package maxent

import (
	"gonum.org/v1/gonum/floats"

	"github.com/inflectlab/morph/internal/vectorizer"
)

// Alphabet maps between string values and integer IDs.
type Alphabet struct {
	ToID  map[string]int `json:"to_id"`
	ToStr []string       `json:"to_str"`
}

// NewAlphabet creates an empty alphabet.
func NewAlphabet() *Alphabet {
	return &Alphabet{
		ToID: make(map[string]int),
	}
}

// Add adds a string to the alphabet if not already present, returns its ID.
func (a *Alphabet) Add(s string) int {
	if id, ok := a.ToID[s]; ok {
		return id
	}
	id := len(a.ToStr)
	a.ToID[s] = id
	a.ToStr = append(a.ToStr, s)
	return id
}

// Get returns the ID for a string, or -1 if not found.
func (a *Alphabet) Get(s string) int {
	if id, ok := a.ToID[s]; ok {
		return id
	}
	return -1
}

// Size returns the number of entries.
func (a *Alphabet) Size() int {
	return len(a.ToStr)
}

// Classifier is a linear softmax classifier.
type Classifier struct {
	Classes   []string    `json:"classes"`
	Coef      [][]float64 `json:"coef"`      // [numClasses][numFeatures]
	Intercept []float64   `json:"intercept"` // [numClasses]

	classIndex map[string]int
}

// NewClassifier creates a zero-weight classifier for the given classes and
// feature dimension.
func NewClassifier(classes []string, dim int) *Classifier {
	c := &Classifier{
		Classes:   classes,
		Coef:      make([][]float64, len(classes)),
		Intercept: make([]float64, len(classes)),
	}
	for i := range c.Coef {
		c.Coef[i] = make([]float64, dim)
	}
	c.InitRuntime()
	return c
}

// InitRuntime rebuilds the class index after deserialization.
func (c *Classifier) InitRuntime() {
	c.classIndex = make(map[string]int, len(c.Classes))
	for i, cls := range c.Classes {
		c.classIndex[cls] = i
	}
}

// NumClasses returns the number of classes.
func (c *Classifier) NumClasses() int {
	return len(c.Classes)
}

// ClassIndex returns the index of a class label, or -1 if the classifier
// never observed it.
func (c *Classifier) ClassIndex(label string) int {
	if i, ok := c.classIndex[label]; ok {
		return i
	}
	return -1
}

// Decision returns the raw per-class logits for a feature vector.
func (c *Classifier) Decision(x vectorizer.SparseVector) []float64 {
	logits := make([]float64, len(c.Classes))
	for i := range c.Classes {
		logits[i] = x.Dot(c.Coef[i]) + c.Intercept[i]
	}
	return logits
}

// LogProba returns normalized per-class log-probabilities for a feature
// vector, in class order.
func (c *Classifier) LogProba(x vectorizer.SparseVector) []float64 {
	logits := c.Decision(x)
	z := floats.LogSumExp(logits)
	for i := range logits {
		logits[i] -= z
	}
	return logits
}
