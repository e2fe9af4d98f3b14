package vectorizer

import (
	"fmt"
	"sort"
)

// DictVectorizer converts name=value feature mappings to sparse indicator
// vectors. Features unseen during Fit are dropped by Transform.
type DictVectorizer struct {
	FeatureNames []string `json:"feature_names"`

	featureIndex map[string]int
}

// NewDictVectorizer creates an empty DictVectorizer.
func NewDictVectorizer() *DictVectorizer {
	return &DictVectorizer{}
}

// Fit builds the feature mapping from a list of feature dicts.
func (dv *DictVectorizer) Fit(data []map[string]string) {
	featureSet := make(map[string]bool)
	for _, d := range data {
		for k, v := range d {
			featureSet[featureKey(k, v)] = true
		}
	}

	dv.FeatureNames = make([]string, 0, len(featureSet))
	for f := range featureSet {
		dv.FeatureNames = append(dv.FeatureNames, f)
	}
	sort.Strings(dv.FeatureNames)

	dv.featureIndex = make(map[string]int, len(dv.FeatureNames))
	for i, f := range dv.FeatureNames {
		dv.featureIndex[f] = i
	}
}

// FitTransform fits and transforms the data.
func (dv *DictVectorizer) FitTransform(data []map[string]string) []SparseVector {
	dv.Fit(data)
	result := make([]SparseVector, len(data))
	for i, d := range data {
		result[i] = dv.Transform(d)
	}
	return result
}

// Transform converts a feature dict to a sparse indicator vector.
func (dv *DictVectorizer) Transform(d map[string]string) SparseVector {
	sv := NewSparseVector(len(dv.FeatureNames))
	for k, v := range d {
		if idx, ok := dv.featureIndex[featureKey(k, v)]; ok {
			sv.Set(idx, 1.0)
		}
	}
	return sv
}

// VocabSize returns the number of features.
func (dv *DictVectorizer) VocabSize() int {
	return len(dv.FeatureNames)
}

// InitRuntime rebuilds the feature index after deserialization.
func (dv *DictVectorizer) InitRuntime() {
	dv.featureIndex = make(map[string]int, len(dv.FeatureNames))
	for i, f := range dv.FeatureNames {
		dv.featureIndex[f] = i
	}
}

func featureKey(name, value string) string {
	return fmt.Sprintf("%s=%s", name, value)
}
