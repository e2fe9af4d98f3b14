// Package inflection provides the reverse inflection map: a lookup from
// (lemma, category) to the known candidate inflections of that lemma.
package inflection

import (
	"encoding/json"
	"fmt"
	"os"
)

// Candidate is one known (attribute string, surface form) realization of a
// lemma within a category.
type Candidate struct {
	Attrs   string `json:"attrs"`
	Surface string `json:"surface"`
}

// Map associates (lemma, category) with an ordered candidate list. It is
// loaded once and treated read-only during a run.
type Map struct {
	Entries map[string][]Candidate `json:"entries"`
}

// New creates an empty Map.
func New() *Map {
	return &Map{Entries: make(map[string][]Candidate)}
}

func key(lemma string, category byte) string {
	return string(category) + ":" + lemma
}

// Add appends a candidate for (lemma, category). Callers are responsible
// for deduplication; candidate order is insertion order.
func (m *Map) Add(lemma string, category byte, c Candidate) {
	k := key(lemma, category)
	m.Entries[k] = append(m.Entries[k], c)
}

// Lookup returns the ordered candidate list for (lemma, category), or an
// empty list if the pair is unknown.
func (m *Map) Lookup(lemma string, category byte) []Candidate {
	return m.Entries[key(lemma, category)]
}

// Len returns the number of (lemma, category) entries.
func (m *Map) Len() int {
	return len(m.Entries)
}

// Save writes the map as JSON.
func (m *Map) Save(path string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("inflection: marshal map: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("inflection: write %s: %w", path, err)
	}
	return nil
}

// LoadMap reads a JSON reverse inflection map.
func LoadMap(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("inflection: read %s: %w", path, err)
	}
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("inflection: decode %s: %w", path, err)
	}
	if m.Entries == nil {
		m.Entries = make(map[string][]Candidate)
	}
	return &m, nil
}
