// Package tagset defines morphological categories and the tag string encoding.
//
// A tag is a one-character category code followed by a fixed-length attribute
// string; attribute strings shorter than the category's length are right-padded
// with the placeholder character meaning "inapplicable".
package tagset

import (
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Placeholder fills attribute positions that do not apply to a form.
const Placeholder = '-'

// Category is a morphological class with a fixed number of attribute positions.
type Category struct {
	Code   string `yaml:"code" json:"code"`
	Name   string `yaml:"name" json:"name"`
	Length int    `yaml:"length" json:"length"`
}

// CodeByte returns the one-character category code.
func (c Category) CodeByte() byte {
	return c.Code[0]
}

// Pad right-pads an attribute string with the placeholder up to the
// category's tag length. Longer strings are returned unchanged.
func (c Category) Pad(attrs string) string {
	if len(attrs) >= c.Length {
		return attrs
	}
	return attrs + strings.Repeat(string(Placeholder), c.Length-len(attrs))
}

// Tagset is the set of categories a corpus is annotated with.
type Tagset struct {
	Categories []Category `yaml:"categories" json:"categories"`

	byCode map[byte]Category
}

// New builds a Tagset from category definitions.
func New(categories []Category) (*Tagset, error) {
	ts := &Tagset{Categories: categories}
	if err := ts.init(); err != nil {
		return nil, err
	}
	return ts, nil
}

// Load reads a tagset definition from a YAML or JSON file.
func Load(path string) (*Tagset, error) {
	var ts Tagset
	if err := cleanenv.ReadConfig(path, &ts); err != nil {
		return nil, fmt.Errorf("tagset: read %s: %w", path, err)
	}
	if err := ts.init(); err != nil {
		return nil, err
	}
	return &ts, nil
}

func (t *Tagset) init() error {
	t.byCode = make(map[byte]Category, len(t.Categories))
	for _, c := range t.Categories {
		if len(c.Code) != 1 {
			return fmt.Errorf("tagset: category code %q must be a single character", c.Code)
		}
		if c.Length < 1 {
			return fmt.Errorf("tagset: category %s has tag length %d", c.Code, c.Length)
		}
		if _, ok := t.byCode[c.CodeByte()]; ok {
			return fmt.Errorf("tagset: duplicate category code %q", c.Code)
		}
		t.byCode[c.CodeByte()] = c
	}
	return nil
}

// Get returns the category for a code.
func (t *Tagset) Get(code byte) (Category, bool) {
	c, ok := t.byCode[code]
	return c, ok
}

// Has reports whether the tagset defines a category for code.
func (t *Tagset) Has(code byte) bool {
	_, ok := t.byCode[code]
	return ok
}

// Split splits a tag into its category code and raw attribute string.
func Split(tag string) (byte, string) {
	if tag == "" {
		return 0, ""
	}
	return tag[0], tag[1:]
}

// Default returns the built-in positional tagset.
func Default() *Tagset {
	ts, err := New([]Category{
		{Code: "N", Name: "noun", Length: 4},
		{Code: "V", Name: "verb", Length: 6},
		{Code: "A", Name: "adjective", Length: 5},
		{Code: "P", Name: "pronoun", Length: 4},
		{Code: "M", Name: "numeral", Length: 3},
	})
	if err != nil {
		panic(err)
	}
	return ts
}
