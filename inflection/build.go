package inflection

import (
	"io"
	"log/slog"
	"strings"

	"github.com/inflectlab/morph/corpus"
	"github.com/inflectlab/morph/tagset"
)

// Build collects a reverse inflection map from a corpus, keeping the target
// words whose category code appears in codes. Candidates are recorded in
// order of first appearance, deduplicated by (attrs, surface).
func Build(r io.Reader, ts *tagset.Tagset, codes string) (*Map, error) {
	m := New()
	seen := make(map[string]bool)

	reader := corpus.NewReader(r)
	sentences := 0
	for {
		sent, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		sentences++

		for _, word := range sent.Target {
			code, attrs := tagset.Split(word.Tag)
			if code == 0 || !strings.ContainsRune(codes, rune(code)) {
				continue
			}
			if !ts.Has(code) {
				continue
			}
			k := key(word.Lemma, code) + "\x00" + attrs + "\x00" + word.Surface
			if seen[k] {
				continue
			}
			seen[k] = true
			m.Add(word.Lemma, code, Candidate{Attrs: attrs, Surface: word.Surface})
		}
	}

	slog.Info("Built reverse inflection map", "sentences", sentences, "entries", m.Len())
	return m, nil
}
