// Package corpus reads word-aligned parallel sentences and extracts
// per-word prediction instances from them.
//
// The wire format is one sentence per line, three fields separated by
// " ||| ": source tokens, target surface|lemma|tag triples, and alignment
// pairs t-s (target index first). The alignment field may be empty.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TargetWord is one annotated target-side token.
type TargetWord struct {
	Surface string
	Lemma   string
	Tag     string // category code + attribute string
}

// AlignPair links a target position to a source position.
type AlignPair struct {
	Target int
	Source int
}

// Sentence is one decoded corpus record.
type Sentence struct {
	Source    []string
	Target    []TargetWord
	Alignment []AlignPair
}

// Reader streams sentence records from a corpus.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &Reader{scanner: s}
}

// Next returns the next sentence, or io.EOF when the corpus is exhausted.
// Blank lines are skipped.
func (r *Reader) Next() (*Sentence, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		sent, err := ParseSentence(line)
		if err != nil {
			return nil, fmt.Errorf("corpus: line %d: %w", r.line, err)
		}
		return sent, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	return nil, io.EOF
}

// ReadAll decodes every sentence in r.
func ReadAll(r io.Reader) ([]*Sentence, error) {
	cr := NewReader(r)
	var sentences []*Sentence
	for {
		sent, err := cr.Next()
		if err == io.EOF {
			return sentences, nil
		}
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, sent)
	}
}

// ParseSentence decodes a single "src ||| tgt ||| align" line.
func ParseSentence(line string) (*Sentence, error) {
	fields := strings.Split(line, " ||| ")
	if len(fields) != 3 {
		return nil, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}

	sent := &Sentence{
		Source: strings.Fields(fields[0]),
	}

	for _, tok := range strings.Fields(fields[1]) {
		parts := strings.Split(tok, "|")
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed target token %q", tok)
		}
		sent.Target = append(sent.Target, TargetWord{
			Surface: parts[0],
			Lemma:   parts[1],
			Tag:     parts[2],
		})
	}

	for _, pair := range strings.Fields(fields[2]) {
		dash := strings.IndexByte(pair, '-')
		if dash <= 0 {
			return nil, fmt.Errorf("malformed alignment pair %q", pair)
		}
		t, err := strconv.Atoi(pair[:dash])
		if err != nil {
			return nil, fmt.Errorf("malformed alignment pair %q", pair)
		}
		s, err := strconv.Atoi(pair[dash+1:])
		if err != nil {
			return nil, fmt.Errorf("malformed alignment pair %q", pair)
		}
		if t < 0 || t >= len(sent.Target) || s < 0 || s >= len(sent.Source) {
			return nil, fmt.Errorf("alignment pair %q out of range", pair)
		}
		sent.Alignment = append(sent.Alignment, AlignPair{Target: t, Source: s})
	}

	return sent, nil
}
