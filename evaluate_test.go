package morph

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inflectlab/morph/inflection"
	"github.com/inflectlab/morph/model"
	"github.com/inflectlab/morph/tagset"
)

func TestEvaluateMetrics(t *testing.T) {
	p := newFakePredictor(t)

	// Gold ranks under the fake scores are 1, 2 and 4; the zz instance is a
	// gold miss.
	corpusIn := strings.Join([]string{
		"s1 ||| w1|kot|Naa ||| 0-0",
		"s2 ||| w2|kot|Nbb ||| 0-0",
		"s3 ||| w4|kot|Ndd ||| 0-0",
		"s4 ||| w9|kot|Nzz ||| 0-0",
	}, "\n")

	var out bytes.Buffer
	results, err := p.Evaluate(strings.NewReader(corpusIn), EvalConfig{Categories: "N"}, &out)
	if err != nil {
		t.Fatal(err)
	}

	r := results["N"]
	if r == nil {
		t.Fatal("no result for N")
	}
	if r.Instances != 3 || r.Misses != 1 {
		t.Errorf("instances=%d misses=%d", r.Instances, r.Misses)
	}
	wantMRR := (1.0 + 0.5 + 0.25) / 3
	if math.Abs(r.MRR-wantMRR) > 1e-9 {
		t.Errorf("MRR = %f, want %f", r.MRR, wantMRR)
	}
	// Only the first instance's top prediction matches the gold surface.
	if math.Abs(r.Accuracy-1.0/3) > 1e-9 {
		t.Errorf("accuracy = %f", r.Accuracy)
	}
	wantPpl := math.Exp(-(-0.1 - 0.5 - 4.0) / 3)
	if math.Abs(r.Perplexity-wantPpl) > 1e-6 {
		t.Errorf("perplexity = %f, want %f", r.Perplexity, wantPpl)
	}

	report := out.String()
	if !strings.Contains(report, "miss: w9 (zz) not found") {
		t.Errorf("missing miss line:\n%s", report)
	}
	if !strings.Contains(report, "gold: w1 (aa) rank=1") {
		t.Errorf("missing gold line:\n%s", report)
	}
	if !strings.Contains(report, "category N: MRR=0.583 acc=0.333") {
		t.Errorf("missing summary line:\n%s", report)
	}
}

func TestEvaluateSurfaceEquality(t *testing.T) {
	// Two candidates realize the same surface form. Predicting the wrong
	// tag still counts as correct when the surface matches.
	rm := inflection.New()
	rm.Add("mysz", 'N', inflection.Candidate{Attrs: "ss", Surface: "cats"})
	rm.Add("mysz", 'N', inflection.Candidate{Attrs: "pp", Surface: "cats"})

	fake := &fakeScorer{cat: nounCat, scores: map[string]map[string]float64{
		"s5": {"ss": -1.0, "pp": -0.1},
	}}
	p, err := NewPredictor(rm, fake)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	results, err := p.Evaluate(strings.NewReader("s5 ||| cats|mysz|Nss ||| 0-0"), EvalConfig{Categories: "N"}, &out)
	if err != nil {
		t.Fatal(err)
	}
	if r := results["N"]; r.Accuracy != 1.0 {
		t.Errorf("accuracy = %f, want 1.0", r.Accuracy)
	}
}

func TestEvaluateMissingModelFatal(t *testing.T) {
	rm := inflection.New()
	rm.Add("kot", 'N', inflection.Candidate{Attrs: "aa", Surface: "w1"})
	rm.Add("kot", 'N', inflection.Candidate{Attrs: "bb", Surface: "w2"})
	rm.Add("spac", 'V', inflection.Candidate{Attrs: "s3", Surface: "spi"})
	rm.Add("spac", 'V', inflection.Candidate{Attrs: "p3", Surface: "spia"})

	fake := &fakeScorer{cat: nounCat, scores: map[string]map[string]float64{
		"s1": {"aa": -0.1, "bb": -1.0},
	}}
	p, err := NewPredictor(rm, fake)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	_, err = p.Evaluate(strings.NewReader("s6 ||| spi|spac|Vs3 ||| 0-0"), EvalConfig{Categories: "NV"}, &out)
	if err == nil {
		t.Fatal("expected error for category without a model")
	}
	if !strings.Contains(err.Error(), "category V not loaded") {
		t.Errorf("err = %v", err)
	}
}

// TestTrainEvaluateRoundTrip exercises the full pipeline: build a reverse
// inflection map from a corpus, train a factorized model, persist both, and
// evaluate the loaded predictor on the training corpus.
func TestTrainEvaluateRoundTrip(t *testing.T) {
	lines := []string{
		"the cat sleeps ||| kot|kot|Nms ||| 0-1",
		"the cats sleep ||| koty|kot|Nmp ||| 0-1",
	}
	var corpusIn strings.Builder
	for n := 0; n < 5; n++ {
		corpusIn.WriteString(strings.Join(lines, "\n"))
		corpusIn.WriteString("\n")
	}

	dir := t.TempDir()
	revMapPath := filepath.Join(dir, "revmap.json")
	modelPath := filepath.Join(dir, "model.N.json")

	ts := tagset.Default()
	rm, err := inflection.Build(strings.NewReader(corpusIn.String()), ts, "N")
	if err != nil {
		t.Fatal(err)
	}
	if err := rm.Save(revMapPath); err != nil {
		t.Fatal(err)
	}

	m, err := Train(strings.NewReader(corpusIn.String()), revMapPath, ts, 'N',
		TrainConfig{Iterations: 30, Rate: 0.5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := model.Save(modelPath, m); err != nil {
		t.Fatal(err)
	}

	p, err := Load(revMapPath, modelPath)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	results, err := p.Evaluate(strings.NewReader(corpusIn.String()), EvalConfig{Categories: "N"}, &out)
	if err != nil {
		t.Fatal(err)
	}
	r := results["N"]
	if r == nil || r.Instances != 10 {
		t.Fatalf("results = %+v", r)
	}
	if r.Accuracy != 1.0 {
		t.Errorf("accuracy = %f, want 1.0 on training data\n%s", r.Accuracy, out.String())
	}
	if r.MRR != 1.0 {
		t.Errorf("MRR = %f, want 1.0", r.MRR)
	}
}
