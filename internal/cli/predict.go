package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/inflectlab/morph"
)

func (c *CLI) newPredictCommand() *cobra.Command {
	var corpusPath string
	var revMapPath string
	var categories string

	cmd := &cobra.Command{
		Use:   "predict <model.json>...",
		Short: "Predict inflections and report ranking metrics",
		Args:  cobra.MinimumNArgs(1),
		Example: `  morph predict models/model.N.10.json --revmap revmap.json < test.corpus
  morph predict models/model.N.10.json models/model.V.10.json --categories NV`,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Info("Loading reverse inflection map", "path", revMapPath)
			p, err := morph.Load(revMapPath, args...)
			if err != nil {
				return err
			}
			if categories == "" {
				for _, code := range p.Categories() {
					categories += string(code)
				}
			}
			slog.Info("Loaded inflection prediction models", "categories", categories)

			in, err := openInput(corpusPath)
			if err != nil {
				return err
			}
			defer in.Close()

			start := time.Now()
			if _, err := p.Evaluate(in, morph.EvalConfig{Categories: categories}, os.Stdout); err != nil {
				return err
			}
			slog.Debug("Evaluation completed", "duration", time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "-", "Aligned corpus file (- for stdin)")
	cmd.Flags().StringVar(&revMapPath, "revmap", "revmap.json", "Reverse inflection map file")
	cmd.Flags().StringVar(&categories, "categories", "", "Category codes to evaluate (default: all loaded)")
	return cmd
}
