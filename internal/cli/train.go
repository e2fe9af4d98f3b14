package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"

	"github.com/inflectlab/morph"
	"github.com/inflectlab/morph/model"
	"github.com/inflectlab/morph/tagset"
)

// trainSettings carries environment-overridable training defaults.
type trainSettings struct {
	Iterations int     `env:"MORPH_ITERATIONS" env-default:"10"`
	Rate       float64 `env:"MORPH_RATE" env-default:"0.05"`
}

func (c *CLI) newTrainCommand() *cobra.Command {
	var settings trainSettings
	if err := cleanenv.ReadEnv(&settings); err != nil {
		settings = trainSettings{Iterations: 10, Rate: 0.05}
	}

	var corpusPath string
	var revMapPath string
	var category string
	var tagsetPath string
	iterations := settings.Iterations
	rate := settings.Rate

	cmd := &cobra.Command{
		Use:   "train <model-dir>",
		Short: "Train a structured inflection model for one category",
		Args:  cobra.ExactArgs(1),
		Example: `  morph train models --category N --revmap revmap.json < train.corpus
  morph train models --category V --corpus train.corpus -i 20 -r 0.1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			modelDir := args[0]
			if len(category) != 1 {
				return fmt.Errorf("--category must be a single character, got %q", category)
			}

			ts := tagset.Default()
			if tagsetPath != "" {
				var err error
				ts, err = tagset.Load(tagsetPath)
				if err != nil {
					return err
				}
			}

			in, err := openInput(corpusPath)
			if err != nil {
				return err
			}
			defer in.Close()

			if err := os.MkdirAll(modelDir, 0o755); err != nil {
				return fmt.Errorf("create model dir: %w", err)
			}

			slog.Info("Training", "category", category, "iterations", iterations, "rate", rate)
			start := time.Now()

			checkpoint := func(iter int, m *model.Factorized) error {
				path := filepath.Join(modelDir, fmt.Sprintf("model.%s.%d.json", category, iter))
				if err := model.Save(path, m); err != nil {
					return err
				}
				slog.Info("Checkpoint saved", "iteration", iter, "path", path)
				return nil
			}

			_, err = morph.Train(in, revMapPath, ts, category[0], morph.TrainConfig{
				Iterations: iterations,
				Rate:       rate,
			}, checkpoint)
			if err != nil {
				return err
			}
			slog.Info("Training completed", "duration", time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "-", "Aligned corpus file (- for stdin)")
	cmd.Flags().StringVar(&revMapPath, "revmap", "revmap.json", "Reverse inflection map file")
	cmd.Flags().StringVar(&category, "category", "", "Category code to train (required)")
	cmd.Flags().StringVar(&tagsetPath, "tagset", "", "Tagset definition file (YAML)")
	cmd.Flags().IntVarP(&iterations, "iterations", "i", iterations, "Number of SGD iterations")
	cmd.Flags().Float64VarP(&rate, "rate", "r", rate, "SGD update rate")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}
