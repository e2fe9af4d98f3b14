package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/inflectlab/morph/inflection"
	"github.com/inflectlab/morph/tagset"
)

func (c *CLI) newRevmapCommand() *cobra.Command {
	var corpusPath string
	var categories string
	var tagsetPath string

	cmd := &cobra.Command{
		Use:   "revmap <output.json>",
		Short: "Build a reverse inflection map from an aligned corpus",
		Args:  cobra.ExactArgs(1),
		Example: `  morph revmap revmap.json --categories NVA < train.corpus`,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			m, err := inflection.Build(in, ts, categories)
			if err != nil {
				return err
			}
			if err := m.Save(args[0]); err != nil {
				return err
			}
			slog.Info("Reverse inflection map saved", "path", args[0], "entries", m.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "-", "Aligned corpus file (- for stdin)")
	cmd.Flags().StringVar(&categories, "categories", "NVAPM", "Category codes to collect")
	cmd.Flags().StringVar(&tagsetPath, "tagset", "", "Tagset definition file (YAML)")
	return cmd
}
