package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inflectlab/morph/corpus"
	"github.com/inflectlab/morph/tagset"
)

func (c *CLI) newLexalignCommand() *cobra.Command {
	var corpusPath string
	var categories string
	var partial bool

	cmd := &cobra.Command{
		Use:   "lexalign",
		Short: "Rewrite a corpus as source ||| lemma_tag for alignment training",
		Example: `  morph lexalign < train.corpus > lex.corpus
  morph lexalign --partial --categories NV < train.corpus`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(corpusPath)
			if err != nil {
				return err
			}
			defer in.Close()

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			lemmatize := func(w corpus.TargetWord) string {
				code, _ := tagset.Split(w.Tag)
				if partial && !strings.ContainsRune(categories, rune(code)) {
					return w.Surface
				}
				return w.Lemma + "_" + string(code)
			}

			reader := corpus.NewReader(in)
			for {
				sent, err := reader.Next()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				tgt := make([]string, len(sent.Target))
				for i, w := range sent.Target {
					tgt[i] = lemmatize(w)
				}
				fmt.Fprintf(out, "%s ||| %s\n",
					strings.Join(sent.Source, " "), strings.Join(tgt, " "))
			}
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "-", "Aligned corpus file (- for stdin)")
	cmd.Flags().StringVar(&categories, "categories", "NVAPM", "Predicted category codes (with --partial)")
	cmd.Flags().BoolVar(&partial, "partial", false, "Keep surface forms of non-predicted categories")
	return cmd
}
