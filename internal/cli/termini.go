package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vdtoorn/msgfplus/internal/aminoacid"
	"github.com/vdtoorn/msgfplus/internal/enzyme"
)

var terminiOpts struct {
	enzymeName string
	inPath     string
}

var terminiCmd = &cobra.Command{
	Use:   "termini [annotations...]",
	Short: "Count cleaved termini for X.PEPTIDE.Y annotations",
	Long: `Counts how many of a peptide's two termini (0, 1 or 2) are consistent
with the enzyme's cleavage rule. Annotations come from the arguments, or one
per line from --in (use '-' for stdin). Flanking characters outside the
amino-acid alphabet ('_', '-', '*') mark protein termini and always count.`,
	RunE: runTermini,
}

func init() {
	terminiCmd.Flags().StringVarP(&terminiOpts.enzymeName, "enzyme", "e", "Tryp", "enzyme name")
	terminiCmd.Flags().StringVar(&terminiOpts.inPath, "in", "", "annotation file, one per line ('-' for stdin)")
	rootCmd.AddCommand(terminiCmd)
}

func runTermini(cmd *cobra.Command, args []string) error {
	e, ok := enzyme.Get(terminiOpts.enzymeName)
	if !ok {
		return fmt.Errorf("unknown enzyme %q (try 'list')", terminiOpts.enzymeName)
	}
	if len(args) == 0 && terminiOpts.inPath == "" {
		return fmt.Errorf("no annotations: pass them as arguments or via --in")
	}

	set := aminoacid.Standard()
	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	count := func(ann string) error {
		n, err := e.NumCleavedTermini(ann, set)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\t%d\n", ann, n)
		return err
	}

	for _, ann := range args {
		if err := count(ann); err != nil {
			return err
		}
	}
	if terminiOpts.inPath == "" {
		return nil
	}

	var r io.Reader = os.Stdin
	if terminiOpts.inPath != "-" {
		f, err := os.Open(terminiOpts.inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := count(line); err != nil {
			return err
		}
	}
	return sc.Err()
}
