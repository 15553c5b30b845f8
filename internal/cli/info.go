package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vdtoorn/msgfplus/internal/enzyme"
)

var infoCmd = &cobra.Command{
	Use:   "info <enzyme>",
	Short: "Show one enzyme's parameters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, ok := enzyme.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown enzyme %q (try 'list')", args[0])
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "name:                                %s\n", e.Name())
		fmt.Fprintf(out, "terminus:                            %s\n", e.Terminus())
		fmt.Fprintf(out, "residues:                            %s\n", e.Residues())
		fmt.Fprintf(out, "peptide cleavage efficiency:         %g\n", e.PeptideCleavageEfficiency())
		fmt.Fprintf(out, "neighboring AA cleavage efficiency:  %g\n", e.NeighboringAACleavageEfficiency())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
