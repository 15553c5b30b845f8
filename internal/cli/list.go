package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vdtoorn/msgfplus/internal/enzyme"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered enzymes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tTERM\tRESIDUES")
		for _, name := range enzyme.Names() {
			e, _ := enzyme.Get(name)
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name(), e.Terminus(), e.Residues())
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
