package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vdtoorn/msgfplus/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter config file",
	Long:  `Writes a commented starter config (default: .msgfplus/config.yaml).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ".msgfplus/config.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.WriteDefault(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
