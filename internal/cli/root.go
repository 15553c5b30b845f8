// Package cli implements the msgfplus command tree.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vdtoorn/msgfplus/internal/config"
	"github.com/vdtoorn/msgfplus/internal/enzyme"
)

var (
	cfgFile string
	verbose bool
	cfg     config.Config

	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
)

var rootCmd = &cobra.Command{
	Use:   "msgfplus",
	Short: "Proteolytic enzyme utilities for MS/MS peptide identification",
	Long: `Query the built-in proteolytic enzyme table, count cleaved peptide
termini for X.PEPTIDE.Y annotations, and run in-silico protein digests.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .msgfplus/config.yaml, then ~/.config/msgfplus/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose progress on stderr")
}

// setup wires logging and merges configured enzymes into the registry before
// any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	if verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if _, err := os.Stat(".msgfplus/config.yaml"); err == nil {
		viper.SetConfigFile(".msgfplus/config.yaml")
	} else {
		home, _ := os.UserHomeDir()
		viper.AddConfigPath(filepath.Join(home, ".config", "msgfplus"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // defaults only
		}
		if cfgFile == "" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Apply(enzyme.Default()); err != nil {
		return fmt.Errorf("invalid enzyme config: %w", err)
	}
	if n := len(cfg.Enzymes); n > 0 {
		log.Debug().Int("enzymes", n).Str("file", viper.ConfigFileUsed()).
			Msg("registered custom enzymes")
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	rootCmd.Version = v
}
