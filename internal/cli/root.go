// Package cli provides the command-line interface for claimforge.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veracity-labs/claimforge/internal/cli/commands"
	"github.com/veracity-labs/claimforge/internal/cli/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "claimforge",
		Short: "claimforge - Claim dataset normalization toolkit",
		Long: `claimforge ingests tabular files of uncertain schema, walks an operator
through identifying claim and label columns, normalizes labels to a canonical
binary scheme, and merges the cleaned outputs into one corpus with provenance.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := config.NewLogger(cfg.Verbose)
			cmd.SetContext(config.WithLogger(cmd.Context(), logger))

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					fmt.Fprintf(os.Stderr, "Using config file: %s\n", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Claim dataset normalization toolkit
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./claimforge.yaml)")
	rootCmd.PersistentFlags().String("processed-dir", "", "Directory for normalized per-source files")
	rootCmd.PersistentFlags().String("dataset-path", "", "Output path for the merged corpus")
	rootCmd.PersistentFlags().Bool("assume-defaults", false, "Answer every prompt with its default")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewNormalizeCommand())
	rootCmd.AddCommand(commands.NewMergeCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
