package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veracity-labs/claimforge/internal/cli/config"
	"github.com/veracity-labs/claimforge/internal/pipeline"
)

// NewNormalizeCommand creates the normalize command.
func NewNormalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <input-dir>",
		Short: "Interactively normalize every tabular file in a directory",
		Long: `Normalize walks every .csv and .db file in the input directory, asks which
columns carry the claim text and the truth label, maps the label values onto
the canonical 0/1 scheme, and writes one cleaned file per source under the
processed directory.

A failure in one source is reported and the run continues with the rest.`,
		Example: `  # Normalize all files in ./raw
  claimforge normalize ./raw

  # Headless run accepting every default
  claimforge normalize ./raw --assume-defaults`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(cmd, args[0])
		},
	}
}

func runNormalize(cmd *cobra.Command, inputDir string) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	prompter, cleanup, err := newPrompter(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Processing all files in %s\n", inputDir)
	_, _ = fmt.Fprintf(out, "Output will go to: %s\n\n", cfg.ProcessedDir)

	p := pipeline.New(prompter, out, logger, cfg.ProcessedDir)
	summary, err := p.Run(cmd.Context(), inputDir)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Done: %d processed, %d skipped\n", summary.Processed, summary.Skipped)
	return nil
}
