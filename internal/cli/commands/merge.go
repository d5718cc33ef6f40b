package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/veracity-labs/claimforge/internal/cli/config"
	"github.com/veracity-labs/claimforge/internal/merge"
	"github.com/veracity-labs/claimforge/internal/prompt"
)

// NewMergeCommand creates the merge command.
func NewMergeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "merge [input-dir [output-path]]",
		Short: "Combine normalized files into one corpus with provenance",
		Long: `Merge reads every normalized CSV under the processed directory, requires the
canonical claim and label columns, tags each row with its source file, and
concatenates everything into a single corpus.

Files missing a canonical column are skipped and reported. The merge fails
only when no file contributes any valid rows.`,
		Example: `  # Merge with the configured defaults
  claimforge merge

  # Merge a specific directory into a specific file
  claimforge merge ./processed ./dataset/misinfo_dataset.csv`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()

			inputDir := cfg.ProcessedDir
			outputPath := cfg.DatasetPath
			if len(args) > 0 {
				inputDir = args[0]
			}
			if len(args) > 1 {
				outputPath = args[1]
			}
			return runMerge(cmd, inputDir, outputPath)
		},
	}
}

func runMerge(cmd *cobra.Command, inputDir, outputPath string) error {
	logger := config.GetLogger(cmd.Context())

	m := merge.New(logger)
	stats, err := m.Merge(inputDir, outputPath)
	if err != nil {
		return err
	}

	metrics := [][2]string{
		{"Files processed", strconv.Itoa(stats.FilesProcessed)},
		{"Files skipped", strconv.Itoa(stats.FilesSkipped)},
		{"Total rows (after cleaning)", strconv.Itoa(stats.RowsRetained)},
	}
	for _, label := range stats.LabelKeys() {
		metrics = append(metrics, [2]string{
			"Label " + label, strconv.Itoa(stats.LabelCounts[label]),
		})
	}
	prompt.RenderMetrics(cmd.OutOrStdout(), "Metrics", metrics)

	cmd.Printf("\nSaved combined dataset -> %s\n", outputPath)
	return nil
}
