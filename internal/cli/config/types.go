// Package config provides configuration management for the claimforge CLI.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

// Default values for unset configuration keys.
const (
	DefaultProcessedDir = "processed"
	DefaultDatasetPath  = "dataset/misinfo_dataset.csv"
)

// Config holds all CLI configuration options.
type Config struct {
	// ProcessedDir is where normalized per-source files are written and
	// where the merge reads from by default.
	ProcessedDir string `koanf:"processed_dir"`
	// DatasetPath is the default merged-corpus output path.
	DatasetPath string `koanf:"dataset_path"`
	// AssumeDefaults makes every prompt answer with its default, for
	// non-interactive runs. Implied when stdin is not a terminal.
	AssumeDefaults bool `koanf:"assume_defaults"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}
