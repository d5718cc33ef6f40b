// Package commands implements the claimforge subcommands.
package commands

import (
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/veracity-labs/claimforge/internal/cli/config"
	"github.com/veracity-labs/claimforge/internal/prompt"
)

// historyFile is the project-local readline history location.
const historyFile = ".claimforge/history"

// getConfig returns the current configuration.
func getConfig() *config.Config {
	return config.GetCurrentConfig()
}

// newPrompter picks the prompter for this run. Explicit --assume-defaults or
// a non-terminal stdin both select the auto-accept prompter, which keeps
// headless and scripted runs working without a console. The returned cleanup
// must be called (typically via defer).
func newPrompter(cfg *config.Config) (prompt.Prompter, func(), error) {
	if cfg.AssumeDefaults || !term.IsTerminal(int(os.Stdin.Fd())) {
		return prompt.AutoAccept{}, func() {}, nil
	}

	if dir := filepath.Dir(historyFile); dir != "." {
		// History is best-effort; prompting works without it.
		_ = os.MkdirAll(dir, 0750)
	}

	console, err := prompt.NewConsole(prompt.ConsoleConfig{HistoryFile: historyFile})
	if err != nil {
		return nil, nil, err
	}
	return console, func() { _ = console.Close() }, nil
}
