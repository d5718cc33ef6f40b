// Package main provides the CLI entry point for claimforge.
package main

import (
	"os"

	"github.com/veracity-labs/claimforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
