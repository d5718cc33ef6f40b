// Package main provides tests for the claimforge CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/veracity-labs/claimforge/internal/cli"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "claimforge") {
		t.Errorf("version output should contain 'claimforge', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	for _, sub := range []string{"normalize", "merge", "version"} {
		if !strings.Contains(output, sub) {
			t.Errorf("help output should mention %q, got: %s", sub, output)
		}
	}
}
