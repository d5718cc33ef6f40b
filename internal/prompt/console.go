package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Console is a readline-backed Prompter. Prompts block until answered;
// Ctrl-D yields the default, matching an operator walking away mid-run.
type Console struct {
	rl *readline.Instance
}

// ConsoleConfig configures a Console. HistoryFile may be empty to disable
// history.
type ConsoleConfig struct {
	HistoryFile string
	Stdin       io.ReadCloser
	Stdout      io.Writer
}

// NewConsole creates a Console. Zero-value config uses the process stdio.
func NewConsole(cfg ConsoleConfig) (*Console, error) {
	rlCfg := &readline.Config{
		Prompt:          "> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
	}
	if cfg.Stdin != nil {
		rlCfg.Stdin = cfg.Stdin
	}
	if cfg.Stdout != nil {
		rlCfg.Stdout = cfg.Stdout
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, fmt.Errorf("initialize console: %w", err)
	}
	return &Console{rl: rl}, nil
}

// Close releases the readline instance.
func (c *Console) Close() error {
	return c.rl.Close()
}

// Ask displays the question with its default and reads one line. Empty
// input and EOF both yield the default.
func (c *Console) Ask(question, defaultValue string) (string, error) {
	if defaultValue != "" {
		c.rl.SetPrompt(fmt.Sprintf("%s [%s]: ", question, defaultValue))
	} else {
		c.rl.SetPrompt(question + ": ")
	}

	line, err := c.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return defaultValue, nil
	}
	if err != nil {
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// Confirm asks a yes/no question. Anything starting with y or n (any case)
// is taken literally; everything else yields the default.
func (c *Console) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}

	answer, err := c.Ask(fmt.Sprintf("%s (%s)", question, hint), "")
	if err != nil {
		return defaultYes, err
	}
	return parseYesNo(answer, defaultYes), nil
}

// parseYesNo interprets an operator's confirmation answer.
func parseYesNo(answer string, defaultYes bool) bool {
	switch {
	case strings.HasPrefix(strings.ToLower(answer), "y"):
		return true
	case strings.HasPrefix(strings.ToLower(answer), "n"):
		return false
	default:
		return defaultYes
	}
}
