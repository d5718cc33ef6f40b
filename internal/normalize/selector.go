// Package normalize implements the label-normalization core: column-role
// selection heuristics, label value classification, and the construction and
// application of label mappings. All interaction goes through the prompt
// boundary so the same code drives interactive and headless runs.
package normalize

import (
	"fmt"
	"io"
	"strconv"

	"github.com/veracity-labs/claimforge/internal/prompt"
)

// Role identifies which canonical column is being selected.
type Role string

const (
	RoleClaim Role = "claim"
	RoleLabel Role = "label"
)

// DefaultColumnIndex computes the default index for a role over an ordered
// list of column names. A column literally named after the role wins;
// otherwise claim defaults to 0 and label to 1 when a second column exists.
func DefaultColumnIndex(names []string, role Role) int {
	for i, name := range names {
		if name == string(role) {
			return i
		}
	}
	if role == RoleLabel && len(names) > 1 {
		return 1
	}
	return 0
}

// SelectColumn shows the indexed column menu and asks the operator to pick a
// column for the role. Out-of-range or non-numeric answers are reported and
// fall back to the computed default.
func SelectColumn(w io.Writer, p prompt.Prompter, names []string, role Role) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("no columns to select for %s", role)
	}

	prompt.RenderOptions(w, fmt.Sprintf("Available columns for %s", role), names)

	defaultIdx := DefaultColumnIndex(names, role)
	answer, err := p.Ask(fmt.Sprintf("Select column index for %s", role), strconv.Itoa(defaultIdx))
	if err != nil {
		return "", err
	}

	idx, convErr := strconv.Atoi(answer)
	if convErr != nil || idx < 0 || idx >= len(names) {
		_, _ = fmt.Fprintf(w, "Invalid choice %q - using default %d (%s).\n",
			answer, defaultIdx, names[defaultIdx])
		return names[defaultIdx], nil
	}
	return names[idx], nil
}
