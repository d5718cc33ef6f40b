package prompt

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderOptions writes an indexed menu of names, the display half of every
// "select an index" interaction.
func RenderOptions(w io.Writer, title string, names []string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Index", "Name"})
	for i, name := range names {
		t.AppendRow(table.Row{i, name})
	}
	t.Render()
}

// RenderCounts writes a two-column count table in the given key order.
func RenderCounts(w io.Writer, title, keyHeader string, keys []string, counts map[string]int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(table.Row{keyHeader, "Count"})
	for _, key := range keys {
		t.AppendRow(table.Row{key, counts[key]})
	}
	t.Render()
}

// RenderMetrics writes name/value pairs as a summary table.
func RenderMetrics(w io.Writer, title string, metrics [][2]string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Metric", "Value"})
	for _, m := range metrics {
		t.AppendRow(table.Row{m[0], m[1]})
	}
	t.Render()
}

// RenderExamples writes sample claim/label pairs for the operator to eyeball
// before deciding on a mapping.
func RenderExamples(w io.Writer, claims, labels []string) {
	for i := range claims {
		claim := claims[i]
		// Truncate on runes so repaired Latin-1 claims never get cut
		// mid-sequence.
		if runes := []rune(claim); len(runes) > 100 {
			claim = string(runes[:97]) + "..."
		}
		_, _ = fmt.Fprintf(w, "  -> %s\n     => %s\n", claim, labels[i])
	}
}
