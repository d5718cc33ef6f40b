// Package merge combines normalized per-source files into one corpus with
// provenance. Files missing a canonical column are skipped softly; the merge
// only fails when no file contributes a single valid row.
package merge

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/veracity-labs/claimforge/internal/loader"
	"github.com/veracity-labs/claimforge/internal/table"
)

// Canonical column names every normalized file must expose.
const (
	ColumnClaim  = "claim"
	ColumnLabel  = "label"
	ColumnSource = "source"
)

// MissingLabelBucket is the stats key for rows whose label is empty.
const MissingLabelBucket = "(missing)"

// ErrCorpusEmpty is returned when no file yields any valid rows. It is the
// only fatal merge condition.
var ErrCorpusEmpty = errors.New("no valid rows found across any files")

// SchemaIncomplete reports a per-source file lacking a canonical column.
// Its rows are skipped; the merge continues.
type SchemaIncomplete struct {
	Path   string
	Column string
}

func (e *SchemaIncomplete) Error() string {
	return fmt.Sprintf("%s missing %q column", e.Path, e.Column)
}

// Stats summarizes one merge run. FilesProcessed counts every CSV
// considered, including the ones later skipped for schema reasons.
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	RowsRetained   int
	LabelCounts    map[string]int
}

// LabelKeys returns the label-count keys in deterministic order, with the
// missing bucket last.
func (s *Stats) LabelKeys() []string {
	keys := make([]string, 0, len(s.LabelCounts))
	for k := range s.LabelCounts {
		if k != MissingLabelBucket {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := s.LabelCounts[MissingLabelBucket]; ok {
		keys = append(keys, MissingLabelBucket)
	}
	return keys
}

// Merger builds the corpus. It is rebuilt from scratch on every run.
type Merger struct {
	Logger *slog.Logger
}

// New creates a Merger.
func New(logger *slog.Logger) *Merger {
	return &Merger{Logger: logger}
}

// Merge reads every normalized CSV under inputDir, reconciles schemas,
// concatenates the surviving rows in discovery order, and writes the corpus
// to outputPath. It returns ErrCorpusEmpty when nothing survives.
func (m *Merger) Merge(inputDir, outputPath string) (*Stats, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			continue
		}
		files = append(files, entry.Name())
	}

	stats := &Stats{LabelCounts: map[string]int{}}
	corpus := table.New(ColumnClaim, ColumnLabel, ColumnSource)

	for _, name := range files {
		stats.FilesProcessed++
		path := filepath.Join(inputDir, name)
		part, err := m.mergeFile(path, name)
		if err != nil {
			stats.FilesSkipped++
			m.Logger.Warn("skipping file", "path", path, "reason", err)
			continue
		}
		if err := corpus.Append(part); err != nil {
			return nil, err
		}
	}

	if corpus.NumRows() == 0 {
		return stats, ErrCorpusEmpty
	}

	stats.RowsRetained = corpus.NumRows()
	labels, err := corpus.Column(ColumnLabel)
	if err != nil {
		return nil, err
	}
	for _, label := range labels {
		if label == "" {
			stats.LabelCounts[MissingLabelBucket]++
		} else {
			stats.LabelCounts[label]++
		}
	}

	if err := corpus.WriteCSVFile(outputPath); err != nil {
		return nil, fmt.Errorf("write corpus: %w", err)
	}
	m.Logger.Info("wrote corpus", "path", outputPath, "rows", stats.RowsRetained)
	return stats, nil
}

// mergeFile loads one normalized file and projects it onto the canonical
// schema plus provenance. Rows whose claim is missing, or blank after
// trimming, are dropped before the claim text is lower-cased.
func (m *Merger) mergeFile(path, name string) (*table.Table, error) {
	t, err := loader.ReadCSVFile(path, m.Logger)
	if err != nil {
		return nil, err
	}

	for i, col := range t.Columns {
		t.Columns[i] = strings.ToLower(strings.TrimSpace(col))
	}
	for _, required := range []string{ColumnClaim, ColumnLabel} {
		if t.ColumnIndex(required) < 0 {
			return nil, &SchemaIncomplete{Path: path, Column: required}
		}
	}

	projected, err := t.Project(ColumnClaim, ColumnLabel)
	if err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	out := table.New(ColumnClaim, ColumnLabel, ColumnSource)
	for _, row := range projected.Rows {
		claim := strings.TrimSpace(row[0])
		if claim == "" {
			continue
		}
		out.AppendRow([]string{strings.ToLower(claim), row[1], base})
	}
	return out, nil
}
