// Package pipeline orchestrates a normalization run: discover input files,
// load each one, walk the operator through column selection and label
// normalization, and write one cleaned file per source. Sources are
// processed strictly sequentially and a failure in one never aborts the
// loop over the rest.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/veracity-labs/claimforge/internal/loader"
	"github.com/veracity-labs/claimforge/internal/normalize"
	"github.com/veracity-labs/claimforge/internal/prompt"
	"github.com/veracity-labs/claimforge/internal/table"
)

// sampleSeed fixes the example-row sampling so reruns show the same rows.
// The sample is display only and never feeds the mapping decision.
const sampleSeed = 42

const maxSampleRows = 5

// Pipeline runs the per-source normalization pass.
type Pipeline struct {
	Prompter     prompt.Prompter
	Out          io.Writer
	Logger       *slog.Logger
	ProcessedDir string
}

// New creates a Pipeline writing normalized files under processedDir.
func New(p prompt.Prompter, out io.Writer, logger *slog.Logger, processedDir string) *Pipeline {
	return &Pipeline{
		Prompter:     p,
		Out:          out,
		Logger:       logger,
		ProcessedDir: processedDir,
	}
}

// Summary counts the outcome of one run.
type Summary struct {
	Processed int
	Skipped   int
}

// Run processes every regular file in inputDir in directory order. Files are
// dispatched by extension; unknown extensions are ignored silently. Only a
// missing input directory is fatal.
func (p *Pipeline) Run(ctx context.Context, inputDir string) (*Summary, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	runID := uuid.New().String()
	logger := p.Logger.With("run_id", runID)
	logger.Info("starting normalization run", "input_dir", inputDir, "output_dir", p.ProcessedDir)

	summary := &Summary{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(inputDir, entry.Name())

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".csv" && ext != ".db" {
			continue
		}

		if err := p.processSource(ctx, path, logger); err != nil {
			summary.Skipped++
			logger.Warn("skipping source", "path", path, "reason", err)
			_, _ = fmt.Fprintf(p.Out, "Skipping %s: %v\n", entry.Name(), err)
			continue
		}
		summary.Processed++
	}

	logger.Info("run complete", "processed", summary.Processed, "skipped", summary.Skipped)
	return summary, nil
}

// processSource loads and normalizes one file. The recover boundary is the
// per-source isolation guarantee: a panic here is reported like any other
// source failure and the run continues.
func (p *Pipeline) processSource(ctx context.Context, path string, logger *slog.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing %s: %v", path, r)
		}
	}()

	var t *table.Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		t, err = loader.ReadCSVFile(path, logger)
	case ".db":
		t, err = loader.ReadSQLiteFile(ctx, path, p.pickTable, logger)
	default:
		return fmt.Errorf("unsupported extension: %s", path)
	}
	if err != nil {
		return err
	}

	return p.processTable(t, filepath.Base(path))
}

// pickTable is the interactive half of the SQLite collaborator boundary.
// Non-numeric answers fall back to the first table.
func (p *Pipeline) pickTable(names []string) (int, error) {
	prompt.RenderOptions(p.Out, "Available tables", names)
	answer, err := p.Prompter.Ask("Select table index", "0")
	if err != nil {
		return 0, err
	}
	idx, convErr := strconv.Atoi(answer)
	if convErr != nil {
		return 0, nil
	}
	return idx, nil
}

// processTable runs column selection, label normalization, and the
// per-source write for one loaded table.
func (p *Pipeline) processTable(t *table.Table, sourceName string) error {
	_, _ = fmt.Fprintf(p.Out, "\nProcessing: %s\n", sourceName)
	_, _ = fmt.Fprintf(p.Out, "Columns detected: %v\n\n", t.Columns)

	if t.NumCols() == 0 {
		return &loader.EmptySource{Path: sourceName}
	}

	claimCol, err := normalize.SelectColumn(p.Out, p.Prompter, t.Columns, normalize.RoleClaim)
	if err != nil {
		return err
	}
	labelCol, err := normalize.SelectColumn(p.Out, p.Prompter, t.Columns, normalize.RoleLabel)
	if err != nil {
		return err
	}

	newClaim, err := p.Prompter.Ask(fmt.Sprintf("Rename %q to what?", claimCol), "claim")
	if err != nil {
		return err
	}
	newLabel, err := p.Prompter.Ask(fmt.Sprintf("Rename %q to what?", labelCol), "label")
	if err != nil {
		return err
	}
	t.Rename(claimCol, newClaim)
	t.Rename(labelCol, newLabel)
	claimCol, labelCol = newClaim, newLabel

	_, _ = fmt.Fprintf(p.Out, "Using -> %s (text), %s (label)\n\n", claimCol, labelCol)

	p.showSamples(t, claimCol, labelCol)

	normalizer := normalize.New(p.Prompter, p.Out, p.Logger)
	if _, err := normalizer.NormalizeLabels(t, labelCol); err != nil {
		return err
	}

	base := strings.TrimSuffix(sourceName, filepath.Ext(sourceName))
	outPath := filepath.Join(p.ProcessedDir, base+".csv")
	if err := t.WriteCSVFile(outPath); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(p.Out, "\nSaved processed file -> %s\n\n", outPath)
	return nil
}

// showSamples prints up to five deterministic random example rows so the
// operator can sanity-check the claim/label pairing.
func (p *Pipeline) showSamples(t *table.Table, claimCol, labelCol string) {
	n := t.NumRows()
	if n == 0 {
		return
	}
	count := maxSampleRows
	if n < count {
		count = n
	}

	r := rand.New(rand.NewSource(sampleSeed))
	indexes := r.Perm(n)[:count]

	claims, _ := t.Column(claimCol)
	labels, _ := t.Column(labelCol)

	sampleClaims := make([]string, 0, count)
	sampleLabels := make([]string, 0, count)
	for _, i := range indexes {
		sampleClaims = append(sampleClaims, claims[i])
		sampleLabels = append(sampleLabels, labels[i])
	}

	_, _ = fmt.Fprintln(p.Out, "Random examples:")
	prompt.RenderExamples(p.Out, sampleClaims, sampleLabels)
}
