package normalize

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/veracity-labs/claimforge/internal/prompt"
	"github.com/veracity-labs/claimforge/internal/table"
)

// Normalizer drives one source's label-normalization pass. It owns no state
// between sources; the mapping is rebuilt per call from the observed value
// set and the operator's answers, so identical inputs and answers always
// produce identical output.
type Normalizer struct {
	Prompter   prompt.Prompter
	Out        io.Writer
	Logger     *slog.Logger
	Vocabulary map[string]string
}

// New creates a Normalizer with the default truthy/falsy vocabulary.
func New(p prompt.Prompter, out io.Writer, logger *slog.Logger) *Normalizer {
	return &Normalizer{
		Prompter:   p,
		Out:        out,
		Logger:     logger,
		Vocabulary: DefaultVocabulary(),
	}
}

// Result records which regime applied and the explicit mapping used.
type Result struct {
	Regime  Regime
	Mapping map[string]string
	Flipped bool
}

// NormalizeLabels classifies the label column's value set, builds a mapping
// (prompting where the regime calls for it), and rewrites the column in a
// single ordered pass. Rows are never reordered and values outside the
// mapping keep their original form.
func (n *Normalizer) NormalizeLabels(t *table.Table, labelCol string) (*Result, error) {
	values, err := t.Column(labelCol)
	if err != nil {
		return nil, err
	}

	valueSet := ValueSet(values)
	_, _ = fmt.Fprintf(n.Out, "Unique label values: %v\n", valueSet)

	regime := Classify(valueSet, n.Vocabulary)
	n.Logger.Debug("classified label column", "column", labelCol, "regime", regime.String())

	result := &Result{Regime: regime, Mapping: map[string]string{}}

	switch regime {
	case RegimeVocabulary:
		for _, v := range valueSet {
			lower := strings.ToLower(v)
			if mapped, ok := n.Vocabulary[lower]; ok {
				result.Mapping[lower] = mapped
			}
		}
		_, _ = fmt.Fprintln(n.Out, "Detected textual labels - applying default mapping (true=1, fake=0).")
		values = ApplyVocabulary(values, n.Vocabulary)

	case RegimeNumericBinary:
		prompt.RenderCounts(n.Out, "Label Distribution", "Label",
			[]string{"0", "1"}, BinaryCounts(values))
		keep, err := n.Prompter.Confirm("Does 1 = true, 0 = fake look correct?", true)
		if err != nil {
			return nil, err
		}
		if keep {
			_, _ = fmt.Fprintln(n.Out, "Keeping numeric labels as-is (1=true, 0=fake).")
		} else {
			result.Flipped = true
			result.Mapping["0"] = "1"
			result.Mapping["1"] = "0"
			values = FlipBinary(values)
			_, _ = fmt.Fprintln(n.Out, "Flipped numeric labels (now 1=true, 0=fake).")
		}

	case RegimeCategorical:
		remap, err := n.Prompter.Confirm("Would you like to remap labels manually?", false)
		if err != nil {
			return nil, err
		}
		if remap {
			for _, v := range valueSet {
				answer, err := n.Prompter.Ask(fmt.Sprintf("  %s ->", v), "")
				if err != nil {
					return nil, err
				}
				if answer != "" {
					result.Mapping[v] = canonicalTarget(answer)
				}
			}
		}
		if len(result.Mapping) == 0 {
			_, _ = fmt.Fprintln(n.Out, "No label remapping applied.")
			return result, nil
		}
		_, _ = fmt.Fprintf(n.Out, "Remapped labels: %v\n", result.Mapping)
		values = ApplyMapping(values, result.Mapping)
	}

	if err := t.SetColumn(labelCol, values); err != nil {
		return nil, err
	}
	return result, nil
}
