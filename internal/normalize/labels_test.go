package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueSet(t *testing.T) {
	got := ValueSet([]string{"b", "a", "", "b", "a", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, got, "distinct, sorted, missing dropped")
}

func TestClassify(t *testing.T) {
	vocab := DefaultVocabulary()

	tests := []struct {
		name     string
		valueSet []string
		want     Regime
	}{
		{"textual vocabulary", []string{"fake", "true"}, RegimeVocabulary},
		{"vocabulary case-insensitive", []string{"FAKE", "True"}, RegimeVocabulary},
		{"partial vocabulary hit", []string{"true", "unverified"}, RegimeVocabulary},
		{"numeric binary", []string{"0", "1"}, RegimeNumericBinary},
		{"numeric single class", []string{"1"}, RegimeNumericBinary},
		{"ternary falls through", []string{"0", "1", "2"}, RegimeCategorical},
		{"non-zero pair falls through", []string{"1", "2"}, RegimeCategorical},
		{"signed token falls through", []string{"+1", "0"}, RegimeCategorical},
		{"negative zero falls through", []string{"-0", "1"}, RegimeCategorical},
		{"arbitrary categories", []string{"pants-fire", "half-true"}, RegimeCategorical},
		{"empty set", nil, RegimeCategorical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.valueSet, vocab))
		})
	}
}

func TestClassify_VocabularyBeatsNumeric(t *testing.T) {
	// "1" and "0" look numeric-binary, but a vocabulary extended with
	// those tokens must win the classification.
	vocab := map[string]string{"1": "1", "fake": "0"}
	assert.Equal(t, RegimeVocabulary, Classify([]string{"0", "1"}, vocab))
}

func TestApplyVocabulary(t *testing.T) {
	vocab := DefaultVocabulary()
	values := []string{"True", "FAKE", "Unverified", ""}

	got := ApplyVocabulary(values, vocab)
	assert.Equal(t, []string{"1", "0", "Unverified", ""}, got,
		"matched tokens map, unmatched keep their original case")
}

func TestFlipBinary_Involution(t *testing.T) {
	values := []string{"0", "1", "1", "0", ""}

	flipped := FlipBinary(values)
	assert.Equal(t, []string{"1", "0", "0", "1", ""}, flipped)
	assert.Equal(t, values, FlipBinary(flipped), "flipping twice restores the column")
}

func TestApplyMapping(t *testing.T) {
	mapping := map[string]string{"pants-fire": "0", "mostly-true": "1"}
	values := []string{"pants-fire", "half-true", "mostly-true"}

	got := ApplyMapping(values, mapping)
	assert.Equal(t, []string{"0", "half-true", "1"}, got,
		"unmapped categories stay as their original value")
}

func TestBinaryCounts(t *testing.T) {
	counts := BinaryCounts([]string{"1", "0", "1", "1", ""})
	assert.Equal(t, 1, counts["0"])
	assert.Equal(t, 3, counts["1"])
}

func TestCanonicalTarget(t *testing.T) {
	assert.Equal(t, "1", canonicalTarget("1"))
	assert.Equal(t, "7", canonicalTarget("007"), "numeric answers cast to integer form")
	assert.Equal(t, "real", canonicalTarget("real"))
}
