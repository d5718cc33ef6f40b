package normalize

import (
	"sort"
	"strconv"
	"strings"
)

// Regime classifies a label column's value space.
type Regime int

const (
	// RegimeVocabulary means the value set intersects the truthy/falsy
	// vocabulary; matched tokens map through it, the rest pass through.
	RegimeVocabulary Regime = iota
	// RegimeNumericBinary means every value is an integer in {0,1}.
	RegimeNumericBinary
	// RegimeCategorical is the fallback: arbitrary categories remapped
	// only at the operator's explicit request.
	RegimeCategorical
)

func (r Regime) String() string {
	switch r {
	case RegimeVocabulary:
		return "vocabulary"
	case RegimeNumericBinary:
		return "numeric-binary"
	default:
		return "categorical"
	}
}

// DefaultVocabulary maps the stock truthy/falsy tokens to canonical labels.
func DefaultVocabulary() map[string]string {
	return map[string]string{
		"true": "1",
		"fake": "0",
	}
}

// ValueSet returns the sorted distinct non-missing values of a column.
// Sorting keeps classification and prompting order stable across runs.
func ValueSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Classify decides the normalization regime for a value set. The vocabulary
// check runs first and wins even over values that would also parse as
// numeric-binary.
func Classify(valueSet []string, vocab map[string]string) Regime {
	for _, v := range valueSet {
		if _, ok := vocab[strings.ToLower(v)]; ok {
			return RegimeVocabulary
		}
	}

	if len(valueSet) > 0 && isBinaryIntSet(valueSet) {
		return RegimeNumericBinary
	}
	return RegimeCategorical
}

// isBinaryIntSet reports whether every value is an unsigned digit string
// whose integer form is 0 or 1. Signed tokens like "+1" or "-0" and sets
// like {0,1,2} or {1,2} fail and fall through to the categorical regime.
func isBinaryIntSet(valueSet []string) bool {
	for _, v := range valueSet {
		s := strings.TrimSpace(v)
		if s == "" || !isDigits(s) {
			return false
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return false
		}
		if n != 0 && n != 1 {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ApplyVocabulary maps each value through the vocabulary after lower-casing;
// unmatched values pass through as their original, un-lowered selves.
func ApplyVocabulary(values []string, vocab map[string]string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if mapped, ok := vocab[strings.ToLower(v)]; ok {
			out[i] = mapped
		} else {
			out[i] = v
		}
	}
	return out
}

// FlipBinary applies x -> 1-x to every 0/1 value. Applying it twice returns
// the original column.
func FlipBinary(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		switch strings.TrimSpace(v) {
		case "0":
			out[i] = "1"
		case "1":
			out[i] = "0"
		default:
			out[i] = v
		}
	}
	return out
}

// ApplyMapping replaces values present in the mapping and leaves everything
// else untouched.
func ApplyMapping(values []string, mapping map[string]string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if mapped, ok := mapping[v]; ok {
			out[i] = mapped
		} else {
			out[i] = v
		}
	}
	return out
}

// BinaryCounts tallies how many values parse to 0 and to 1.
func BinaryCounts(values []string) map[string]int {
	counts := map[string]int{"0": 0, "1": 0}
	for _, v := range values {
		switch strings.TrimSpace(v) {
		case "0":
			counts["0"]++
		case "1":
			counts["1"]++
		}
	}
	return counts
}

// canonicalTarget casts a numeric-looking operator answer to its integer
// form; anything else is kept as text.
func canonicalTarget(answer string) string {
	if n, err := strconv.Atoi(strings.TrimSpace(answer)); err == nil {
		return strconv.Itoa(n)
	}
	return answer
}
