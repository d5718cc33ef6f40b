package prompt

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoAccept(t *testing.T) {
	var p Prompter = AutoAccept{}

	answer, err := p.Ask("Select column index for claim", "0")
	require.NoError(t, err)
	assert.Equal(t, "0", answer)

	ok, err := p.Confirm("Does this look correct?", true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Confirm("Remap labels manually?", false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScripted(t *testing.T) {
	p := &Scripted{
		Answers:  []string{"2", "", "custom"},
		Confirms: []bool{false},
	}

	answer, err := p.Ask("q1", "0")
	require.NoError(t, err)
	assert.Equal(t, "2", answer)

	answer, err = p.Ask("q2", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", answer, "empty scripted answer yields default")

	answer, err = p.Ask("q3", "0")
	require.NoError(t, err)
	assert.Equal(t, "custom", answer)

	answer, err = p.Ask("q4", "default")
	require.NoError(t, err)
	assert.Equal(t, "default", answer, "exhausted script yields defaults")

	ok, err := p.Confirm("c1", true)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.Confirm("c2", true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		answer     string
		defaultYes bool
		want       bool
	}{
		{"y", false, true},
		{"Yes", false, true},
		{"n", true, false},
		{"NO", true, false},
		{"", true, true},
		{"", false, false},
		{"maybe", true, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseYesNo(tt.answer, tt.defaultYes),
			"answer=%q default=%v", tt.answer, tt.defaultYes)
	}
}

func TestRenderOptions(t *testing.T) {
	var buf bytes.Buffer
	RenderOptions(&buf, "Columns", []string{"text", "truthvalue"})

	// Long titles wrap across table lines, so only assert on tokens
	// shorter than the rendered width.
	out := buf.String()
	assert.Contains(t, out, "Columns")
	assert.Contains(t, out, "text")
	assert.Contains(t, out, "truthvalue")
	assert.Contains(t, out, "0")
}

func TestRenderCounts(t *testing.T) {
	var buf bytes.Buffer
	RenderCounts(&buf, "Labels", "Label",
		[]string{"0", "1"}, map[string]int{"0": 3, "1": 7})

	out := buf.String()
	assert.Contains(t, out, "Labels")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "7")
}

func TestRenderExamples_TruncatesLongClaims(t *testing.T) {
	var buf bytes.Buffer
	long := make([]byte, 150)
	for i := range long {
		long[i] = 'x'
	}
	RenderExamples(&buf, []string{string(long)}, []string{"1"})

	assert.Contains(t, buf.String(), "...")
	assert.Contains(t, buf.String(), "=> 1")
}

func TestRenderExamples_TruncatesOnRunes(t *testing.T) {
	var buf bytes.Buffer
	long := strings.Repeat("é", 120)
	RenderExamples(&buf, []string{long}, []string{"0"})

	out := buf.String()
	assert.True(t, utf8.ValidString(out), "truncation must not split a rune")
	assert.Contains(t, out, strings.Repeat("é", 97)+"...")
}
