package table

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRow_PadsAndTruncates(t *testing.T) {
	tbl := New("a", "b", "c")

	tbl.AppendRow([]string{"1"})
	tbl.AppendRow([]string{"1", "2", "3", "4"})

	require.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, []string{"1", "", ""}, tbl.Rows[0])
	assert.Equal(t, []string{"1", "2", "3"}, tbl.Rows[1])
}

func TestColumnOperations(t *testing.T) {
	tbl := New("claim", "label")
	tbl.AppendRow([]string{"sky is blue", "true"})
	tbl.AppendRow([]string{"moon is cheese", "fake"})

	col, err := tbl.Column("label")
	require.NoError(t, err)
	assert.Equal(t, []string{"true", "fake"}, col)

	_, err = tbl.Column("missing")
	assert.Error(t, err)

	require.NoError(t, tbl.SetColumn("label", []string{"1", "0"}))
	col, err = tbl.Column("label")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "0"}, col)

	err = tbl.SetColumn("label", []string{"1"})
	assert.Error(t, err, "length mismatch must be rejected")
}

func TestRename(t *testing.T) {
	tbl := New("text", "truthvalue")
	tbl.Rename("truthvalue", "label")
	assert.Equal(t, []string{"text", "label"}, tbl.Columns)

	// Renaming a missing column is a no-op.
	tbl.Rename("nope", "other")
	assert.Equal(t, []string{"text", "label"}, tbl.Columns)
}

func TestProject(t *testing.T) {
	tbl := New("claim", "label", "extra")
	tbl.AppendRow([]string{"a", "1", "x"})
	tbl.AppendRow([]string{"b", "0", "y"})

	got, err := tbl.Project("label", "claim")
	require.NoError(t, err)
	assert.Equal(t, []string{"label", "claim"}, got.Columns)
	assert.Equal(t, [][]string{{"1", "a"}, {"0", "b"}}, got.Rows)

	_, err = tbl.Project("claim", "nope")
	assert.Error(t, err)
}

func TestAddConstColumn(t *testing.T) {
	tbl := New("claim", "label")
	tbl.AppendRow([]string{"a", "1"})
	tbl.AddConstColumn("source", "politifact")

	assert.Equal(t, []string{"claim", "label", "source"}, tbl.Columns)
	assert.Equal(t, []string{"a", "1", "politifact"}, tbl.Rows[0])
}

func TestAppend(t *testing.T) {
	a := New("claim", "label")
	a.AppendRow([]string{"a", "1"})
	b := New("claim", "label")
	b.AppendRow([]string{"b", "0"})

	require.NoError(t, a.Append(b))
	assert.Equal(t, 2, a.NumRows())

	c := New("label", "claim")
	assert.Error(t, a.Append(c), "column order mismatch must be rejected")
}

func TestReadCSV(t *testing.T) {
	input := "claim,label\nfoo,1\nbar,0\n"
	tbl, skipped, err := ReadCSV(strings.NewReader(input), ',')
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, []string{"claim", "label"}, tbl.Columns)
	assert.Equal(t, 2, tbl.NumRows())
}

func TestReadCSV_SkipsBadQuoting(t *testing.T) {
	// Variable-length records are repaired, not skipped.
	input := "claim,label\nonly-one-cell\na,b,extra\n"
	tbl, skipped, err := ReadCSV(strings.NewReader(input), ',')
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, [][]string{{"only-one-cell", ""}, {"a", "b"}}, tbl.Rows)
}

func TestReadCSV_Empty(t *testing.T) {
	_, _, err := ReadCSV(strings.NewReader(""), ',')
	assert.Error(t, err)
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	tbl := New("claim", "label")
	tbl.AppendRow([]string{"has, comma", "1"})
	tbl.AppendRow([]string{`has "quotes"`, "0"})

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&buf))

	got, skipped, err := ReadCSV(&buf, ',')
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Equal(t, tbl.Columns, got.Columns)
	assert.Equal(t, tbl.Rows, got.Rows)
}

func TestWriteCSVFile_CreatesParentsAndOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out", "nested", "a.csv")

	tbl := New("claim", "label")
	tbl.AppendRow([]string{"first", "1"})
	require.NoError(t, tbl.WriteCSVFile(path))

	tbl2 := New("claim", "label")
	tbl2.AppendRow([]string{"second", "0"})
	require.NoError(t, tbl2.WriteCSVFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "claim,label\nsecond,0\n", string(data))
}
