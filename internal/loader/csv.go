// Package loader turns delimited-text files and SQLite databases into
// in-memory tables, tolerating unknown delimiters, malformed rows, and
// broken encodings. A bad source never aborts a run: failures come back as
// LoadFailed or EmptySource and the caller moves on.
package loader

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/veracity-labs/claimforge/internal/table"
)

// ReadCSVFile loads a delimited-text file. It first parses with a comma; if
// that yields a single column whose header contains a semicolon or a tab,
// the file is reparsed with that delimiter instead. Rows that fail to parse
// are dropped and logged.
func ReadCSVFile(path string, logger *slog.Logger) (*table.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadFailed{Path: path, Err: err}
	}
	data := repairEncoding(raw)

	t, skipped, err := table.ReadCSV(bytes.NewReader(data), ',')
	if err != nil {
		return nil, &LoadFailed{Path: path, Err: err}
	}

	if t.NumCols() == 1 {
		header := t.Columns[0]
		var fallback rune
		switch {
		case strings.ContainsRune(header, ';'):
			fallback = ';'
		case strings.ContainsRune(header, '\t'):
			fallback = '\t'
		}
		if fallback != 0 {
			logger.Info("reloading with detected delimiter",
				"path", path, "delimiter", string(fallback))
			t, skipped, err = table.ReadCSV(bytes.NewReader(data), fallback)
			if err != nil {
				return nil, &LoadFailed{Path: path, Err: err}
			}
		}
	}

	if skipped > 0 {
		logger.Warn("skipped malformed rows", "path", path, "rows", skipped)
	}
	if t.NumCols() == 0 {
		return nil, &EmptySource{Path: path}
	}
	return t, nil
}

// repairEncoding returns data unchanged when it is valid UTF-8; otherwise it
// re-decodes the bytes as Latin-1, which cannot fail and keeps every byte as
// a printable rune instead of aborting the load.
func repairEncoding(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		// Latin-1 decoding accepts any byte; keep the raw data if it
		// somehow fails anyway.
		return data
	}
	return decoded
}
