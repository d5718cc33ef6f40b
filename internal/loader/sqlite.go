package loader

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/veracity-labs/claimforge/internal/table"
)

// PickTable chooses one of the listed tables and returns its index. The
// pipeline backs this with an operator prompt; tests use a fixed pick.
type PickTable func(names []string) (int, error)

// PickFirst always selects the first table.
func PickFirst(names []string) (int, error) { return 0, nil }

// openDatabase opens a SQLite file read-only.
func openDatabase(path string) (*sql.DB, error) {
	return sql.Open("sqlite", path+"?mode=ro")
}

// ListTables returns the names of all user tables in the database.
func ListTables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table'
		AND name NOT LIKE 'sqlite_%'
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ReadTable loads the full contents of a named table. NULLs become empty
// strings; all other values are stringified.
func ReadTable(ctx context.Context, db *sql.DB, name string) (*table.Table, error) {
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	t := table.New(cols...)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		cells := make([]string, len(cols))
		for i, val := range values {
			cells[i] = stringify(val)
		}
		t.AppendRow(cells)
	}
	return t, rows.Err()
}

// ReadSQLiteFile enumerates the tables in a .db file, lets pick choose one,
// and loads it. A database with no tables is an EmptySource.
func ReadSQLiteFile(ctx context.Context, path string, pick PickTable, logger *slog.Logger) (*table.Table, error) {
	db, err := openDatabase(path)
	if err != nil {
		return nil, &LoadFailed{Path: path, Err: err}
	}
	defer func() { _ = db.Close() }()

	names, err := ListTables(ctx, db)
	if err != nil {
		return nil, &LoadFailed{Path: path, Err: err}
	}
	if len(names) == 0 {
		return nil, &EmptySource{Path: path}
	}

	idx, err := pick(names)
	if err != nil || idx < 0 || idx >= len(names) {
		// An unanswerable or out-of-range pick falls back to the first table.
		idx = 0
	}

	logger.Info("loading table", "path", path, "table", names[idx])
	t, err := ReadTable(ctx, db, names[idx])
	if err != nil {
		return nil, &LoadFailed{Path: path, Err: err}
	}
	return t, nil
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// quoteIdent double-quotes a SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
