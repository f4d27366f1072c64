package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/msto63/tidystring/foundation/core/errors"
	"github.com/msto63/tidystring/foundation/utils/filex"
	"github.com/msto63/tidystring/pkg/frame"
)

// source selects where the input of an operation comes from. At most one
// of Text, File, CSV and SQLite may be set; with none, lines are read from
// stdin.
type source struct {
	Text    string
	HasText bool
	File    string
	CSV     string
	SQLite  string
	Query   string
	Column  string
}

func (s source) selected() []string {
	var set []string
	if s.HasText {
		set = append(set, "text")
	}
	if s.File != "" {
		set = append(set, "file")
	}
	if s.CSV != "" {
		set = append(set, "csv")
	}
	if s.SQLite != "" {
		set = append(set, "sqlite")
	}
	return set
}

// load reads the input. Tabular sources yield the column named by Column;
// when wantTable is set and no column is named, the whole table is returned.
func (s source) load(ctx context.Context, stdin io.Reader, wantTable bool, timeout time.Duration) (any, error) {
	if set := s.selected(); len(set) > 1 {
		return nil, errors.InvalidArgument(errors.ModuleCLI, "apply", "source", set, "only one input source may be given")
	}
	if s.Query != "" && s.SQLite == "" {
		return nil, errors.InvalidArgument(errors.ModuleCLI, "apply", "query", s.Query, "requires --sqlite")
	}

	switch {
	case s.HasText:
		return s.Text, nil

	case s.File != "":
		lines, err := filex.ReadLines(s.File)
		if err != nil {
			return nil, errors.SourceFailed(errors.ModuleCLI, "read_file", s.File, err)
		}
		return lines, nil

	case s.CSV != "":
		tbl, err := frame.ReadCSVFile(s.CSV)
		if err != nil {
			return nil, errors.SourceFailed(errors.ModuleCLI, "read_csv", s.CSV, err)
		}
		return s.pick(tbl, wantTable, false)

	case s.SQLite != "":
		if s.Query == "" {
			return nil, errors.InvalidArgument(errors.ModuleCLI, "apply", "query", "", "is required with --sqlite")
		}
		tbl, err := querySQLite(ctx, s.SQLite, s.Query, timeout)
		if err != nil {
			return nil, errors.SourceFailed(errors.ModuleCLI, "query", s.SQLite, err)
		}
		return s.pick(tbl, wantTable, true)

	default:
		lines, err := filex.ScanLines(stdin)
		if err != nil {
			return nil, errors.SourceFailed(errors.ModuleCLI, "read_stdin", "stdin", err)
		}
		return lines, nil
	}
}

// pick selects the input column of a table. Without --column a table is
// passed on whole when wantTable is set; otherwise a single-column CSV or
// any query result yields its first column.
func (s source) pick(tbl *frame.Table, wantTable, firstByDefault bool) (any, error) {
	if s.Column != "" {
		col, ok := tbl.Column(s.Column)
		if !ok {
			return nil, errors.UnsupportedOption(errors.ModuleCLI, "apply", "column", s.Column, tbl.Names())
		}
		return col, nil
	}
	if wantTable {
		return tbl, nil
	}

	names := tbl.Names()
	if len(names) == 1 || (firstByDefault && len(names) > 0) {
		col, _ := tbl.Column(names[0])
		return col, nil
	}
	return nil, errors.InvalidArgument(errors.ModuleCLI, "apply", "column", "", fmt.Sprintf("is required, table has %d columns", len(names)))
}

// querySQLite opens the database read-only and runs query with a timeout.
func querySQLite(ctx context.Context, path, query string, timeout time.Duration) (*frame.Table, error) {
	if !filex.IsFile(path) {
		return nil, fmt.Errorf("no such database file: %s", path)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return frame.Query(ctx, db, query)
}
