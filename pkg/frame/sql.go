package frame

import (
	"context"
	"database/sql"
	"fmt"
)

// Query runs query against db and returns the result set as a table. Every
// column is scanned as text; SQL NULL becomes an NA row.
func Query(ctx context.Context, db *sql.DB, query string, args ...any) (*Table, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("frame: query: %w", err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("frame: query columns: %w", err)
	}

	values := make([][]string, len(names))
	valid := make([][]bool, len(names))
	cells := make([]sql.NullString, len(names))
	dest := make([]any, len(names))
	for i := range cells {
		dest[i] = &cells[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("frame: scan row: %w", err)
		}
		for i, cell := range cells {
			values[i] = append(values[i], cell.String)
			valid[i] = append(valid[i], cell.Valid)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("frame: iterate rows: %w", err)
	}

	columns := make([]*Column[string], len(names))
	for i, name := range names {
		col, err := NewColumnWithIndex(name, RangeIndex(len(values[i])), values[i], valid[i])
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}
	return NewTable(columns...)
}
