package frame

import (
	"fmt"
)

// Table is an ordered set of equally long string columns sharing one index.
type Table struct {
	names   []string
	columns map[string]*Column[string]
	index   []string
}

// NewTable assembles a table. Column names must be unique and all columns
// must have the same length; the index of the first column becomes the
// table index.
func NewTable(columns ...*Column[string]) (*Table, error) {
	t := &Table{columns: make(map[string]*Column[string], len(columns))}
	for i, col := range columns {
		if _, dup := t.columns[col.Name()]; dup {
			return nil, fmt.Errorf("frame: duplicate column %q", col.Name())
		}
		if i == 0 {
			t.index = col.Index()
		} else if col.Len() != len(t.index) {
			return nil, fmt.Errorf("frame: column %q has %d rows, want %d", col.Name(), col.Len(), len(t.index))
		}
		t.names = append(t.names, col.Name())
		t.columns[col.Name()] = col
	}
	return t, nil
}

// Names returns the column names in table order.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.index) }

// Index returns a copy of the row labels.
func (t *Table) Index() []string { return append([]string(nil), t.index...) }

// Column returns the named column re-indexed to the table index.
func (t *Table) Column(name string) (*Column[string], bool) {
	col, ok := t.columns[name]
	if !ok {
		return nil, false
	}
	aligned, err := col.WithIndex(t.index)
	if err != nil {
		return nil, false
	}
	return aligned, true
}

// Has reports whether the table has a column called name.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}
