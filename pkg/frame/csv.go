package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadCSV reads a table from CSV data whose first record is the header.
// Empty fields become NA rows.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("frame: csv has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("frame: read csv header: %w", err)
	}

	values := make([][]string, len(header))
	valid := make([][]bool, len(header))
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("frame: read csv: %w", err)
		}
		for i, field := range record {
			values[i] = append(values[i], field)
			valid[i] = append(valid[i], field != "")
		}
	}

	columns := make([]*Column[string], len(header))
	for i, name := range header {
		col, err := NewColumnWithIndex(name, RangeIndex(len(values[i])), values[i], valid[i])
		if err != nil {
			return nil, err
		}
		columns[i] = col
	}
	return NewTable(columns...)
}

// ReadCSVFile reads a table from the CSV file at path.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}
