// ============================================================================
// tidystring - String Operations over Scalars, Sequences and Columns
// ============================================================================
//
// Package:     render
// Description: Output rendering of operation results
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package render writes the result of a string operation in one of the
// CLI output formats. Results arrive in their restored shape: a bare value
// or nil, a slice, or a *frame.Column.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/msto63/tidystring/foundation/core/errors"
	"github.com/msto63/tidystring/pkg/rex"
)

// Output formats
const (
	FormatLines = "lines"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// NA is printed for absent values in the lines format.
const NA = "NA"

// Formats returns the valid output formats, sorted.
func Formats() []string {
	return []string{FormatJSON, FormatLines, FormatYAML}
}

// column is satisfied by *frame.Column[T] for every T.
type column interface {
	Name() string
	Len() int
	Label(i int) string
	Cell(i int) any
}

// ColumnDoc is the JSON and YAML form of a column result.
type ColumnDoc struct {
	Name   string   `json:"name,omitempty" yaml:"name,omitempty"`
	Index  []string `json:"index" yaml:"index"`
	Values []any    `json:"values" yaml:"values"`
}

// Write renders result to w.
func Write(w io.Writer, result any, format string) error {
	switch format {
	case FormatLines:
		return Lines(w, result)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document(result))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document(result)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.UnsupportedOption(errors.ModuleRender, "write", "format", format, Formats())
	}
}

// Lines writes one line per element. Column rows are prefixed with their
// label and a tab. A scalar result is a single line.
func Lines(w io.Writer, result any) error {
	for _, line := range toLines(result) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func toLines(result any) []string {
	if c, ok := result.(column); ok {
		lines := make([]string, c.Len())
		for i := range lines {
			lines[i] = c.Label(i) + "\t" + Value(c.Cell(i))
		}
		return lines
	}

	rv := reflect.ValueOf(result)
	if result != nil && rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
		lines := make([]string, rv.Len())
		for i := range lines {
			lines[i] = Value(rv.Index(i).Interface())
		}
		return lines
	}
	return []string{Value(result)}
}

// Value formats a single element. Absent values print as NA, strings print
// unquoted at the top level and quoted inside lists.
func Value(v any) string {
	return format(v, false)
}

func format(v any, nested bool) string {
	switch x := v.(type) {
	case nil:
		return NA
	case string:
		if nested {
			return strconv.Quote(x)
		}
		return x
	case rex.Span:
		return fmt.Sprintf("[%d, %d]", x.Start, x.End)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return NA
		}
		return format(rv.Elem().Interface(), nested)
	case reflect.Slice:
		if rv.IsNil() && !nested {
			return NA
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = format(rv.Index(i).Interface(), true)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprint(v)
}

// document converts a result into the value that is encoded as JSON or
// YAML. Columns become a ColumnDoc; everything else is encoded as is.
func document(result any) any {
	c, ok := result.(column)
	if !ok {
		return result
	}
	doc := ColumnDoc{
		Name:   c.Name(),
		Index:  make([]string, c.Len()),
		Values: make([]any, c.Len()),
	}
	for i := range doc.Index {
		doc.Index[i] = c.Label(i)
		doc.Values[i] = c.Cell(i)
	}
	return doc
}
