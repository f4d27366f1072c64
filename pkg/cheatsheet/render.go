package cheatsheet

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/msto63/tidystring/foundation/core/errors"
)

// Output formats accepted by Write.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Formats returns the valid output formats.
func Formats() []string {
	return []string{FormatJSON, FormatTable, FormatYAML}
}

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorBorder  = lipgloss.Color("#374151")
	colorText    = lipgloss.Color("#F8FAFC")
	colorMuted   = lipgloss.Color("#94A3B8")

	headerStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Padding(0, 1)
	keyStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(colorBorder)
)

// Table builds the styled lipgloss table of a sheet. The first column is
// highlighted.
func Table(sheet *Sheet) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(sheet.Columns...).
		Rows(sheet.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return keyStyle
			default:
				return cellStyle
			}
		})
}

// Render writes the sheet as a table.
func Render(w io.Writer, sheet *Sheet) error {
	_, err := fmt.Fprintln(w, Table(sheet).Render())
	return err
}

type document struct {
	Group   string              `json:"group" yaml:"group"`
	Columns []string            `json:"columns" yaml:"columns"`
	Rows    []map[string]string `json:"rows" yaml:"rows"`
}

// Export writes the sheet as YAML or JSON.
func Export(w io.Writer, sheet *Sheet, format string) error {
	doc := document{Group: sheet.Group, Columns: sheet.Columns, Rows: sheet.Records()}
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return errors.UnsupportedOption(errors.ModuleCheatsheet, "export", "format", format, []string{FormatJSON, FormatYAML})
	}
}

// Write renders or exports the sheet depending on format.
func Write(w io.Writer, sheet *Sheet, format string) error {
	switch format {
	case "", FormatTable:
		return Render(w, sheet)
	case FormatYAML, FormatJSON:
		return Export(w, sheet, format)
	default:
		return errors.UnsupportedOption(errors.ModuleCheatsheet, "write", "format", format, Formats())
	}
}
