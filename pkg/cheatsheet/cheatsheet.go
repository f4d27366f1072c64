// ============================================================================
// tidystring - String Operations over Scalars, Sequences and Columns
// ============================================================================
//
// Package:     cheatsheet
// Description: Reference tables for the string operations
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package cheatsheet holds reference tables for the string operations, the
// regular expression syntax and the supported input types.
package cheatsheet

import (
	"sort"

	"github.com/msto63/tidystring/foundation/core/errors"
	"github.com/msto63/tidystring/foundation/utils/mapx"
)

// GroupAll selects the combined function table.
const GroupAll = "all"

// Sheet is one reference table.
type Sheet struct {
	Group   string
	Columns []string
	Rows    [][]string
}

// Records returns the rows as column name to cell maps.
func (s *Sheet) Records() []map[string]string {
	out := make([]map[string]string, len(s.Rows))
	for i, row := range s.Rows {
		rec := make(map[string]string, len(s.Columns))
		for j, col := range s.Columns {
			rec[col] = row[j]
		}
		out[i] = rec
	}
	return out
}

// Get returns the sheet of a group. An empty group or "all" yields every
// function once, sorted by name, with the group it was first listed in.
func Get(group string) (*Sheet, error) {
	if group == "" || group == GroupAll {
		return combined(), nil
	}
	sheet, ok := builtin[group]
	if !ok {
		return nil, errors.UnsupportedOption(errors.ModuleCheatsheet, "get", "group", group, append(Groups(), GroupAll))
	}
	return sheet.clone(), nil
}

// Groups returns the names of all groups in sorted order.
func Groups() []string {
	return mapx.SortedKeys(builtin)
}

// AllFunctions returns the names of all string operations.
func AllFunctions() []string {
	return append([]string(nil), allFunctions...)
}

func combined() *Sheet {
	out := &Sheet{
		Group:   GroupAll,
		Columns: []string{"Function", "Group", "Description", "Example"},
	}
	seen := make(map[string]bool)
	for _, group := range functionGroups {
		for _, row := range builtin[group].Rows {
			if seen[row[0]] {
				continue
			}
			seen[row[0]] = true
			out.Rows = append(out.Rows, []string{row[0], group, row[1], row[2]})
		}
	}
	sort.SliceStable(out.Rows, func(i, j int) bool { return out.Rows[i][0] < out.Rows[j][0] })
	return out
}

func (s *Sheet) clone() *Sheet {
	out := &Sheet{
		Group:   s.Group,
		Columns: append([]string(nil), s.Columns...),
		Rows:    make([][]string, len(s.Rows)),
	}
	for i, row := range s.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}
