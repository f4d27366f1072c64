// ============================================================================
// tidystring - String Operations over Scalars, Sequences and Columns
// ============================================================================
//
// Package:     tidy
// Description: Public string operations
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package tidy provides the public string operations. Every operation
// accepts a string, a sequence of strings or a string column and returns a
// result of the same shape:
//
//	tidy.Detect("hello world", "o")                    // true
//	tidy.Detect([]string{"hello", "hi"}, "l+")         // []bool{true, false}
//	tidy.Length(frame.NewColumn("w", []string{"ab"}))  // *frame.Column[int]
//
// Missing values stay missing. Operations that may find nothing, such as
// Extract, report absence as nil for a string, a nil element in a []*T
// sequence and an NA row in a column.
//
// Patterns use the regexp2 dialect, which supports lookaround and
// backreferences. Replacement templates refer to groups as $1 or ${name}.
// All positions are rune offsets.
package tidy
