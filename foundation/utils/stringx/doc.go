// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the single-value string routines the
//              tidystring operations apply per element.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-16 v0.3.0: Reduced to the per-element routines used by tidystring

// Package stringx provides single-value string routines.
//
// Every function works on one string and counts positions in runes (Unicode
// code points), never bytes. The routines are deliberately ignorant of input
// shapes; pkg/tidy lifts them over scalars, sequences and columns.
//
// Groups:
//
//   - Padding: PadLeft, PadRight, Center
//   - Whitespace: Squish
//   - Slicing: Slice, SliceFrom, UpperCut (negative indices count from the end)
//   - Case: Upper, Lower, Title, Capitalize, SnakeToCamel, ApplyCase
//   - Layout: Wrap
//
// Example:
//
//	stringx.Center("hello", 10, ' ')       // "  hello   "
//	stringx.Slice("hello world", -5, 11)   // "world"
//	stringx.SnakeToCamel("hello__world")   // "Hello_World"
//	stringx.Wrap("A very long string that needs to be wrapped", 20, 0, 0)
//	// "A very long string\nthat needs to be\nwrapped"
package stringx
