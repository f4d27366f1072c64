// File: stringx.go
// Title: Core String Utility Functions
// Description: Padding, whitespace and rune slicing routines. All widths and
//              offsets are measured in runes.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-16 v0.3.0: Slice semantics with negative offsets, Squish, UpperCut

package stringx

import (
	"strings"
	"unicode/utf8"
)

func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isASCIIRune(r rune) bool {
	return r < utf8.RuneSelf
}

// PadLeft pads the string s to the specified width with the given pad character.
// If the string is already at least width runes long, it is returned unchanged.
func PadLeft(s string, width int, pad rune) string {
	return pad3(s, width, pad, padCount(s, width), 0)
}

// PadRight pads the string s on the right to the specified width.
func PadRight(s string, width int, pad rune) string {
	return pad3(s, width, pad, 0, padCount(s, width))
}

// Center centers s within width. The left side receives floor(total/2)
// pad characters and the right side the remainder, so odd totals put the
// extra character on the right.
func Center(s string, width int, pad rune) string {
	total := padCount(s, width)
	left := total / 2
	return pad3(s, width, pad, left, total-left)
}

func padCount(s string, width int) int {
	n := width - utf8.RuneCountInString(s)
	if n < 0 {
		return 0
	}
	return n
}

func pad3(s string, width int, pad rune, left, right int) string {
	if left == 0 && right == 0 {
		return s
	}

	// ASCII fast path: exact allocation
	if isASCIIString(s) && isASCIIRune(pad) {
		result := make([]byte, left+len(s)+right)
		for i := 0; i < left; i++ {
			result[i] = byte(pad)
		}
		copy(result[left:], s)
		for i := left + len(s); i < len(result); i++ {
			result[i] = byte(pad)
		}
		return string(result)
	}

	var builder strings.Builder
	builder.Grow(len(s) + (left+right)*utf8.RuneLen(pad))
	for i := 0; i < left; i++ {
		builder.WriteRune(pad)
	}
	builder.WriteString(s)
	for i := 0; i < right; i++ {
		builder.WriteRune(pad)
	}
	return builder.String()
}

// Squish trims leading and trailing whitespace and collapses every internal
// whitespace run to a single space.
func Squish(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Slice returns the runes of s in [start, end). Negative offsets count from
// the end of the string and out-of-range offsets are clamped, so Slice never
// panics and returns "" when the range is empty.
func Slice(s string, start, end int) string {
	runes := []rune(s)
	lo := clampIndex(start, len(runes))
	hi := clampIndex(end, len(runes))
	if lo >= hi {
		return ""
	}
	return string(runes[lo:hi])
}

// SliceFrom returns the runes of s from start to the end of the string.
func SliceFrom(s string, start int) string {
	runes := []rune(s)
	lo := clampIndex(start, len(runes))
	return string(runes[lo:])
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}

// UpperCut uppercases the first n runes of s and leaves the rest untouched.
// A negative n uppercases everything except the last -n runes.
func UpperCut(s string, n int) string {
	return Upper(Slice(s, 0, n)) + SliceFrom(s, n)
}
