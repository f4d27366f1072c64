// File: wrap.go
// Title: Greedy Text Wrapping
// Description: Greedy line filling with first-line indent, subsequent-line
//              exdent and forced splitting of words longer than a line.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.3.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Wrap breaks s into lines of at most width runes, filling each line
// greedily. The first line starts with indent spaces, every following line
// with exdent spaces; both count towards width. Whitespace characters are
// normalized to spaces, whitespace at the start of continuation lines and at
// the end of every line is dropped, and words longer than the room left on a
// line are split. A width below 1 is treated as 1.
func Wrap(s string, width, indent, exdent int) string {
	if width < 1 {
		width = 1
	}
	text := strings.Repeat(" ", max(indent, 0)) + s
	chunks := splitChunks(text)
	prefix := strings.Repeat(" ", max(exdent, 0))

	var lines []string
	for len(chunks) > 0 {
		var line []string
		linePrefix := ""
		if len(lines) > 0 {
			linePrefix = prefix
			if isBlank(chunks[0]) {
				chunks = chunks[1:]
				if len(chunks) == 0 {
					break
				}
			}
		}

		room := width - utf8.RuneCountInString(linePrefix)
		used := 0
		for len(chunks) > 0 {
			n := utf8.RuneCountInString(chunks[0])
			if used+n > room {
				break
			}
			line = append(line, chunks[0])
			used += n
			chunks = chunks[1:]
		}

		if len(chunks) > 0 && utf8.RuneCountInString(chunks[0]) > room {
			left := room - used
			if room < 1 {
				left = 1
			}
			if left > 0 {
				runes := []rune(chunks[0])
				line = append(line, string(runes[:left]))
				chunks[0] = string(runes[left:])
			}
		}

		if n := len(line); n > 0 && isBlank(line[n-1]) {
			line = line[:n-1]
		}
		if len(line) > 0 {
			lines = append(lines, linePrefix+strings.Join(line, ""))
		}
	}
	return strings.Join(lines, "\n")
}

// splitChunks splits s into alternating word and whitespace chunks after
// mapping every whitespace rune to a plain space.
func splitChunks(s string) []string {
	var chunks []string
	var cur strings.Builder
	curSpace := false
	for _, r := range s {
		space := unicode.IsSpace(r)
		if space {
			r = ' '
		}
		if cur.Len() > 0 && space != curSpace {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		curSpace = space
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
