package rex

import (
	"fmt"
	"strings"
)

// Pattern builders. Each returns pattern source that can be combined with
// the others and passed to Compile or to any string operation taking a
// pattern.

// Literal matches text exactly.
func Literal(text string) string { return Escape(text) }

// Or matches any of the patterns.
func Or(patterns ...string) string { return strings.Join(patterns, "|") }

// Either matches left or right.
func Either(left, right string) string { return left + "|" + right }

// Chars matches one of the characters in chars.
func Chars(chars string) string { return "[" + escapeClass(chars) + "]" }

// NotChars matches one character not in chars.
func NotChars(chars string) string { return "[^" + escapeClass(chars) + "]" }

func escapeClass(chars string) string {
	var b strings.Builder
	for _, r := range chars {
		switch r {
		case '\\', ']', '[', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Digit matches one decimal digit.
func Digit() string { return `\d` }

// Word matches one word character.
func Word() string { return `\w` }

// Space matches one whitespace character.
func Space() string { return `\s` }

// Any matches any character except newline.
func Any() string { return `.` }

// Start anchors at the beginning of the input.
func Start() string { return `^` }

// End anchors at the end of the input.
func End() string { return `$` }

// Boundary matches a word boundary.
func Boundary() string { return `\b` }

// ZeroOrMore repeats pattern zero or more times.
func ZeroOrMore(pattern string) string { return pattern + "*" }

// OneOrMore repeats pattern one or more times.
func OneOrMore(pattern string) string { return pattern + "+" }

// Optional makes pattern optional.
func Optional(pattern string) string { return pattern + "?" }

// Repeat repeats pattern exactly n times.
func Repeat(pattern string, n int) string { return fmt.Sprintf("%s{%d}", pattern, n) }

// RepeatRange repeats pattern between lo and hi times; a negative hi
// leaves the upper bound open.
func RepeatRange(pattern string, lo, hi int) string {
	if hi < 0 {
		return fmt.Sprintf("%s{%d,}", pattern, lo)
	}
	return fmt.Sprintf("%s{%d,%d}", pattern, lo, hi)
}

// Capture wraps pattern in a capturing group.
func Capture(pattern string) string { return "(" + pattern + ")" }

// Group wraps pattern in a non-capturing group.
func Group(pattern string) string { return "(?:" + pattern + ")" }

// Lookahead asserts that pattern follows.
func Lookahead(pattern string) string { return "(?=" + pattern + ")" }

// NegativeLookahead asserts that pattern does not follow.
func NegativeLookahead(pattern string) string { return "(?!" + pattern + ")" }

// WholeWord matches word only between word boundaries.
func WholeWord(word string) string { return `\b` + Literal(word) + `\b` }

// StartsWith anchors pattern at the beginning of the input.
func StartsWith(pattern string) string { return "^" + pattern }

// EndsWith anchors pattern at the end of the input.
func EndsWith(pattern string) string { return pattern + "$" }

// WordList matches any of words as a whole word and captures it.
func WordList(words ...string) string {
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = Literal(w)
	}
	return `\b(` + Or(escaped...) + `)\b`
}

// Date matches ISO dates (2024-01-31) and US dates (1/31/2024).
func Date() string { return `\b(\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{4})\b` }

// Time matches 24-hour times with optional seconds.
func Time() string { return `\b(?:[01]?\d|2[0-3]):[0-5]\d(?::[0-5]\d)?\b` }

// Email matches an e-mail address.
func Email() string { return `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b` }

// URL matches http and https URLs.
func URL() string { return `https?://[\w.-]+\.\w+(?:/[\w./\-?=&%]*)?` }

// PhoneUS matches US phone numbers such as 555-123-4567 or +1 (555) 123-4567.
func PhoneUS() string { return `(?:\+?1[-.\s]?)?\(?\b\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b` }
