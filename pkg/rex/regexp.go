// ============================================================================
// tidystring - String Operations over Scalars, Sequences and Columns
// ============================================================================
//
// Package:     rex
// Description: Regular expression engine adapter
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package rex adapts github.com/dlclark/regexp2 to the primitives the string
// operations need: search, find, find-all, substitute, split and count.
//
// The dialect is Perl/.NET compatible and supports lookaround. All offsets
// are rune offsets. Replacement templates use $1, ${name} and $$.
package rex

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Regexp is a compiled pattern.
type Regexp struct {
	expr  string
	re    *regexp2.Regexp
	first int
}

// Span is a half-open [Start, End) rune range of one match.
type Span struct {
	Start int
	End   int
}

// MarshalJSON encodes a span as a two-element array.
func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{s.Start, s.End})
}

// MarshalYAML encodes a span as a two-element sequence.
func (s Span) MarshalYAML() (interface{}, error) {
	return []int{s.Start, s.End}, nil
}

// Match is one match with its capture groups. Groups[0] is the whole match;
// GroupOK[i] is false when group i did not participate.
type Match struct {
	Span
	Text    string
	Groups  []string
	GroupOK []bool
}

// Compile parses expr.
func Compile(expr string) (*Regexp, error) {
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("rex: %w", err)
	}
	r := &Regexp{expr: expr, re: re}
	r.first = r.slot(leftmostGroup(expr))
	return r, nil
}

// MustCompile is like Compile but panics if expr cannot be parsed.
func MustCompile(expr string) *Regexp {
	re, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return re
}

// Escape quotes all metacharacters in s.
func Escape(s string) string {
	return regexp2.Escape(s)
}

// String returns the source pattern.
func (r *Regexp) String() string { return r.expr }

// NumGroups returns the number of capture groups, not counting the whole
// match.
func (r *Regexp) NumGroups() int {
	return len(r.re.GetGroupNumbers()) - 1
}

// FirstGroup returns the index into Match.Groups of the capture group that
// opens first in the pattern, or 0 when the pattern has no groups. Named
// groups are numbered after unnamed ones, so this is not always 1.
func (r *Regexp) FirstGroup() int { return r.first }

func (r *Regexp) slot(name string, ok bool) int {
	names := r.re.GetGroupNames()
	if len(names) < 2 {
		return 0
	}
	if ok {
		for i, n := range names {
			if i > 0 && n == name {
				return i
			}
		}
	}
	return 1
}

// leftmostGroup returns the name of the capture group whose opening
// parenthesis comes first in expr. Unnamed groups are numbered from 1 in
// order of appearance, so an unnamed leftmost group is always "1".
func leftmostGroup(expr string) (string, bool) {
	inClass := false
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			switch {
			case strings.HasPrefix(expr[i+1:], "^]"):
				i += 2
			case strings.HasPrefix(expr[i+1:], "]"):
				i++
			}
		case c == '(':
			rest := expr[i+1:]
			if !strings.HasPrefix(rest, "?") {
				return "1", true
			}
			if strings.HasPrefix(rest, "?#") {
				end := strings.IndexByte(rest, ')')
				if end < 0 {
					return "", false
				}
				i += end + 1
				continue
			}
			if name, ok := groupName(rest[1:]); ok {
				return name, true
			}
		}
	}
	return "", false
}

// groupName reads the name of a named group from the text after "(?".
func groupName(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	var closer byte
	switch s[0] {
	case '<':
		closer = '>'
		if len(s) > 1 && (s[1] == '=' || s[1] == '!') {
			return "", false
		}
	case '\'':
		closer = '\''
	default:
		return "", false
	}
	end := strings.IndexByte(s[1:], closer)
	if end <= 0 {
		return "", false
	}
	name, _, _ := strings.Cut(s[1:1+end], "-")
	return name, name != ""
}

// MatchString reports whether s contains a match.
func (r *Regexp) MatchString(s string) (bool, error) {
	return r.re.MatchString(s)
}

// Find returns the leftmost match in s.
func (r *Regexp) Find(s string) (Match, bool, error) {
	m, err := r.re.FindStringMatch(s)
	if err != nil || m == nil {
		return Match{}, false, err
	}
	return toMatch(m), true, nil
}

// FindAll returns up to n successive non-overlapping matches; n < 0 means
// all of them.
func (r *Regexp) FindAll(s string, n int) ([]Match, error) {
	var out []Match
	err := r.each(s, func(m *regexp2.Match) bool {
		if n >= 0 && len(out) == n {
			return false
		}
		out = append(out, toMatch(m))
		return true
	})
	return out, err
}

// Spans returns the span of every non-overlapping match, left to right. It
// returns an empty, non-nil slice when nothing matches.
func (r *Regexp) Spans(s string) ([]Span, error) {
	spans := []Span{}
	err := r.each(s, func(m *regexp2.Match) bool {
		spans = append(spans, Span{Start: m.Index, End: m.Index + m.Length})
		return true
	})
	return spans, err
}

// Count returns the number of non-overlapping matches.
func (r *Regexp) Count(s string) (int, error) {
	n := 0
	err := r.each(s, func(*regexp2.Match) bool {
		n++
		return true
	})
	return n, err
}

// ReplaceN replaces the first n matches with the template repl. n <= 0
// replaces all of them.
func (r *Regexp) ReplaceN(s, repl string, n int) (string, error) {
	if n <= 0 {
		n = -1
	}
	return r.re.Replace(s, repl, -1, n)
}

// ReplaceFunc replaces every match with the result of fn applied to the
// matched text. Text outside matches is left untouched.
func (r *Regexp) ReplaceFunc(s string, fn func(string) string) (string, error) {
	return r.re.ReplaceFunc(s, func(m regexp2.Match) string {
		return fn(m.String())
	}, -1, -1)
}

// SplitN slices s into substrings separated by matches. n > 0 splits at
// most n times, leaving the unsplit remainder as the last substring; n <= 0
// splits at every match.
func (r *Regexp) SplitN(s string, n int) ([]string, error) {
	if s == "" {
		return []string{""}, nil
	}

	runes := []rune(s)
	var parts []string
	beg, end := 0, 0
	err := r.each(s, func(m *regexp2.Match) bool {
		if n > 0 && len(parts) == n {
			return false
		}
		end = m.Index
		if m.Index+m.Length != 0 {
			parts = append(parts, string(runes[beg:end]))
		}
		beg = m.Index + m.Length
		return true
	})
	if err != nil {
		return nil, err
	}
	if end != len(runes) {
		parts = append(parts, string(runes[beg:]))
	}
	return parts, nil
}

// each calls fn for successive matches until fn returns false or the input
// is exhausted.
func (r *Regexp) each(s string, fn func(*regexp2.Match) bool) error {
	m, err := r.re.FindStringMatch(s)
	for m != nil && err == nil {
		if !fn(m) {
			return nil
		}
		m, err = r.re.FindNextMatch(m)
	}
	return err
}

func toMatch(m *regexp2.Match) Match {
	groups := m.Groups()
	out := Match{
		Span:    Span{Start: m.Index, End: m.Index + m.Length},
		Text:    m.String(),
		Groups:  make([]string, len(groups)),
		GroupOK: make([]bool, len(groups)),
	}
	for i, g := range groups {
		out.Groups[i] = g.String()
		out.GroupOK[i] = len(g.Captures) > 0
	}
	return out
}
