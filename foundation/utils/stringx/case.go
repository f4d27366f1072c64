// File: case.go
// Title: Case Conversion Functions
// Description: Upper, lower and title casing through golang.org/x/text/cases,
//              plus the snake-to-camel fragment rule and the named case rules
//              used by search-and-recase.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversions
// - 2026-10-16 v0.3.0: Unicode casing via x/text, named case rules

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/msto63/tidystring/foundation/utils/mapx"
)

// Upper returns s with all letters mapped to upper case.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Lower returns s with all letters mapped to lower case.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Title upper-cases the first letter of every word and lower-cases the rest.
// Example: "hello WORLD" -> "Hello World"
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// Capitalize upper-cases the first rune of s and lower-cases the remainder.
// Example: "wORLD" -> "World"
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(r)) + Lower(s[size:])
}

// SnakeToCamel splits s on underscores, capitalizes every fragment and joins
// them without separator. Empty fragments, which come from leading, trailing
// or doubled underscores, are kept as a literal underscore; the empty
// string is a single empty fragment.
// Example: "hello_world" -> "HelloWorld", "a__b" -> "A_B", "" -> "_"
func SnakeToCamel(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			b.WriteByte('_')
			continue
		}
		b.WriteString(Capitalize(part))
	}
	return b.String()
}

// CaseRule names a case transformation applied to a whole string.
type CaseRule string

const (
	CaseLower CaseRule = "lower"
	CaseUpper CaseRule = "upper"
	CaseTitle CaseRule = "title"
	CaseSnake CaseRule = "snake_case"
	CaseCamel CaseRule = "camel_case"
)

var ruleAliases = map[string]CaseRule{
	"lower":      CaseLower,
	"upper":      CaseUpper,
	"title":      CaseTitle,
	"snake_case": CaseSnake,
	"snakecase":  CaseSnake,
	"camel_case": CaseCamel,
	"camelcase":  CaseCamel,
}

// ParseCaseRule resolves a rule name, accepting the underscore-free aliases
// snakecase and camelcase.
func ParseCaseRule(name string) (CaseRule, bool) {
	rule, ok := ruleAliases[strings.ToLower(strings.TrimSpace(name))]
	return rule, ok
}

// CaseRuleNames returns every accepted rule name in sorted order.
func CaseRuleNames() []string {
	return mapx.SortedKeys(ruleAliases)
}

// ApplyCase transforms s by rule. CaseSnake delegates to toSnake and leaves
// s unchanged when toSnake is nil.
func ApplyCase(s string, rule CaseRule, toSnake func(string) string) string {
	switch rule {
	case CaseLower:
		return Lower(s)
	case CaseUpper:
		return Upper(s)
	case CaseTitle:
		return Title(s)
	case CaseSnake:
		if toSnake == nil {
			return s
		}
		return toSnake(s)
	case CaseCamel:
		return SnakeToCamel(s)
	default:
		return s
	}
}
