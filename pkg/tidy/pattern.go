package tidy

import (
	"github.com/msto63/tidystring/foundation/core/errors"
	"github.com/msto63/tidystring/foundation/utils/stringx"
	"github.com/msto63/tidystring/pkg/rex"
	"github.com/msto63/tidystring/pkg/shape"
)

func compile(operation, pattern string) (*rex.Regexp, error) {
	re, err := rex.Compile(pattern)
	if err != nil {
		return nil, errors.InvalidPattern(errors.ModuleTidy, operation, pattern, err)
	}
	return re, nil
}

// Detect reports whether each element contains a match of pattern.
func Detect(input any, pattern string) (any, error) {
	re, err := compile("str_detect", pattern)
	if err != nil {
		return nil, err
	}
	return shape.Map(input, re.MatchString)
}

// Extract returns the first match of pattern in each element. If the
// pattern has capturing groups only the leftmost group in the pattern is
// returned, named or not. Elements without a match are absent in the result.
func Extract(input any, pattern string) (any, error) {
	re, err := compile("str_extract", pattern)
	if err != nil {
		return nil, err
	}
	group := re.FirstGroup()
	return shape.MapNullable(input, func(s string) (string, bool, error) {
		m, ok, err := re.Find(s)
		if err != nil || !ok {
			return "", false, err
		}
		if group > 0 {
			return m.Groups[group], m.GroupOK[group], nil
		}
		return m.Text, true, nil
	})
}

// Replace replaces every match of pattern with replacement.
func Replace(input any, pattern, replacement string) (any, error) {
	return ReplaceN(input, pattern, replacement, -1)
}

// ReplaceN replaces the first n matches of pattern in each element; n <= 0
// replaces all of them.
func ReplaceN(input any, pattern, replacement string, n int) (any, error) {
	re, err := compile("str_replace", pattern)
	if err != nil {
		return nil, err
	}
	return shape.Map(input, func(s string) (string, error) {
		return re.ReplaceN(s, replacement, n)
	})
}

// Remove deletes every match of pattern.
func Remove(input any, pattern string) (any, error) {
	re, err := compile("str_remove", pattern)
	if err != nil {
		return nil, err
	}
	return shape.Map(input, func(s string) (string, error) {
		return re.ReplaceN(s, "", -1)
	})
}

// Split splits each element around the matches of pattern. Splitting a
// string returns the []string of fragments; a sequence or column holds one
// fragment list per element.
func Split(input any, pattern string) (any, error) {
	return SplitN(input, pattern, -1)
}

// SplitN is Split with at most n splits per element; the last fragment
// keeps the rest of the element. n <= 0 splits at every match.
func SplitN(input any, pattern string, n int) (any, error) {
	re, err := compile("str_split", pattern)
	if err != nil {
		return nil, err
	}
	return shape.Map(input, func(s string) ([]string, error) {
		return re.SplitN(s, n)
	})
}

// Count returns the number of non-overlapping matches in each element.
func Count(input any, pattern string) (any, error) {
	re, err := compile("str_count", pattern)
	if err != nil {
		return nil, err
	}
	return shape.Map(input, re.Count)
}

// Locate returns the rune offset of the first match in each element, or -1.
func Locate(input any, pattern string) (any, error) {
	re, err := compile("str_locate", pattern)
	if err != nil {
		return nil, err
	}
	return shape.Map(input, func(s string) (int, error) {
		m, ok, err := re.Find(s)
		if err != nil || !ok {
			return -1, err
		}
		return m.Start, nil
	})
}

// LocateAll returns the half-open span of every match in each element, left
// to right. Elements without a match get an empty list.
func LocateAll(input any, pattern string) (any, error) {
	re, err := compile("str_locate_all", pattern)
	if err != nil {
		return nil, err
	}
	return shape.Map(input, re.Spans)
}

// SearchApply replaces every match of pattern with fn applied to the
// matched text.
func SearchApply(input any, pattern string, fn func(string) string) (any, error) {
	if fn == nil {
		return nil, errors.InvalidArgument(errors.ModuleTidy, "str_search_apply", "func", nil, "must not be nil")
	}
	re, err := compile("str_search_apply", pattern)
	if err != nil {
		return nil, err
	}
	return shape.Map(input, func(s string) (string, error) {
		return re.ReplaceFunc(s, fn)
	})
}

// SearchRecase converts the case of every match of pattern. rule is one of
// lower, upper, title, snake_case or camel_case.
func SearchRecase(input any, pattern, rule string) (any, error) {
	cr, ok := stringx.ParseCaseRule(rule)
	if !ok {
		return nil, errors.UnsupportedOption(errors.ModuleTidy, "str_search_recase", "case", rule, stringx.CaseRuleNames())
	}
	re, err := compile("str_search_recase", pattern)
	if err != nil {
		return nil, err
	}
	camel, err := compile("str_search_recase", camelBoundary)
	if err != nil {
		return nil, err
	}
	toSnake := func(s string) string {
		out, err := camelToSnake(camel, s)
		if err != nil {
			return s
		}
		return out
	}
	return shape.Map(input, func(s string) (string, error) {
		return re.ReplaceFunc(s, func(m string) string {
			return stringx.ApplyCase(m, cr, toSnake)
		})
	})
}
