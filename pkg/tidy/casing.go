package tidy

import (
	"github.com/msto63/tidystring/foundation/utils/stringx"
	"github.com/msto63/tidystring/pkg/rex"
	"github.com/msto63/tidystring/pkg/shape"
)

// camelBoundary matches the empty position before every upper case ASCII
// letter except at the start of the string.
const camelBoundary = `(?<!^)(?=[A-Z])`

// ToUpper converts each element to upper case.
func ToUpper(input any) (any, error) {
	return shape.Map(input, func(s string) (string, error) {
		return stringx.Upper(s), nil
	})
}

// ToLower converts each element to lower case.
func ToLower(input any) (any, error) {
	return shape.Map(input, func(s string) (string, error) {
		return stringx.Lower(s), nil
	})
}

// ToTitle converts each element to title case. With removeDashes the
// default dashes are replaced by spaces first.
func ToTitle(input any, removeDashes bool) (any, error) {
	replace, err := dashReplacer("str_to_title", nil)
	if err != nil {
		return nil, err
	}
	return shape.Map(input, func(s string) (string, error) {
		if removeDashes {
			s = replace.Replace(s)
		}
		return stringx.Title(s), nil
	})
}

// UpperCut upper-cases the first n runes of each element.
func UpperCut(input any, n int) (any, error) {
	return shape.Map(input, func(s string) (string, error) {
		return stringx.UpperCut(s, n), nil
	})
}

// CamelToSnake converts camelCase to snake_case: an underscore is inserted
// before every inner upper case letter and the result is lower-cased.
func CamelToSnake(input any) (any, error) {
	re, err := compile("camel_to_snake", camelBoundary)
	if err != nil {
		return nil, err
	}
	return shape.Map(input, func(s string) (string, error) {
		return camelToSnake(re, s)
	})
}

func camelToSnake(boundary *rex.Regexp, s string) (string, error) {
	out, err := boundary.ReplaceN(s, "_", -1)
	if err != nil {
		return "", err
	}
	return stringx.Lower(out), nil
}

// SnakeToCamel converts snake_case to CamelCase by capitalizing every
// fragment between underscores.
func SnakeToCamel(input any) (any, error) {
	return shape.Map(input, func(s string) (string, error) {
		return stringx.SnakeToCamel(s), nil
	})
}
