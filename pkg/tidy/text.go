package tidy

import (
	"strings"
	"unicode/utf8"

	"github.com/msto63/tidystring/foundation/core/errors"
	"github.com/msto63/tidystring/foundation/utils/stringx"
	"github.com/msto63/tidystring/pkg/shape"
)

// Side selects where Pad adds padding.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideBoth  Side = "both"
)

// Sides returns the valid padding sides.
func Sides() []string {
	return []string{string(SideBoth), string(SideLeft), string(SideRight)}
}

// DefaultWrapWidth is used by Wrap when WrapOptions.Width is zero.
const DefaultWrapWidth = 80

// WrapOptions configures Wrap. Indent and Exdent are the number of spaces
// before the first and the following lines.
type WrapOptions struct {
	Width  int
	Indent int
	Exdent int
}

// Length returns the number of runes of each element.
func Length(input any) (any, error) {
	return shape.Map(input, func(s string) (int, error) {
		return utf8.RuneCountInString(s), nil
	})
}

// Trim removes leading and trailing whitespace.
func Trim(input any) (any, error) {
	return shape.Map(input, func(s string) (string, error) {
		return strings.TrimSpace(s), nil
	})
}

// Sub returns the runes in [start, end) of each element. Negative positions
// count from the end and out of range positions are clamped.
func Sub(input any, start, end int) (any, error) {
	return shape.Map(input, func(s string) (string, error) {
		return stringx.Slice(s, start, end), nil
	})
}

// SubFrom returns the runes from start to the end of each element.
func SubFrom(input any, start int) (any, error) {
	return shape.Map(input, func(s string) (string, error) {
		return stringx.SliceFrom(s, start), nil
	})
}

// Pad pads each element to width runes with the single rune pad. With
// SideBoth the left side gets half of the padding rounded down. Elements
// that are already wide enough are returned unchanged.
func Pad(input any, width int, side Side, pad string) (any, error) {
	var fn func(string, int, rune) string
	switch side {
	case SideLeft:
		fn = stringx.PadLeft
	case SideRight:
		fn = stringx.PadRight
	case SideBoth:
		fn = stringx.Center
	default:
		return nil, errors.UnsupportedOption(errors.ModuleTidy, "str_pad", "side", string(side), Sides())
	}
	if utf8.RuneCountInString(pad) != 1 {
		return nil, errors.InvalidArgument(errors.ModuleTidy, "str_pad", "pad", pad, "must be exactly one character")
	}
	r, _ := utf8.DecodeRuneInString(pad)

	return shape.Map(input, func(s string) (string, error) {
		return fn(s, width, r), nil
	})
}

// Dup repeats each element times times.
func Dup(input any, times int) (any, error) {
	if times < 0 {
		return nil, errors.InvalidArgument(errors.ModuleTidy, "str_dup", "times", times, "must not be negative")
	}
	return shape.Map(input, func(s string) (string, error) {
		return strings.Repeat(s, times), nil
	})
}

// Squish trims each element and collapses inner whitespace runs to a single
// space.
func Squish(input any) (any, error) {
	return shape.Map(input, func(s string) (string, error) {
		return stringx.Squish(s), nil
	})
}

// Wrap fills each element into lines of at most opts.Width runes joined by
// "\n".
func Wrap(input any, opts WrapOptions) (any, error) {
	if opts.Width == 0 {
		opts.Width = DefaultWrapWidth
	}
	switch {
	case opts.Width < 0:
		return nil, errors.InvalidArgument(errors.ModuleTidy, "str_wrap", "width", opts.Width, "must be positive")
	case opts.Indent < 0:
		return nil, errors.InvalidArgument(errors.ModuleTidy, "str_wrap", "indent", opts.Indent, "must not be negative")
	case opts.Exdent < 0:
		return nil, errors.InvalidArgument(errors.ModuleTidy, "str_wrap", "exdent", opts.Exdent, "must not be negative")
	}
	return shape.Map(input, func(s string) (string, error) {
		return stringx.Wrap(s, opts.Width, opts.Indent, opts.Exdent), nil
	})
}

// StartsWith reports whether each element begins with the literal prefix.
func StartsWith(input any, prefix string) (any, error) {
	return shape.Map(input, func(s string) (bool, error) {
		return strings.HasPrefix(s, prefix), nil
	})
}

// EndsWith reports whether each element ends with the literal suffix.
func EndsWith(input any, suffix string) (any, error) {
	return shape.Map(input, func(s string) (bool, error) {
		return strings.HasSuffix(s, suffix), nil
	})
}

// DefaultDashes are replaced by DashToSpace when no dashes are given.
var DefaultDashes = []string{"-", "_"}

// DashToSpace replaces every occurrence of each literal dash with a space.
func DashToSpace(input any, dashes ...string) (any, error) {
	replace, err := dashReplacer("str_dash_to_space", dashes)
	if err != nil {
		return nil, err
	}
	return shape.Map(input, func(s string) (string, error) {
		return replace.Replace(s), nil
	})
}

func dashReplacer(operation string, dashes []string) (*strings.Replacer, error) {
	if len(dashes) == 0 {
		dashes = DefaultDashes
	}
	pairs := make([]string, 0, 2*len(dashes))
	for _, d := range dashes {
		if d == "" {
			return nil, errors.InvalidArgument(errors.ModuleTidy, operation, "dashes", dashes, "must not contain an empty string")
		}
		pairs = append(pairs, d, " ")
	}
	return strings.NewReplacer(pairs...), nil
}
