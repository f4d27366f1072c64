package tidy

import (
	"slices"
	"strings"

	"github.com/msto63/tidystring/foundation/core/errors"
	"github.com/msto63/tidystring/pkg/frame"
	"github.com/msto63/tidystring/pkg/shape"
)

// DefaultSeparator joins the parts of Concat and ConcatColumns.
const DefaultSeparator = "_"

// Concat joins its arguments with DefaultSeparator. See ConcatSep.
func Concat(args ...any) (any, error) {
	return ConcatSep(DefaultSeparator, args...)
}

// ConcatSep joins its arguments with sep. If all arguments are strings the
// result is a single string. If all are columns they are joined row by row,
// matching rows by index label, over the index of the first column. Otherwise
// sequences and columns of the same length are joined by position and the
// result takes the shape of the first argument. An element is absent when
// any of its parts is absent. Mixing strings with collections is a TypeKind
// error.
func ConcatSep(sep string, args ...any) (any, error) {
	if len(args) == 0 {
		return nil, errors.InvalidArgument(errors.ModuleTidy, "str_concat", "args", 0, "need at least one argument")
	}

	views := make([]*shape.View, len(args))
	for i, arg := range args {
		v, err := shape.Normalize(arg)
		if err != nil {
			return nil, err
		}
		views[i] = v
	}

	scalars, firstScalar := 0, -1
	for i, v := range views {
		if v.Kind == shape.Scalar {
			if scalars == 0 {
				firstScalar = i
			}
			scalars++
		}
	}

	switch scalars {
	case 0:
		return concatElementwise(views, sep)
	case len(views):
		parts := make([]string, len(views))
		for i, v := range views {
			parts[i] = v.Values[0].Value
		}
		return strings.Join(parts, sep), nil
	default:
		return nil, errors.TypeKind(errors.ModuleTidy, "str_concat", args[firstScalar], "all strings or all sequences and columns").
			WithDetail("position", firstScalar)
	}
}

// ConcatColumns joins the named columns of t row by row with sep. The
// result is an unnamed column over the table index.
func ConcatColumns(t *frame.Table, sep string, columns ...string) (*frame.Column[string], error) {
	if len(columns) == 0 {
		return nil, errors.InvalidArgument(errors.ModuleTidy, "str_concat", "columns", 0, "need at least one column")
	}
	args := make([]any, len(columns))
	for i, name := range columns {
		col, ok := t.Column(name)
		if !ok {
			return nil, errors.UnsupportedOption(errors.ModuleTidy, "str_concat", "column", name, t.Names())
		}
		args[i] = col.Rename("")
	}
	out, err := ConcatSep(sep, args...)
	if err != nil {
		return nil, err
	}
	return out.(*frame.Column[string]), nil
}

func concatElementwise(views []*shape.View, sep string) (any, error) {
	first := views[0]
	if allColumns(views) {
		return concatAligned(views, sep)
	}

	nullable := false
	for _, v := range views {
		if v.Len() != first.Len() {
			return nil, errors.ShapeMismatch(errors.ModuleTidy, "str_concat", first.Len(), v.Len())
		}
		nullable = nullable || v.Nullable
	}

	results := make([]shape.Elem[string], first.Len())
	parts := make([]string, len(views))
	for i := range results {
		present := true
		for j, v := range views {
			e := v.Values[i]
			if !e.Valid {
				present = false
				break
			}
			parts[j] = e.Value
		}
		if present {
			results[i] = shape.Some(strings.Join(parts, sep))
		}
	}
	return shape.Restore(first, results, nullable)
}

// concatAligned joins columns row by row, matching rows by index label. The
// result has the index of the first column; a row whose label is missing
// from another column is NA. With duplicate labels the first row wins.
func concatAligned(views []*shape.View, sep string) (any, error) {
	first := views[0]
	positions := make([]map[string]int, len(views))
	for j, v := range views[1:] {
		if slices.Equal(v.Index, first.Index) {
			continue
		}
		pos := make(map[string]int, len(v.Index))
		for i, label := range v.Index {
			if _, seen := pos[label]; !seen {
				pos[label] = i
			}
		}
		positions[j+1] = pos
	}

	results := make([]shape.Elem[string], first.Len())
	parts := make([]string, len(views))
	for i, label := range first.Index {
		present := true
		for j, v := range views {
			row := i
			if positions[j] != nil {
				var ok bool
				if row, ok = positions[j][label]; !ok {
					present = false
					break
				}
			}
			e := v.Values[row]
			if !e.Valid {
				present = false
				break
			}
			parts[j] = e.Value
		}
		if present {
			results[i] = shape.Some(strings.Join(parts, sep))
		}
	}
	return shape.Restore(first, results, true)
}

func allColumns(views []*shape.View) bool {
	for _, v := range views {
		if v.Kind != shape.TabularColumn {
			return false
		}
	}
	return true
}
