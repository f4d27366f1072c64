package shape

import (
	"reflect"

	"github.com/msto63/tidystring/foundation/core/errors"
	"github.com/msto63/tidystring/pkg/frame"
)

const expectedInput = "string, []string, []*string, []any of strings or *frame.Column[string]"

// Normalize classifies input and returns its View. Classification is
// checked in order: textual scalar, tabular column, ordered collection. Any
// other input fails with a TypeKind error.
func Normalize(input any) (*View, error) {
	switch v := input.(type) {
	case string:
		return scalarView(v), nil
	case *frame.Column[string]:
		if v == nil {
			return nil, errors.TypeKind(errors.ModuleShape, "normalize", input, expectedInput)
		}
		return columnView(v), nil
	case frame.Column[string]:
		return columnView(&v), nil
	case []string:
		return stringsView(v), nil
	case []*string:
		view := &View{Kind: Sequence, Values: make([]Elem[string], len(v)), Nullable: true}
		for i, p := range v {
			if p != nil {
				view.Values[i] = Some(*p)
			}
		}
		return view, nil
	case []any:
		view := &View{Kind: Sequence, Values: make([]Elem[string], len(v)), Nullable: true}
		for i, item := range v {
			if item == nil {
				continue
			}
			s, ok := asString(item)
			if !ok {
				return nil, errors.TypeKind(errors.ModuleShape, "normalize", item, "string or nil element").
					WithDetail("position", i)
			}
			view.Values[i] = Some(s)
		}
		return view, nil
	}

	// named string and []string types
	if input != nil {
		rv := reflect.ValueOf(input)
		switch {
		case rv.Kind() == reflect.String:
			return scalarView(rv.String()), nil
		case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.String:
			values := make([]string, rv.Len())
			for i := range values {
				values[i] = rv.Index(i).String()
			}
			return stringsView(values), nil
		}
	}

	return nil, errors.TypeKind(errors.ModuleShape, "normalize", input, expectedInput)
}

func scalarView(s string) *View {
	return &View{Kind: Scalar, Values: []Elem[string]{Some(s)}}
}

func stringsView(values []string) *View {
	view := &View{Kind: Sequence, Values: make([]Elem[string], len(values))}
	for i, s := range values {
		view.Values[i] = Some(s)
	}
	return view
}

func columnView(c *frame.Column[string]) *View {
	view := &View{
		Kind:     TabularColumn,
		Values:   make([]Elem[string], c.Len()),
		Name:     c.Name(),
		Index:    c.Index(),
		Nullable: true,
	}
	for i := range view.Values {
		if s, ok := c.At(i); ok {
			view.Values[i] = Some(s)
		}
	}
	return view
}

func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
