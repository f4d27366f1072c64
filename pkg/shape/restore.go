package shape

import (
	"reflect"

	mdwerror "github.com/msto63/tidystring/foundation/core/error"
	"github.com/msto63/tidystring/foundation/core/errors"
	"github.com/msto63/tidystring/pkg/frame"
)

// Restore rebuilds the shape recorded in view from one result per view
// element. nullable declares that the operation itself can produce absent
// results (e.g. extraction without a match).
//
//	Scalar          bare T, or untyped nil when absent
//	Sequence        []T, or []*T when nullable or view.Nullable
//	TabularColumn   *frame.Column[T] with the source name and index,
//	                absent results become NA rows
//
// Multi-valued results ([]string fragments, []rex.Span) are returned as the
// element value unchanged, so splitting a Scalar yields the fragment list
// itself.
func Restore[T any](view *View, results []Elem[T], nullable bool) (any, error) {
	if len(results) != len(view.Values) {
		return nil, errors.ShapeMismatch(errors.ModuleShape, "restore", len(view.Values), len(results))
	}

	switch view.Kind {
	case Scalar:
		if !results[0].Valid {
			return nil, nil
		}
		return results[0].Value, nil

	case Sequence:
		if nullable || view.Nullable {
			out := make([]*T, len(results))
			for i, r := range results {
				if r.Valid {
					v := r.Value
					out[i] = &v
				}
			}
			return out, nil
		}
		out := make([]T, len(results))
		for i, r := range results {
			if !r.Valid {
				return nil, errors.NewErrorBuilder(errors.ModuleShape).
					Operation("restore").
					Code(mdwerror.CodeInternal).
					Messagef("restore: absent result at position %d of a non-nullable sequence", i).
					Detail("position", i).
					Build()
			}
			out[i] = r.Value
		}
		return out, nil

	case TabularColumn:
		values := make([]T, len(results))
		valid := make([]bool, len(results))
		for i, r := range results {
			values[i] = r.Value
			valid[i] = r.Valid
		}
		col, err := frame.NewColumnWithIndex(view.Name, view.Index, values, valid)
		if err != nil {
			return nil, errors.ShapeMismatch(errors.ModuleShape, "restore", len(view.Index), len(values))
		}
		return col, nil

	default:
		return nil, errors.NewErrorBuilder(errors.ModuleShape).
			Operation("restore").
			Messagef("restore: unknown shape %d", int(view.Kind)).
			Build()
	}
}

// Map normalizes input, applies fn to every present element and restores
// the result. Absent input elements stay absent and fn is not called for
// them. The first error returned by fn aborts the call.
func Map[T any](input any, fn func(string) (T, error)) (any, error) {
	view, err := Normalize(input)
	if err != nil {
		return nil, err
	}
	results, err := Apply(view, func(s string) (Elem[T], error) {
		v, err := fn(s)
		if err != nil {
			return Elem[T]{}, err
		}
		return Some(v), nil
	})
	if err != nil {
		return nil, err
	}
	return Restore(view, results, false)
}

// MapNullable is Map for operations that may produce no result for a
// present element; fn reports that by returning ok == false.
func MapNullable[T any](input any, fn func(string) (v T, ok bool, err error)) (any, error) {
	view, err := Normalize(input)
	if err != nil {
		return nil, err
	}
	results, err := Apply(view, func(s string) (Elem[T], error) {
		v, ok, err := fn(s)
		if err != nil || !ok {
			return Elem[T]{}, err
		}
		return Some(v), nil
	})
	if err != nil {
		return nil, err
	}
	return Restore(view, results, true)
}

// Apply runs fn over the present elements of view, keeping absent elements
// absent.
func Apply[T any](view *View, fn func(string) (Elem[T], error)) ([]Elem[T], error) {
	results := make([]Elem[T], len(view.Values))
	for i, e := range view.Values {
		if !e.Valid {
			continue
		}
		r, err := fn(e.Value)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}

// columnLike is satisfied by *frame.Column[T] for every T.
type columnLike interface {
	Len() int
	Name() string
	Index() []string
	IsNA(i int) bool
}

// KindOf reports the shape of an operation result: columns are
// TabularColumn, slices other than []byte are Sequence and everything else,
// including nil, is Scalar.
func KindOf(v any) Kind {
	if _, ok := v.(columnLike); ok {
		return TabularColumn
	}
	if v == nil {
		return Scalar
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
		return Sequence
	}
	return Scalar
}
