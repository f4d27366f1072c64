// ============================================================================
// tidystring - String Operations over Scalars, Sequences and Columns
// ============================================================================
//
// Package:     shape
// Description: Input shape classification, normalization and restoration
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package shape classifies the input of a string operation, normalizes it
// into a uniform View and restores per-element results to the shape the
// caller passed in.
//
// Three shapes are supported:
//
//	Scalar          string (or any type with string as underlying type)
//	Sequence        []string, []*string, []any holding strings or nil
//	TabularColumn   *frame.Column[string] or frame.Column[string]
//
// Results are kept as Elem values, a present/absent pair, until Restore maps
// absence to the sentinel of the original shape: nil for a Scalar, a nil
// element in a []*T Sequence, and an NA row for a column.
package shape

// Kind is the shape of an operation input, decided once per call.
type Kind int

const (
	Scalar Kind = iota
	Sequence
	TabularColumn
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Sequence:
		return "sequence"
	case TabularColumn:
		return "column"
	default:
		return "unknown"
	}
}

// Elem is one element of a View or of an operation result. Valid is false
// when the element is absent: a missing input value or a failed match.
type Elem[T any] struct {
	Value T
	Valid bool
}

// Some returns a present element.
func Some[T any](v T) Elem[T] { return Elem[T]{Value: v, Valid: true} }

// None returns an absent element.
func None[T any]() Elem[T] { return Elem[T]{} }

// View is the normalized form of an input.
type View struct {
	Kind   Kind
	Values []Elem[string]

	// Name and Index are set for TabularColumn inputs.
	Name  string
	Index []string

	// Nullable is true when the input type can hold missing values
	// ([]*string, []any or a column), even if none is missing.
	Nullable bool
}

// Len returns the number of elements.
func (v *View) Len() int { return len(v.Values) }
