// ============================================================================
// tidystring - String Operations over Scalars, Sequences and Columns
// ============================================================================
//
// Package:     frame
// Description: Labelled columns with a validity mask
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package frame is a minimal tabular column engine. A Column holds typed
// values, one label per row and a validity mask; rows whose mask bit is
// false are "not available" (NA). Because the mask is separate from the
// values, a Column[bool] or Column[int] can carry NA rows without changing
// its element type.
package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// Column is an ordered, labelled, typed column. The zero value is an empty
// unnamed column.
type Column[T any] struct {
	name   string
	index  []string
	values []T
	valid  []bool
}

// NewColumn builds a column with a positional index ("0", "1", ...) and no
// NA rows.
func NewColumn[T any](name string, values []T) *Column[T] {
	c := &Column[T]{
		name:   name,
		index:  RangeIndex(len(values)),
		values: append([]T(nil), values...),
		valid:  make([]bool, len(values)),
	}
	for i := range c.valid {
		c.valid[i] = true
	}
	return c
}

// NewColumnWithIndex builds a column from explicit labels, values and mask.
// A nil valid slice marks every row as present. All non-nil slices must have
// the same length.
func NewColumnWithIndex[T any](name string, index []string, values []T, valid []bool) (*Column[T], error) {
	if len(index) != len(values) {
		return nil, fmt.Errorf("frame: %d index labels for %d values", len(index), len(values))
	}
	if valid != nil && len(valid) != len(values) {
		return nil, fmt.Errorf("frame: %d mask entries for %d values", len(valid), len(values))
	}

	c := &Column[T]{
		name:   name,
		index:  append([]string(nil), index...),
		values: append([]T(nil), values...),
	}
	if valid == nil {
		c.valid = make([]bool, len(values))
		for i := range c.valid {
			c.valid[i] = true
		}
	} else {
		c.valid = append([]bool(nil), valid...)
	}
	return c, nil
}

// FromPointers builds a column where nil pointers become NA rows.
func FromPointers[T any](name string, ptrs []*T) *Column[T] {
	c := &Column[T]{
		name:   name,
		index:  RangeIndex(len(ptrs)),
		values: make([]T, len(ptrs)),
		valid:  make([]bool, len(ptrs)),
	}
	for i, p := range ptrs {
		if p != nil {
			c.values[i] = *p
			c.valid[i] = true
		}
	}
	return c
}

// RangeIndex returns the positional labels "0" .. "n-1".
func RangeIndex(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}

// Name returns the column name.
func (c *Column[T]) Name() string { return c.name }

// Len returns the number of rows.
func (c *Column[T]) Len() int { return len(c.values) }

// Index returns a copy of the row labels.
func (c *Column[T]) Index() []string { return append([]string(nil), c.index...) }

// Label returns the label of row i.
func (c *Column[T]) Label(i int) string { return c.index[i] }

// At returns the value of row i and whether it is present.
func (c *Column[T]) At(i int) (T, bool) {
	return c.values[i], c.valid[i]
}

// Cell returns the value of row i as an interface value, nil for NA rows.
func (c *Column[T]) Cell(i int) any {
	if !c.valid[i] {
		return nil
	}
	return c.values[i]
}

// IsNA reports whether row i is not available.
func (c *Column[T]) IsNA(i int) bool { return !c.valid[i] }

// NACount returns the number of NA rows.
func (c *Column[T]) NACount() int {
	n := 0
	for _, ok := range c.valid {
		if !ok {
			n++
		}
	}
	return n
}

// Values returns a copy of the raw values. NA rows hold the zero value.
func (c *Column[T]) Values() []T { return append([]T(nil), c.values...) }

// Valid returns a copy of the validity mask.
func (c *Column[T]) Valid() []bool { return append([]bool(nil), c.valid...) }

// Pointers returns one pointer per row, nil for NA rows.
func (c *Column[T]) Pointers() []*T {
	out := make([]*T, len(c.values))
	for i := range c.values {
		if c.valid[i] {
			v := c.values[i]
			out[i] = &v
		}
	}
	return out
}

// Rename returns a copy of the column under a new name.
func (c *Column[T]) Rename(name string) *Column[T] {
	clone := c.clone()
	clone.name = name
	return clone
}

// WithIndex returns a copy of the column with new row labels.
func (c *Column[T]) WithIndex(index []string) (*Column[T], error) {
	if len(index) != len(c.values) {
		return nil, fmt.Errorf("frame: %d index labels for %d values", len(index), len(c.values))
	}
	clone := c.clone()
	clone.index = append([]string(nil), index...)
	return clone, nil
}

// Lookup returns the value stored under label.
func (c *Column[T]) Lookup(label string) (T, bool) {
	for i, l := range c.index {
		if l == label {
			return c.values[i], c.valid[i]
		}
	}
	var zero T
	return zero, false
}

func (c *Column[T]) clone() *Column[T] {
	return &Column[T]{
		name:   c.name,
		index:  append([]string(nil), c.index...),
		values: append([]T(nil), c.values...),
		valid:  append([]bool(nil), c.valid...),
	}
}

// String renders the column one row per line as "label  value", with NA
// rows shown as <NA>, followed by a footer line holding name and length.
func (c *Column[T]) String() string {
	width := 0
	for _, l := range c.index {
		width = max(width, len(l))
	}

	var b strings.Builder
	for i := range c.values {
		b.WriteString(c.index[i])
		b.WriteString(strings.Repeat(" ", width-len(c.index[i])+4))
		if c.valid[i] {
			fmt.Fprint(&b, c.values[i])
		} else {
			b.WriteString("<NA>")
		}
		b.WriteByte('\n')
	}
	if c.name != "" {
		fmt.Fprintf(&b, "Name: %s, ", c.name)
	}
	fmt.Fprintf(&b, "Length: %d", len(c.values))
	return b.String()
}
