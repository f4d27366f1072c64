// File: mapx.go
// Title: Core Map Utilities
// Description: Generic map helpers shared by the tidystring packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-16 v0.2.0: Reduced to key listing used for option enumeration

// Package mapx implements generic map utility functions.
package mapx

import (
	"cmp"
	"slices"
)

// Keys returns a slice of all keys from the map in unspecified order
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of the map in ascending order. An empty or
// nil map yields an empty, non-nil slice.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
