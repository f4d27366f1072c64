// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic slice helpers shared by the tidystring packages:
//              membership, filtering and sorted copies.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-16 v0.2.0: Reduced to the helpers used by tidystring

// Package slicex implements generic slice utility functions.
package slicex

import (
	"cmp"
	"slices"
)

// Contains checks if the slice contains the specified element
func Contains[T comparable](slice []T, element T) bool {
	for _, item := range slice {
		if item == element {
			return true
		}
	}
	return false
}

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Sort returns a sorted copy of the slice
func Sort[T cmp.Ordered](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := slices.Clone(slice)
	slices.Sort(result)
	return result
}
