// File: mapx_test.go
// Title: Map Utilities Tests
// Description: Table tests for the map helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16

package mapx

import (
	"reflect"
	"sort"
	"testing"
)

func TestKeys(t *testing.T) {
	keys := Keys(map[string]int{"b": 2, "a": 1})
	sort.Strings(keys)
	if !reflect.DeepEqual(keys, []string{"a", "b"}) {
		t.Errorf("Keys() = %v", keys)
	}
	if Keys(map[string]int(nil)) != nil {
		t.Error("Keys(nil) should be nil")
	}
}

func TestSortedKeys(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]bool
		want []string
	}{
		{"sorted", map[string]bool{"upper": true, "double": true, "lower": true}, []string{"double", "lower", "upper"}},
		{"empty", map[string]bool{}, []string{}},
		{"nil", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SortedKeys(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortedKeys() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
