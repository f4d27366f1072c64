// File: filex_test.go
// Title: File Utilities Tests
// Description: Tests for existence checks and line reading.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16

package filex

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestExistsAndIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(file, []byte("a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path   string
		exists bool
		isFile bool
	}{
		{file, true, true},
		{dir, true, false},
		{filepath.Join(dir, "missing"), false, false},
	}
	for _, tt := range tests {
		if got := Exists(tt.path); got != tt.exists {
			t.Errorf("Exists(%q) = %v, want %v", tt.path, got, tt.exists)
		}
		if got := IsFile(tt.path); got != tt.isFile {
			t.Errorf("IsFile(%q) = %v, want %v", tt.path, got, tt.isFile)
		}
	}
}

func TestScanLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"empty lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"empty input", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanLines(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("ScanLines() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ScanLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(path, []byte("helloWorld\npythonTest\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"helloWorld", "pythonTest"}) {
		t.Errorf("ReadLines() = %q", got)
	}

	if _, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("ReadLines() on a missing file should fail")
	}
}
