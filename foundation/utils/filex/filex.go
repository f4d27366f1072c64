// File: filex.go
// Title: Core File Utilities
// Description: File helpers used by the CLI input sources and the config
//              loader: existence checks and line-oriented reading.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-16 v0.2.0: Reduced to existence checks and line reading

// Package filex implements file utility functions.
package filex

import (
	"bufio"
	"io"
	"os"
)

// MaxLineLength is the longest line ReadLines and ScanLines accept.
const MaxLineLength = 16 * 1024 * 1024

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadLines reads a file and returns its lines without line terminators
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ScanLines(file)
}

// ScanLines reads r to the end and returns its lines without line
// terminators. A final line without newline is included; empty input gives
// an empty, non-nil slice.
func ScanLines(r io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), MaxLineLength)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
