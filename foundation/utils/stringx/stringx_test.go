// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Tests padding, squishing and rune slicing including Unicode
//              input and out-of-range offsets.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-16 v0.3.0: Slice, Squish and UpperCut tests

package stringx

import (
	"testing"
	"unicode/utf8"
)

func TestPad(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string, int, rune) string
		input    string
		width    int
		pad      rune
		expected string
	}{
		{"left stars", PadLeft, "hello", 10, '*', "*****hello"},
		{"right spaces", PadRight, "hello", 10, ' ', "hello     "},
		{"center odd total", Center, "hello", 10, ' ', "  hello   "},
		{"center even total", Center, "hi", 6, '-', "--hi--"},
		{"already wide", PadLeft, "hello", 3, '*', "hello"},
		{"exact width", Center, "hello", 5, '*', "hello"},
		{"unicode input", PadLeft, "世界", 4, '.', "..世界"},
		{"unicode pad", PadRight, "ab", 4, '→', "ab→→"},
		{"empty", Center, "", 3, 'x', "xxx"},
		{"negative width", PadRight, "ab", -1, 'x', "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn(tt.input, tt.width, tt.pad)
			if result != tt.expected {
				t.Errorf("pad(%q, %d, %q) = %q; want %q", tt.input, tt.width, tt.pad, result, tt.expected)
			}
		})
	}
}

func TestPadLengthInvariant(t *testing.T) {
	inputs := []string{"", "a", "hello", "こんにちは", "a longer string than width"}
	for _, s := range inputs {
		for _, w := range []int{0, 1, 5, 8, 13} {
			want := max(w, utf8.RuneCountInString(s))
			for name, fn := range map[string]func(string, int, rune) string{
				"left": PadLeft, "right": PadRight, "both": Center,
			} {
				if got := utf8.RuneCountInString(fn(s, w, '#')); got != want {
					t.Errorf("%s(%q, %d) has %d runes; want %d", name, s, w, got, want)
				}
			}
		}
	}
}

func TestSquish(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  hello  world  ", "hello world"},
		{" a  b  c ", "a b c"},
		{"\t tabs\nand\r\nnewlines ", "tabs and newlines"},
		{"", ""},
		{"   ", ""},
		{"already squished", "already squished"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Squish(tt.input)
			if result != tt.expected {
				t.Errorf("Squish(%q) = %q; want %q", tt.input, result, tt.expected)
			}
			if again := Squish(result); again != result {
				t.Errorf("Squish is not idempotent: %q -> %q", result, again)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		start, end int
		expected   string
	}{
		{"prefix", "hello world", 0, 5, "hello"},
		{"middle", "hello", 1, 3, "el"},
		{"negative start", "hello world", -5, 11, "world"},
		{"negative end", "hello", 0, -1, "hell"},
		{"both negative", "hello", -3, -1, "ll"},
		{"end past length", "hello", 2, 100, "llo"},
		{"start past length", "hello", 10, 12, ""},
		{"inverted", "hello", 3, 1, ""},
		{"start before beginning", "hello", -100, 2, "he"},
		{"unicode", "日本語テキスト", 2, 4, "語テ"},
		{"empty", "", 0, 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slice(tt.input, tt.start, tt.end)
			if result != tt.expected {
				t.Errorf("Slice(%q, %d, %d) = %q; want %q", tt.input, tt.start, tt.end, result, tt.expected)
			}
		})
	}
}

func TestSliceFrom(t *testing.T) {
	tests := []struct {
		input    string
		start    int
		expected string
	}{
		{"hello world", 6, "world"},
		{"hello", -2, "lo"},
		{"hello", 0, "hello"},
		{"hello", 9, ""},
		{"hello", -9, "hello"},
	}

	for _, tt := range tests {
		if result := SliceFrom(tt.input, tt.start); result != tt.expected {
			t.Errorf("SliceFrom(%q, %d) = %q; want %q", tt.input, tt.start, result, tt.expected)
		}
	}
}

func TestUpperCut(t *testing.T) {
	tests := []struct {
		input    string
		n        int
		expected string
	}{
		{"hello", 1, "Hello"},
		{"hello", 2, "HEllo"},
		{"hello", 0, "hello"},
		{"hello", 10, "HELLO"},
		{"hello", -1, "HELLo"},
		{"", 3, ""},
		{"éclair", 1, "Éclair"},
	}

	for _, tt := range tests {
		if result := UpperCut(tt.input, tt.n); result != tt.expected {
			t.Errorf("UpperCut(%q, %d) = %q; want %q", tt.input, tt.n, result, tt.expected)
		}
	}
}

func BenchmarkCenter(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Center("hello", 40, ' ')
	}
}
