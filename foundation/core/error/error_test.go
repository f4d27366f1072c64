// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              serialization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-16 v0.2.0: Adapted to the tidystring taxonomy

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
	if !strings.Contains(err.StackTrace()[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", err.StackTrace()[0].Function)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("bad pattern").WithCode(CodeInvalidPattern),
			message:  "str_detect failed",
			wantMsg:  "str_detect failed: bad pattern",
			wantCode: CodeInvalidPattern,
		},
		{
			name:     "wrap fmt-wrapped structured error keeps code",
			err:      fmt.Errorf("ctx: %w", New("no such group").WithCode(CodeUnsupportedOption)),
			message:  "cheatsheet",
			wantMsg:  "cheatsheet: ctx: no such group",
			wantCode: CodeUnsupportedOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is(wrapped, original) = false")
			}
		})
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeTypeKind, SeverityLow},
		{CodeUnsupportedOption, SeverityLow},
		{CodeInvalidPattern, SeverityLow},
		{CodeShapeMismatch, SeverityHigh},
		{CodeSourceFailed, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeTypeKind)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity was overwritten: %v", explicit.Severity())
	}
}

func TestDetails(t *testing.T) {
	err := New("x").
		WithDetail("operation", "str_pad").
		WithDetails(map[string]interface{}{"side": "middle", "width": 10})

	details := err.Details()
	if len(details) != 3 {
		t.Fatalf("len(Details()) = %d, want 3", len(details))
	}
	details["side"] = "mutated"
	if v, _ := err.Detail("side"); v != "middle" {
		t.Errorf("Details() is not a copy, got %v", v)
	}
}

func TestIsComparesCodes(t *testing.T) {
	sentinel := New("").WithCode(CodeShapeMismatch)
	err := fmt.Errorf("restore: %w", New("length 2 != 3").WithCode(CodeShapeMismatch))

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is() should match on code")
	}
	if errors.Is(err, New("").WithCode(CodeTypeKind)) {
		t.Error("errors.Is() matched a different code")
	}
	if errors.Is(New("a"), New("b")) {
		t.Error("errors.Is() matched two CodeUnknown errors")
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := New("inner").WithCode(CodeInvalidPattern)
	outer := Wrap(inner, "outer").WithCode(CodeSourceFailed)

	if !HasCode(outer, CodeInvalidPattern) {
		t.Error("HasCode() should search the chain")
	}
	if !HasCode(outer, CodeSourceFailed) {
		t.Error("HasCode() should see the outer code")
	}
	if HasCode(errors.New("plain"), CodeInvalidPattern) {
		t.Error("HasCode() on a plain error should be false")
	}
	if GetCode(outer) != CodeSourceFailed {
		t.Errorf("GetCode() = %v, want %v", GetCode(outer), CodeSourceFailed)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() on a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() on a plain error should be SeverityMedium")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "top")
	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}
	if New("alone").RootCause().Error() != "alone" {
		t.Error("RootCause() of an unwrapped error should be itself")
	}
}

func TestString(t *testing.T) {
	err := New("invalid group").
		WithCode(CodeUnsupportedOption).
		WithOperation("cheatsheet").
		WithDetail("group", "nope")

	s := err.String()
	for _, want := range []string{
		"Error: invalid group",
		"Code: UNSUPPORTED_OPTION",
		"Severity: low",
		"Operation: cheatsheet",
		"Details: {group=nope}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "load failed").
		WithCode(CodeSourceFailed).
		WithOperation("read_csv")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}
	if decoded["code"] != "SOURCE_FAILED" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "read_csv" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		code     Code
		valid    bool
		category string
		exit     int
	}{
		{CodeTypeKind, true, "usage", 64},
		{CodeUnsupportedOption, true, "usage", 64},
		{CodeInvalidArgument, true, "usage", 64},
		{CodeInvalidPattern, true, "usage", 64},
		{CodeShapeMismatch, true, "invariant", 70},
		{CodeSourceFailed, true, "source", 66},
		{CodeConfigError, true, "configuration", 78},
		{CodeUnknown, true, "generic", 1},
		{Code("NOPE"), false, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %v, want %v", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %v, want %v", got, tt.exit)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
	if SeverityLow.ShouldAlert() || !SeverityHigh.ShouldAlert() {
		t.Error("ShouldAlert() threshold should be SeverityHigh")
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("benchmark error")
	}
}

func BenchmarkWrap(b *testing.B) {
	base := New("base").WithCode(CodeTypeKind)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(base, "wrapped")
	}
}
