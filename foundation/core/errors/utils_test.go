// File: utils_test.go
// Title: Tests for Shared Error Utilities
// Description: Tests the error builder, the taxonomy constructors and the
//              inspection helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-16 v0.2.0: Taxonomy constructor tests

package errors

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	mdwerror "github.com/msto63/tidystring/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	err := NewErrorBuilder("testmodule").
		Operation("testop").
		Message("test message").
		Detail("key", "value").
		Severity(mdwerror.SeverityHigh).
		Build()

	if err.Error() != "test message" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Code() != mdwerror.CodeInternal {
		t.Errorf("Code() = %v, want %v", err.Code(), mdwerror.CodeInternal)
	}
	if err.Severity() != mdwerror.SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), mdwerror.SeverityHigh)
	}
	if ExtractModule(err) != "testmodule" {
		t.Errorf("ExtractModule() = %q", ExtractModule(err))
	}
	if ExtractOperation(err) != "testop" {
		t.Errorf("ExtractOperation() = %q", ExtractOperation(err))
	}
	if v, _ := err.Detail("key"); v != "value" {
		t.Errorf("Detail(key) = %v", v)
	}
}

func TestErrorBuilderDefaults(t *testing.T) {
	err := NewErrorBuilder("shape").Operation("restore").Build()
	if err.Error() != "shape.restore failed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Severity() != mdwerror.SeverityHigh {
		t.Errorf("Severity() = %v, want derived %v", err.Severity(), mdwerror.SeverityHigh)
	}

	err = NewErrorBuilder("shape").Build()
	if err.Error() != "shape operation failed" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestUnsupportedOption(t *testing.T) {
	tests := []struct {
		name    string
		option  string
		got     string
		valid   []string
		wantMsg string
	}{
		{
			name:    "pad side",
			option:  "side",
			got:     "middle",
			valid:   []string{"left", "right", "both"},
			wantMsg: "Invalid side: 'middle'. Valid options are: both, left, right",
		},
		{
			name:    "cheatsheet group",
			option:  "group",
			got:     "invalid_group",
			valid:   []string{"regex", "basic", "case"},
			wantMsg: "Invalid group: 'invalid_group'. Valid options are: basic, case, regex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := append([]string(nil), tt.valid...)
			err := UnsupportedOption(ModuleTidy, "op", tt.option, tt.got, input)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
			if !IsUnsupportedOption(err) {
				t.Error("IsUnsupportedOption() = false")
			}
			if !reflect.DeepEqual(input, tt.valid) {
				t.Error("UnsupportedOption() reordered the caller's slice")
			}
			opts := ValidOptions(err)
			if !strings.Contains(tt.wantMsg, strings.Join(opts, ", ")) {
				t.Errorf("ValidOptions() = %v", opts)
			}
		})
	}
}

func TestConstructorCodes(t *testing.T) {
	cause := stderrors.New("missing )")

	tests := []struct {
		name  string
		err   *mdwerror.Error
		code  mdwerror.Code
		is    func(error) bool
		parts []string
	}{
		{
			name:  "type kind",
			err:   TypeKind(ModuleShape, "normalize", 42, "string, []string or *frame.Column[string]"),
			code:  mdwerror.CodeTypeKind,
			is:    IsTypeKind,
			parts: []string{"normalize", "unsupported input type int"},
		},
		{
			name:  "type kind nil",
			err:   TypeKind(ModuleShape, "normalize", nil, "string"),
			code:  mdwerror.CodeTypeKind,
			is:    IsTypeKind,
			parts: []string{"unsupported input type nil"},
		},
		{
			name:  "shape mismatch",
			err:   ShapeMismatch(ModuleShape, "restore", 3, 2),
			code:  mdwerror.CodeShapeMismatch,
			is:    IsShapeMismatch,
			parts: []string{"result length 2", "input length 3"},
		},
		{
			name:  "invalid pattern",
			err:   InvalidPattern(ModuleRex, "str_detect", "(", cause),
			code:  mdwerror.CodeInvalidPattern,
			is:    IsInvalidPattern,
			parts: []string{`invalid pattern "("`, "missing )"},
		},
		{
			name:  "invalid argument",
			err:   InvalidArgument(ModuleTidy, "str_dup", "times", -1, "must not be negative"),
			code:  mdwerror.CodeInvalidArgument,
			is:    IsInvalidArgument,
			parts: []string{"invalid times -1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if !tt.is(fmt.Errorf("outer: %w", tt.err)) {
				t.Error("predicate should see through wrapping")
			}
			for _, p := range tt.parts {
				if !strings.Contains(tt.err.Error(), p) {
					t.Errorf("Error() = %q, missing %q", tt.err.Error(), p)
				}
			}
		})
	}
}

func TestSourceAndConfigFailed(t *testing.T) {
	cause := stderrors.New("no such file")

	err := SourceFailed(ModuleFrame, "read_csv", "names.csv", cause)
	if err.Code() != mdwerror.CodeSourceFailed {
		t.Errorf("Code() = %v", err.Code())
	}
	if !stderrors.Is(err, cause) {
		t.Error("SourceFailed() should wrap its cause")
	}

	err = ConfigFailed("tidystr.toml", cause)
	if err.Code() != mdwerror.CodeConfigError {
		t.Errorf("Code() = %v", err.Code())
	}
	if ExtractModule(err) != ModuleConfig {
		t.Errorf("ExtractModule() = %q", ExtractModule(err))
	}
}

func TestPredicatesOnPlainErrors(t *testing.T) {
	plain := stderrors.New("plain")
	if IsTypeKind(plain) || IsShapeMismatch(plain) || IsUnsupportedOption(plain) {
		t.Error("predicates should be false for plain errors")
	}
	if ExtractDetails(plain) != nil {
		t.Error("ExtractDetails() should be nil for plain errors")
	}
	if ValidOptions(plain) != nil {
		t.Error("ValidOptions() should be nil for plain errors")
	}
	if IsModuleOperation(plain, ModuleTidy, "x") {
		t.Error("IsModuleOperation() should be false for plain errors")
	}
}
