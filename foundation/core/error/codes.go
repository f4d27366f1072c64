// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes of the tidystring taxonomy. Codes let
//              callers branch on the kind of failure without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Replaced platform codes with the tidystring taxonomy

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Input and argument classification
	CodeTypeKind          Code = "TYPE_KIND"
	CodeUnsupportedOption Code = "UNSUPPORTED_OPTION"
	CodeInvalidArgument   Code = "INVALID_ARGUMENT"
	CodeInvalidPattern    Code = "INVALID_PATTERN"

	// Internal invariants
	CodeShapeMismatch Code = "SHAPE_MISMATCH"

	// Surroundings
	CodeSourceFailed Code = "SOURCE_FAILED"
	CodeConfigError  Code = "CONFIG_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeTypeKind, CodeUnsupportedOption, CodeInvalidArgument, CodeInvalidPattern,
		CodeShapeMismatch,
		CodeSourceFailed, CodeConfigError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeTypeKind, CodeUnsupportedOption, CodeInvalidArgument, CodeInvalidPattern:
		return "usage"
	case CodeShapeMismatch, CodeInternal:
		return "invariant"
	case CodeSourceFailed:
		return "source"
	case CodeConfigError:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode maps the code onto a process exit status for the CLI. Usage
// errors follow the sysexits convention (64), invariant violations are
// internal software errors (70).
func (c Code) ExitCode() int {
	switch c.Category() {
	case "usage":
		return 64
	case "source":
		return 66
	case "configuration":
		return 78
	case "invariant":
		return 70
	default:
		return 1
	}
}
