// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and the CLI can
//              decide how loudly to report a failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.2.0: Severity mapping for the tidystring codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as an invalid option or
	// an input of the wrong type
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure that has a workaround, e.g. an
	// unreadable input source
	SeverityMedium

	// SeverityHigh indicates a broken internal invariant
	SeverityHigh

	// SeverityCritical is reserved for failures that make the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should be surfaced loudly
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeShapeMismatch, CodeInternal:
		return SeverityHigh
	case CodeSourceFailed, CodeConfigError:
		return SeverityMedium
	case CodeTypeKind, CodeUnsupportedOption, CodeInvalidArgument, CodeInvalidPattern:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
