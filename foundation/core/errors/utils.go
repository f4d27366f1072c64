// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent error builder and inspection helpers used by the
//              taxonomy constructors and by callers that need to branch on
//              the kind of failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2026-10-16 v0.2.0: Builder takes typed codes, taxonomy predicates

package errors

import (
	"errors"
	"fmt"

	mdwerror "github.com/msto63/tidystring/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  *mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Details sets multiple details at once
func (eb *ErrorBuilder) Details(details map[string]interface{}) *ErrorBuilder {
	for k, v := range details {
		eb.details[k] = v
	}
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = mdwerror.CodeInternal
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	err = err.WithCode(eb.code).WithDetails(eb.details)
	if eb.operation != "" {
		err = err.WithOperation(eb.operation)
	}
	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}
	return err
}

// IsTypeKind reports whether err is an unsupported input or argument type.
func IsTypeKind(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeTypeKind)
}

// IsUnsupportedOption reports whether err names an invalid enumerated option.
func IsUnsupportedOption(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeUnsupportedOption)
}

// IsShapeMismatch reports whether err is a broken length invariant.
func IsShapeMismatch(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeShapeMismatch)
}

// IsInvalidPattern reports whether err is a bad regular expression.
func IsInvalidPattern(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidPattern)
}

// IsInvalidArgument reports whether err is an argument outside its domain.
func IsInvalidArgument(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidArgument)
}

// ExtractDetails extracts all details from the outermost structured error
func ExtractDetails(err error) map[string]interface{} {
	var e *mdwerror.Error
	if errors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	var e *mdwerror.Error
	if errors.As(err, &e) {
		return e.Operation()
	}
	return ""
}

// ValidOptions returns the sorted option list carried by an
// UnsupportedOption error.
func ValidOptions(err error) []string {
	if opts, ok := ExtractDetails(err)["options"].([]string); ok {
		return opts
	}
	return nil
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
