// File: standards.go
// Title: tidystring Error Standards
// Description: Provides the error taxonomy shared by all tidystring packages.
//              Every failure a caller can observe is built here so codes,
//              details and message wording stay consistent.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-01-25 v0.1.1: Fixed import and type reference issues
// - 2026-10-16 v0.2.0: Replaced per-module codes with the tidystring taxonomy

package errors

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/tidystring/foundation/core/error"
	"github.com/msto63/tidystring/foundation/utils/slicex"
)

// Module identifiers for error categorization
const (
	ModuleShape      = "shape"
	ModuleFrame      = "frame"
	ModuleRex        = "rex"
	ModuleTidy       = "tidy"
	ModuleCheatsheet = "cheatsheet"
	ModuleConfig     = "config"
	ModuleRunner     = "runner"
	ModuleRender     = "render"
	ModuleCLI        = "cli"
)

// TypeKind reports an unsupported or mismatched input or argument type.
func TypeKind(module, operation string, got interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeTypeKind).
		Messagef("%s: unsupported input type %s (expected %s)", operation, typeName(got), expected).
		Detail("got", typeName(got)).
		Detail("expected", expected).
		Build()
}

// UnsupportedOption reports an invalid value for an enumerated parameter.
// The message enumerates the valid options in sorted order, e.g.
//
//	Invalid group: 'x'. Valid options are: basic, case, regex
func UnsupportedOption(module, operation, option, got string, valid []string) *mdwerror.Error {
	sorted := slicex.Sort(valid)

	return mdwerror.New(fmt.Sprintf("Invalid %s: '%s'. Valid options are: %s", option, got, strings.Join(sorted, ", "))).
		WithCode(mdwerror.CodeUnsupportedOption).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":  module,
			"option":  option,
			"value":   got,
			"options": sorted,
		})
}

// ShapeMismatch reports a broken length invariant between a normalized view
// and the results produced for it. It always indicates a programming error
// in the calling operation.
func ShapeMismatch(module, operation string, want, got int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeShapeMismatch).
		Messagef("%s: result length %d does not match input length %d", operation, got, want).
		Detail("want", want).
		Detail("got", got).
		Build()
}

// InvalidPattern reports a regular expression that failed to compile or to
// match.
func InvalidPattern(module, operation, pattern string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeInvalidPattern).
		Messagef("%s: invalid pattern %q", operation, pattern).
		Cause(cause).
		Detail("pattern", pattern).
		Build()
}

// InvalidArgument reports a non-enumerated argument outside its domain,
// such as a negative repeat count.
func InvalidArgument(module, operation, field string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(mdwerror.CodeInvalidArgument).
		Messagef("%s: invalid %s %v: %s", operation, field, value, reason).
		Detail("field", field).
		Detail("value", value).
		Build()
}

// SourceFailed reports an input source (file, CSV, database) that could not
// be read.
func SourceFailed(module, operation, source string, cause error) *mdwerror.Error {
	return mdwerror.Wrap(cause, fmt.Sprintf("%s: cannot read %s", operation, source)).
		WithCode(mdwerror.CodeSourceFailed).
		WithSeverity(mdwerror.SeverityMedium).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module": module,
			"source": source,
		})
}

// ConfigFailed reports a configuration file that could not be loaded.
func ConfigFailed(path string, cause error) *mdwerror.Error {
	return mdwerror.Wrap(cause, fmt.Sprintf("config: cannot load %s", path)).
		WithCode(mdwerror.CodeConfigError).
		WithSeverity(mdwerror.SeverityMedium).
		WithOperation("load").
		WithDetails(map[string]interface{}{
			"module": ModuleConfig,
			"path":   path,
		})
}

func typeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
