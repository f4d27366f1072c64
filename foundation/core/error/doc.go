// Package error provides the structured error type shared by all tidystring packages.
//
// Package: error
// Title: tidystring Error Type
// Description: A structured error with a code from the tidystring taxonomy, a
//              severity, the failing operation, details and a stack trace.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: tidystring taxonomy
//
// Usage:
//
//	import mdwerror "github.com/msto63/tidystring/foundation/core/error"
//
//	err := mdwerror.New("unsupported input type").
//		WithCode(mdwerror.CodeTypeKind).
//		WithOperation("str_detect").
//		WithDetail("got", "int")
//
//	if mdwerror.HasCode(err, mdwerror.CodeTypeKind) {
//		// caller passed the wrong kind of value
//	}
//
// Most code should not build errors directly but use the constructors in
// foundation/core/errors, which fill in codes, details and messages
// consistently.
package error
