// Package errors provides the standard error constructors for all tidystring
// packages.
//
// Package: errors
// Title: Standard Error Handling API for tidystring
// Description: Constructors for the tidystring error taxonomy and helpers to
//              inspect errors produced by them. Every constructor returns a
//              *error.Error carrying a code, the failing operation and the
//              module it came from.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-16 v0.2.0: tidystring taxonomy
//
// # Taxonomy
//
//   - TypeKind: input is not a Scalar, Sequence or TabularColumn, or an
//     argument has the wrong type
//   - UnsupportedOption: an enumerated parameter (side, case rule, group,
//     output format) has an unknown value
//   - ShapeMismatch: results do not line up with the normalized input
//   - InvalidPattern: a regular expression failed to compile
//   - InvalidArgument: a numeric or string argument is outside its domain
//   - SourceFailed, ConfigFailed: the surroundings could not be read
//
// # Usage
//
//	err := errors.UnsupportedOption(errors.ModuleTidy, "str_pad", "side", "middle",
//		[]string{"left", "right", "both"})
//	// err.Error() == "Invalid side: 'middle'. Valid options are: both, left, right"
//
//	if errors.IsUnsupportedOption(err) {
//		fmt.Println(errors.ValidOptions(err))
//	}
package errors
