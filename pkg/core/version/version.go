// ============================================================================
// tidystring - String Operations over Scalars, Sequences and Columns
// ============================================================================
//
// Package:     version
// Description: Central version management
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Library version of the string operations
	Library = "0.2.0"

	// CLI version of tidystr
	CLI = "0.2.0"
)

// Set at build time with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "tidystr", "cli":
		return CLI
	default:
		return Library
	}
}

// Info returns a one-line build description
func Info() string {
	return fmt.Sprintf("tidystr %s (library %s, commit %s, built %s, %s/%s)",
		CLI, Library, Commit, BuildDate, runtime.GOOS, runtime.GOARCH)
}
