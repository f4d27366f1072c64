// Package log provides structured logging for tidystring.
//
// Package: log
// Title: tidystring Structured Logging
// Description: Leveled, structured logging with JSON, text, logfmt and
//              colored console output, request-scoped context and timers.
//              Entries are written to stderr by default so results on
//              stdout stay machine readable.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: Trimmed for tidystring
//
// Usage:
//
//	import mdwlog "github.com/msto63/tidystring/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatJSON).
//		WithRequestID(runID)
//
//	logger.Debug("input classified", mdwlog.Fields{"kind": "sequence", "len": 3})
//
//	timer := logger.StartTimer("str_pad")
//	result, err := tidy.Pad(input, 10, tidy.SideLeft, " ")
//	if err != nil {
//		timer.StopWithError(err)
//	} else {
//		timer.Stop()
//	}
package log
