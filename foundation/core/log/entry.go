// File: entry.go
// Title: Log Entry Structure
// Description: Defines the log entry structure and the Fields helpers used
//              to attach structured context to a message.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-16 v0.2.0: Removed user and correlation context, sorted field keys

package log

import (
	"sort"
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	RequestID string
	Fields    Fields
	Error     error
	Duration  time.Duration
}

// Fields represents structured key-value data attached to an entry
type Fields map[string]interface{}

// Field creates a single-entry Fields
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates a Fields holding an error message
func Err(err error) Fields {
	if err == nil {
		return Fields{}
	}
	return Fields{"error": err.Error()}
}

// Int creates an integer field
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// String creates a string field
func String(key string, value string) Fields {
	return Fields{key: value}
}

// Merge returns a new Fields combining f and other; keys in other win
func (f Fields) Merge(other Fields) Fields {
	result := f.Clone()
	for k, v := range other {
		result[k] = v
	}
	return result
}

// Clone returns a shallow copy of the fields
func (f Fields) Clone() Fields {
	result := make(Fields, len(f))
	for k, v := range f {
		result[k] = v
	}
	return result
}

// Keys returns the field keys in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithFields adds fields to the entry
func (e *Entry) WithFields(fields Fields) *Entry {
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// WithError attaches an error to the entry
func (e *Entry) WithError(err error) *Entry {
	e.Error = err
	return e
}

// WithDuration attaches a measured duration to the entry
func (e *Entry) WithDuration(duration time.Duration) *Entry {
	e.Duration = duration
	return e
}
