// ============================================================================
// tidystring - String Operations over Scalars, Sequences and Columns
// ============================================================================
//
// Package:     runner
// Description: Dispatch of string operations by name
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package runner dispatches string operations by their public name, e.g.
// "str_detect", with parameters collected from the command line.
package runner

import (
	"context"

	"github.com/msto63/tidystring/foundation/core/errors"
	mdwlog "github.com/msto63/tidystring/foundation/core/log"
	"github.com/msto63/tidystring/foundation/utils/mapx"
	"github.com/msto63/tidystring/pkg/core/config"
	"github.com/msto63/tidystring/pkg/frame"
	"github.com/msto63/tidystring/pkg/shape"
)

// Handler executes one operation on an input.
type Handler func(input any, params Params) (any, error)

// ParameterDef describes an operation parameter
type ParameterDef struct {
	Name        string
	Description string
	Required    bool
}

// Operation is a named, callable string operation
type Operation struct {
	Name        string
	Description string
	Parameters  []ParameterDef
	Handler     Handler
}

// Runner holds the registered operations
type Runner struct {
	ops      map[string]*Operation
	defaults config.DefaultsConfig
	logger   *mdwlog.Logger
}

// New creates a runner with all built-in operations registered. Parameters
// missing from a call fall back to defaults.
func New(defaults config.DefaultsConfig, logger *mdwlog.Logger) *Runner {
	if logger == nil {
		logger = mdwlog.Discard()
	}
	r := &Runner{
		ops:      make(map[string]*Operation),
		defaults: defaults,
		logger:   logger.WithName("runner"),
	}
	r.registerBuiltins()
	return r
}

// Register adds or replaces an operation
func (r *Runner) Register(op *Operation) {
	r.ops[op.Name] = op
	r.logger.Trace("operation registered", mdwlog.String("name", op.Name))
}

// Lookup returns the operation with the given name
func (r *Runner) Lookup(name string) (*Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Names returns all operation names in sorted order
func (r *Runner) Names() []string {
	return mapx.SortedKeys(r.ops)
}

// Run executes the named operation on input
func (r *Runner) Run(ctx context.Context, name string, input any, params Params) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	op, ok := r.ops[name]
	if !ok {
		return nil, errors.UnsupportedOption(errors.ModuleRunner, "run", "function", name, r.Names())
	}
	if params == nil {
		params = Params{}
	}
	for _, def := range op.Parameters {
		if def.Required && !params.Has(def.Name) {
			return nil, errors.InvalidArgument(errors.ModuleRunner, name, def.Name, nil, "is required")
		}
	}

	timer := r.logger.StartTimer(name).
		WithLevel(mdwlog.LevelDebug).
		WithField("shape", inputKind(input))
	out, err := op.Handler(input, params)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}
	timer.Stop()
	return out, nil
}

func inputKind(input any) string {
	if _, ok := input.(*frame.Table); ok {
		return "table"
	}
	if view, err := shape.Normalize(input); err == nil {
		return view.Kind.String()
	}
	return "other"
}
