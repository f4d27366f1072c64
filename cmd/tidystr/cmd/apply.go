// ============================================================================
// tidystring - String Operations over Scalars, Sequences and Columns
// ============================================================================
//
// Package:     cmd
// Description: CLI command that runs one string operation
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package cmd

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/msto63/tidystring/foundation/core/errors"
	mdwlog "github.com/msto63/tidystring/foundation/core/log"
	"github.com/msto63/tidystring/foundation/utils/slicex"
	"github.com/msto63/tidystring/internal/render"
	"github.com/msto63/tidystring/internal/runner"
)

// paramFlags maps scalar flags onto operation parameters.
var paramFlags = map[string]string{
	"pattern":       "pattern",
	"replacement":   "replacement",
	"n":             "n",
	"width":         "width",
	"side":          "side",
	"pad":           "pad",
	"sep":           "sep",
	"case":          "case",
	"start":         "start",
	"end":           "end",
	"times":         "times",
	"indent":        "indent",
	"exdent":        "exdent",
	"remove-dashes": "remove_dashes",
	"func":          "func",
}

// listFlags maps repeatable flags onto list parameters.
var listFlags = map[string]string{
	"dashes":  "dashes",
	"with":    "with",
	"columns": "columns",
}

type applyOptions struct {
	src    source
	output string
}

func newApplyCmd(a *app) *cobra.Command {
	opts := &applyOptions{}

	applyCmd := &cobra.Command{
		Use:   "apply <function>",
		Short: "Run a string operation",
		Long: `Runs a string operation on a string, on lines or on a table column.

Input (at most one, default: lines from stdin):
  --text      a single string
  --file      one element per line
  --csv       a CSV file with header row, select the column with --column
  --sqlite    a SQLite database, with --query and optionally --column

Examples:
  tidystr apply str_detect --text "hello world" --pattern "o w"
  tidystr apply str_replace --file words.txt --pattern "(\w+)@" --replacement "$1 at "
  tidystr apply str_pad --csv people.csv --column name --width 12 --side left
  tidystr apply str_concat --csv people.csv --columns first,last --sep " "
  tidystr apply camel_to_snake --sqlite app.db --query "SELECT field FROM schema"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runApply(cmd, args[0], opts)
		},
	}

	f := applyCmd.Flags()
	f.StringVar(&opts.src.Text, "text", "", "input string")
	f.StringVar(&opts.src.File, "file", "", "input file, one element per line")
	f.StringVar(&opts.src.CSV, "csv", "", "input CSV file")
	f.StringVar(&opts.src.SQLite, "sqlite", "", "input SQLite database")
	f.StringVar(&opts.src.Query, "query", "", "SQL query for --sqlite")
	f.StringVar(&opts.src.Column, "column", "", "column of the CSV file or query result")
	f.StringVarP(&opts.output, "output", "o", "", "output format: lines, json or yaml (default from config)")

	f.String("pattern", "", "regular expression or literal prefix/suffix")
	f.String("replacement", "", "replacement, $1 refers to capture group 1")
	f.Int("n", -1, "maximum number of replacements or splits, 0 or less for all")
	f.Int("width", 0, "target width")
	f.String("side", "", "padding side: left, right or both")
	f.String("pad", "", "padding character")
	f.String("sep", "", "separator for str_concat")
	f.String("case", "", "case rule for str_search_recase")
	f.Int("start", 0, "start position for str_sub")
	f.Int("end", 0, "end position for str_sub")
	f.Int("times", 0, "repetitions for str_dup")
	f.Int("indent", 0, "indent of the first wrapped line")
	f.Int("exdent", 0, "indent of following wrapped lines")
	f.Bool("remove-dashes", false, "replace dashes with spaces before title casing")
	f.String("func", "", "transform for str_search_apply")
	f.StringSlice("dashes", nil, "literal dashes for str_dash_to_space")
	f.StringSlice("with", nil, "further strings for str_concat")
	f.StringSlice("columns", nil, "table columns for str_concat")

	return applyCmd
}

func (a *app) runApply(cmd *cobra.Command, name string, opts *applyOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	output := opts.output
	if output == "" {
		output = a.cfg.Output.Format
	}
	if !slicex.Contains(render.Formats(), output) {
		return errors.UnsupportedOption(errors.ModuleCLI, "apply", "output", output, render.Formats())
	}

	runID := uuid.NewString()
	logger := a.logger.WithRequestID(runID)

	opts.src.HasText = cmd.Flags().Changed("text")
	wantTable := name == "str_concat" && opts.src.Column == ""
	input, err := opts.src.load(ctx, cmd.InOrStdin(), wantTable, a.cfg.Sources.QueryTimeout.Duration)
	if err != nil {
		logger.Debug("loading input failed", mdwlog.Err(err))
		return err
	}

	params, err := collectParams(cmd.Flags())
	if err != nil {
		return err
	}
	logger.Debug("dispatch", mdwlog.String("function", name), mdwlog.Int("params", len(params)))

	r := runner.New(a.cfg.Defaults, logger)
	result, err := r.Run(ctx, name, input, params)
	if err != nil {
		logger.Debug("operation failed", mdwlog.String("function", name), mdwlog.Err(err))
		return err
	}
	return render.Write(cmd.OutOrStdout(), result, output)
}

// collectParams turns the flags set on the command line into operation
// parameters. Unset flags are left out so the operation defaults apply.
func collectParams(flags *pflag.FlagSet) (runner.Params, error) {
	params := runner.Params{}
	for flag, param := range paramFlags {
		if flags.Changed(flag) {
			params[param] = flags.Lookup(flag).Value.String()
		}
	}
	for flag, param := range listFlags {
		if !flags.Changed(flag) {
			continue
		}
		values, err := flags.GetStringSlice(flag)
		if err != nil {
			return nil, err
		}
		params[param] = values
	}
	return params, nil
}
