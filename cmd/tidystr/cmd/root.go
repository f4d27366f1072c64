package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/tidystring/foundation/core/error"
	"github.com/msto63/tidystring/foundation/core/errors"
	mdwlog "github.com/msto63/tidystring/foundation/core/log"
	"github.com/msto63/tidystring/pkg/core/config"
	"github.com/msto63/tidystring/pkg/core/logging"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    *config.Config
	logger *mdwlog.Logger
}

// NewRootCmd builds the tidystr command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "tidystr",
		Short: "tidystring - string operations over scalars, sequences and columns",
		Long: `tidystr applies string operations to a single string, to a list of
lines or to one column of a CSV file or SQLite query.

The result has the same shape as the input: one value for a string,
one line per element for a list, and one labelled row per row of a
column. Missing values are printed as NA.

Commands:
  apply       run a string operation
  functions   list all operations and their parameters
  cheatsheet  show the reference tables
  version     show the version`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $TIDYSTR_CONFIG, ./tidystr.toml, ~/.config/tidystr/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: console, text, json or logfmt")

	rootCmd.AddCommand(
		newApplyCmd(a),
		newFunctionsCmd(a),
		newCheatsheetCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI and prints a failure to stderr.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		printError(os.Stderr, err)
	}
	return err
}

// ExitCode maps an error onto the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

// init loads the configuration and sets up the logger. Flags override the
// [log] section.
func (a *app) init(stderr io.Writer) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	lc := logging.FromConfig("tidystr", a.cfg.Log)
	lc.Output = stderr
	if a.verbose {
		lc.Level = mdwlog.LevelDebug.String()
	}
	if a.logFormat != "" {
		if _, err := mdwlog.ParseFormat(a.logFormat); err != nil {
			return errors.UnsupportedOption(errors.ModuleCLI, "init", "log-format", a.logFormat,
				[]string{"console", "json", "logfmt", "text"})
		}
		lc.Format = a.logFormat
	}
	a.logger = logging.NewLogger(lc)

	if a.cfg.Path != "" {
		a.logger.Debug("config loaded", mdwlog.String("path", a.cfg.Path))
	}
	return nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
