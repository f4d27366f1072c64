package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/tidystring/internal/runner"
)

func newFunctionsCmd(a *app) *cobra.Command {
	var verbose bool

	functionsCmd := &cobra.Command{
		Use:     "functions",
		Aliases: []string{"funcs", "list"},
		Short:   "List all string operations",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := runner.New(a.cfg.Defaults, a.logger)
			out := cmd.OutOrStdout()
			for _, name := range r.Names() {
				op, _ := r.Lookup(name)
				fmt.Fprintf(out, "%-20s %s\n", name, op.Description)
				if verbose {
					for _, p := range op.Parameters {
						fmt.Fprintf(out, "  --%-18s %s%s\n", flagName(p.Name), p.Description, required(p))
					}
				}
			}
			return nil
		},
	}

	functionsCmd.Flags().BoolVarP(&verbose, "params", "p", false, "show the parameters of each operation")
	return functionsCmd
}

func flagName(param string) string {
	return strings.ReplaceAll(param, "_", "-")
}

func required(p runner.ParameterDef) string {
	if p.Required {
		return " (required)"
	}
	return ""
}
