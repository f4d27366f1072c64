package cmd

import (
	"github.com/spf13/cobra"

	tui "github.com/msto63/tidystring/internal/tui/cheatsheet"
	"github.com/msto63/tidystring/pkg/cheatsheet"
)

func newCheatsheetCmd() *cobra.Command {
	var (
		format      string
		interactive bool
	)

	cheatsheetCmd := &cobra.Command{
		Use:     "cheatsheet [group]",
		Aliases: []string{"cs", "help-sheet"},
		Short:   "Show the reference tables",
		Long: `Shows the reference table of one group or, without a group, all
functions in one table.

Groups: basic, case, detection, extraction, input_types, modification, regex

Keys in the interactive browser:
  tab / shift+tab   next / previous group
  /                 filter rows, esc clears the filter
  up / down         scroll
  q                 quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group := ""
			if len(args) == 1 {
				group = args[0]
			}
			if interactive {
				return tui.Run(group)
			}
			sheet, err := cheatsheet.Get(group)
			if err != nil {
				return err
			}
			return cheatsheet.Write(cmd.OutOrStdout(), sheet, format)
		},
	}

	cheatsheetCmd.Flags().StringVarP(&format, "format", "f", cheatsheet.FormatTable, "output format: table, yaml or json")
	cheatsheetCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the sheets interactively")
	return cheatsheetCmd
}
