package cmd

import (
	"github.com/spf13/cobra"
)

// newGetCmd creates the get command.
func newGetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <section> [option]",
		Short: "Get an option value, or every option of a section",
		Long: `Get the value of an option.

Without an option, prints every option of the section as
"option = value" lines, sorted by option name.

Examples:
  cfg get server host
  cfg get server
  cfg get server --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			option := ""
			if len(args) == 2 {
				option = args[1]
			}

			res, err := app.Store.Get(args[0], option)
			if err != nil {
				return err
			}
			return report(app, res, false)
		},
	}

	return cmd
}
