package cmd

import (
	"github.com/spf13/cobra"
)

// newListCmd creates the list command.
func newListCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [section]",
		Short: "List sections, or the options of a section",
		Long: `List section names in file order, one per line.

With a section, lists its option names instead.

Examples:
  cfg list
  cfg list server`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			section := ""
			if len(args) == 1 {
				section = args[0]
			}

			res, err := app.Store.List(section)
			if err != nil {
				return err
			}
			return report(app, res, false)
		},
	}

	return cmd
}
