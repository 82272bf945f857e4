package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRemoveCmd creates the remove command.
func newRemoveCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <section> [option]",
		Aliases: []string{"rm"},
		Short:   "Remove an option, or a whole section",
		Long: `Remove an option from a section and save the file.

Without an option, removes the section and every option in it.

Examples:
  cfg remove server port
  cfg remove server`,
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

			res, err := app.Store.Remove(args[0], option)
			if err != nil {
				return fmt.Errorf("removing from %s: %w", args[0], err)
			}
			if res.OK() {
				app.Log.Info().Str("section", args[0]).Str("option", option).Msg("removed")
			}
			return report(app, res, true)
		},
	}

	return cmd
}
