package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newSetCmd creates the set command.
func newSetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <section> <option> <value>",
		Short: "Set an option value",
		Long: `Set an option to a value and save the file.

The section is created if it does not exist.

Examples:
  cfg set server host example.com
  cfg set server motd "hello world"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			res, err := app.Store.SetOne(args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("setting %s.%s: %w", args[0], args[1], err)
			}
			app.Log.Info().Str("section", args[0]).Str("option", args[1]).Msg("option set")
			return report(app, res, true)
		},
	}

	return cmd
}

// newSetManyCmd creates the set-many command.
func newSetManyCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-many <section> <option=value>...",
		Short: "Set several options of one section",
		Long: `Set several options of one section and save the file.

Pairs with an empty value are skipped.

Examples:
  cfg set-many server host=example.com port=8080`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parsePairs(args[1:])
			if err != nil {
				return err
			}

			app, err := provider.Get()
			if err != nil {
				return err
			}

			res, err := app.Store.SetMany(args[0], values)
			if err != nil {
				return fmt.Errorf("setting options in %s: %w", args[0], err)
			}
			app.Log.Info().Str("section", args[0]).Int("options", len(values)).Msg("options set")
			return report(app, res, true)
		},
	}

	return cmd
}

// parsePairs splits "option=value" arguments. The value may itself contain "=".
func parsePairs(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		option, value, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(option) == "" {
			return nil, fmt.Errorf("invalid pair %q (want option=value)", arg)
		}
		values[option] = value
	}
	return values, nil
}
