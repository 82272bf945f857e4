package cmd

import (
	"fmt"
	"strings"

	"cfgstore/internal/configstore"

	"github.com/spf13/cobra"
)

// formatRaw prints the file as it is on disk.
const formatRaw = "raw"

// newDumpCmd creates the dump command.
func newDumpCmd(provider *AppProvider) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the whole config file",
		Long: `Print the whole config file.

The default "raw" format prints the file exactly as it is on disk.
The other formats render the loaded sections. ini and yaml keep file
order; json and toml sort by name. --json applies to the raw format only.

Examples:
  cfg dump
  cfg dump --format yaml
  cfg dump --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var f configstore.Format
			if format != formatRaw {
				parsed, err := configstore.ParseFormat(format)
				if err != nil {
					return err
				}
				f = parsed
			}

			app, err := provider.Get()
			if err != nil {
				return err
			}

			if f == "" {
				res, err := app.Store.GetAll()
				if err != nil {
					return err
				}
				return report(app, res, false)
			}

			data, err := app.Store.Export(f)
			if err != nil {
				return err
			}
			_, err = app.Out.Write(data)
			return err
		},
	}

	names := []string{formatRaw}
	for _, f := range configstore.Formats {
		names = append(names, string(f))
	}
	cmd.Flags().StringVar(&format, "format", formatRaw, fmt.Sprintf("Output format (%s)", strings.Join(names, ", ")))

	return cmd
}
