package cmd

import (
	"fmt"

	"cfgstore/internal/configstore"

	"github.com/spf13/cobra"
)

// newBackupCmd creates the backup command.
func newBackupCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup <create|restore>",
		Short: "Create or restore the backup copy",
		Long: fmt.Sprintf(`Copy the config file to <name>.cfg%[1]s, or copy the backup back.

  %[2]s   copy the config file over the backup
  %[3]s  copy the backup over the config file

Examples:
  cfg backup create
  cfg backup restore`, configstore.BackupSuffix, configstore.BackupCreate, configstore.BackupRestore),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			res, err := app.Store.Backup(args[0])
			if err != nil {
				return fmt.Errorf("backup %s: %w", args[0], err)
			}
			if res.OK() {
				app.Log.Info().Str("action", args[0]).Str("backup", app.Store.BackupPath()).Msg("backup")
			}
			return report(app, res, true)
		},
	}

	return cmd
}
