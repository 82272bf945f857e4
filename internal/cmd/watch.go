package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// newWatchCmd creates the watch command.
func newWatchCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the config file every time it changes",
		Long: `Print the config file, then print it again every time it changes,
until interrupted.

Examples:
  cfg watch
  cfg watch --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			printAll := func() error {
				res, err := app.Store.GetAll()
				if err != nil {
					return err
				}
				return report(app, res, false)
			}

			if err := printAll(); err != nil {
				return err
			}
			return watchFile(cmd.Context(), app.Store.Path(), app.Log, nil, printAll)
		},
	}

	return cmd
}

// watchFile calls onChange each time path is written or replaced, until ctx
// is done. The parent directory is watched because saves replace the file
// by rename. ready, if non-nil, is closed once the watch is registered.
func watchFile(ctx context.Context, path string, logger zerolog.Logger, ready chan<- struct{}, onChange func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Debug().Str("path", path).Msg("watching config file")
	if ready != nil {
		close(ready)
	}

	want := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			logger.Debug().Msg("config watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != want {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug().Str("op", event.Op.String()).Msg("config file changed")
			if err := onChange(); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("config watcher error")
		}
	}
}
