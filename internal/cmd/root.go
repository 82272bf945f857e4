package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"cfgstore/internal/config"
	"cfgstore/internal/configstore"
	xlog "cfgstore/internal/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once sync.Once
	app  *App
	err  error

	// Settings source, bound to the root command's persistent flags.
	Viper *viper.Viper
	Out   io.Writer
	Err   io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// JSON reports whether JSON output was requested, without opening the store.
func (p *AppProvider) JSON() bool {
	if p.app != nil {
		return p.app.JSON
	}
	return p.Viper != nil && p.Viper.GetBool(config.KeyJSON)
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app: app,
		Out: app.Out,
		Err: app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	v := p.Viper
	if v == nil {
		v = config.NewViper()
	}
	settings, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	xlog.Configure(xlog.Config{Level: settings.LogLevel, Output: errOut})
	logger := xlog.WithComponent("cli")

	store, err := configstore.Open(settings.Dir, settings.Name,
		configstore.WithLogger(xlog.WithComponent("configstore")))
	if err != nil {
		return nil, err
	}
	paths := settings.Paths()
	logger.Debug().Str("path", paths.File).Str("backup", paths.Backup).Msg("store opened")

	return &App{
		Store:    store,
		Settings: settings,
		Log:      logger,
		Out:      out,
		Err:      errOut,
		JSON:     settings.JSON,
	}, nil
}

// Execute runs the CLI.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := &AppProvider{
		Viper: config.NewViper(),
		Out:   os.Stdout,
		Err:   os.Stderr,
	}

	rootCmd, err := newRootCmd(provider)
	if err != nil {
		return err
	}
	return rootCmd.ExecuteContext(ctx)
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) (*cobra.Command, error) {
	rootCmd := &cobra.Command{
		Use:   "cfg",
		Short: "Read and edit sectioned config files",
		Long: `cfg reads and edits one sectioned config file ("[section]" headers,
"option = value" lines) stored at <dir>/<name>.cfg.

Settings come from flags, then CFG_* environment variables (also read
from .env.local and .env), then defaults.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider's settings
	config.RegisterFlags(rootCmd.PersistentFlags())
	if provider.Viper != nil {
		if err := config.BindFlags(provider.Viper, rootCmd.PersistentFlags()); err != nil {
			return nil, err
		}
	}

	// Register all commands
	rootCmd.AddCommand(newGetCmd(provider))
	rootCmd.AddCommand(newSetCmd(provider))
	rootCmd.AddCommand(newSetManyCmd(provider))
	rootCmd.AddCommand(newListCmd(provider))
	rootCmd.AddCommand(newRemoveCmd(provider))
	rootCmd.AddCommand(newDumpCmd(provider))
	rootCmd.AddCommand(newBackupCmd(provider))
	rootCmd.AddCommand(newWatchCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd, nil
}
