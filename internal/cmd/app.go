// Package cmd implements the cfg command-line interface.
package cmd

import (
	"io"
	"os"

	"cfgstore/internal/config"
	"cfgstore/internal/configstore"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// App holds application state shared across commands.
type App struct {
	Store    *configstore.Store
	Settings config.Settings
	Log      zerolog.Logger
	Out      io.Writer
	Err      io.Writer
	JSON     bool // output in JSON format
}

// SuccessColor returns the string wrapped in green ANSI codes if stdout is a terminal,
// otherwise returns the string unchanged.
func (a *App) SuccessColor(s string) string {
	if isTerminal(a.Out) {
		return "\033[32m" + s + "\033[0m"
	}
	return s
}

// WarnColor returns the string wrapped in orange ANSI codes if stderr is a terminal,
// otherwise returns the string unchanged.
func (a *App) WarnColor(s string) string {
	if isTerminal(a.Err) {
		return "\033[38;5;214m" + s + "\033[0m"
	}
	return s
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
