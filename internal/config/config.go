// Package config resolves the settings of the cfg command: which file it
// operates on and how it reports results.
package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys. Each is also a persistent flag name and, upper-cased with
// "-" replaced by "_" and prefixed with CFG_, an environment variable.
const (
	KeyDir      = "dir"
	KeyName     = "name"
	KeyJSON     = "json"
	KeyLogLevel = "log-level"
)

// Settings is the resolved CLI configuration.
type Settings struct {
	Dir      string // directory holding the config file
	Name     string // file name without the .cfg extension
	JSON     bool   // print results as JSON
	LogLevel string
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		Dir:      ".",
		Name:     "config",
		LogLevel: "warn",
	}
}

// RegisterFlags adds the persistent flags for every setting to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Default()
	flags.String(KeyDir, d.Dir, "Directory containing the config file")
	flags.String(KeyName, d.Name, "Config file name without the .cfg extension")
	flags.Bool(KeyJSON, d.JSON, "Output results in JSON format")
	flags.String(KeyLogLevel, d.LogLevel, "Log level (debug, info, warn, error)")
}

// BindFlags makes flags the highest-precedence source for v.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyDir, KeyName, KeyJSON, KeyLogLevel} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Load reads the settings from v and validates them.
// Precedence: changed flag > CFG_* environment > .env files > default.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		Dir:      v.GetString(KeyDir),
		Name:     v.GetString(KeyName),
		JSON:     v.GetBool(KeyJSON),
		LogLevel: v.GetString(KeyLogLevel),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
