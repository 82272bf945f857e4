package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment variable names for cfg settings.
const (
	EnvPrefix   = "CFG"
	EnvDir      = "CFG_DIR"       // Directory containing the config file
	EnvName     = "CFG_NAME"      // Config file name without extension
	EnvJSON     = "CFG_JSON"      // Enable JSON output ("1" or "true")
	EnvLogLevel = "CFG_LOG_LEVEL" // Log level
)

// DotEnvFiles are loaded into the environment by NewViper, earlier files
// taking precedence. Variables already set in the environment are kept.
var DotEnvFiles = []string{".env.local", ".env"}

// NewViper loads the .env files and returns a viper instance that reads
// CFG_* environment variables and falls back to Default.
func NewViper() *viper.Viper {
	for _, f := range DotEnvFiles {
		_ = godotenv.Load(f) // missing files are fine
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault(KeyDir, d.Dir)
	v.SetDefault(KeyName, d.Name)
	v.SetDefault(KeyJSON, d.JSON)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	return v
}
