package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// newTestViper returns a viper bound to a fresh flag set, parsed from args.
func newTestViper(t *testing.T, args ...string) *viper.Viper {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))

	v := NewViper()
	require.NoError(t, BindFlags(v, flags))
	return v
}

func TestDefault(t *testing.T) {
	d := Default()
	require.Equal(t, ".", d.Dir)
	require.Equal(t, "config", d.Name)
	require.False(t, d.JSON)
	require.Equal(t, "warn", d.LogLevel)
	require.NoError(t, d.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := Load(newTestViper(t))
	require.NoError(t, err)
	require.Equal(t, Default(), s)
}

func TestLoad_Flags(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := Load(newTestViper(t, "--dir", "/etc/app", "--name", "settings", "--json", "--log-level", "debug"))
	require.NoError(t, err)
	require.Equal(t, Settings{Dir: "/etc/app", Name: "settings", JSON: true, LogLevel: "debug"}, s)
}

func TestLoad_InvalidName(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(newTestViper(t, "--name", "a/b"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "path separator")
}

func TestSettingsPaths(t *testing.T) {
	s := Settings{Dir: "/srv", Name: "app"}
	p := s.Paths()
	require.Equal(t, "/srv", p.Dir)
	require.Equal(t, filepath.Join("/srv", "app.cfg"), p.File)
	require.Equal(t, filepath.Join("/srv", "app.cfg.bak"), p.Backup)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Settings
		wantErr string
	}{
		{"ok", Settings{Dir: ".", Name: "c"}, ""},
		{"empty dir", Settings{Dir: " ", Name: "c"}, "dir: must not be empty"},
		{"empty name", Settings{Dir: ".", Name: ""}, "name: must not be empty"},
		{"backslash", Settings{Dir: ".", Name: `a\b`}, "path separator"},
		{"bad level", Settings{Dir: ".", Name: "c", LogLevel: "loud"}, "log-level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	err := Settings{Dir: "", Name: "", LogLevel: "loud"}.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "dir:")
	require.Contains(t, err.Error(), "name:")
	require.Contains(t, err.Error(), "log-level:")
}
