package config

import (
	"path/filepath"

	"cfgstore/internal/configstore"
)

// Paths captures resolved file locations.
type Paths struct {
	Dir    string // directory holding the config file
	File   string // <dir>/<name>.cfg
	Backup string // <dir>/<name>.cfg.bak
}

// Paths resolves the file locations for s.
func (s Settings) Paths() Paths {
	file := filepath.Join(s.Dir, s.Name+configstore.Extension)
	return Paths{
		Dir:    s.Dir,
		File:   file,
		Backup: file + configstore.BackupSuffix,
	}
}
