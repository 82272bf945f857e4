package configstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Backup actions.
const (
	BackupCreate  = "create"
	BackupRestore = "restore"
)

// Backup copies the config file to its backup path ("create") or the backup
// back over the config file ("restore").
//
// Restore does not touch the in-memory document. Call Reload, or Open the
// store again, to see the restored values.
func (s *Store) Backup(action string) (Result, error) {
	switch action {
	case BackupCreate:
		return s.copyFile(s.path, s.BackupPath(), MsgBackupCreated)
	case BackupRestore:
		return s.copyFile(s.BackupPath(), s.path, MsgBackupRestored)
	default:
		return failure(MsgInvalidAction), nil
	}
}

func (s *Store) copyFile(src, dst, msg string) (Result, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return failure(fmt.Sprintf("%s doesn't exist", src)), nil
		}
		return Result{}, fmt.Errorf("reading %s: %w", src, err)
	}
	if err := writeFile(dst, data); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", dst, err)
	}
	s.log.Debug().Str("src", src).Str("dst", dst).Int("bytes", len(data)).Msg("config copied")
	return success(msg), nil
}
