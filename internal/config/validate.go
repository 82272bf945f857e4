package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Validate checks every setting and returns an error describing every
// invalid value found, or nil if all values are valid.
func (s Settings) Validate() error {
	var errs []string

	if strings.TrimSpace(s.Dir) == "" {
		errs = append(errs, "dir: must not be empty")
	}

	switch {
	case strings.TrimSpace(s.Name) == "":
		errs = append(errs, "name: must not be empty")
	case strings.ContainsAny(s.Name, `/\`):
		errs = append(errs, fmt.Sprintf("name: %q contains a path separator", s.Name))
	}

	if s.LogLevel != "" {
		if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
			errs = append(errs, fmt.Sprintf("log-level: invalid value %q", s.LogLevel))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid settings:\n  %s", strings.Join(errs, "\n  "))
}
