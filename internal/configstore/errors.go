package configstore

import "errors"

var (
	// ErrReservedSection is returned when a write targets the codec's
	// default section or an empty section name.
	ErrReservedSection = errors.New("reserved section name")

	// ErrEmptyOption is returned by SetOne when option is empty.
	ErrEmptyOption = errors.New("option name cannot be empty")

	// ErrInvalidName is returned by SetOne for a section or option name that
	// would read back as something else: a comment, a section header or a
	// name broken across lines.
	ErrInvalidName = errors.New("invalid section or option name")

	// ErrUnencodableValue is returned by SetOne for a multi-line value that
	// no on-disk form reads back unchanged.
	ErrUnencodableValue = errors.New("value cannot be written to the config file")

	// ErrUnknownFormat is returned for an unsupported export format.
	ErrUnknownFormat = errors.New("unknown export format")
)
