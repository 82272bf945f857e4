// Package configstore wraps a single sectioned key-value file
// ("[section]" headers, "option = value" lines) with get/set/list/remove
// and backup operations.
//
// Every operation returns a Result: lookups of missing sections or options
// are reported as a failure Result, never as an error. The error return is
// reserved for I/O faults.
//
// Option names are case-insensitive and stored lower-cased. Section names
// are case-sensitive. The codec's DEFAULT section is not a user section.
package configstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
	"gopkg.in/ini.v1"
)

const (
	// Extension is appended to the store name to form the file name.
	Extension = ".cfg"
	// BackupSuffix is appended to the file path to form the backup path.
	BackupSuffix = ".bak"
)

// loadOptions makes the codec forgiving and literal: unknown lines are
// skipped; quotes around a value, "#", ";" and a trailing backslash are part
// of the value; indented lines continue the value above them.
var loadOptions = ini.LoadOptions{
	InsensitiveKeys:            true,
	IgnoreInlineComment:        true,
	IgnoreContinuation:         true,
	SkipUnrecognizableLines:    true,
	PreserveSurroundedQuote:    true,
	AllowPythonMultilineValues: true,
}

// Store is a sectioned configuration file loaded into memory.
// A Store is not safe for concurrent use.
type Store struct {
	path string
	file *ini.File
	log  zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load, save and backup events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// Open loads <dir>/<name>.cfg, creating an empty file if it does not exist.
func Open(dir, name string, opts ...Option) (*Store, error) {
	s := &Store{
		path: filepath.Join(dir, name+Extension),
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_RDONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("creating config file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("creating config file: %w", err)
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the config file.
func (s *Store) Path() string {
	return s.path
}

// BackupPath returns the location of the backup copy.
func (s *Store) BackupPath() string {
	return s.path + BackupSuffix
}

// Reload replaces the in-memory document with the current file contents.
// A file the codec cannot parse loads as an empty document.
func (s *Store) Reload() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	file, err := ini.LoadSources(loadOptions, raw)
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("malformed config file, loading it as empty")
		file = ini.Empty(loadOptions)
	}
	s.file = file
	s.log.Debug().Str("path", s.path).Int("sections", len(s.sectionNames())).Msg("config loaded")
	return nil
}

// Save writes the in-memory document to the config file, replacing it.
func (s *Store) Save() error {
	data, err := encode(s.file)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := writeFile(s.path, data); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	s.log.Debug().Str("path", s.path).Int("bytes", len(data)).Msg("config saved")
	return nil
}

// SetOne sets option in section to value and saves. The section is created
// if it does not exist. Names and values that would not read back unchanged
// are refused before anything is modified.
func (s *Store) SetOne(section, option, value string) (Result, error) {
	if isReserved(section) {
		return Result{}, fmt.Errorf("section %q: %w", section, ErrReservedSection)
	}
	if !validSection(section) {
		return Result{}, fmt.Errorf("section %q: %w", section, ErrInvalidName)
	}
	option = normalizeOption(option)
	if option == "" {
		return Result{}, ErrEmptyOption
	}
	if !validOption(option) {
		return Result{}, fmt.Errorf("option %q: %w", option, ErrInvalidName)
	}
	if _, ok := encodeValue(value); !ok {
		return Result{}, fmt.Errorf("%s.%s: %w", section, option, ErrUnencodableValue)
	}

	details := MsgValueSet
	sec, err := s.file.GetSection(section)
	if err != nil {
		sec, err = s.file.NewSection(section)
		if err != nil {
			return Result{}, fmt.Errorf("creating section %q: %w", section, err)
		}
		details += MsgSectionCreated
	}
	if hasOption(sec, option) {
		sec.Key(option).SetValue(value)
	} else if _, err := sec.NewKey(option, value); err != nil {
		return Result{}, fmt.Errorf("setting %s.%s: %w", section, option, err)
	}

	if err := s.Save(); err != nil {
		return Result{}, err
	}
	return success(details), nil
}

// SetMany sets every option in values whose value is non-empty, in option
// name order. Keys naming the same option in different case are set once,
// to the value of the key that sorts last ("host" over "Host"). Earlier
// sets are kept if a later one fails.
func (s *Store) SetMany(section string, values map[string]string) (Result, error) {
	keys := make([]string, 0, len(values))
	for key, value := range values {
		if value == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	merged := make(map[string]string, len(keys))
	for _, key := range keys {
		merged[normalizeOption(key)] = values[key]
	}
	options := make([]string, 0, len(merged))
	for option := range merged {
		options = append(options, option)
	}
	sort.Strings(options)

	if len(options) == 0 {
		return success(MsgNoValues), nil
	}

	msgs := make([]string, 0, len(options))
	for _, option := range options {
		res, err := s.SetOne(section, option, merged[option])
		if err != nil {
			return Result{}, err
		}
		msgs = append(msgs, option+": "+res.Message())
	}
	return success(strings.Join(msgs, "; ")), nil
}

// Get returns the value of option in section. With an empty option it
// returns every option of the section as a map.
func (s *Store) Get(section, option string) (Result, error) {
	sec := s.section(section)
	if sec == nil {
		return failure(MsgSectionMissing), nil
	}
	values := optionMap(sec)
	if option == "" {
		return success(values), nil
	}
	value, ok := values[normalizeOption(option)]
	if !ok {
		return failure(MsgOptionMissing), nil
	}
	return success(value), nil
}

// List returns the section names in file order, or with a section the
// option names of that section.
func (s *Store) List(section string) (Result, error) {
	if section == "" {
		return success(s.sectionNames()), nil
	}
	sec := s.section(section)
	if sec == nil {
		return failure(MsgSectionMissing), nil
	}
	return success(sec.KeyStrings()), nil
}

// Remove deletes option from section, or the whole section when option is
// empty, and saves.
func (s *Store) Remove(section, option string) (Result, error) {
	sec := s.section(section)
	if sec == nil {
		return failure(MsgRemoveMissing), nil
	}

	if option == "" {
		s.file.DeleteSection(section)
	} else {
		option = normalizeOption(option)
		if !hasOption(sec, option) {
			return failure(MsgRemoveMissing), nil
		}
		sec.DeleteKey(option)
	}

	if err := s.Save(); err != nil {
		return Result{}, err
	}
	return success(MsgRemoved), nil
}

// GetAll returns the raw file contents as they are on disk.
func (s *Store) GetAll() (Result, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return Result{}, fmt.Errorf("reading config file: %w", err)
	}
	return success(string(raw)), nil
}

// section returns the named user section, or nil.
func (s *Store) section(name string) *ini.Section {
	if isReserved(name) {
		return nil
	}
	sec, err := s.file.GetSection(name)
	if err != nil {
		return nil
	}
	return sec
}

// sectionNames returns user section names in file order.
func (s *Store) sectionNames() []string {
	names := make([]string, 0, len(s.file.Sections()))
	for _, name := range s.file.SectionStrings() {
		if isReserved(name) {
			continue
		}
		names = append(names, name)
	}
	return names
}

func isReserved(section string) bool {
	return section == "" || section == ini.DefaultSection
}

func normalizeOption(option string) string {
	return strings.ToLower(strings.TrimSpace(option))
}

// optionMap copies the options of sec into a fresh map.
func optionMap(sec *ini.Section) map[string]string {
	out := make(map[string]string, len(sec.Keys()))
	for _, key := range sec.Keys() {
		out[key.Name()] = key.Value()
	}
	return out
}

func hasOption(sec *ini.Section, option string) bool {
	for _, name := range sec.KeyStrings() {
		if name == option {
			return true
		}
	}
	return false
}

// writeFile replaces path with data via a synced temp file and rename.
func writeFile(path string, data []byte) error {
	return renameio.WriteFile(path, data, 0644, renameio.WithExistingPermissions())
}
