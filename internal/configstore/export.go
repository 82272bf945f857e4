package configstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names an export encoding.
type Format string

const (
	FormatINI  Format = "ini"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatINI, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// Export renders the in-memory document. INI and YAML keep file order;
// JSON and TOML sort sections and options by name.
func (s *Store) Export(format Format) ([]byte, error) {
	switch format {
	case FormatINI:
		data, err := encode(s.file)
		if err != nil {
			return nil, fmt.Errorf("encoding ini: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(s.snapshot(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(s.yamlNode())
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return data, nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(s.snapshot()); err != nil {
			return nil, fmt.Errorf("encoding toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// snapshot copies the user sections into plain maps.
func (s *Store) snapshot() map[string]map[string]string {
	out := make(map[string]map[string]string)
	for _, name := range s.sectionNames() {
		out[name] = optionMap(s.section(name))
	}
	return out
}

// yamlNode builds a mapping node so section and option order survive.
func (s *Store) yamlNode() *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range s.sectionNames() {
		sec := s.section(name)
		options := &yaml.Node{Kind: yaml.MappingNode}
		for _, key := range sec.Keys() {
			options.Content = append(options.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key.Name()},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key.Value()},
			)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			options,
		)
	}
	return root
}
