package configstore

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Value quotes understood by the loader. A quoted value runs from the
// opening quote to the last quote on the line that closes it.
var valueQuotes = []string{`"""`, "`"}

// encode renders the document as "[section]" headers and "key = value"
// lines, choosing for every value a form that loadOptions reads back
// unchanged. ini.File.WriteTo quotes padded values with '"', which the
// loader keeps once surrounding quotes are preserved.
func encode(f *ini.File) ([]byte, error) {
	var buf bytes.Buffer
	sections := f.Sections()
	for i, sec := range sections {
		isDefault := sec.Name() == ini.DefaultSection
		if isDefault && len(sec.Keys()) == 0 {
			continue
		}

		writeComment(&buf, sec.Comment)
		if !isDefault {
			buf.WriteString("[" + sec.Name() + "]\n")
		}
		for _, key := range sec.Keys() {
			value, ok := encodeValue(key.Value())
			if !ok {
				return nil, fmt.Errorf("%s.%s: %w", sec.Name(), key.Name(), ErrUnencodableValue)
			}
			writeComment(&buf, key.Comment)
			buf.WriteString(encodeKey(key.Name()) + " = " + value + "\n")
		}

		if i < len(sections)-1 {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}

func writeComment(buf *bytes.Buffer, comment string) {
	for _, line := range strings.Split(comment, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] != '#' && line[0] != ';' {
			line = "; " + line
		}
		buf.WriteString(line + "\n")
	}
}

// encodeKey quotes names the loader would otherwise split at a delimiter.
func encodeKey(name string) string {
	switch {
	case strings.ContainsAny(name, `"=:`):
		return "`" + name + "`"
	case strings.Contains(name, "`"):
		return `"""` + name + `"""`
	}
	return name
}

// encodeValue returns the on-disk form of value, or false when no form
// reads back as value.
func encodeValue(value string) (string, bool) {
	lines := strings.Split(value, "\n")
	if isPlain(lines) {
		return value, true
	}
	for _, quote := range valueQuotes {
		if canQuote(lines, quote) {
			return quote + value + quote, true
		}
	}
	return "", false
}

// isPlain reports whether lines can be written unquoted: a trimmed first
// line that does not open a quote, followed by indented continuation lines.
func isPlain(lines []string) bool {
	first := lines[0]
	if first != strings.TrimSpace(first) {
		return false
	}
	for _, quote := range valueQuotes {
		if strings.HasPrefix(first, quote) {
			return false
		}
	}
	for _, line := range lines[1:] {
		if line == "" || !strings.ContainsRune("\t\f ", rune(line[0])) {
			return false
		}
	}
	return true
}

// canQuote reports whether quote can wrap lines: only the last line may
// contain it.
func canQuote(lines []string, quote string) bool {
	for _, line := range lines[:len(lines)-1] {
		if strings.Contains(line, quote) {
			return false
		}
	}
	return true
}

// validSection reports whether name survives a save as a section header.
func validSection(name string) bool {
	return !strings.Contains(name, "\n")
}

// validOption reports whether a normalized option name reads back as the
// same option rather than as a comment, a section header or an
// auto-numbered key.
func validOption(option string) bool {
	if option == "-" || strings.ContainsAny(option, "\n`") {
		return false
	}
	switch option[0] {
	case '#', ';', '[':
		return false
	}
	return true
}
