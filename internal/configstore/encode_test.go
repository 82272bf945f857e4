package configstore

import "testing"

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   string
		wantOK bool
	}{
		{"plain", "value", "value", true},
		{"empty", "", "", true},
		{"quotes kept literal", `"quoted"`, `"quoted"`, true},
		{"indented continuation", "a\n  b", "a\n  b", true},
		{"padded", " a ", `""" a """`, true},
		{"unindented second line", "a\nb", "\"\"\"a\nb\"\"\"", true},
		{"leading backtick", "`a", "\"\"\"`a\"\"\"", true},
		{"triple quote then newline", "a\"\"\"\nb", "`a\"\"\"\nb`", true},
		{"both quotes before last line", "a\"\"\"\nb`\nc", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := encodeValue(tt.value)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("encodeValue(%q) = %q, %v; want %q, %v", tt.value, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestEncodeKey(t *testing.T) {
	tests := map[string]string{
		"plain": "plain",
		"a=b":   "`a=b`",
		"a:b":   "`a:b`",
		`a"b`:   "`a\"b`",
	}
	for name, want := range tests {
		if got := encodeKey(name); got != want {
			t.Errorf("encodeKey(%q) = %q, want %q", name, got, want)
		}
	}
}
