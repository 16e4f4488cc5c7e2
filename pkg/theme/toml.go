package theme

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/charlotte/pkg/color"
)

// thTOMLTheme is the TOML-serializable representation of a Theme:
//
//	name = "charlotte-dark"
//
//	[colors]
//	red = "#ff4050"
type thTOMLTheme struct {
	Name   string            `toml:"name"`
	Colors map[string]string `toml:"colors"`
}

// LoadFromTOML parses a TOML theme definition from raw bytes. Unknown keys
// and malformed colours are rejected.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	md, err := toml.Decode(string(data), &tt)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Theme{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidTheme, strings.Join(keys, ", "))
	}

	t := Theme{
		Name:   strings.ToLower(tt.Name),
		Colors: make(map[string]color.Color, len(tt.Colors)),
	}
	for name, hex := range tt.Colors {
		c, err := color.Parse(hex)
		if err != nil {
			return Theme{}, fmt.Errorf("%w: color %q: %w", ErrInvalidTheme, name, err)
		}
		t.Colors[strings.ToLower(name)] = c
	}

	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads and parses a TOML theme file.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := LoadFromTOML(data)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	tt := thTOMLTheme{
		Name:   t.Name,
		Colors: make(map[string]string, len(t.Colors)),
	}
	for name, c := range t.Colors {
		tt.Colors[name] = c.String()
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}
