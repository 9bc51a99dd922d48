package sprite

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/glyphkit/glyphkit/internal/core"
)

// loadOptions configures the INI parser for sprite files. The pixels block
// is an indented multi-line value, the style Python's configparser writes.
var loadOptions = ini.LoadOptions{
	AllowPythonMultilineValues: true,
}

// Load reads a sprite from an INI file on disk.
func Load(path string) (*Sprite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sprite: %s: %w", path, err)
	}
	return s, nil
}

// Parse reads a sprite from raw INI data. A missing [sprite] section or
// pixels key is surfaced to the caller, not papered over with a default.
func Parse(data []byte) (*Sprite, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parse ini: %w", err)
	}

	sec, err := f.GetSection("sprite")
	if err != nil {
		return nil, fmt.Errorf("missing [sprite] section: %w", err)
	}

	pixelsKey, err := sec.GetKey("pixels")
	if err != nil {
		return nil, fmt.Errorf("missing pixels key: %w", err)
	}

	name := sec.Key("name").String()

	rows := parsePixels(pixelsKey.String())
	if len(rows) == 0 {
		return nil, fmt.Errorf("pixels block is empty")
	}

	colors, err := parseColors(f)
	if err != nil {
		return nil, err
	}

	return &Sprite{Name: name, rows: rows, colors: colors}, nil
}

// parsePixels splits the multi-line pixels value into rune rows, dropping
// leading blank lines left behind by the "pixels =" line itself and
// trimming the indentation the INI format requires.
func parsePixels(raw string) [][]rune {
	lines := strings.Split(raw, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []rune(strings.TrimSpace(line)))
	}
	return rows
}

// parseColors collects every single-rune section as a color key. Multi-rune
// section names (like [sprite]) are not colors and are ignored.
func parseColors(f *ini.File) (map[rune]core.Color, error) {
	colors := make(map[rune]core.Color)
	for _, sec := range f.Sections() {
		name := []rune(sec.Name())
		if len(name) != 1 {
			continue
		}

		r, err := colorComponent(sec, "red")
		if err != nil {
			return nil, err
		}
		g, err := colorComponent(sec, "green")
		if err != nil {
			return nil, err
		}
		b, err := colorComponent(sec, "blue")
		if err != nil {
			return nil, err
		}

		colors[name[0]] = core.RGB(uint8(r), uint8(g), uint8(b))
	}
	return colors, nil
}

// colorComponent reads one RGB component from a color section, enforcing
// the 8-bit range.
func colorComponent(sec *ini.Section, key string) (int, error) {
	k, err := sec.GetKey(key)
	if err != nil {
		return 0, fmt.Errorf("color [%s] missing %s: %w", sec.Name(), key, err)
	}
	v, err := k.Int()
	if err != nil {
		return 0, fmt.Errorf("color [%s] %s: %w", sec.Name(), key, err)
	}
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("color [%s] %s = %d out of range 0-255", sec.Name(), key, v)
	}
	return v, nil
}
