// Package style holds the paintable colors of a grid pane and loads
// them from YAML theme files.
package style

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Theme is the set of colors the paint pipeline draws with.
//
// Void is the background-absence color filled under every dirty
// rectangle before anything else; it is what shows when no model or
// oracles are attached or the dirty rect lies beyond the grid.
type Theme struct {
	Void       color.RGBA
	Background color.RGBA
	GridLine   color.RGBA
	Text       color.RGBA
}

// Default returns the built-in theme: white void and background, light
// gray grid lines, near-black text.
func Default() *Theme {
	return &Theme{
		Void:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Background: color.RGBA{R: 0xfc, G: 0xfc, B: 0xfc, A: 0xff},
		GridLine:   color.RGBA{R: 0xd4, G: 0xd4, B: 0xd4, A: 0xff},
		Text:       color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
	}
}

// themeFile is the YAML shape of a theme. All fields are optional hex
// colors ("#rgb" or "#rrggbb"); missing fields keep their defaults.
type themeFile struct {
	Void       string `yaml:"void"`
	Background string `yaml:"background"`
	GridLine   string `yaml:"grid_line"`
	Text       string `yaml:"text"`
}

// Load reads a YAML theme. Unset fields fall back to Default values.
func Load(r io.Reader) (*Theme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("style: read theme: %w", err)
	}
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("style: parse theme: %w", err)
	}

	t := Default()
	for _, field := range []struct {
		hex string
		dst *color.RGBA
	}{
		{file.Void, &t.Void},
		{file.Background, &t.Background},
		{file.GridLine, &t.GridLine},
		{file.Text, &t.Text},
	} {
		if field.hex == "" {
			continue
		}
		c, err := colorful.Hex(field.hex)
		if err != nil {
			return nil, fmt.Errorf("style: color %q: %w", field.hex, err)
		}
		r, g, b := c.RGB255()
		*field.dst = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return t, nil
}

// LoadFile reads a YAML theme from disk.
func LoadFile(path string) (*Theme, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("style: open theme: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f)
}
