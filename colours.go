package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/gjson"
)

const coloursFile = "colours.json"

// Palette is the fixed set of colours used to draw the three lines.
type Palette struct {
	Background          color.RGBA
	InactiveBackground  color.RGBA
	ActiveBackground    color.RGBA
	InactiveForeground  color.RGBA
	ActiveForeground    color.RGBA
	CorrectForeground   color.RGBA
	IncorrectForeground color.RGBA
}

func defaultPalette() Palette {
	return Palette{
		Background:          color.RGBA{0x1e, 0x1e, 0x2e, 0xff},
		InactiveBackground:  color.RGBA{0x31, 0x32, 0x44, 0xff},
		ActiveBackground:    color.RGBA{0x45, 0x47, 0x5a, 0xff},
		InactiveForeground:  color.RGBA{0x7f, 0x84, 0x9c, 0xff},
		ActiveForeground:    color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
		CorrectForeground:   color.RGBA{0x0f, 0x89, 0x0b, 0xff},
		IncorrectForeground: color.RGBA{0xb2, 0x11, 0x14, 0xff},
	}
}

// loadColours reads the colour config. Missing keys keep their defaults.
func loadColours(path string) (Palette, error) {
	palette := defaultPalette()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return palette, nil
	}
	if err != nil {
		return palette, fmt.Errorf("read colours: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return palette, fmt.Errorf("colours %s: invalid JSON", path)
	}

	fields := []struct {
		key string
		dst *color.RGBA
	}{
		{"background", &palette.Background},
		{"inactive_background", &palette.InactiveBackground},
		{"active_background", &palette.ActiveBackground},
		{"inactive_foreground", &palette.InactiveForeground},
		{"active_foreground", &palette.ActiveForeground},
		{"correct_foreground", &palette.CorrectForeground},
		{"incorrect_foreground", &palette.IncorrectForeground},
	}
	for _, field := range fields {
		value := gjson.GetBytes(data, field.key)
		if !value.Exists() {
			continue
		}
		c, err := parseRGBA(value)
		if err != nil {
			return palette, fmt.Errorf("colours %s: %s: %w", path, field.key, err)
		}
		*field.dst = c
	}

	return palette, nil
}

// parseRGBA accepts [r, g, b] or [r, g, b, a] with components in 0..255.
func parseRGBA(value gjson.Result) (color.RGBA, error) {
	if !value.IsArray() {
		return color.RGBA{}, fmt.Errorf("expected an RGB(A) array, got %s", value.Raw)
	}
	parts := value.Array()
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, fmt.Errorf("expected 3 or 4 components, got %d", len(parts))
	}

	components := [4]uint8{0, 0, 0, 0xff}
	for i, part := range parts {
		n := part.Int()
		if part.Type != gjson.Number || n < 0 || n > 255 {
			return color.RGBA{}, fmt.Errorf("component %d out of range: %s", i, part.Raw)
		}
		components[i] = uint8(n)
	}
	return color.RGBA{components[0], components[1], components[2], components[3]}, nil
}

// hexColour converts to a lipgloss colour; alpha is ignored on the terminal.
func hexColour(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
