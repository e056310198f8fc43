// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"
)

// HexColor is a color written as "#rrggbb" or "#rrggbbaa" in the defs file.
type HexColor struct {
	color.RGBA
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	rgba, err := ParseHexColor(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	c.RGBA = rgba
	return nil
}

// ParseHexColor parses "#rrggbb" (alpha 255) or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b uint8
	a := uint8(255)
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
		}
	default:
		return color.RGBA{}, fmt.Errorf("bad color %q: want #rrggbb", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
