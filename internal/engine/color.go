package engine

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Palette is cycled through when new shapes are placed and when the
// inspector's color button is pressed.
var Palette = []string{
	"#6c63ff", // indigo
	"#a78bfa", // light purple
	"#38bdf8", // sky
	"#34d399", // emerald
	"#fbbf24", // amber
	"#f87171", // rose
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (rl.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return rl.Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return rl.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// HexColor formats c as "#rrggbb", dropping alpha.
func HexColor(c rl.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NextPaletteColor returns the palette entry after current, wrapping.
// Colors outside the palette restart at the first entry.
func NextPaletteColor(current string) string {
	for i, c := range Palette {
		if strings.EqualFold(c, current) {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}
