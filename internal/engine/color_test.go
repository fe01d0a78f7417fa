package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want rl.Color
		err  bool
	}{
		{"#6c63ff", rl.Color{R: 108, G: 99, B: 255, A: 255}, false},
		{"6c63ff80", rl.Color{R: 108, G: 99, B: 255, A: 128}, false},
		{"#fff", rl.Color{}, true},
		{"#zzzzzz", rl.Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseHexColor(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	for _, hex := range Palette {
		c, err := ParseHexColor(hex)
		if err != nil {
			t.Fatal(err)
		}
		if HexColor(c) != hex {
			t.Errorf("HexColor round trip: %s -> %s", hex, HexColor(c))
		}
	}
}

func TestNextPaletteColor(t *testing.T) {
	if got := NextPaletteColor(Palette[0]); got != Palette[1] {
		t.Errorf("Expected %s, got %s", Palette[1], got)
	}
	if got := NextPaletteColor(Palette[len(Palette)-1]); got != Palette[0] {
		t.Error("Palette should wrap")
	}
	if got := NextPaletteColor("#123456"); got != Palette[0] {
		t.Error("Unknown colors should restart the palette")
	}
}
