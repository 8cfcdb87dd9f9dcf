package category

import (
	"fmt"
	"strconv"
	"strings"
)

type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

var (
	MatteMint     = RGB(0xE0, 0xF2, 0xF1)
	MattePeach    = RGB(0xFF, 0xF0, 0xE6)
	MatteLavender = RGB(0xEB, 0xE7, 0xF3)
	MatteBlue     = RGB(0xE3, 0xF2, 0xFD)
)

// Palette is the set of colors offered by the category editor.
var Palette = []Color{MatteMint, MattePeach, MatteLavender, MatteBlue}

// String formats the color as #RRGGBB, or #RRGGBBAA when not fully opaque.
func (c Color) String() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func ParseColor(value string) (Color, error) {
	if !strings.HasPrefix(value, "#") {
		return Color{}, ErrParseColor
	}
	hex := value[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, ErrParseColor
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, ErrParseColor
	}
	if len(hex) == 6 {
		return RGB(uint8(n>>16), uint8(n>>8), uint8(n)), nil
	}
	return Color{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}
