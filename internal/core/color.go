package core

import "fmt"

// Color is a cell foreground color. The low 24 bits hold an RGB triplet when
// the truecolor bit is set; otherwise the value is a small palette index so
// games can use named colors without caring about the terminal's depth.
type Color uint32

const truecolorBit Color = 1 << 31

// Predefined palette colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// RGB returns a truecolor Color from 8-bit components.
// Sprite files carry arbitrary red/green/blue values, so the palette
// alone is not enough.
func RGB(r, g, b uint8) Color {
	return truecolorBit | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsRGB reports whether c carries an explicit RGB triplet.
func (c Color) IsRGB() bool {
	return c&truecolorBit != 0
}

// Components returns the 8-bit components of a truecolor Color.
// Result is undefined for palette colors.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the #rrggbb form of a truecolor Color, suitable for
// terminal style libraries.
func (c Color) Hex() string {
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
