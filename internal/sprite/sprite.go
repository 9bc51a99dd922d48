// Package sprite loads Bitmappy-style INI sprite files and draws them onto
// the kit's screen buffer. A sprite file has a [sprite] section with a name
// and a multi-line pixels block, plus one section per single-rune color key:
//
//	[sprite]
//	name = ball
//	pixels =
//	    .oo.
//	    oooo
//	    .oo.
//
//	[o]
//	red = 255
//	green = 255
//	blue = 255
//
// Runes without a color section are transparent and are skipped when drawing.
package sprite

import "github.com/glyphkit/glyphkit/internal/core"

// Sprite is a parsed sprite: a rune grid plus the color assigned to each
// drawable rune.
type Sprite struct {
	Name   string
	rows   [][]rune
	colors map[rune]core.Color
}

// Width returns the sprite width in cells (the widest row).
func (s *Sprite) Width() int {
	w := 0
	for _, row := range s.rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Height returns the sprite height in cells.
func (s *Sprite) Height() int {
	return len(s.rows)
}

// At returns the rune and color at (x, y). The third result is false for
// out-of-range positions and for transparent runes.
func (s *Sprite) At(x, y int) (rune, core.Color, bool) {
	if y < 0 || y >= len(s.rows) || x < 0 || x >= len(s.rows[y]) {
		return 0, 0, false
	}
	r := s.rows[y][x]
	c, ok := s.colors[r]
	if !ok {
		return r, 0, false
	}
	return r, c, true
}

// Draw paints the sprite onto dst with its top-left corner at (x, y).
// Transparent runes leave the underlying cells untouched; cells outside
// the screen are clipped by the buffer.
func (s *Sprite) Draw(dst *core.Screen, x, y int) {
	for dy, row := range s.rows {
		for dx, r := range row {
			c, ok := s.colors[r]
			if !ok {
				continue
			}
			dst.SetCell(x+dx, y+dy, core.Cell{Rune: r, Color: c})
		}
	}
}

// Color returns the color bound to a pixel rune, if any.
func (s *Sprite) Color(r rune) (core.Color, bool) {
	c, ok := s.colors[r]
	return c, ok
}
