package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(10, 4)

	if s.Width() != 10 || s.Height() != 4 {
		t.Errorf("size = %dx%d, want 10x4", s.Width(), s.Height())
	}
	for y := 0; y < 4; y++ {
		if s.Row(y) != strings.Repeat(" ", 10) {
			t.Errorf("row %d not blank: %q", y, s.Row(y))
		}
	}
}

func TestSetAndGet(t *testing.T) {
	s := NewScreen(10, 4)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, want @", got)
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 4, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
	if got := s.Get(99, 99); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestSetCellKeepsColor(t *testing.T) {
	s := NewScreen(10, 4)

	s.SetCell(2, 1, Cell{Rune: '#', Color: ColorRed})
	cell := s.GetCell(2, 1)
	if cell.Rune != '#' {
		t.Errorf("rune = %q, want #", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("color = %v, want ColorRed", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(2, 1, '#')
	if got := s.GetCell(2, 1).Color; got != ColorDefault {
		t.Errorf("color after Set = %v, want ColorDefault", got)
	}
}

func TestClearResetsCells(t *testing.T) {
	s := NewScreen(5, 3)
	s.Fill('#')
	s.SetCell(1, 1, Cell{Rune: '@', Color: ColorCyan})

	s.Clear()

	if got := s.Get(1, 1); got != ' ' {
		t.Errorf("Get after Clear = %q, want space", got)
	}
	if got := s.GetCell(1, 1).Color; got != ColorDefault {
		t.Errorf("color after Clear = %v, want ColorDefault", got)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if !strings.Contains(s.Row(1), "hi") {
		t.Errorf("row 1 = %q, want to contain hi", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "long")
	if got := s.Row(0); got != "        lo" {
		t.Errorf("row 0 = %q, want %q", got, "        lo")
	}
}

func TestDrawTextColored(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawTextColored(0, 0, "ab", ColorYellow)
	for x := 0; x < 2; x++ {
		if got := s.GetCell(x, 0).Color; got != ColorYellow {
			t.Errorf("cell %d color = %v, want ColorYellow", x, got)
		}
	}
}

func TestDrawRectColored(t *testing.T) {
	s := NewScreen(10, 6)

	s.DrawRectColored(NewRect(1, 1, 3, 2), '█', ColorGreen)

	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != '█' || cell.Color != ColorGreen {
				t.Errorf("cell (%d,%d) = %v, want green block", x, y, cell)
			}
		}
	}
	if s.Get(4, 1) != ' ' {
		t.Error("rect drawn outside its bounds")
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("box corners wrong")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("box edges wrong")
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.SetCell(1, 1, Cell{Rune: '@', Color: ColorBlue})
	s.Set(5, 3, '#')

	s.Resize(4, 3)

	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", s.Width(), s.Height())
	}
	cell := s.GetCell(1, 1)
	if cell.Rune != '@' || cell.Color != ColorBlue {
		t.Errorf("cell (1,1) = %v, want blue @", cell)
	}

	s.Resize(8, 5)
	if s.Get(1, 1) != '@' {
		t.Error("content lost growing back")
	}
	if s.Get(7, 4) != ' ' {
		t.Error("new area not blank")
	}
}

func TestString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String = %q, want %q", got, "abc\ndef")
	}
}

func TestColorRGB(t *testing.T) {
	c := RGB(255, 128, 0)

	if !c.IsRGB() {
		t.Error("expected RGB color to report IsRGB")
	}
	r, g, b := c.Components()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("components = (%d, %d, %d), want (255, 128, 0)", r, g, b)
	}
	if got := c.Hex(); got != "#ff8000" {
		t.Errorf("Hex = %q, want #ff8000", got)
	}

	if ColorRed.IsRGB() {
		t.Error("palette color must not report IsRGB")
	}
}
