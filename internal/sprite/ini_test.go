package sprite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glyphkit/glyphkit/internal/core"
)

const ballSpr = `[sprite]
name = ball
pixels =
    .oo.
    oooo
    oooo
    .oo.

[o]
red = 255
green = 255
blue = 255
`

func TestParseBall(t *testing.T) {
	s, err := Parse([]byte(ballSpr))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if s.Name != "ball" {
		t.Errorf("Name = %q, expected ball", s.Name)
	}
	if s.Width() != 4 || s.Height() != 4 {
		t.Errorf("size = %dx%d, expected 4x4", s.Width(), s.Height())
	}

	// Corner is transparent, edge is colored.
	if _, _, ok := s.At(0, 0); ok {
		t.Error("'.' has no color section and must be transparent")
	}
	r, c, ok := s.At(1, 0)
	if !ok {
		t.Fatal("'o' pixel should be drawable")
	}
	if r != 'o' {
		t.Errorf("rune = %q, expected o", r)
	}
	if !c.IsRGB() {
		t.Error("sprite colors should be truecolor")
	}
	if cr, cg, cb := c.Components(); cr != 255 || cg != 255 || cb != 255 {
		t.Errorf("color = (%d, %d, %d), expected white", cr, cg, cb)
	}
}

func TestParseMultipleColors(t *testing.T) {
	src := `[sprite]
name = flag
pixels =
    rb
    br

[r]
red = 255
green = 0
blue = 0

[b]
red = 0
green = 0
blue = 255
`
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	red, ok := s.Color('r')
	if !ok {
		t.Fatal("missing color for 'r'")
	}
	if cr, _, _ := red.Components(); cr != 255 {
		t.Errorf("red component = %d, expected 255", cr)
	}
	blue, ok := s.Color('b')
	if !ok {
		t.Fatal("missing color for 'b'")
	}
	if _, _, cb := blue.Components(); cb != 255 {
		t.Errorf("blue component = %d, expected 255", cb)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "missing sprite section",
			src:  "[o]\nred = 1\ngreen = 1\nblue = 1\n",
			want: "missing [sprite] section",
		},
		{
			name: "missing pixels key",
			src:  "[sprite]\nname = x\n",
			want: "missing pixels key",
		},
		{
			name: "empty pixels",
			src:  "[sprite]\nname = x\npixels =\n",
			want: "empty",
		},
		{
			name: "color component out of range",
			src:  ballSpr[:len(ballSpr)-len("255\n")] + "300\n",
			want: "out of range",
		},
		{
			name: "color missing component",
			src:  "[sprite]\npixels =\n    o\n\n[o]\nred = 1\ngreen = 1\n",
			want: "missing blue",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ball.spr")
	if err := os.WriteFile(path, []byte(ballSpr), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "ball" {
		t.Errorf("Name = %q, expected ball", s.Name)
	}

	if _, err := Load(filepath.Join(dir, "missing.spr")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestDraw(t *testing.T) {
	s, err := Parse([]byte(ballSpr))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	scr := core.NewScreen(10, 6)
	scr.Fill('#')
	s.Draw(scr, 2, 1)

	// Transparent corners leave the background intact.
	if scr.Get(2, 1) != '#' {
		t.Errorf("transparent corner overwrote background: %q", scr.Get(2, 1))
	}
	// Colored pixels land with rune and color.
	cell := scr.GetCell(3, 1)
	if cell.Rune != 'o' {
		t.Errorf("cell rune = %q, expected o", cell.Rune)
	}
	if !cell.Color.IsRGB() {
		t.Error("drawn cell should carry the sprite color")
	}
	// Clipping: drawing near the edge must not panic.
	s.Draw(scr, 8, 4)
	if scr.Get(9, 4) != 'o' {
		t.Errorf("clipped draw cell = %q, expected o", scr.Get(9, 4))
	}
}
