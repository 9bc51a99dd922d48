package paddle

import (
	_ "embed"

	"github.com/glyphkit/glyphkit/internal/sprite"
)

//go:embed assets/ball.spr
var ballSprData []byte

// ballSprite is nil if the embedded asset fails to parse; rendering then
// falls back to a plain glyph.
var ballSprite = parseSprite(ballSprData)

func parseSprite(data []byte) *sprite.Sprite {
	s, err := sprite.Parse(data)
	if err != nil {
		return nil
	}
	return s
}
