package dodge

import (
	_ "embed"

	"github.com/glyphkit/glyphkit/internal/sprite"
)

//go:embed assets/player.spr
var playerSprData []byte

// playerSprite is nil if the embedded asset fails to parse; rendering then
// falls back to a plain block.
var playerSprite = parseSprite(playerSprData)

func parseSprite(data []byte) *sprite.Sprite {
	s, err := sprite.Parse(data)
	if err != nil {
		return nil
	}
	return s
}
