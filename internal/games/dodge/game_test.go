package dodge

import (
	"testing"

	"github.com/glyphkit/glyphkit/internal/core"
	"github.com/glyphkit/glyphkit/internal/event"
)

func newTestGame() *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60, Seed: 7})
	return g
}

// quiet suppresses debris spawns so movement tests are deterministic.
func quiet(g *Game) {
	g.spawnTimer = 1 << 30
	g.field = nil
}

func press(g *Game, k event.Key) {
	g.Input(event.KeyEvent{Key: k})
}

func release(g *Game, k event.Key) {
	g.Input(event.KeyEvent{Key: k, Released: true})
}

func TestPlayerMovesOnBothAxes(t *testing.T) {
	g := newTestGame()
	quiet(g)
	startX, startY := g.player.X, g.player.Y

	press(g, event.KeyLeft)
	g.Step()
	if g.player.X >= startX {
		t.Errorf("X = %v, expected left of %v", g.player.X, startX)
	}
	release(g, event.KeyLeft)

	press(g, event.KeyUp)
	g.Step()
	if g.player.Y >= startY {
		t.Errorf("Y = %v, expected above %v", g.player.Y, startY)
	}
	release(g, event.KeyUp)

	x, y := g.player.X, g.player.Y
	g.Step()
	if g.player.X != x || g.player.Y != y {
		t.Error("player should hold position after key release")
	}
}

func TestPlayerClampsAtFieldEdges(t *testing.T) {
	g := newTestGame()
	quiet(g)

	press(g, event.KeyLeft)
	for i := 0; i < 200; i++ {
		g.Step()
	}
	if g.player.X != 0 {
		t.Errorf("X = %v, expected clamped to 0", g.player.X)
	}
	if g.player.VX != 0 {
		t.Error("player should stop at the left edge")
	}
	release(g, event.KeyLeft)

	press(g, event.KeyRight)
	for i := 0; i < 200; i++ {
		g.Step()
	}
	if g.player.Right() != float64(g.playArea.W) {
		t.Errorf("Right() = %v, expected flush at %d", g.player.Right(), g.playArea.W)
	}
}

func TestDashLatchFiresOnRelease(t *testing.T) {
	g := newTestGame()

	press(g, event.KeySpace)
	if g.dashLeft != 0 {
		t.Error("press alone must not dash")
	}
	release(g, event.KeySpace)
	if g.dashLeft != g.cfg.Dash.Ticks {
		t.Errorf("dashLeft = %d, expected %d", g.dashLeft, g.cfg.Dash.Ticks)
	}

	// A second stray release does not re-arm the dash.
	g.dashLeft = 0
	release(g, event.KeySpace)
	if g.dashLeft != 0 {
		t.Error("stray release must not dash")
	}
}

func TestDashSpeedsUpMovement(t *testing.T) {
	g := newTestGame()
	quiet(g)

	press(g, event.KeyRight)
	g.Step()
	plain := g.player.X

	g.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60, Seed: 7})
	quiet(g)
	press(g, event.KeySpace)
	release(g, event.KeySpace)
	press(g, event.KeyRight)
	g.Step()
	dashed := g.player.X

	if dashed <= plain {
		t.Errorf("dashed X %v should exceed plain X %v", dashed, plain)
	}
	// Dash must not leave the boosted velocity behind.
	if g.player.VX != g.cfg.Player.Speed {
		t.Errorf("VX = %v, expected base speed %v", g.player.VX, g.cfg.Player.Speed)
	}
}

func TestDebrisFallsAndDespawns(t *testing.T) {
	g := newTestGame()
	g.field = append(g.field, debris{x: 5, y: 2, w: 3, speed: 1})

	g.Step()
	if len(g.field) == 0 {
		t.Fatal("debris should survive mid-field")
	}
	if g.field[0].y <= 2 {
		t.Errorf("debris y = %v, expected fallen below 2", g.field[0].y)
	}

	g.field[0].y = float64(g.playArea.Bottom()) - 0.5
	g.field[0].speed = 2
	g.player.X = 0 // Keep the player clear of the falling block
	g.field = g.field[:1]
	g.Step()
	for _, d := range g.field {
		if d.x == 5 && d.w == 3 && d.y >= float64(g.playArea.Bottom()) {
			t.Error("debris past the floor should despawn")
		}
	}
}

func TestCollisionEndsGame(t *testing.T) {
	g := newTestGame()
	g.field = append(g.field, debris{
		x: g.player.X, y: g.player.Y, w: 3, speed: 0,
	})

	g.Step()
	if !g.State().GameOver {
		t.Error("debris overlapping the player should end the game")
	}

	// Movement keys are dead after game over.
	x := g.player.X
	press(g, event.KeyLeft)
	g.Step()
	if g.player.X != x {
		t.Error("player must not move after game over")
	}

	press(g, event.KeyRestart)
	if g.State().GameOver {
		t.Error("restart should reset the game")
	}
}

func TestScoreCountsSeconds(t *testing.T) {
	g := newTestGame()
	quiet(g)

	for i := 0; i < 120; i++ {
		g.Step()
	}
	if got := g.State().Score; got != 2 {
		t.Errorf("score = %d, expected 2 seconds", got)
	}
}

func TestRenderDrawsPlayerAndHUD(t *testing.T) {
	g := newTestGame()
	scr := core.NewScreen(60, 20)
	g.Render(scr)

	if got := scr.Row(0); len(got) < 4 || got[1:5] != "time" {
		t.Errorf("HUD row = %q, expected time counter", got)
	}

	// The sprite's top-left drawable pixel lands at the player position.
	cell := scr.GetCell(int(g.player.X), int(g.player.Y))
	if cell.Rune == ' ' {
		t.Error("player sprite should be drawn at the player position")
	}
}
