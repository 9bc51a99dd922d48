package paddle

import (
	"testing"

	"github.com/glyphkit/glyphkit/internal/core"
	"github.com/glyphkit/glyphkit/internal/event"
)

func newTestGame() *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func press(g *Game, k event.Key) {
	g.Input(event.KeyEvent{Key: k})
}

func release(g *Game, k event.Key) {
	g.Input(event.KeyEvent{Key: k, Released: true})
}

func TestStartsServing(t *testing.T) {
	g := newTestGame()
	if !g.serving {
		t.Error("game should start in the serving state")
	}
	if g.ballVX != 0 || g.ballVY != 0 {
		t.Error("held ball should not move")
	}
}

func TestSpacebarReleaseServes(t *testing.T) {
	g := newTestGame()

	// A press alone must not serve.
	press(g, event.KeySpace)
	if !g.serving {
		t.Error("press alone should not serve")
	}

	release(g, event.KeySpace)
	if g.serving {
		t.Error("release after press should serve")
	}
	if g.ballVX == 0 {
		t.Error("served ball should have horizontal velocity")
	}
}

func TestStrayReleaseDoesNotServe(t *testing.T) {
	g := newTestGame()
	release(g, event.KeySpace)
	if !g.serving {
		t.Error("release without press must not serve")
	}
}

func TestPaddleMovesAndStops(t *testing.T) {
	g := newTestGame()
	startY := g.player.Y

	press(g, event.KeyDown)
	g.Step()
	if g.player.Y <= startY {
		t.Errorf("paddle Y = %v, expected below %v", g.player.Y, startY)
	}

	release(g, event.KeyDown)
	y := g.player.Y
	g.Step()
	if g.player.Y != y {
		t.Error("paddle should hold position after key release")
	}
}

func TestPaddleClampsAtCourtEdges(t *testing.T) {
	g := newTestGame()

	press(g, event.KeyUp)
	for i := 0; i < 100; i++ {
		g.Step()
	}
	if g.player.Top() != float64(g.playArea.Y) {
		t.Errorf("paddle top = %v, expected flush at %d", g.player.Top(), g.playArea.Y)
	}
	if g.player.VY != 0 {
		t.Error("paddle should stop at the top edge")
	}

	release(g, event.KeyUp)
	press(g, event.KeyDown)
	for i := 0; i < 100; i++ {
		g.Step()
	}
	if g.player.Bottom() != float64(g.playArea.Bottom()) {
		t.Errorf("paddle bottom = %v, expected flush at %d", g.player.Bottom(), g.playArea.Bottom())
	}
}

func TestBallBouncesOffCourtTop(t *testing.T) {
	g := newTestGame()
	press(g, event.KeySpace)
	release(g, event.KeySpace)

	g.ballY = float64(g.playArea.Y)
	g.ballVY = -0.5
	g.Step()
	if g.ballVY <= 0 {
		t.Errorf("ballVY = %v, expected bounced downward", g.ballVY)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame()
	press(g, event.KeySpace)
	release(g, event.KeySpace)

	press(g, event.KeyPause)
	x := g.ballX
	g.Step()
	if g.ballX != x {
		t.Error("ball must not move while paused")
	}
	if !g.State().Paused {
		t.Error("state should report paused")
	}

	press(g, event.KeyPause)
	if g.State().Paused {
		t.Error("pause key should toggle")
	}
}

func TestScoringAndGameOver(t *testing.T) {
	g := newTestGame()
	g.cfg.WinScore = 1

	press(g, event.KeySpace)
	release(g, event.KeySpace)

	// Force the ball past the CPU's goal line, away from its paddle.
	g.ballX = float64(g.runtime.ScreenW) - 0.1
	g.ballVX = 1
	g.ballY = float64(g.playArea.Bottom() - 1)
	g.cpu.Y = float64(g.playArea.Y)
	g.Step()

	if g.score1 != 1 {
		t.Errorf("score1 = %d, expected 1", g.score1)
	}
	if !g.State().GameOver {
		t.Error("reaching the win score should end the game")
	}

	// Restart only works after game over.
	press(g, event.KeyRestart)
	if g.State().GameOver {
		t.Error("restart should reset the game")
	}
}

func TestRenderDrawsHUDAndPaddles(t *testing.T) {
	g := newTestGame()
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if got := scr.Row(0); !containsAll(got, "YOU", "CPU") {
		t.Errorf("HUD row = %q, expected scores", got)
	}

	cell := scr.GetCell(int(g.player.X), int(g.player.Y))
	if cell.Rune != PaddleChar {
		t.Errorf("player paddle cell = %q, expected %q", cell.Rune, PaddleChar)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		found := false
		for i := 0; i+len(sub) <= len(s); i++ {
			if s[i:i+len(sub)] == sub {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
