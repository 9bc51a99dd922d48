// Package paddle implements a pong-style paddle game with a CPU opponent.
// The player paddle is driven by a vertical motion controller, and the ball
// is served by releasing the spacebar.
package paddle

import (
	"fmt"
	"math/rand"

	"github.com/glyphkit/glyphkit/internal/config"
	"github.com/glyphkit/glyphkit/internal/core"
	"github.com/glyphkit/glyphkit/internal/event"
	"github.com/glyphkit/glyphkit/internal/motion"
	"github.com/glyphkit/glyphkit/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	NetChar    = '│'
)

var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path for the next game creation.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next game creation.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements the paddle game logic.
type Game struct {
	cfg  config.PaddleConfig
	diff *config.DifficultyManager

	runtime  core.RuntimeConfig
	playArea core.Rect

	player     motion.Body
	playerCtrl *motion.Controller
	cpu        motion.Body
	cpuCtrl    *motion.Controller

	ballX, ballY   float64
	ballVX, ballVY float64

	serving     bool
	serveToward int // Side the serve goes to: 1 = player, 2 = CPU

	score1, score2 int
	gameOver       bool
	paused         bool
	winner         int
	redraw         bool

	chain     *event.Chain
	rng       *rand.Rand
	tickCount int
}

// New creates a new paddle game instance.
func New() *Game {
	cfg, err := config.LoadPaddle(configPath)
	if err != nil {
		cfg = config.DefaultPaddleConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPaddlePreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	return &Game{cfg: sanitize(cfg)}
}

// sanitize clamps config values that would wedge the motion controllers.
func sanitize(cfg config.PaddleConfig) config.PaddleConfig {
	if cfg.Paddle.Speed <= 0 {
		cfg.Paddle.Speed = 1.0
	}
	if cfg.Paddle.Height < 1 {
		cfg.Paddle.Height = 5
	}
	if cfg.Paddle.Width < 1 {
		cfg.Paddle.Width = 1
	}
	if cfg.WinScore < 1 {
		cfg.WinScore = 5
	}
	if cfg.Ball.SpeedX == 0 {
		cfg.Ball.SpeedX = 0.5
	}
	return cfg
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "paddle"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Paddle"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)

	// Top row is the HUD; the play area is everything below it.
	g.playArea = core.NewRect(0, 1, runtime.ScreenW, runtime.ScreenH-1)

	h := core.Clamp(g.cfg.Paddle.Height, 1, g.playArea.H)
	w := core.Clamp(g.cfg.Paddle.Width, 1, 3)
	centerY := float64(g.playArea.Y) + float64(g.playArea.H-h)/2

	g.player = motion.Body{
		X: float64(g.cfg.Paddle.Offset), Y: centerY,
		W: float64(w), H: float64(h),
		Bounds: g.playArea,
	}
	g.cpu = motion.Body{
		X: float64(g.playArea.W - g.cfg.Paddle.Offset - w), Y: centerY,
		W: float64(w), H: float64(h),
		Bounds: g.playArea,
	}

	// Config is sanitized in New, so controller construction cannot fail.
	g.playerCtrl, _ = motion.NewController(&g.player, motion.AxisY, g.cfg.Paddle.Speed)
	g.cpuCtrl, _ = motion.NewController(&g.cpu, motion.AxisY, g.cfg.Paddle.Speed)

	g.score1 = 0
	g.score2 = 0
	g.gameOver = false
	g.paused = false
	g.winner = 0
	g.tickCount = 0
	g.redraw = true

	g.chain = event.NewChain(
		event.NewLatch(event.KeySpace, g.serve),
		event.Func{Down: g.handleMoveKeyDown, Up: g.handleMoveKeyUp},
		event.Func{Down: g.handleControlKeyDown},
	)

	g.holdServe(2)
}

// holdServe parks the ball mid-court until the player serves it.
func (g *Game) holdServe(toward int) {
	g.serving = true
	g.serveToward = toward
	g.ballX = float64(g.runtime.ScreenW) / 2
	g.ballY = float64(g.playArea.Y) + float64(g.playArea.H)/2
	g.ballVX = 0
	g.ballVY = 0
}

// serve launches the ball. Wired to the spacebar latch, so it fires once
// per press/release pair and never on a stray release.
func (g *Game) serve() {
	if !g.serving || g.gameOver || g.paused {
		return
	}
	g.serving = false

	speed := g.diff.Speed(g.cfg.Ball.SpeedX, g.score1+g.score2, g.tickCount)
	if g.serveToward == 1 {
		g.ballVX = -speed
	} else {
		g.ballVX = speed
	}
	g.ballVY = g.cfg.Ball.SpeedY
	if g.rng.Intn(2) == 0 {
		g.ballVY = -g.ballVY
	}
	g.redraw = true
}

func (g *Game) handleMoveKeyDown(k event.Key) bool {
	if g.gameOver || g.paused {
		return false
	}
	switch k {
	case event.KeyUp:
		g.redraw = g.playerCtrl.MoveNegative() || g.redraw
		return true
	case event.KeyDown:
		g.redraw = g.playerCtrl.MovePositive() || g.redraw
		return true
	}
	return false
}

func (g *Game) handleMoveKeyUp(k event.Key) bool {
	switch k {
	case event.KeyUp, event.KeyDown:
		g.redraw = g.playerCtrl.Stop() || g.redraw
		return true
	}
	return false
}

func (g *Game) handleControlKeyDown(k event.Key) bool {
	switch k {
	case event.KeyPause:
		if !g.gameOver {
			g.paused = !g.paused
			g.redraw = true
		}
		return true
	case event.KeyRestart:
		if g.gameOver {
			g.Reset(g.runtime)
		}
		return true
	}
	return false
}

// Input delivers one key transition into the game's handler chain.
func (g *Game) Input(ev event.KeyEvent) {
	g.chain.Dispatch(ev)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step() core.StepResult {
	if g.gameOver || g.paused {
		return g.result()
	}
	g.tickCount++

	g.redraw = g.playerCtrl.Advance() || g.redraw
	g.stepCPU()
	g.stepBall()

	return g.result()
}

func (g *Game) result() core.StepResult {
	r := core.StepResult{State: g.State(), Redraw: g.redraw}
	g.redraw = false
	return r
}

// stepCPU nudges the CPU paddle toward the ball. Skill is the chance per
// tick that the CPU reacts at all, which keeps it beatable.
func (g *Game) stepCPU() {
	if !g.serving && g.rng.Float64() < g.cfg.CPUSkill {
		center := g.cpu.Top() + g.cpu.H/2
		switch {
		case g.ballY < center-1:
			g.cpuCtrl.MoveNegative()
		case g.ballY > center+1:
			g.cpuCtrl.MovePositive()
		default:
			g.cpuCtrl.Stop()
		}
	}
	g.redraw = g.cpuCtrl.Advance() || g.redraw
}

// stepBall advances the ball, bouncing it off the court's top and bottom
// and off paddles, and scores when it leaves the court sideways.
func (g *Game) stepBall() {
	if g.serving {
		return
	}

	g.ballX += g.ballVX
	g.ballY += g.ballVY

	top := float64(g.playArea.Y)
	bottom := float64(g.playArea.Bottom() - 1)
	if g.ballY <= top {
		g.ballY = top
		g.ballVY = -g.ballVY
	} else if g.ballY >= bottom {
		g.ballY = bottom
		g.ballVY = -g.ballVY
	}

	ballRect := core.NewRect(int(g.ballX), int(g.ballY), 1, 1)
	if g.ballVX < 0 && ballRect.Intersects(g.player.Rect()) {
		g.ballX = g.player.Right()
		g.bounceOffPaddle(&g.player)
	} else if g.ballVX > 0 && ballRect.Intersects(g.cpu.Rect()) {
		g.ballX = g.cpu.Left() - 1
		g.bounceOffPaddle(&g.cpu)
	}

	if g.ballX < 0 {
		g.pointScored(2)
	} else if g.ballX >= float64(g.runtime.ScreenW) {
		g.pointScored(1)
	}
	g.redraw = true
}

// bounceOffPaddle reverses the ball and re-scales it to the current
// difficulty level so rallies speed up as the score climbs.
func (g *Game) bounceOffPaddle(p *motion.Body) {
	speed := g.diff.Speed(g.cfg.Ball.SpeedX, g.score1+g.score2, g.tickCount)
	if g.ballVX < 0 {
		g.ballVX = speed
	} else {
		g.ballVX = -speed
	}
	// Moving paddles impart a little english.
	if p.VY != 0 {
		g.ballVY += p.VY * 0.25
	}
}

func (g *Game) pointScored(by int) {
	if by == 1 {
		g.score1++
	} else {
		g.score2++
	}

	if g.score1 >= g.cfg.WinScore || g.score2 >= g.cfg.WinScore {
		g.gameOver = true
		g.winner = by
		return
	}
	// The side that conceded receives the next serve.
	g.holdServe(3 - by)
}

// Render draws the court, paddles, ball, and HUD.
func (g *Game) Render(dst *core.Screen) {
	// HUD
	hud := fmt.Sprintf("YOU %d  %c  CPU %d", g.score1, NetChar, g.score2)
	dst.DrawTextCentered(0, hud)

	// Net
	for y := g.playArea.Y; y < g.playArea.Bottom(); y += 2 {
		dst.Set(g.runtime.ScreenW/2, y, NetChar)
	}

	dst.DrawRectColored(g.player.Rect(), PaddleChar, core.ColorBrightCyan)
	dst.DrawRectColored(g.cpu.Rect(), PaddleChar, core.ColorBrightRed)

	if ballSprite != nil {
		ballSprite.Draw(dst, int(g.ballX), int(g.ballY))
	} else {
		dst.SetCell(int(g.ballX), int(g.ballY), core.Cell{Rune: '●', Color: core.ColorBrightWhite})
	}

	switch {
	case g.gameOver && g.winner == 1:
		dst.DrawTextCentered(g.runtime.ScreenH/2, "YOU WIN - press R to restart")
	case g.gameOver:
		dst.DrawTextCentered(g.runtime.ScreenH/2, "CPU WINS - press R to restart")
	case g.paused:
		dst.DrawTextCentered(g.runtime.ScreenH/2, "PAUSED")
	case g.serving:
		dst.DrawTextCentered(g.runtime.ScreenH-1, "press and release SPACE to serve")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score1,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("paddle", func() registry.Game { return New() })
}
