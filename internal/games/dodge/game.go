// Package dodge implements a survival game: steer a sprite around falling
// debris for as long as possible. Both movement axes are driven by motion
// controllers, and releasing the spacebar triggers a short dash.
package dodge

import (
	"fmt"
	"math/rand"

	"github.com/glyphkit/glyphkit/internal/config"
	"github.com/glyphkit/glyphkit/internal/core"
	"github.com/glyphkit/glyphkit/internal/event"
	"github.com/glyphkit/glyphkit/internal/motion"
	"github.com/glyphkit/glyphkit/internal/registry"
)

// DebrisChar is the rune debris blocks are drawn with.
const DebrisChar = '▒'

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

// debris is one falling block.
type debris struct {
	x, y  float64
	w     int
	speed float64
}

// Game implements the dodge game logic.
type Game struct {
	cfg  config.DodgeConfig
	diff *config.DifficultyManager

	runtime  core.RuntimeConfig
	playArea core.Rect

	player motion.Body
	ctrlX  *motion.Controller
	ctrlY  *motion.Controller

	field      []debris
	spawnTimer int

	dashLeft int // Remaining dash ticks

	gameOver  bool
	paused    bool
	redraw    bool
	chain     *event.Chain
	rng       *rand.Rand
	tickCount int
}

// New creates a new dodge game instance.
func New() *Game {
	cfg, err := config.LoadDodge(configPath)
	if err != nil {
		cfg = config.DefaultDodgeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDodgePreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	return &Game{cfg: sanitize(cfg)}
}

// sanitize clamps config values that would wedge the motion controllers.
func sanitize(cfg config.DodgeConfig) config.DodgeConfig {
	if cfg.Player.Speed <= 0 {
		cfg.Player.Speed = 0.8
	}
	if cfg.Player.Width < 1 {
		cfg.Player.Width = 3
	}
	if cfg.Player.Height < 1 {
		cfg.Player.Height = 2
	}
	if cfg.Debris.MinWidth < 1 {
		cfg.Debris.MinWidth = 2
	}
	if cfg.Debris.MaxWidth < cfg.Debris.MinWidth {
		cfg.Debris.MaxWidth = cfg.Debris.MinWidth
	}
	if cfg.Debris.Speed <= 0 {
		cfg.Debris.Speed = 0.4
	}
	if cfg.Debris.SpawnEvery < 1 {
		cfg.Debris.SpawnEvery = 30
	}
	if cfg.Dash.Multiplier < 1 {
		cfg.Dash.Multiplier = 2.0
	}
	return cfg
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dodge"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dodge"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)

	g.playArea = core.NewRect(0, 1, runtime.ScreenW, runtime.ScreenH-1)

	w := core.Clamp(g.cfg.Player.Width, 1, g.playArea.W)
	h := core.Clamp(g.cfg.Player.Height, 1, g.playArea.H)
	g.player = motion.Body{
		X: float64(g.playArea.W-w) / 2,
		Y: float64(g.playArea.Bottom() - h - 1),
		W: float64(w), H: float64(h),
		Bounds: g.playArea,
	}

	// Config is sanitized in New, so controller construction cannot fail.
	g.ctrlX, _ = motion.NewController(&g.player, motion.AxisX, g.cfg.Player.Speed)
	g.ctrlY, _ = motion.NewController(&g.player, motion.AxisY, g.cfg.Player.Speed)

	g.field = g.field[:0]
	g.spawnTimer = 0
	g.dashLeft = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
	g.redraw = true

	g.chain = event.NewChain(
		event.NewLatch(event.KeySpace, g.dash),
		event.Func{Down: g.handleMoveKeyDown, Up: g.handleMoveKeyUp},
		event.Func{Down: g.handleControlKeyDown},
	)
}

// dash gives the player a temporary speed boost. Wired to the spacebar
// latch: one boost per press/release pair.
func (g *Game) dash() {
	if g.gameOver || g.paused {
		return
	}
	g.dashLeft = g.cfg.Dash.Ticks
	g.redraw = true
}

func (g *Game) handleMoveKeyDown(k event.Key) bool {
	if g.gameOver || g.paused {
		return false
	}
	switch k {
	case event.KeyLeft:
		g.redraw = g.ctrlX.MoveNegative() || g.redraw
	case event.KeyRight:
		g.redraw = g.ctrlX.MovePositive() || g.redraw
	case event.KeyUp:
		g.redraw = g.ctrlY.MoveNegative() || g.redraw
	case event.KeyDown:
		g.redraw = g.ctrlY.MovePositive() || g.redraw
	default:
		return false
	}
	return true
}

func (g *Game) handleMoveKeyUp(k event.Key) bool {
	switch k {
	case event.KeyLeft, event.KeyRight:
		g.redraw = g.ctrlX.Stop() || g.redraw
	case event.KeyUp, event.KeyDown:
		g.redraw = g.ctrlY.Stop() || g.redraw
	default:
		return false
	}
	return true
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

	g.advancePlayer()
	g.stepDebris()
	g.spawnDebris()
	g.checkCollision()

	return g.result()
}

func (g *Game) result() core.StepResult {
	r := core.StepResult{State: g.State(), Redraw: g.redraw}
	g.redraw = false
	return r
}

// advancePlayer runs both axis controllers, temporarily scaling their
// velocity while a dash is active.
func (g *Game) advancePlayer() {
	if g.dashLeft > 0 {
		g.dashLeft--
		g.player.VX *= g.cfg.Dash.Multiplier
		g.player.VY *= g.cfg.Dash.Multiplier
		g.redraw = g.ctrlX.Advance() || g.redraw
		g.redraw = g.ctrlY.Advance() || g.redraw
		// Undo the boost unless an edge already zeroed the axis.
		if g.player.VX != 0 {
			g.player.VX /= g.cfg.Dash.Multiplier
		}
		if g.player.VY != 0 {
			g.player.VY /= g.cfg.Dash.Multiplier
		}
		return
	}
	g.redraw = g.ctrlX.Advance() || g.redraw
	g.redraw = g.ctrlY.Advance() || g.redraw
}

func (g *Game) stepDebris() {
	kept := g.field[:0]
	for _, d := range g.field {
		d.y += d.speed
		if int(d.y) < g.playArea.Bottom() {
			kept = append(kept, d)
		}
	}
	g.field = kept
	g.redraw = true
}

func (g *Game) spawnDebris() {
	g.spawnTimer--
	if g.spawnTimer > 0 {
		return
	}
	g.spawnTimer = g.diff.SpawnInterval(g.cfg.Debris.SpawnEvery, g.State().Score, g.tickCount)

	w := g.cfg.Debris.MinWidth
	if g.cfg.Debris.MaxWidth > w {
		w += g.rng.Intn(g.cfg.Debris.MaxWidth - g.cfg.Debris.MinWidth + 1)
	}
	g.field = append(g.field, debris{
		x:     float64(g.rng.Intn(core.Max(1, g.playArea.W-w))),
		y:     float64(g.playArea.Y),
		w:     w,
		speed: g.diff.Speed(g.cfg.Debris.Speed, g.State().Score, g.tickCount),
	})
}

func (g *Game) checkCollision() {
	pr := g.player.Rect()
	for _, d := range g.field {
		dr := core.NewRect(int(d.x), int(d.y), d.w, 1)
		if pr.Intersects(dr) {
			g.gameOver = true
			g.redraw = true
			return
		}
	}
}

// Render draws the debris field, the player sprite, and the HUD.
func (g *Game) Render(dst *core.Screen) {
	hud := fmt.Sprintf("time %ds", g.State().Score)
	if g.dashLeft > 0 {
		hud += "  DASH"
	}
	dst.DrawText(1, 0, hud)

	for _, d := range g.field {
		dst.DrawRectColored(core.NewRect(int(d.x), int(d.y), d.w, 1), DebrisChar, core.ColorYellow)
	}

	if playerSprite != nil {
		playerSprite.Draw(dst, int(g.player.X), int(g.player.Y))
	} else {
		dst.DrawRectColored(g.player.Rect(), '█', core.ColorBrightGreen)
	}

	switch {
	case g.gameOver:
		dst.DrawTextCentered(g.runtime.ScreenH/2, "SQUASHED - press R to restart")
	case g.paused:
		dst.DrawTextCentered(g.runtime.ScreenH/2, "PAUSED")
	}
}

// State returns the current game state. Score is seconds survived.
func (g *Game) State() core.GameState {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return core.GameState{
		Score:    g.tickCount / rate,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register("dodge", func() registry.Game { return New() })
}
