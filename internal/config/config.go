// Package config provides YAML-based game configuration loading and
// difficulty management for the kit's bundled games.
package config

// PaddleConfig contains all configuration for the Paddle game.
type PaddleConfig struct {
	Paddle     PaddleSettings   `yaml:"paddle"`
	Ball       BallSettings     `yaml:"ball"`
	WinScore   int              `yaml:"win_score"`
	CPUSkill   float64          `yaml:"cpu_skill"` // 0-1, chance per tick the CPU tracks the ball
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PaddleSettings defines paddle geometry and movement.
type PaddleSettings struct {
	Height int     `yaml:"height"`
	Width  int     `yaml:"width"`
	Offset int     `yaml:"offset"` // Distance from the screen edge
	Speed  float64 `yaml:"speed"`  // Cells per tick
}

// BallSettings defines the ball's serve velocity.
type BallSettings struct {
	SpeedX float64 `yaml:"speed_x"`
	SpeedY float64 `yaml:"speed_y"`
}

// DodgeConfig contains all configuration for the Dodge game.
type DodgeConfig struct {
	Player     DodgePlayer      `yaml:"player"`
	Debris     DodgeDebris      `yaml:"debris"`
	Dash       DodgeDash        `yaml:"dash"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DodgePlayer defines the player body and movement speed.
type DodgePlayer struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// DodgeDebris defines the falling debris field.
type DodgeDebris struct {
	MinWidth   int     `yaml:"min_width"`
	MaxWidth   int     `yaml:"max_width"`
	Speed      float64 `yaml:"speed"`
	SpawnEvery int     `yaml:"spawn_every"` // Ticks between spawns
}

// DodgeDash defines the spacebar dash boost.
type DodgeDash struct {
	Ticks      int     `yaml:"ticks"`      // Dash duration in ticks
	Multiplier float64 `yaml:"multiplier"` // Speed multiplier while dashing
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to speed at max difficulty
	SpawnReduction  int     `yaml:"spawn_reduction"`  // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
