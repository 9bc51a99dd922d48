package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPaddle loads the Paddle game configuration.
// Search order: customPath -> ~/.glyphkit/configs/paddle.yaml ->
// ./configs/paddle.yaml -> embedded default.
func LoadPaddle(customPath string) (PaddleConfig, error) {
	var cfg PaddleConfig
	if err := load("paddle.yaml", customPath, defaultPaddleYAML, &cfg); err != nil {
		return DefaultPaddleConfig(), err
	}
	return cfg, nil
}

// LoadDodge loads the Dodge game configuration.
// Search order: customPath -> ~/.glyphkit/configs/dodge.yaml ->
// ./configs/dodge.yaml -> embedded default.
func LoadDodge(customPath string) (DodgeConfig, error) {
	var cfg DodgeConfig
	if err := load("dodge.yaml", customPath, defaultDodgeYAML, &cfg); err != nil {
		return DefaultDodgeConfig(), err
	}
	return cfg, nil
}

// load resolves one config file through the standard search order.
// A customPath failure is an error the caller sees; the fallback tiers
// fail silently into the embedded default.
func load(filename, customPath string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("config: embedded %s: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".glyphkit", "configs", filename)
}

// ApplyPaddlePreset modifies the config based on a difficulty preset.
func ApplyPaddlePreset(cfg *PaddleConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

// ApplyDodgePreset modifies the config based on a difficulty preset.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}
