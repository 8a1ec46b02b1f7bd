package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSquad loads Squad Defense configuration.
// Search order: customPath -> ~/.arcade/configs/squad.yaml -> ./configs/squad.yaml -> embedded default
func LoadSquad(customPath string) (SquadConfig, error) {
	return load(customPath, "squad.yaml", defaultSquadYAML, DefaultSquadConfig)
}

// LoadSki loads Ski Dodge configuration.
// Search order: customPath -> ~/.arcade/configs/ski.yaml -> ./configs/ski.yaml -> embedded default
func LoadSki(customPath string) (SkiConfig, error) {
	return load(customPath, "ski.yaml", defaultSkiYAML, DefaultSkiConfig)
}

// load resolves a config file by the search order above.
// Files are decoded over the hardcoded defaults, so a partial file only overrides what it names.
func load[T any](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	cfg := fallback()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = fallback()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = fallback()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySquadPreset modifies the config based on a difficulty preset.
// Squad difficulty is carried by lives and enemy mix; fixed leaves the file values alone.
func ApplySquadPreset(cfg *SquadConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 150
		cfg.Player.StartTroops = 3
		cfg.Enemies.ShooterChance = 0.1
	case DifficultyHard:
		cfg.Gameplay.Lives = 60
		cfg.Enemies.ShooterChance = 0.3
		cfg.Waves.InitialSpawnRate = 90
	}
}

// ApplySkiPreset modifies the config based on a difficulty preset.
func ApplySkiPreset(cfg *SkiConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
