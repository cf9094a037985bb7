package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigDirName is the per-user directory under $HOME holding overrides.
const ConfigDirName = ".bubbles"

// LoadBubbles loads the bubble shooter configuration.
// Search order: customPath -> ~/.bubbles/configs/bubbles.yaml -> ./configs/bubbles.yaml -> embedded default
// Values missing from a file keep their defaults.
func LoadBubbles(customPath string) (BubblesConfig, error) {
	cfg := DefaultBubblesConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bubbles.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "bubbles.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultBubblesConfig()
	if err := yaml.Unmarshal(defaultBubblesYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultBubblesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are ignored.
func tryLoad(path string) (BubblesConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BubblesConfig{}, false
	}
	cfg := DefaultBubblesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BubblesConfig{}, false
	}
	if cfg.Validate() != nil {
		return BubblesConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDirName, "configs", filename)
}

// Validate checks the values the simulation cannot run without.
func (c BubblesConfig) Validate() error {
	switch {
	case c.Physics.Speed <= 0:
		return fmt.Errorf("physics.speed must be positive, got %g", c.Physics.Speed)
	case c.Physics.BubbleRadius <= 0:
		return fmt.Errorf("physics.bubble_radius must be positive, got %g", c.Physics.BubbleRadius)
	case c.Physics.Packing <= 0:
		return fmt.Errorf("physics.packing must be positive, got %g", c.Physics.Packing)
	case c.Canvas.Width <= 2*c.Physics.BubbleRadius:
		return fmt.Errorf("canvas.width %g leaves no room between the walls", c.Canvas.Width)
	case c.Canvas.Height <= c.Canvas.ShooterOffset:
		return fmt.Errorf("canvas.height %g must exceed shooter_offset %g", c.Canvas.Height, c.Canvas.ShooterOffset)
	case c.Grid.Rows <= 0 || c.Grid.Cols <= 0:
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	case c.Grid.Occupancy <= 0 || c.Grid.Occupancy > 1:
		return fmt.Errorf("grid.occupancy must be in (0, 1], got %g", c.Grid.Occupancy)
	case c.Rules.MinCluster < 1:
		return fmt.Errorf("rules.min_cluster must be at least 1, got %d", c.Rules.MinCluster)
	}
	return nil
}

// ApplyBubblesPreset modifies the config based on a difficulty preset.
func ApplyBubblesPreset(cfg *BubblesConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Grid.Occupancy = 0.35
		cfg.Physics.Speed = 12
		cfg.Rules.DropFloating = true
	case DifficultyHard:
		cfg.Grid.Occupancy = 0.65
		cfg.Physics.Speed = 18
	}
}
