// Package config provides YAML-based game configuration loading and
// difficulty management for the bubble shooter.
package config

// BubblesConfig contains all configuration for the bubble shooter.
type BubblesConfig struct {
	Physics    BubblesPhysics   `yaml:"physics"`
	Canvas     BubblesCanvas    `yaml:"canvas"`
	Grid       BubblesGrid      `yaml:"grid"`
	Rules      BubblesRules     `yaml:"rules"`
	Particles  BubblesParticles `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BubblesPhysics defines projectile and sphere sizing in canvas units.
type BubblesPhysics struct {
	Speed        float64 `yaml:"speed"`         // Projectile displacement per tick
	BubbleRadius float64 `yaml:"bubble_radius"` // Sphere radius
	Packing      float64 `yaml:"packing"`       // Cell pitch in radii
}

// BubblesCanvas defines the playfield and shooter placement.
type BubblesCanvas struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	ShooterOffset float64 `yaml:"shooter_offset"` // Distance of the shooter above the bottom edge
	ShooterRadius float64 `yaml:"shooter_radius"`
}

// BubblesGrid defines generated level shape.
type BubblesGrid struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Occupancy float64 `yaml:"occupancy"` // Fraction of cells filled in generated levels
}

// BubblesRules defines matching and scoring.
type BubblesRules struct {
	MinCluster      int  `yaml:"min_cluster"`
	DropFloating    bool `yaml:"drop_floating"`
	PointsPerBubble int  `yaml:"points_per_bubble"`
}

// BubblesParticles defines the attach burst effect.
type BubblesParticles struct {
	Count int     `yaml:"count"`
	Decay float64 `yaml:"decay"` // Alpha lost per tick
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
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	OccupancyIncrease float64 `yaml:"occupancy_increase"` // Occupancy added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return DifficultyNormal, false
	}
}

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
