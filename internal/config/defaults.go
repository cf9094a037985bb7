package config

import (
	_ "embed"
)

//go:embed defaults/bubbles.yaml
var defaultBubblesYAML []byte

// DefaultBubblesConfig returns the default bubble shooter configuration.
func DefaultBubblesConfig() BubblesConfig {
	return BubblesConfig{
		Physics: BubblesPhysics{
			Speed:        15,
			BubbleRadius: 40,
			Packing:      1.05,
		},
		Canvas: BubblesCanvas{
			Width:         340,
			Height:        720,
			ShooterOffset: 100,
			ShooterRadius: 30,
		},
		Grid: BubblesGrid{
			Rows:      6,
			Cols:      8,
			Occupancy: 0.5,
		},
		Rules: BubblesRules{
			MinCluster:      3,
			DropFloating:    false,
			PointsPerBubble: 10,
		},
		Particles: BubblesParticles{
			Count: 10,
			Decay: 0.03,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.3,
				OccupancyIncrease: 0.25,
			},
		},
	}
}
