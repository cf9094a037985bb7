package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	ConfigPath string // Game config file, empty for the default search order
	LevelsPath string // Chapter catalogue file or directory, empty for the embedded one
	Difficulty string // Difficulty preset name
	Profile    string // Progress record key

	// Start position, zero-based. A negative chapter resumes saved progress.
	StartChapter int
	StartLevel   int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickRate:     60,
		Seed:         0, // 0 means use current time in platform layer
		Difficulty:   "normal",
		Profile:      DefaultProfile,
		StartChapter: -1,
	}
}

// DefaultProfile is the progress key used when none is given.
const DefaultProfile = "bw4Progress"

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Won      bool   // Whether every level was cleared
	Paused   bool   // Whether the game is paused
	Label    string // Current level label for the platform HUD
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	Attached     bool // A sphere joined the grid this tick
	Lost         bool // A shot left the field without attaching
	Removed      int  // Spheres cleared this tick
	LevelCleared bool // The level was completed this tick
}
