// bubbles is a bubble shooter for the terminal, SSH and the desktop.
//
// Usage:
//
//	bubbles play               - Pick a chapter from the menu and play
//	bubbles play --chapter 2   - Start chapter 2 directly
//	bubbles play --gui         - Play in a desktop window
//	bubbles chapters           - List the chapters
//	bubbles progress show      - Show saved progress
//	bubbles scores             - Show high scores
//	bubbles serve              - Start SSH server for remote play
//	bubbles simulate           - Fire scripted shots and print the grid
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible levels
//	--db <path>          - Set database path (default: ~/.bubbles/bubbles.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-arcade/internal/core"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bubbles",
	Short: "Bubbles - a bubble shooter for your terminal",
	Long: `Bubbles is a bubble shooter. Aim, fire, and connect three or more
spheres of one color to pop them. Clear every sphere to finish a level.

Available commands:
  play      - Play from the chapter menu or a given level
  chapters  - List chapters and their level counts
  progress  - Show or reset saved progress
  scores    - View high scores
  serve     - Start SSH server for remote play
  simulate  - Fire scripted shots at a seeded level

Examples:
  bubbles play
  bubbles play --chapter 3 --level 2
  bubbles play --endless --difficulty hard
  bubbles serve --ssh :2222`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		bubbles.SetLogger(newLogger())
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bubbles/bubbles.db", "Path to progress and scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bubbles",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// openStore opens the database and wires it as the progress store.
// A failure is reported and play continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	bubbles.SetProgressStore(store)
	return store
}

// mustOpenStore opens the database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// baseConfig returns the runtime config from global flags.
func baseConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
