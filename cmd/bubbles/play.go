package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubble-arcade/internal/core"
	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
	"github.com/vovakirdan/bubble-arcade/internal/platform/tui"
	"github.com/vovakirdan/bubble-arcade/internal/registry"
	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

var (
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagProfile    string
	flagTheme      string
	flagChapter    int
	flagLevel      int
	flagEndless    bool
	flagGUI        bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play bubbles",
	Long: `Start playing. Without --chapter or --endless the chapter menu opens,
with "Continue" resuming saved progress.

Controls:
  Mouse        - Aim (click to fire)
  Left/Right   - Rotate aim
  Space        - Fire
  P            - Pause
  R            - Retry (after game over)
  Esc/B        - Back to menu (when paused or over)
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Sparser levels, slower shots, floating spheres drop
  normal - Configured values
  hard   - Denser levels, faster shots

Examples:
  bubbles play
  bubbles play --chapter 2 --level 3
  bubbles play --endless --difficulty hard
  bubbles play --gui
  bubbles play --levels ./my-chapters.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to a chapters file or directory")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Progress save slot")
	playCmd.Flags().StringVar(&flagTheme, "theme", "default", "Menu theme: default, mono")
	playCmd.Flags().IntVar(&flagChapter, "chapter", 0, "Start at this chapter (1-based)")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Start at this level of the chapter (1-based)")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play generated levels instead of chapters")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window (binaries built with -tags gui)")
}

// playConfig builds the runtime config from flags and terminal size.
func playConfig() core.RuntimeConfig {
	cfg := baseConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.ConfigPath = flagConfig
	cfg.LevelsPath = flagLevels
	cfg.Difficulty = flagDifficulty
	cfg.Profile = flagProfile
	if flagChapter > 0 {
		cfg.StartChapter = flagChapter - 1
		cfg.StartLevel = max(flagLevel-1, 0)
	}
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) {
	if t, ok := tui.ThemeByName(flagTheme); ok {
		tui.SetTheme(t)
	} else {
		fmt.Fprintf(os.Stderr, "Warning: unknown theme %q, using default\n", flagTheme)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	cfg := playConfig()

	gameID := bubbles.IDChapters
	if flagEndless {
		gameID = bubbles.IDEndless
	}

	if flagGUI {
		game := bubbles.New(bubbles.ModeChapters)
		if flagEndless {
			game = bubbles.New(bubbles.ModeEndless)
		}
		if err := runWindow(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// A level given on the command line skips the menu.
	if flagChapter > 0 || flagEndless {
		if _, err := playOnce(gameID, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runMenuLoop(store, cfg)
}

// playOnce runs one game program and reports whether to show the menu next.
func playOnce(gameID string, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return false, err
	}
	return tui.Run(game, store, cfg)
}

// runMenuLoop alternates menu, game and scoreboard until the player quits.
func runMenuLoop(store *storage.Store, cfg core.RuntimeConfig) {
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return // User quit from scoreboard
		}

		back, err := playOnce(menuResult.GameID, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
