package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
	"github.com/vovakirdan/bubble-arcade/internal/registry"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a game mode (default: bubbles).

Examples:
  bubbles scores
  bubbles scores bubbles_endless
  bubbles scores --stats
  bubbles scores bubbles --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var (
	scoresStats bool
	scoresClear bool
)

func init() {
	scoresCmd.Flags().BoolVar(&scoresStats, "stats", false, "Show totals for every mode instead of a top list")
	scoresCmd.Flags().BoolVar(&scoresClear, "clear", false, "Delete all scores of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	if scoresStats {
		runScoreStats()
		return
	}

	gameID := bubbles.IDChapters
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bubbles list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := mustOpenStore()
	defer store.Close()

	if scoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scores cleared for %s\n", game.Title())
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.HighScore(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}

func runScoreStats() {
	store := mustOpenStore()
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-18s  %-6s  %-6s  %-8s  %s\n", "Mode", "Games", "Best", "Average", "Last played")
	for _, info := range registry.List() {
		gs, ok := stats[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-18s  %-6d  %-6d  %-8.1f  %s\n",
			info.ID, gs.GamesCount, gs.HighScore, gs.AvgScore, gs.LastPlayed.Format("2006-01-02 15:04"))
	}
}
