package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-arcade/internal/games/bubbles"
)

var flagChaptersLevels string

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "List chapters",
	Long: `List the chapters with their level counts.

Examples:
  bubbles chapters
  bubbles chapters --levels ./my-chapters.yaml`,
	Args: cobra.NoArgs,
	Run:  runChapters,
}

func init() {
	chaptersCmd.Flags().StringVar(&flagChaptersLevels, "levels", "", "Path to a chapters file or directory")
}

func runChapters(cmd *cobra.Command, args []string) {
	chapters, err := bubbles.Chapters(flagChaptersLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	total := 0
	fmt.Printf("  %-3s  %-24s  %s\n", "#", "Title", "Levels")
	fmt.Printf("  %-3s  %-24s  %s\n", "-", "-----", "------")
	for i, ch := range chapters {
		fmt.Printf("  %-3d  %-24s  %d\n", i+1, ch.Title, ch.Levels)
		total += ch.Levels
	}
	fmt.Println()
	fmt.Printf("%d chapters, %d levels\n", len(chapters), total)
}
