package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-arcade/internal/storage"
)

var flagProgressProfile string

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or reset saved progress",
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show saved progress for every profile",
	Args:  cobra.NoArgs,
	Run:   runProgressShow,
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget saved progress for a profile",
	Long: `Forget saved progress so "Continue" starts from the first level.

Examples:
  bubbles progress reset
  bubbles progress reset --profile ssh:alice`,
	Args: cobra.NoArgs,
	Run:  runProgressReset,
}

func init() {
	progressResetCmd.Flags().StringVar(&flagProgressProfile, "profile", storage.DefaultProfile, "Progress save slot")
	progressCmd.AddCommand(progressShowCmd)
	progressCmd.AddCommand(progressResetCmd)
}

func runProgressShow(cmd *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	all, err := store.AllProgress()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving progress: %v\n", err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Println("No progress saved yet.")
		return
	}

	fmt.Printf("  %-20s  %-7s  %-5s  %s\n", "Profile", "Chapter", "Level", "Updated")
	fmt.Printf("  %-20s  %-7s  %-5s  %s\n", "-------", "-------", "-----", "-------")
	for _, p := range all {
		fmt.Printf("  %-20s  %-7d  %-5d  %s\n", p.Profile, p.Chapter+1, p.Level+1, p.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func runProgressReset(cmd *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	if err := store.ResetProgress(flagProgressProfile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Progress for %q reset.\n", flagProgressProfile)
}
