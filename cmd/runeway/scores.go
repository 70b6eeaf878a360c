package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ardentis/runeway/internal/platform/tui"
	"github.com/ardentis/runeway/internal/storage"
)

var flagPlainScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display past runs, best score first.

By default this opens an interactive table; use --plain for
pipe-friendly text output.

Examples:
  runeway scores
  runeway scores --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlainScores, "plain", false, "Print scores as plain text instead of the interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlainScores {
		printPlainScores(store)
		return
	}

	width := 80
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
	}

	if err := tui.RunScoreboard(store, width); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}

func printPlainScores(store *storage.Store) {
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Runeway - Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runeway play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-3s  %-5s  %-8s  %-9s  %s\n", "Rank", "Score", "Lv", "Gems", "Dist", "Outcome", "Date")
	fmt.Printf("  %-4s  %-10s  %-3s  %-5s  %-8s  %-9s  %s\n", "----", "-----", "--", "----", "----", "-------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-10d  %-3d  %-5d  %-8.0f  %-9s  %s\n",
			i+1, r.Score, r.Level, r.Gems, r.Distance, r.Outcome,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if wins, err := store.Victories(); err == nil && wins > 0 {
		fmt.Printf("Victories: %d\n", wins)
	}
}
