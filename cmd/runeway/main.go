// runeway is an endless-runner arcade game for the terminal.
//
// Usage:
//
//	runeway play             - Play locally in the current terminal
//	runeway serve            - Start SSH server for remote play
//	runeway scores           - Show the run history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.runeway/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runeway",
	Short: "Runeway - an endless lane-runner in your terminal",
	Long: `Runeway is a terminal endless runner: switch lanes, jump spikes,
dodge aliens and collect the letters of each level's word.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the run history

Examples:
  runeway play
  runeway play --difficulty hard
  runeway serve --ssh :2222
  runeway scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runeway/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
