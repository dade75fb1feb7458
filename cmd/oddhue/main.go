// oddhue is a terminal game of color perception: one block in the grid has
// a slightly different shade, and you have sixty seconds to keep finding it.
//
// Usage:
//
//	oddhue play [mode]   - Play a mode directly (classic, zen)
//	oddhue menu          - Start menu to pick a mode interactively
//	oddhue serve         - Start SSH server for remote play
//	oddhue levels        - Show the difficulty curve
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/oddhue/internal/game"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oddhue",
	Short: "Odd Hue - Spot the odd-colored block in your terminal",
	Long: `Odd Hue shows a grid of colored blocks where exactly one block has a
slightly different shade. Pick it before the clock runs out: every catch
grows the grid and narrows the difference.

Available commands:
  play     - Play a mode directly (classic, zen)
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  levels   - Show the difficulty curve

Examples:
  oddhue play
  oddhue play zen
  oddhue play --difficulty hard
  oddhue menu
  oddhue serve --ssh :2222
  oddhue levels`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
}
