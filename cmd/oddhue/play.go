package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/oddhue/internal/core"
	"github.com/vovakirdan/oddhue/internal/game"
	"github.com/vovakirdan/oddhue/internal/platform/tui"
	"github.com/vovakirdan/oddhue/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode. Defaults to classic.

Modes:
  classic - 60 second countdown, wrong picks cost 3 seconds
  zen     - no clock and no penalty, practice until you quit

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Enter/Space      - Pick the block under the cursor
  R                - Restart (after the clock runs out)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Bigger color difference, shrinks slowly
  normal - Default tuning
  hard   - Smaller color difference, shrinks fast
  fixed  - Color difference never shrinks

Examples:
  oddhue play
  oddhue play zen
  oddhue play --difficulty hard
  oddhue play --config ./my-oddhue.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "classic"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Available modes: classic, zen.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before creation
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(g, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
