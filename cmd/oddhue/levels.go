package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/oddhue/internal/config"
	"github.com/vovakirdan/oddhue/internal/engine"
	"github.com/vovakirdan/oddhue/internal/game"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the difficulty curve",
	Long: `Print how the board size and the color difference change with level.

A row is printed for every level where either value changes, so the table
shows the whole curve without listing every level.

Examples:
  oddhue levels
  oddhue levels --difficulty hard
  oddhue levels --config ./my-oddhue.yaml`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	levelsCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if preset, ok := config.ParsePreset(flagDifficulty); ok {
		config.ApplyPreset(&cfg, preset)
	}
	rules := game.RulesFromConfig(cfg, true)

	fmt.Println("Difficulty curve:")
	fmt.Println()
	fmt.Printf("  %-7s  %-7s  %s\n", "Level", "Board", "Lightness delta")
	fmt.Printf("  %-7s  %-7s  %s\n", "-----", "-----", "---------------")

	// Print every level where the board or the delta changes. Stop once
	// both have settled: the board caps at its largest size and the delta
	// at its floor.
	lastGrid, lastDelta := 0, 0
	for level := 1; level <= 200; level++ {
		grid := engine.GridSizeFor(level)
		delta := rules.DeltaFor(level)
		if grid == lastGrid && delta == lastDelta {
			continue
		}
		fmt.Printf("  %-7d  %-7s  %d\n", level, fmt.Sprintf("%dx%d", grid, grid), delta)
		lastGrid, lastDelta = grid, delta
		if grid == engine.GridSizeFor(level+100) && delta == rules.DeltaFor(level+100) {
			break
		}
	}

	fmt.Println()
	fmt.Printf("Clock: %d seconds, wrong pick costs %d.\n", rules.InitialSeconds, rules.PenaltySeconds)
}
