// Package game adapts the color-perception engine to the platform's Game
// interface: cursor movement, tick pacing, and screen rendering around a
// pure engine.Session.
package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/oddhue/internal/config"
	"github.com/vovakirdan/oddhue/internal/core"
	"github.com/vovakirdan/oddhue/internal/engine"
	"github.com/vovakirdan/oddhue/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic" // 60 second countdown, wrong answers cost time
	ModeZen     Mode = "zen"     // no clock, no penalty; practice until quit
)

// flash is transient HUD feedback after a selection.
type flash int

const (
	flashNone flash = iota
	flashCorrect
	flashWrong
)

// Game implements the Odd Hue game on top of engine.Session.
type Game struct {
	mode    Mode
	rng     *rand.Rand
	session *engine.Session

	// Cursor position on the grid, in cell coordinates.
	cursorX int
	cursorY int

	// Tick pacing: the session clock advances once per second, the
	// platform steps us once per frame.
	tickRate    int
	tickCounter int

	// Screen dimensions
	screenW int
	screenH int

	tooSmall bool

	// Transient feedback from the last selection
	flash      flash
	flashTicks int

	celebrate bool
}

// Package-level variables for config/difficulty (set by the CLI before the
// platform calls Reset).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets an explicit config file path. Empty means the default
// search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name. Empty means use the
// config file's values as-is.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewZen creates a new zen mode game.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("classic", func() registry.Game {
		return New()
	})
	registry.Register("zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Odd Hue (Zen)"
	}
	return "Odd Hue"
}

// loadRules builds engine tuning from the config file and preset.
func (g *Game) loadRules() engine.Rules {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if preset, ok := config.ParsePreset(difficultyPreset); ok {
		config.ApplyPreset(&cfg, preset)
	}
	return RulesFromConfig(cfg, g.mode == ModeClassic)
}

// RulesFromConfig maps a loaded config onto engine tuning. The timed flag
// selects between the classic countdown and zen mode.
func RulesFromConfig(cfg config.Config, timed bool) engine.Rules {
	return engine.Rules{
		InitialSeconds:    cfg.Session.InitialSeconds,
		PenaltySeconds:    cfg.Session.WrongPenaltySeconds,
		BaseDelta:         cfg.Difficulty.BaseDelta,
		ShrinkEveryLevels: cfg.Difficulty.ShrinkEveryLevels,
		MinDelta:          cfg.Difficulty.MinDelta,
		SaturationMin:     cfg.Color.SaturationMin,
		SaturationMax:     cfg.Color.SaturationMax,
		LightnessMin:      cfg.Color.LightnessMin,
		LightnessMax:      cfg.Color.LightnessMax,
		CelebrationScore:  cfg.Celebration.MinScore,
		Timed:             timed,
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tickCounter = 0
	g.cursorX = 0
	g.cursorY = 0
	g.flash = flashNone
	g.flashTicks = 0
	g.celebrate = false

	rules := g.loadRules()
	g.session = engine.NewSession(rules, engine.NewGenerator(g.rng, rules))
	g.session.SetListener(g.onEvent)
	g.session.Start()

	g.updateFit()
}

// updateFit rechecks whether the largest board fits the current screen,
// with the HUD and a margin row.
func (g *Game) updateFit() {
	requiredW := maxGridSize*cellStride - gapWidth
	requiredH := maxGridSize + hudHeight + 2
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// onEvent receives session notifications and keeps the transient HUD
// feedback in sync.
func (g *Game) onEvent(ev engine.Event) {
	switch ev.Kind {
	case engine.EventCorrect:
		g.flash = flashCorrect
		g.flashTicks = g.tickRate
	case engine.EventWrong:
		g.flash = flashWrong
		g.flashTicks = g.tickRate
	case engine.EventEnded:
		g.celebrate = ev.Celebrate
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart after the clock ran out
	if input.Has(core.ActionRestart) && g.session.Status() == engine.StatusEnded {
		g.tickCounter = 0
		g.cursorX = 0
		g.cursorY = 0
		g.flash = flashNone
		g.flashTicks = 0
		g.celebrate = false
		g.session.Start()
		return core.StepResult{State: g.State()}
	}

	if g.session.Status() != engine.StatusPlaying {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	// Advance the one-second countdown once per tickRate frames
	g.tickCounter++
	if g.tickCounter >= g.tickRate {
		g.tickCounter = 0
		g.session.Tick()
	}

	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			g.flash = flashNone
		}
	}

	return core.StepResult{State: g.State()}
}

// processInput moves the cursor and handles selection.
func (g *Game) processInput(input core.InputFrame) {
	size := g.session.Round().GridSize
	if size <= 0 {
		return
	}

	switch {
	case input.Has(core.ActionUp):
		g.cursorY--
	case input.Has(core.ActionDown):
		g.cursorY++
	case input.Has(core.ActionLeft):
		g.cursorX--
	case input.Has(core.ActionRight):
		g.cursorX++
	}
	g.cursorX = core.Clamp(g.cursorX, 0, size-1)
	g.cursorY = core.Clamp(g.cursorY, 0, size-1)

	if input.Has(core.ActionConfirm) {
		g.session.Select(g.cursorY*size + g.cursorX)
		// A correct answer may shrink or grow the board
		size = g.session.Round().GridSize
		g.cursorX = core.Clamp(g.cursorX, 0, size-1)
		g.cursorY = core.Clamp(g.cursorY, 0, size-1)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Status() == engine.StatusEnded,
	}
}

// Session exposes the underlying session for the CLI's level table and for
// tests.
func (g *Game) Session() *engine.Session {
	return g.session
}
