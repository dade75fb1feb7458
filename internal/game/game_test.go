package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/oddhue/internal/config"
	"github.com/vovakirdan/oddhue/internal/core"
	"github.com/vovakirdan/oddhue/internal/engine"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical sessions
	cfg := testConfig(12345)

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		input.Clear()
		if i == 20 {
			input.Set(core.ActionRight)
		}
		if i == 40 {
			input.Set(core.ActionConfirm)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Session().Snapshot()
	snap2 := g2.Session().Snapshot()
	if snap1 != snap2 {
		t.Errorf("Session mismatch: %+v vs %+v", snap1, snap2)
	}
	if g1.cursorX != g2.cursorX || g1.cursorY != g2.cursorY {
		t.Errorf("Cursor mismatch: (%d,%d) vs (%d,%d)", g1.cursorX, g1.cursorY, g2.cursorX, g2.cursorY)
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	// Level 1 board is 2x2
	if size := g.Session().Round().GridSize; size != 2 {
		t.Fatalf("Expected 2x2 board at level 1, got %d", size)
	}

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)
	input.Clear()
	input.Set(core.ActionUp)
	g.Step(input)

	if g.cursorX != 0 || g.cursorY != 0 {
		t.Errorf("Cursor should stay at (0,0), got (%d,%d)", g.cursorX, g.cursorY)
	}

	input.Clear()
	input.Set(core.ActionRight)
	for i := 0; i < 5; i++ {
		g.Step(input)
	}

	if g.cursorX != 1 {
		t.Errorf("Cursor X should clamp at 1, got %d", g.cursorX)
	}
}

func TestConfirmSelectsCellUnderCursor(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	round := g.Session().Round()
	g.cursorX = round.DiffIndex % round.GridSize
	g.cursorY = round.DiffIndex / round.GridSize

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if g.Session().Score() != 1 {
		t.Errorf("Score should be 1 after picking the odd cell, got %d", g.Session().Score())
	}
	if g.Session().Level() != 2 {
		t.Errorf("Level should be 2, got %d", g.Session().Level())
	}
	if g.flash != flashCorrect {
		t.Error("Correct pick should set the correct flash")
	}
}

func TestWrongSelectionCostsTime(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	round := g.Session().Round()
	// Put the cursor on a base-colored cell
	wrong := 0
	if round.DiffIndex == 0 {
		wrong = 1
	}
	g.cursorX = wrong % round.GridSize
	g.cursorY = wrong / round.GridSize

	before := g.Session().TimeLeft()
	penalty := g.Session().Rules().PenaltySeconds

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if got := g.Session().TimeLeft(); got != before-penalty {
		t.Errorf("TimeLeft should drop to %d, got %d", before-penalty, got)
	}
	if g.Session().Score() != 0 {
		t.Errorf("Score should stay 0, got %d", g.Session().Score())
	}
	if g.flash != flashWrong {
		t.Error("Wrong pick should set the wrong flash")
	}
}

func TestClockAdvancesOncePerTickRate(t *testing.T) {
	g := New()
	g.Reset(testConfig(9))

	start := g.Session().TimeLeft()
	input := core.NewInputFrame()

	for i := 0; i < 59; i++ {
		g.Step(input)
	}
	if got := g.Session().TimeLeft(); got != start {
		t.Errorf("Clock should not move before a full second of frames, got %d", got)
	}

	g.Step(input)
	if got := g.Session().TimeLeft(); got != start-1 {
		t.Errorf("Clock should drop to %d after 60 frames, got %d", start-1, got)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig(11))

	// Drain the clock with wrong answers
	for g.Session().Status() == engine.StatusPlaying {
		round := g.Session().Round()
		wrong := 0
		if round.DiffIndex == 0 {
			wrong = 1
		}
		g.Session().Select(wrong)
	}

	if !g.State().GameOver {
		t.Fatal("Game should report game over once the clock is drained")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	if g.Session().Status() != engine.StatusPlaying {
		t.Error("Restart should start a fresh session")
	}
	if g.Session().Score() != 0 {
		t.Errorf("Score should reset to 0, got %d", g.Session().Score())
	}
	if g.cursorX != 0 || g.cursorY != 0 {
		t.Errorf("Cursor should reset to (0,0), got (%d,%d)", g.cursorX, g.cursorY)
	}
}

func TestZenIgnoresClockAndPenalty(t *testing.T) {
	g := NewZen()
	g.Reset(testConfig(13))

	start := g.Session().TimeLeft()
	input := core.NewInputFrame()

	// A full simulated second must not touch the clock
	for i := 0; i < 120; i++ {
		g.Step(input)
	}
	if got := g.Session().TimeLeft(); got != start {
		t.Errorf("Zen clock should never move, got %d", got)
	}

	// Wrong answers cost nothing
	round := g.Session().Round()
	wrong := 0
	if round.DiffIndex == 0 {
		wrong = 1
	}
	g.Session().Select(wrong)

	if got := g.Session().TimeLeft(); got != start {
		t.Errorf("Zen penalty should be free, got %d", got)
	}
	if g.Session().Status() != engine.StatusPlaying {
		t.Error("Zen session should keep playing")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 10, ScreenH: 5, TickRate: 60})

	if !g.tooSmall {
		t.Error("Game should detect window is too small")
	}

	screen := core.NewScreen(10, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "small") {
		t.Error("Too-small overlay should be rendered")
	}
}

func TestResizeDuringGameOverUpdatesFit(t *testing.T) {
	g := New()
	g.Reset(testConfig(21))

	for g.Session().Status() == engine.StatusPlaying {
		g.Session().Tick()
	}

	// The terminal shrank while the game-over overlay was up; that path
	// never goes through Reset
	g.Render(core.NewScreen(10, 5))
	if !g.tooSmall {
		t.Fatal("shrinking the terminal should flag the board as unfit")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)
	if g.Session().Status() != engine.StatusEnded {
		t.Error("restart should be ignored while the window is too small")
	}

	// Growing the terminal clears the flag and restart works again
	g.Render(core.NewScreen(80, 24))
	if g.tooSmall {
		t.Fatal("growing the terminal should clear the fit flag")
	}
	g.Step(input)
	if g.Session().Status() != engine.StatusPlaying {
		t.Error("restart should work once the board fits again")
	}
}

func TestGameIDs(t *testing.T) {
	if id := New().ID(); id != "classic" {
		t.Errorf("Classic ID should be 'classic', got %s", id)
	}
	if id := NewZen().ID(); id != "zen" {
		t.Errorf("Zen ID should be 'zen', got %s", id)
	}
}

func TestTitles(t *testing.T) {
	if title := New().Title(); title != "Odd Hue" {
		t.Errorf("Classic title should be 'Odd Hue', got %s", title)
	}
	if title := NewZen().Title(); title != "Odd Hue (Zen)" {
		t.Errorf("Zen title should be 'Odd Hue (Zen)', got %s", title)
	}
}

func TestRender(t *testing.T) {
	cfg := testConfig(444)
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Odd Hue") {
		t.Error("HUD should contain the game title")
	}
	if !strings.Contains(content, "[") || !strings.Contains(content, "]") {
		t.Error("Cursor markers should be drawn")
	}
	if !strings.Contains(content, "█") {
		t.Error("Board cells should be drawn")
	}
}

func TestRenderColorsMatchRound(t *testing.T) {
	cfg := testConfig(555)
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	round := g.Session().Round()
	baseHex := core.Color(round.Base.Hex())
	diffHex := core.Color(round.Diff.Hex())

	base, diff := 0, 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			cell := screen.GetCell(x, y)
			if cell.Rune != '█' {
				continue
			}
			switch cell.Fg {
			case baseHex:
				base++
			case diffHex:
				diff++
			default:
				t.Fatalf("Unexpected cell color %q", cell.Fg)
			}
		}
	}

	cells := round.Cells()
	if base != (cells-1)*cellWidth {
		t.Errorf("Expected %d base runes, got %d", (cells-1)*cellWidth, base)
	}
	if diff != cellWidth {
		t.Errorf("Expected %d odd runes, got %d", cellWidth, diff)
	}
}

func TestGameOverOverlay(t *testing.T) {
	cfg := testConfig(666)
	g := New()
	g.Reset(cfg)

	// Solve one round so the summary line has content
	round := g.Session().Round()
	g.Session().Select(round.DiffIndex)

	for g.Session().Status() == engine.StatusPlaying {
		g.Session().Tick()
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Final score: 1") {
		t.Error("Overlay should show the final score")
	}
	if !strings.Contains(content, "Last pair:") {
		t.Error("Overlay should show the last solved pair")
	}
	if !strings.Contains(content, "Press R to restart") {
		t.Error("Overlay should show the restart hint")
	}
}

func TestRulesFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	rules := RulesFromConfig(cfg, true)

	if rules.InitialSeconds != cfg.Session.InitialSeconds {
		t.Errorf("InitialSeconds mismatch: %d", rules.InitialSeconds)
	}
	if rules.PenaltySeconds != cfg.Session.WrongPenaltySeconds {
		t.Errorf("PenaltySeconds mismatch: %d", rules.PenaltySeconds)
	}
	if rules.BaseDelta != cfg.Difficulty.BaseDelta {
		t.Errorf("BaseDelta mismatch: %d", rules.BaseDelta)
	}
	if rules.CelebrationScore != cfg.Celebration.MinScore {
		t.Errorf("CelebrationScore mismatch: %d", rules.CelebrationScore)
	}
	if !rules.Timed {
		t.Error("Classic rules should be timed")
	}

	zen := RulesFromConfig(cfg, false)
	if zen.Timed {
		t.Error("Zen rules should not be timed")
	}
}
