package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/oddhue/internal/core"
)

// stubGame is a minimal registry.Game for exercising the model.
type stubGame struct {
	over bool
}

func (g *stubGame) ID() string                  { return "stub" }
func (g *stubGame) Title() string               { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)    {}
func (g *stubGame) Render(*core.Screen)         {}
func (g *stubGame) State() core.GameState       { return core.GameState{GameOver: g.over} }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{State: g.State()}
}

func TestEscLeavesFinishedGame(t *testing.T) {
	m := NewModel(&stubGame{over: true}, core.DefaultConfig())
	m.gameState.GameOver = true

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	model, ok := updated.(Model)
	if !ok {
		t.Fatal("Update should return a Model")
	}
	if !model.BackToMenu() {
		t.Error("Esc after game over should request leaving the game")
	}
	// The standalone program must actually exit so the menu loop (or the
	// shell) gets control back.
	if cmd == nil {
		t.Fatal("Esc after game over should return a command")
	}
	if _, isQuit := cmd().(tea.QuitMsg); !isQuit {
		t.Error("Esc after game over should quit the program")
	}
}

func TestEscDuringPlayDoesNotQuit(t *testing.T) {
	m := NewModel(&stubGame{}, core.DefaultConfig())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	model := updated.(Model)
	if model.BackToMenu() {
		t.Error("Esc mid-game should not leave the game")
	}
	if cmd != nil {
		t.Error("Esc mid-game should not emit a command")
	}
}
