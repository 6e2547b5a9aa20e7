package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/fieldlab/internal/charge"
)

func dipole() []charge.Pole {
	return []charge.Pole{
		charge.New(250, 250, 1, 15),
		charge.New(450, 250, -1, 15),
	}
}

func press(m Explorer, msgs ...tea.KeyMsg) Explorer {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Explorer)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestExplorerSelect(t *testing.T) {
	m := NewExplorer(dipole())

	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Selected() != 1 {
		t.Errorf("expected pole 1, got %d", m.Selected())
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Selected() != 0 {
		t.Errorf("selection should wrap, got %d", m.Selected())
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Selected() != 1 {
		t.Errorf("shift+tab should go back, got %d", m.Selected())
	}
}

func TestExplorerMove(t *testing.T) {
	poles := dipole()
	m := NewExplorer(poles)

	m = press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyUp})
	got := m.Poles()[0]
	if got.X() != 260 || got.Y() != 240 {
		t.Errorf("expected (260, 240), got (%v, %v)", got.X(), got.Y())
	}
	if got.ID != poles[0].ID {
		t.Error("move must keep the pole id")
	}
	if poles[0].X() != 250 {
		t.Error("caller's poles were mutated")
	}
}

func TestExplorerMoveClampsToCanvas(t *testing.T) {
	m := NewExplorer([]charge.Pole{charge.New(5, 5, 1, 15)})
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyUp})

	got := m.Poles()[0]
	if got.X() != 0 || got.Y() != 0 {
		t.Errorf("expected clamp to origin, got (%v, %v)", got.X(), got.Y())
	}
}

func TestExplorerRecharge(t *testing.T) {
	m := NewExplorer(dipole())
	if !strings.Contains(m.Status(), "dipole") {
		t.Fatalf("expected dipole status, got %q", m.Status())
	}

	m = press(m, runes("-"))
	if m.Poles()[0].Charge != 0 {
		t.Errorf("expected charge 0, got %v", m.Poles()[0].Charge)
	}
	if !strings.Contains(m.Status(), "none") {
		t.Errorf("one charged pole is no configuration, got %q", m.Status())
	}

	m = press(m, runes("+"), runes("+"))
	if m.Poles()[0].Charge != 2 {
		t.Errorf("expected charge 2, got %v", m.Poles()[0].Charge)
	}
}

func TestExplorerToggleView(t *testing.T) {
	m := NewExplorer(dipole())
	lines := len(m.Vectors())

	m = press(m, runes("v"))
	grid := len(m.Vectors())
	if lines == grid {
		t.Errorf("expected different vector sets, both %d", lines)
	}
	if lines != 16+4 {
		t.Errorf("expected 20 field-line segments for a dipole, got %d", lines)
	}
}

func TestExplorerQuit(t *testing.T) {
	m := NewExplorer(dipole())
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestExplorerView(t *testing.T) {
	m := NewExplorer(dipole())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	m = next.(Explorer)

	view := m.View()
	if !strings.Contains(view, "+") || !strings.Contains(view, "-") {
		t.Error("expected both pole markers in the view")
	}
	if !strings.Contains(view, "multipole explorer") {
		t.Error("expected title")
	}
}

func TestExplorerNoPoles(t *testing.T) {
	m := NewExplorer(nil)
	m = press(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyUp}, runes("+"))
	if len(m.Poles()) != 0 {
		t.Error("expected no poles")
	}
	if m.View() == "" {
		t.Error("expected a view even without poles")
	}
}
