package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cyberscribe/secret-santa/pkg/exchange"
)

func testRevealCycle() exchange.Cycle {
	return exchange.Cycle{
		{Giver: "Alice", Receiver: "Bob"},
		{Giver: "Bob", Receiver: "Carol"},
		{Giver: "Carol", Receiver: "Alice"},
	}
}

func pressKey(t *testing.T, m RevealModel, msg tea.Msg) RevealModel {
	t.Helper()
	updated, _ := m.Update(msg)
	rm, ok := updated.(RevealModel)
	if !ok {
		t.Fatalf("Update returned %T, want RevealModel", updated)
	}
	return rm
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestRevealModelNavigation(t *testing.T) {
	m := NewRevealModel(testRevealCycle())

	m = pressKey(t, m, runeKey('j'))
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d after down, want 1", m.Cursor)
	}

	m = pressKey(t, m, runeKey('k'))
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after up, want 0", m.Cursor)
	}

	// Moving above the first row stays put
	m = pressKey(t, m, runeKey('k'))
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d at top, want 0", m.Cursor)
	}
}

func TestRevealModelRevealAndHide(t *testing.T) {
	m := NewRevealModel(testRevealCycle())

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Shown {
		t.Error("Shown should be true after enter")
	}
	if !m.Seen[0] {
		t.Error("Seen[0] should be true after enter")
	}

	m = pressKey(t, m, runeKey('h'))
	if m.Shown {
		t.Error("Shown should be false after h")
	}
	if !m.Seen[0] {
		t.Error("Seen[0] should survive hiding")
	}
}

func TestRevealModelMovingHidesReceiver(t *testing.T) {
	m := NewRevealModel(testRevealCycle())

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pressKey(t, m, runeKey('j'))

	if m.Shown {
		t.Error("Shown should reset when the cursor moves")
	}
	if !m.Seen[0] {
		t.Error("Seen[0] should persist after moving away")
	}
}

func TestRevealModelQuit(t *testing.T) {
	m := NewRevealModel(testRevealCycle())

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.QuitMsg")
	}
}

func TestRevealModelView(t *testing.T) {
	m := NewRevealModel(testRevealCycle())

	view := m.View()
	if !strings.Contains(view, "Alice") {
		t.Error("view should list givers")
	}
	if !strings.Contains(view, "hidden") {
		t.Error("view should mark unrevealed rows as hidden")
	}
	if strings.Contains(view, "→ Bob") {
		t.Error("view should not show a receiver before reveal")
	}

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	view = m.View()
	if !strings.Contains(view, "→ Bob") {
		t.Error("view should show the receiver for the revealed row")
	}

	m = pressKey(t, m, runeKey('j'))
	view = m.View()
	if strings.Contains(view, "→ Bob") {
		t.Error("view should hide the receiver after moving away")
	}
	if !strings.Contains(view, "revealed") {
		t.Error("view should mark previously revealed rows")
	}
}

func TestRevealModelWindowSize(t *testing.T) {
	m := NewRevealModel(testRevealCycle())

	m = pressKey(t, m, tea.WindowSizeMsg{Width: 80, Height: 50})
	if m.Height != 42 {
		t.Errorf("Height = %d, want 42", m.Height)
	}

	m = pressKey(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})
	if m.Height != 5 {
		t.Errorf("Height = %d, want clamp to 5", m.Height)
	}
}
