package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/hanoitower/pkg/hanoi"
)

func keyPress(t *testing.T, m PlayModel, key string) PlayModel {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	got, ok := next.(PlayModel)
	if !ok {
		t.Fatalf("Update returned %T, want PlayModel", next)
	}
	return got
}

func TestPlayModelMove(t *testing.T) {
	m, err := NewPlayModel(3)
	if err != nil {
		t.Fatal(err)
	}

	m = keyPress(t, m, "a")
	if !m.HasSel || m.Selected != hanoi.PegA {
		t.Fatalf("selection = %v/%v, want peg A selected", m.HasSel, m.Selected)
	}

	m = keyPress(t, m, "c")
	if m.HasSel {
		t.Error("selection should clear after a move")
	}
	if len(m.History) != 1 {
		t.Fatalf("len(history) = %d, want 1", len(m.History))
	}
	if top, ok := m.State[hanoi.PegC].Top(); !ok || top.Size != 1 {
		t.Errorf("peg C top = %+v, want size 1", top)
	}
}

func TestPlayModelIllegalMove(t *testing.T) {
	m, err := NewPlayModel(3)
	if err != nil {
		t.Fatal(err)
	}

	// Small disk to C, then trying to drop the next disk on it is illegal.
	m = keyPress(t, m, "a")
	m = keyPress(t, m, "c")
	m = keyPress(t, m, "a")
	m = keyPress(t, m, "c")

	if len(m.History) != 1 {
		t.Errorf("len(history) = %d, want 1 after illegal move", len(m.History))
	}
	if m.statusOK {
		t.Error("illegal move should set an error status")
	}
}

func TestPlayModelEmptyPeg(t *testing.T) {
	m, err := NewPlayModel(2)
	if err != nil {
		t.Fatal(err)
	}
	m = keyPress(t, m, "b")
	if m.HasSel {
		t.Error("selecting an empty peg should not set a source")
	}
}

func TestPlayModelUndo(t *testing.T) {
	m, err := NewPlayModel(3)
	if err != nil {
		t.Fatal(err)
	}
	m = keyPress(t, m, "a")
	m = keyPress(t, m, "c")
	m = keyPress(t, m, "u")

	if len(m.History) != 0 {
		t.Errorf("len(history) = %d, want 0 after undo", len(m.History))
	}
	if len(m.State[hanoi.PegA]) != 3 {
		t.Errorf("peg A holds %d disks, want 3", len(m.State[hanoi.PegA]))
	}
}

func TestPlayModelAutoSolve(t *testing.T) {
	m, err := NewPlayModel(3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < hanoi.MoveCount(3); i++ {
		m = keyPress(t, m, "n")
	}
	if !m.Won {
		t.Error("auto-playing the full solution should win")
	}
	if len(m.History) != hanoi.MoveCount(3) {
		t.Errorf("len(history) = %d, want %d", len(m.History), hanoi.MoveCount(3))
	}
}

func TestPlayModelAutoMoveOffOptimalLine(t *testing.T) {
	m, err := NewPlayModel(3)
	if err != nil {
		t.Fatal(err)
	}
	// First optimal move for 3 disks is A->C; play A->B instead.
	m = keyPress(t, m, "a")
	m = keyPress(t, m, "b")
	m = keyPress(t, m, "n")

	if len(m.History) != 1 {
		t.Errorf("len(history) = %d, auto-move should refuse off the optimal line", len(m.History))
	}
}

func TestPlayModelResume(t *testing.T) {
	m, err := NewPlayModel(3)
	if err != nil {
		t.Fatal(err)
	}
	solution, err := hanoi.Solve(3, hanoi.PegA, hanoi.PegC, hanoi.PegB)
	if err != nil {
		t.Fatal(err)
	}
	m, err = m.Resume(solution[:4])
	if err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if len(m.History) != 4 {
		t.Errorf("len(history) = %d, want 4", len(m.History))
	}
	if m.Won {
		t.Error("partial resume should not be won")
	}
}

func TestPlayModelView(t *testing.T) {
	m, err := NewPlayModel(2)
	if err != nil {
		t.Fatal(err)
	}
	view := m.View()
	if !strings.Contains(view, "2 disks") {
		t.Errorf("view missing disk count:\n%s", view)
	}
	if !strings.Contains(view, "moves: 0 (optimal 3)") {
		t.Errorf("view missing move counter:\n%s", view)
	}
}

func TestIsOptimalPrefix(t *testing.T) {
	solution, err := hanoi.Solve(3, hanoi.PegA, hanoi.PegC, hanoi.PegB)
	if err != nil {
		t.Fatal(err)
	}
	if !isOptimalPrefix(nil, solution) {
		t.Error("empty history is a prefix")
	}
	if !isOptimalPrefix(solution[:3], solution) {
		t.Error("first three moves are a prefix")
	}
	wrong := []hanoi.Move{{From: hanoi.PegA, To: hanoi.PegB}}
	if isOptimalPrefix(wrong, solution) {
		t.Error("A->B is not the optimal opening for 3 disks")
	}
}
