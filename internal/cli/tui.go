package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hanoitower/pkg/hanoi"
)

// Board styles
var (
	stylePegLabel     = lipgloss.NewStyle().Foreground(colorGray)
	stylePegSelected  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	stylePole         = lipgloss.NewStyle().Foreground(colorDim)
	styleDiskEven     = lipgloss.NewStyle().Foreground(colorCyan)
	styleDiskOdd      = lipgloss.NewStyle().Foreground(colorBlue)
	styleWin          = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleStatusError  = lipgloss.NewStyle().Foreground(colorRed)
	styleStatusNormal = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// PlayModel - Interactive game
// =============================================================================

// PlayModel is the bubbletea model for playing a game by hand.
//
// A move takes two key presses: the first selects the source peg, the
// second the destination. Pressing the selected peg again deselects it.
type PlayModel struct {
	Disks    int
	State    hanoi.GameState
	History  []hanoi.Move
	Selected hanoi.Peg
	HasSel   bool
	Won      bool
	Quit     bool
	status   string
	statusOK bool
}

// NewPlayModel creates a play model with all disks on peg A.
func NewPlayModel(disks int) (PlayModel, error) {
	state, err := hanoi.InitialState(disks)
	if err != nil {
		return PlayModel{}, err
	}
	return PlayModel{Disks: disks, State: state, statusOK: true}, nil
}

// Resume rebuilds a model that has already played the given moves.
func (m PlayModel) Resume(moves []hanoi.Move) (PlayModel, error) {
	for _, mv := range moves {
		state, err := hanoi.ApplyMove(m.State, mv)
		if err != nil {
			return m, err
		}
		m.State = state
		m.History = append(m.History, mv)
	}
	m.Won = hanoi.Solved(m.State, m.Disks)
	return m, nil
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		m.Quit = true
		return m, tea.Quit
	case "esc":
		m.HasSel = false
		m.setStatus(true, "")
	case "r":
		fresh, err := NewPlayModel(m.Disks)
		if err != nil {
			return m, nil
		}
		return fresh, nil
	case "u":
		return m.undo(), nil
	case "n":
		return m.autoMove(), nil
	case "a", "1":
		return m.pick(hanoi.PegA), nil
	case "b", "2":
		return m.pick(hanoi.PegB), nil
	case "c", "3":
		return m.pick(hanoi.PegC), nil
	}
	return m, nil
}

// pick handles a peg key press: select a source or complete a move.
func (m PlayModel) pick(p hanoi.Peg) PlayModel {
	if m.Won {
		return m
	}

	if !m.HasSel {
		if _, ok := m.State[p].Top(); !ok {
			m.setStatus(false, fmt.Sprintf("peg %s is empty", p))
			return m
		}
		m.Selected = p
		m.HasSel = true
		m.setStatus(true, fmt.Sprintf("moving from %s, pick a destination", p))
		return m
	}

	if p == m.Selected {
		m.HasSel = false
		m.setStatus(true, "")
		return m
	}

	mv := hanoi.Move{From: m.Selected, To: p}
	state, err := hanoi.ApplyMove(m.State, mv)
	if err != nil {
		m.setStatus(false, fmt.Sprintf("illegal move %s", mv))
		return m
	}

	m.State = state
	m.History = append(m.History, mv)
	m.HasSel = false
	m.setStatus(true, "")
	if hanoi.Solved(m.State, m.Disks) {
		m.Won = true
	}
	return m
}

// undo reverts the last move.
func (m PlayModel) undo() PlayModel {
	if len(m.History) == 0 {
		m.setStatus(false, "nothing to undo")
		return m
	}
	last := m.History[len(m.History)-1]
	state, err := hanoi.ApplyMove(m.State, hanoi.Move{From: last.To, To: last.From})
	if err != nil {
		m.setStatus(false, "nothing to undo")
		return m
	}
	m.State = state
	m.History = m.History[:len(m.History)-1]
	m.HasSel = false
	m.Won = false
	m.setStatus(true, "")
	return m
}

// autoMove plays the next optimal move, as long as the game so far has
// followed the optimal line.
func (m PlayModel) autoMove() PlayModel {
	if m.Won {
		return m
	}
	solution, err := hanoi.Solve(m.Disks, hanoi.PegA, hanoi.PegC, hanoi.PegB)
	if err != nil {
		return m
	}
	if !isOptimalPrefix(m.History, solution) {
		m.setStatus(false, "auto-move only works on the optimal line, undo first")
		return m
	}
	return m.pickMove(solution[len(m.History)])
}

// pickMove applies one move directly, bypassing selection.
func (m PlayModel) pickMove(mv hanoi.Move) PlayModel {
	m.HasSel = false
	state, err := hanoi.ApplyMove(m.State, mv)
	if err != nil {
		return m
	}
	m.State = state
	m.History = append(m.History, mv)
	m.setStatus(true, "")
	if hanoi.Solved(m.State, m.Disks) {
		m.Won = true
	}
	return m
}

func (m *PlayModel) setStatus(ok bool, msg string) {
	m.status = msg
	m.statusOK = ok
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Tower of Hanoi · %d disks", m.Disks)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("a/b/c select peg  n auto  u undo  r reset  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.renderBoard())
	b.WriteString("\n")

	optimal := hanoi.MoveCount(m.Disks)
	b.WriteString(StyleDim.Render(fmt.Sprintf("  moves: %d (optimal %d)", len(m.History), optimal)))
	b.WriteString("\n")

	switch {
	case m.Won && len(m.History) == optimal:
		b.WriteString(styleWin.Render(fmt.Sprintf("  Solved in the optimal %d moves!", optimal)))
		b.WriteString("\n")
	case m.Won:
		b.WriteString(styleWin.Render(fmt.Sprintf("  Solved in %d moves.", len(m.History))))
		b.WriteString("\n")
	case m.status != "":
		style := styleStatusNormal
		if !m.statusOK {
			style = styleStatusError
		}
		b.WriteString(style.Render("  " + m.status))
		b.WriteString("\n")
	}

	return b.String()
}

// renderBoard draws the three pegs side by side, widest disk at the bottom.
func (m PlayModel) renderBoard() string {
	colWidth := 2*m.Disks + 1
	var b strings.Builder

	for row := m.Disks - 1; row >= 0; row-- {
		for p := hanoi.PegA; p < hanoi.NumPegs; p++ {
			b.WriteString("  ")
			b.WriteString(m.renderCell(p, row, colWidth))
		}
		b.WriteString("\n")
	}

	// Peg labels
	for p := hanoi.PegA; p < hanoi.NumPegs; p++ {
		label := p.Label()
		style := stylePegLabel
		if m.HasSel && p == m.Selected {
			label = "[" + label + "]"
			style = stylePegSelected
		}
		pad := (colWidth - len(label)) / 2
		b.WriteString("  ")
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(style.Render(label))
		b.WriteString(strings.Repeat(" ", colWidth-pad-len(label)))
	}
	b.WriteString("\n")

	return b.String()
}

// renderCell draws one board cell: a disk slice, the bare pole, or air.
func (m PlayModel) renderCell(p hanoi.Peg, level, colWidth int) string {
	peg := m.State[p]
	if level < len(peg) {
		size := peg[level].Size
		width := 2*size - 1
		pad := (colWidth - width) / 2
		style := styleDiskEven
		if size%2 == 1 {
			style = styleDiskOdd
		}
		return strings.Repeat(" ", pad) + style.Render(strings.Repeat("█", width)) + strings.Repeat(" ", colWidth-pad-width)
	}

	pad := colWidth / 2
	return strings.Repeat(" ", pad) + stylePole.Render("│") + strings.Repeat(" ", colWidth-pad-1)
}

// isOptimalPrefix reports whether played is a prefix of solution.
func isOptimalPrefix(played, solution []hanoi.Move) bool {
	if len(played) > len(solution) {
		return false
	}
	for i, mv := range played {
		if solution[i] != mv {
			return false
		}
	}
	return true
}
