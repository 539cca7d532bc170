package hanoi

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/hanoitower/pkg/errors"
)

// =============================================================================
// Peg - One of the three fixed positions
// =============================================================================

// Peg identifies one of the three pegs by ordinal. The ordinals 0, 1, 2
// correspond to the symbolic labels A, B, C; both encodings appear in
// user-facing surfaces and are interconvertible via [Peg.Label] and
// [ParsePeg].
type Peg int

// The three pegs.
const (
	PegA Peg = 0
	PegB Peg = 1
	PegC Peg = 2
)

// NumPegs is the number of pegs in the puzzle.
const NumPegs = 3

// Valid reports whether p is one of the three pegs.
func (p Peg) Valid() bool {
	return p >= PegA && p <= PegC
}

// Label returns the symbolic label for the peg ("A", "B", or "C").
// Invalid pegs return their ordinal as a string.
func (p Peg) Label() string {
	switch p {
	case PegA:
		return "A"
	case PegB:
		return "B"
	case PegC:
		return "C"
	default:
		return strconv.Itoa(int(p))
	}
}

// String implements fmt.Stringer.
func (p Peg) String() string { return p.Label() }

// ParsePeg converts a peg identifier to a Peg. Both encodings are accepted:
// symbolic labels ("A", "B", "C", case-insensitive) and ordinals
// ("0", "1", "2").
func ParsePeg(s string) (Peg, error) {
	switch s {
	case "A", "a", "0":
		return PegA, nil
	case "B", "b", "1":
		return PegB, nil
	case "C", "c", "2":
		return PegC, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidPeg, "invalid peg %q (must be A/B/C or 0/1/2)", s)
	}
}

// =============================================================================
// Disk - A sized unit
// =============================================================================

// Disk is a single disk. ID is a stable identity assigned at construction;
// Size ranges 1..n with 1 the smallest. In states built by [InitialState]
// the two are inversely related (the largest disk has ID 0), but nothing
// relies on that beyond display.
type Disk struct {
	ID   int `json:"id" bson:"id"`
	Size int `json:"size" bson:"size"`
}

// =============================================================================
// PegState / GameState - The full arrangement
// =============================================================================

// PegState is an ordered stack of disks, bottom-to-top. Index 0 is the
// bottom disk. At every reachable state the sizes are strictly decreasing
// from bottom to top.
type PegState []Disk

// Top returns the top disk of the peg. ok is false if the peg is empty.
func (p PegState) Top() (Disk, bool) {
	if len(p) == 0 {
		return Disk{}, false
	}
	return p[len(p)-1], true
}

// GameState is the complete arrangement of all disks across the three pegs
// (A, B, C in order). States are treated as immutable: every transformation
// returns a fresh value with freshly allocated peg slices, so prior states
// remain valid for history and replay.
type GameState [NumPegs]PegState

// Clone returns a deep copy of the state. The peg slices of the copy share
// no storage with the original.
func (s GameState) Clone() GameState {
	var out GameState
	for i, peg := range s {
		if len(peg) == 0 {
			continue
		}
		out[i] = append(PegState(nil), peg...)
	}
	return out
}

// DiskCount returns the total number of disks across all pegs.
func (s GameState) DiskCount() int {
	return len(s[PegA]) + len(s[PegB]) + len(s[PegC])
}

// =============================================================================
// Move - An instruction to relocate a top disk
// =============================================================================

// Move denotes "move the top disk of From onto To". It describes an action,
// not a historical record; the same Move value can be applied to any state
// where it is legal.
type Move struct {
	From Peg `json:"from" bson:"from"`
	To   Peg `json:"to" bson:"to"`
}

// Validate checks that both pegs are valid and distinct.
func (m Move) Validate() error {
	if !m.From.Valid() {
		return errors.New(errors.ErrCodeInvalidPeg, "invalid source peg %d", int(m.From))
	}
	if !m.To.Valid() {
		return errors.New(errors.ErrCodeInvalidPeg, "invalid destination peg %d", int(m.To))
	}
	if m.From == m.To {
		return errors.New(errors.ErrCodeInvalidPeg, "source and destination peg are both %s", m.From)
	}
	return nil
}

// String returns the move in "A->C" notation.
func (m Move) String() string {
	return fmt.Sprintf("%s->%s", m.From, m.To)
}
