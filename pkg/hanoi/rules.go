package hanoi

import (
	"github.com/matzehuels/hanoitower/pkg/errors"
)

// InitialState creates the starting arrangement with n disks on peg A:
// the largest disk (size n, ID 0) at the bottom down to the smallest
// (size 1, ID n-1) on top. Pegs B and C are empty.
func InitialState(n int) (GameState, error) {
	if n <= 0 {
		return GameState{}, errors.New(errors.ErrCodeInvalidDiskCount, "disk count must be positive, got %d", n)
	}

	pegA := make(PegState, n)
	for i := 0; i < n; i++ {
		pegA[i] = Disk{ID: i, Size: n - i}
	}
	return GameState{pegA, nil, nil}, nil
}

// LegalMove reports whether m is legal in state: the source peg must be
// non-empty and the destination peg must be empty or topped by a strictly
// larger disk. Moves naming invalid pegs are never legal. No side effects.
func LegalMove(state GameState, m Move) bool {
	if m.Validate() != nil {
		return false
	}

	src, ok := state[m.From].Top()
	if !ok {
		return false
	}
	if dst, ok := state[m.To].Top(); ok && dst.Size <= src.Size {
		return false
	}
	return true
}

// ApplyMove returns a new state with the top disk of m.From relocated to
// the top of m.To. The input state is not mutated; on failure the returned
// error has code ILLEGAL_MOVE and the prior state remains valid.
func ApplyMove(state GameState, m Move) (GameState, error) {
	if !LegalMove(state, m) {
		return GameState{}, errors.New(errors.ErrCodeIllegalMove, "illegal move %s", m)
	}

	next := state.Clone()
	from := next[m.From]
	disk := from[len(from)-1]
	next[m.From] = from[:len(from)-1]
	next[m.To] = append(next[m.To], disk)
	return next, nil
}

// Solved reports whether the puzzle with n disks is complete: peg C holds
// exactly n disks ordered size n at the bottom down to size 1 on top.
// The destination is fixed to peg C by convention; solver runs targeting
// another peg must check their final state themselves.
func Solved(state GameState, n int) bool {
	pegC := state[PegC]
	if len(pegC) != n {
		return false
	}
	for i, d := range pegC {
		if d.Size != n-i {
			return false
		}
	}
	return true
}
