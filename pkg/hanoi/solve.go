package hanoi

import (
	"github.com/matzehuels/hanoitower/pkg/errors"
)

// MoveCount returns the optimal number of moves for n disks: 2^n - 1.
func MoveCount(n int) int {
	return (1 << n) - 1
}

// Solve produces the canonical optimal move sequence for n disks, moving
// the full stack from src to dst using aux as the spare peg. The sequence
// has exactly 2^n - 1 moves and never violates the peg ordering rule when
// replayed from a matching initial arrangement.
//
// The strategy is the classic divide-and-conquer: solve n-1 disks from src
// to aux (with dst as the spare), move the largest disk src->dst, then
// solve n-1 disks from aux to dst (with src as the spare).
//
// Each call recomputes the sequence from scratch; there is no shared state
// between invocations.
func Solve(n int, src, dst, aux Peg) ([]Move, error) {
	if err := validateSolveArgs(n, src, dst, aux); err != nil {
		return nil, err
	}

	moves := make([]Move, 0, MoveCount(n))
	solve(n, src, dst, aux, &moves)
	return moves, nil
}

// ValidateSolveArgs checks the shared solver contract: a positive disk
// count and three distinct valid pegs. All solver entry points, including
// the traced variant, enforce this same contract.
func ValidateSolveArgs(n int, src, dst, aux Peg) error {
	return validateSolveArgs(n, src, dst, aux)
}

func solve(n int, src, dst, aux Peg, moves *[]Move) {
	if n == 1 {
		*moves = append(*moves, Move{From: src, To: dst})
		return
	}
	solve(n-1, src, aux, dst, moves)
	*moves = append(*moves, Move{From: src, To: dst})
	solve(n-1, aux, dst, src, moves)
}

// validateSolveArgs checks the shared solver contract: positive disk count
// and three distinct valid pegs.
func validateSolveArgs(n int, src, dst, aux Peg) error {
	if n <= 0 {
		return errors.New(errors.ErrCodeInvalidDiskCount, "disk count must be positive, got %d", n)
	}
	for _, p := range []Peg{src, dst, aux} {
		if !p.Valid() {
			return errors.New(errors.ErrCodeInvalidPeg, "invalid peg %d", int(p))
		}
	}
	if src == dst || src == aux || dst == aux {
		return errors.New(errors.ErrCodeInvalidPeg, "pegs must be distinct, got %s, %s, %s", src, dst, aux)
	}
	return nil
}
