package hanoi

import (
	"testing"

	"github.com/matzehuels/hanoitower/pkg/errors"
)

func TestSolveMoveCount(t *testing.T) {
	for n := 1; n <= 12; n++ {
		moves, err := Solve(n, PegA, PegC, PegB)
		if err != nil {
			t.Fatalf("Solve(%d): %v", n, err)
		}
		if want := MoveCount(n); len(moves) != want {
			t.Errorf("Solve(%d) produced %d moves, want %d", n, len(moves), want)
		}
	}
}

func TestSolveCanonicalSequence(t *testing.T) {
	// The fixed n=3 reference: A->C, A->B, C->B, A->C, B->A, B->C, A->C.
	want := []Move{
		{PegA, PegC}, {PegA, PegB}, {PegC, PegB},
		{PegA, PegC}, {PegB, PegA}, {PegB, PegC}, {PegA, PegC},
	}

	moves, err := Solve(3, PegA, PegC, PegB)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %s, want %s", i, moves[i], want[i])
		}
	}
}

func TestSolveReplayIsLegal(t *testing.T) {
	for n := 1; n <= 8; n++ {
		state, err := InitialState(n)
		if err != nil {
			t.Fatal(err)
		}
		moves, err := Solve(n, PegA, PegC, PegB)
		if err != nil {
			t.Fatal(err)
		}

		for i, m := range moves {
			if !LegalMove(state, m) {
				t.Fatalf("n=%d: move %d (%s) is illegal", n, i, m)
			}
			state, err = ApplyMove(state, m)
			if err != nil {
				t.Fatalf("n=%d: apply move %d: %v", n, i, err)
			}
		}
		if !Solved(state, n) {
			t.Errorf("n=%d: final state not solved", n)
		}
		if got := state.DiskCount(); got != n {
			t.Errorf("n=%d: disk count = %d after replay", n, got)
		}
	}
}

func TestSolveInvalidArgs(t *testing.T) {
	tests := []struct {
		name          string
		n             int
		src, dst, aux Peg
		code          errors.Code
	}{
		{"ZeroDisks", 0, PegA, PegC, PegB, errors.ErrCodeInvalidDiskCount},
		{"NegativeDisks", -1, PegA, PegC, PegB, errors.ErrCodeInvalidDiskCount},
		{"DuplicatePegs", 3, PegA, PegA, PegB, errors.ErrCodeInvalidPeg},
		{"OutOfRangePeg", 3, PegA, Peg(5), PegB, errors.ErrCodeInvalidPeg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.n, tt.src, tt.dst, tt.aux)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %q, want %q", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestSolveRestartable(t *testing.T) {
	first, err := Solve(5, PegA, PegC, PegB)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Solve(5, PegA, PegC, PegB)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("move %d differs between invocations", i)
		}
	}
}

func TestSolveIterativeMatchesRecursive(t *testing.T) {
	pegSets := []struct {
		name          string
		src, dst, aux Peg
	}{
		{"Canonical", PegA, PegC, PegB},
		{"ToB", PegA, PegB, PegC},
		{"FromC", PegC, PegA, PegB},
	}

	for _, ps := range pegSets {
		t.Run(ps.name, func(t *testing.T) {
			for n := 1; n <= 8; n++ {
				rec, err := Solve(n, ps.src, ps.dst, ps.aux)
				if err != nil {
					t.Fatal(err)
				}
				it, err := SolveIterative(n, ps.src, ps.dst, ps.aux)
				if err != nil {
					t.Fatal(err)
				}
				if len(rec) != len(it) {
					t.Fatalf("n=%d: %d recursive vs %d iterative moves", n, len(rec), len(it))
				}
				for i := range rec {
					if rec[i] != it[i] {
						t.Fatalf("n=%d: move %d differs: %s vs %s", n, i, rec[i], it[i])
					}
				}
			}
		})
	}
}

func TestSolveIterativeInvalidArgs(t *testing.T) {
	if _, err := SolveIterative(0, PegA, PegC, PegB); !errors.Is(err, errors.ErrCodeInvalidDiskCount) {
		t.Errorf("error code = %q, want INVALID_DISK_COUNT", errors.GetCode(err))
	}
}
