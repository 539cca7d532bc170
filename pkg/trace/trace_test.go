package trace

import (
	"testing"

	"github.com/matzehuels/hanoitower/pkg/errors"
	"github.com/matzehuels/hanoitower/pkg/hanoi"
)

func TestSolveTracedMovesMatchSolver(t *testing.T) {
	for n := 1; n <= 8; n++ {
		want, err := hanoi.Solve(n, hanoi.PegA, hanoi.PegC, hanoi.PegB)
		if err != nil {
			t.Fatal(err)
		}

		moves, events, err := SolveTraced(n, hanoi.PegA, hanoi.PegC, hanoi.PegB)
		if err != nil {
			t.Fatalf("SolveTraced(%d): %v", n, err)
		}

		if len(moves) != len(want) {
			t.Fatalf("n=%d: %d moves, want %d", n, len(moves), len(want))
		}
		for i := range want {
			if moves[i] != want[i] {
				t.Errorf("n=%d: move %d = %s, want %s", n, i, moves[i], want[i])
			}
		}

		// The move events, filtered out of the log, must equal the move
		// sequence in order and content.
		var fromEvents []hanoi.Move
		for _, e := range events {
			if e.Type == EventMove {
				if e.Move == nil {
					t.Fatalf("n=%d: move event at t=%d has nil move", n, e.T)
				}
				fromEvents = append(fromEvents, *e.Move)
			} else if e.Move != nil {
				t.Errorf("n=%d: %s event at t=%d carries a move", n, e.Type, e.T)
			}
		}
		if len(fromEvents) != len(want) {
			t.Fatalf("n=%d: %d move events, want %d", n, len(fromEvents), len(want))
		}
		for i := range want {
			if fromEvents[i] != want[i] {
				t.Errorf("n=%d: move event %d = %s, want %s", n, i, fromEvents[i], want[i])
			}
		}
	}
}

func TestEventTimestamps(t *testing.T) {
	events, err := BuildEvents(4, hanoi.PegA, hanoi.PegC, hanoi.PegB)
	if err != nil {
		t.Fatal(err)
	}

	// One enter, one move, one exit per invocation, 2^n - 1 invocations.
	if want := 3 * hanoi.MoveCount(4); len(events) != want {
		t.Errorf("got %d events, want %d", len(events), want)
	}

	for i, e := range events {
		if e.T != i {
			t.Errorf("event %d has t=%d, want %d", i, e.T, i)
		}
	}
}

func TestEnterExitNesting(t *testing.T) {
	for n := 1; n <= 6; n++ {
		events, err := BuildEvents(n, hanoi.PegA, hanoi.PegC, hanoi.PegB)
		if err != nil {
			t.Fatal(err)
		}

		var stack []string
		for _, e := range events {
			switch e.Type {
			case EventEnter:
				stack = append(stack, e.NodeID)
			case EventExit:
				if len(stack) == 0 {
					t.Fatalf("n=%d: exit %q with empty stack at t=%d", n, e.NodeID, e.T)
				}
				top := stack[len(stack)-1]
				if top != e.NodeID {
					t.Fatalf("n=%d: exit %q does not match innermost enter %q", n, e.NodeID, top)
				}
				stack = stack[:len(stack)-1]
			case EventMove:
				if len(stack) == 0 {
					t.Fatalf("n=%d: move outside any call at t=%d", n, e.T)
				}
				if stack[len(stack)-1] != e.NodeID {
					t.Errorf("n=%d: move attributed to %q, innermost call is %q", n, e.NodeID, stack[len(stack)-1])
				}
			}
		}
		if len(stack) != 0 {
			t.Errorf("n=%d: %d frames left open at end of log", n, len(stack))
		}
	}
}

func TestNodeID(t *testing.T) {
	if got, want := NodeID(3, hanoi.PegA, hanoi.PegC, hanoi.PegB), "n3:0->2|aux1"; got != want {
		t.Errorf("NodeID = %q, want %q", got, want)
	}
	if got, want := NodeID(1, hanoi.PegC, hanoi.PegB, hanoi.PegA), "n1:2->1|aux0"; got != want {
		t.Errorf("NodeID = %q, want %q", got, want)
	}
}

func TestActiveNodeAt(t *testing.T) {
	events, err := BuildEvents(3, hanoi.PegA, hanoi.PegC, hanoi.PegB)
	if err != nil {
		t.Fatal(err)
	}
	last := events[len(events)-1].T

	tests := []struct {
		name   string
		t      int
		want   string
		wantOK bool
	}{
		{"BeforeFirstEvent", -1, "", false},
		{"AtRootEnter", 0, "n3:0->2|aux1", true},
		{"AtFirstChildEnter", 1, "n2:0->1|aux2", true},
		{"AtLastTimestamp", last, "", false},
		{"PastEnd", last + 10, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ActiveNodeAt(events, tt.t)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("node = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActiveNodeAtEveryEnter(t *testing.T) {
	events, err := BuildEvents(4, hanoi.PegA, hanoi.PegC, hanoi.PegB)
	if err != nil {
		t.Fatal(err)
	}

	// At each enter timestamp the entered node itself is the deepest open
	// call, so it must be the active node.
	for _, e := range events {
		if e.Type != EventEnter {
			continue
		}
		got, ok := ActiveNodeAt(events, e.T)
		if !ok {
			t.Fatalf("no active node at enter t=%d", e.T)
		}
		if got != e.NodeID {
			t.Errorf("active node at t=%d = %q, want %q", e.T, got, e.NodeID)
		}
	}
}

func TestActiveNodeAtEmptyLog(t *testing.T) {
	if _, ok := ActiveNodeAt(nil, 0); ok {
		t.Error("empty log should have no active node")
	}
}

func TestSolveTracedInvalidArgs(t *testing.T) {
	if _, _, err := SolveTraced(0, hanoi.PegA, hanoi.PegC, hanoi.PegB); !errors.Is(err, errors.ErrCodeInvalidDiskCount) {
		t.Errorf("error code = %q, want INVALID_DISK_COUNT", errors.GetCode(err))
	}
	if _, err := BuildEvents(3, hanoi.PegA, hanoi.PegA, hanoi.PegB); !errors.Is(err, errors.ErrCodeInvalidPeg) {
		t.Errorf("error code = %q, want INVALID_PEG", errors.GetCode(err))
	}
}
