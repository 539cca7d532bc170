// Package trace records the execution of the recursive Hanoi solver as a
// flat, totally ordered event log.
//
// Every recursive invocation emits an "enter" event before any of its work,
// a "move" event for each disk relocation it performs itself, and an "exit"
// event after all nested calls have completed. Events carry a logical
// timestamp from a single counter shared across the whole recursion, which
// gives the log a replayable total order.
//
// The log drives recursion-tree visualization: [ActiveNodeAt] reconstructs
// which invocation is on the call stack at any timestamp, and the render
// package turns the enter/exit nesting into a tree diagram.
package trace

import (
	"fmt"

	"github.com/matzehuels/hanoitower/pkg/hanoi"
)

// EventType classifies a trace event.
type EventType string

// The three event types, in the order they bracket a recursive call.
const (
	EventEnter EventType = "enter"
	EventMove  EventType = "move"
	EventExit  EventType = "exit"
)

// Event is one timestamped record of the solver's execution. Move is set
// if and only if Type is EventMove. T is a logical counter, not wall-clock
// time; it increases strictly across the whole log.
type Event struct {
	Type   EventType   `json:"type" bson:"type"`
	NodeID string      `json:"node_id" bson:"node_id"`
	Move   *hanoi.Move `json:"move,omitempty" bson:"move,omitempty"`
	T      int         `json:"t" bson:"t"`
}

// NodeID derives the identifier of the recursive invocation
// solve(n, src, dst, aux). The format is "n{n}:{src}->{dst}|aux{aux}" with
// ordinal peg encoding, e.g. "n3:0->2|aux1".
//
// IDs are derived purely from the call parameters, so two distinct
// invocations with equal parameters share an ID. This aliasing is part of
// the established naming scheme and visualizations key on it; appending a
// call path would make IDs unique but break highlight compatibility.
func NodeID(n int, src, dst, aux hanoi.Peg) string {
	return fmt.Sprintf("n%d:%d->%d|aux%d", n, int(src), int(dst), int(aux))
}

// tracer accumulates events and owns the shared timestamp counter. The
// counter is threaded through the recursion explicitly via the receiver
// rather than closed over, so each traced solve is self-contained.
type tracer struct {
	events []Event
	t      int
}

func (tr *tracer) emit(typ EventType, nodeID string, mv *hanoi.Move) {
	tr.events = append(tr.events, Event{Type: typ, NodeID: nodeID, Move: mv, T: tr.t})
	tr.t++
}

// SolveTraced runs the recursive solver for n disks from src to dst using
// aux as the spare peg, returning both the move sequence (identical to
// [hanoi.Solve]) and the full event log of the recursion.
func SolveTraced(n int, src, dst, aux hanoi.Peg) ([]hanoi.Move, []Event, error) {
	if err := hanoi.ValidateSolveArgs(n, src, dst, aux); err != nil {
		return nil, nil, err
	}

	tr := &tracer{}
	moves := make([]hanoi.Move, 0, hanoi.MoveCount(n))
	tr.solve(n, src, dst, aux, &moves)
	return moves, tr.events, nil
}

func (tr *tracer) solve(n int, src, dst, aux hanoi.Peg, moves *[]hanoi.Move) {
	nodeID := NodeID(n, src, dst, aux)
	tr.emit(EventEnter, nodeID, nil)

	if n == 1 {
		mv := hanoi.Move{From: src, To: dst}
		tr.emit(EventMove, nodeID, &mv)
		*moves = append(*moves, mv)
	} else {
		tr.solve(n-1, src, aux, dst, moves)

		mv := hanoi.Move{From: src, To: dst}
		tr.emit(EventMove, nodeID, &mv)
		*moves = append(*moves, mv)

		tr.solve(n-1, aux, dst, src, moves)
	}

	tr.emit(EventExit, nodeID, nil)
}

// BuildEvents runs the traced solver and returns only the event log.
func BuildEvents(n int, src, dst, aux hanoi.Peg) ([]Event, error) {
	_, events, err := SolveTraced(n, src, dst, aux)
	return events, err
}
