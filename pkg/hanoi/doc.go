// Package hanoi implements the Tower of Hanoi puzzle engine.
//
// The package models disks, pegs, and game states as immutable values and
// provides the classic recursive solver plus an iterative equivalent. All
// functions are pure: applying a move returns a fresh state and never
// mutates its input, which makes replay, undo, and history trivial for
// callers.
//
// # Model
//
// A [GameState] is a triple of peg stacks (A, B, C). Each peg holds disks
// bottom-to-top, strictly decreasing in size. A [Move] names a source and
// destination peg; the disk moved is always the source peg's top disk.
//
// # Solving
//
// [Solve] produces the canonical optimal sequence of 2^n - 1 moves using
// the standard divide-and-conquer strategy. [SolveIterative] produces the
// identical sequence without recursion. The traced variant, which records
// enter/move/exit events for recursion-tree visualization, lives in the
// trace package.
//
// # Usage
//
//	state, err := hanoi.InitialState(3)
//	if err != nil {
//	    return err
//	}
//	moves, _ := hanoi.Solve(3, hanoi.PegA, hanoi.PegC, hanoi.PegB)
//	for _, m := range moves {
//	    state, err = hanoi.ApplyMove(state, m)
//	    if err != nil {
//	        return err
//	    }
//	}
//	fmt.Println(hanoi.Solved(state, 3)) // true
package hanoi
