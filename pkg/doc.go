// Package pkg provides the core libraries for hanoitower.
//
// # Overview
//
// Hanoitower solves, traces, and visualizes the Tower of Hanoi puzzle. The
// pkg directory is organized into these areas:
//
//  1. [hanoi] - Domain logic (game state, move rules, solvers)
//  2. [trace] - Recursion event log and active-call queries
//  3. [render] - Board and recursion-tree visualizations
//  4. [pipeline] - Orchestration (solve → trace → render) with caching
//  5. [cache], [session] - Storage backends (file, memory, redis, mongo)
//  6. [errors], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Puzzle parameters (disks, pegs)
//	         ↓
//	    [hanoi] package (optimal move sequence)
//	         ↓
//	    [trace] package (enter/move/exit event log)
//	         ↓
//	    [render] package (board SVG, recursion-tree DOT/SVG/PNG)
//	         ↓
//	    CLI output or HTTP API response
//
// # Quick Start
//
//	moves, err := hanoi.Solve(3, hanoi.PegA, hanoi.PegC, hanoi.PegB)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, mv := range moves {
//	    fmt.Println(mv)
//	}
package pkg
