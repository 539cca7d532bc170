package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hanoitower/pkg/hanoi"
	"github.com/matzehuels/hanoitower/pkg/trace"
)

// NoHighlight disables active-node highlighting in [TreeDOT].
const NoHighlight = -1

// Node fill colors by execution status at the highlight timestamp.
const (
	colorActive = "#4dabf7" // the call currently executing
	colorOpen   = "#ffffff" // on the call stack below the active call
	colorDone   = "#adb5bd" // completed
	colorIdle   = "#f1f3f5" // not yet reached
)

// TreeDOT emits the solver's recursion tree for n disks as Graphviz DOT.
// Node identities follow [trace.NodeID], so invocations with identical
// parameters collapse into a single tree node, mirroring how the trace
// log aliases them.
//
// If events is non-nil and highlight is not [NoHighlight], nodes are
// colored by their execution status at that timestamp: the active call
// blue, finished calls grey, unreached calls faint.
func TreeDOT(n int, src, dst, aux hanoi.Peg, events []trace.Event, highlight int) string {
	var buf bytes.Buffer
	buf.WriteString("digraph recursion {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	status := nodeStatuses(events, highlight)

	seen := make(map[string]bool)
	var edges []string
	var walk func(n int, src, dst, aux hanoi.Peg, parent string)
	walk = func(n int, src, dst, aux hanoi.Peg, parent string) {
		id := trace.NodeID(n, src, dst, aux)
		if !seen[id] {
			seen[id] = true
			label := fmt.Sprintf("n=%d\n%s→%s", n, src, dst)
			fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", id, label, fillColor(status, id))
		}
		if parent != "" {
			edges = append(edges, fmt.Sprintf("  %q -> %q;\n", parent, id))
		}
		if n > 1 {
			walk(n-1, src, aux, dst, id)
			walk(n-1, aux, dst, src, id)
		}
	}
	walk(n, src, dst, aux, "")

	buf.WriteString("\n")
	dedup := make(map[string]bool)
	for _, e := range edges {
		if !dedup[e] {
			dedup[e] = true
			buf.WriteString(e)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeStatus classifies a tree node at the highlight timestamp.
type nodeStatus int

const (
	statusIdle nodeStatus = iota
	statusOpen
	statusActive
	statusDone
)

// nodeStatuses replays events up to and including the highlight timestamp
// and classifies every node seen. Returns nil when highlighting is off.
func nodeStatuses(events []trace.Event, highlight int) map[string]nodeStatus {
	if events == nil || highlight == NoHighlight {
		return nil
	}

	status := make(map[string]nodeStatus)
	for _, e := range events {
		if e.T > highlight {
			break
		}
		switch e.Type {
		case trace.EventEnter:
			status[e.NodeID] = statusOpen
		case trace.EventExit:
			status[e.NodeID] = statusDone
		}
	}

	if active, ok := trace.ActiveNodeAt(events, highlight); ok {
		status[active] = statusActive
	}
	return status
}

func fillColor(status map[string]nodeStatus, id string) string {
	if status == nil {
		return "white"
	}
	switch status[id] {
	case statusActive:
		return colorActive
	case statusOpen:
		return colorOpen
	case statusDone:
		return colorDone
	default:
		return colorIdle
	}
}

// RenderTreeSVG renders a DOT graph to SVG using Graphviz in-process.
func RenderTreeSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderTree(ctx, dot, graphviz.SVG, normalizeViewBox)
}

// RenderTreePNG renders a DOT graph to PNG using Graphviz in-process.
func RenderTreePNG(ctx context.Context, dot string) ([]byte, error) {
	return renderTree(ctx, dot, graphviz.PNG, nil)
}

func renderTree(ctx context.Context, dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	out := buf.Bytes()
	if post != nil {
		out = post(out)
	}
	return out, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the viewBox starts at
// the origin, which makes the output embed cleanly.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
