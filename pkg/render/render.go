// Package render generates visual artifacts for the puzzle.
//
// Two visualization types are supported:
//   - board: the three pegs and their disks at one game state, as a
//     hand-built SVG
//   - tree: the solver's recursion tree derived from a trace event log,
//     emitted as Graphviz DOT and rendered to SVG or PNG in-process, with
//     the call active at a chosen timestamp highlighted
//
// The package is a pure function of engine output; it never runs the
// solver itself.
package render

import (
	"github.com/matzehuels/hanoitower/pkg/errors"
)

// Visualization types.
const (
	VizTypeBoard = "board"
	VizTypeTree  = "tree"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatDOT = "dot"
)

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeBoard: true,
	VizTypeTree:  true,
}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatDOT: true,
}

// ValidateVizType checks that a visualization type is supported.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType, "invalid viz type: %q (must be one of: board, tree)", vizType)
	}
	return nil
}

// ValidateFormat checks that an output format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, dot)", format)
	}
	return nil
}
