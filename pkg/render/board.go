package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/hanoitower/pkg/hanoi"
)

// Board layout constants. The geometry scales horizontally with the frame
// width; disk heights are fixed so towers read the same at every n.
const (
	DefaultBoardWidth  = 600.0
	DefaultBoardHeight = 300.0

	diskHeight    = 20.0
	pegBaseHeight = 50.0
	minDiskWidth  = 20.0
	diskWidthStep = 15.0
)

// BoardOption configures board rendering.
type BoardOption func(*boardRenderer)

type boardRenderer struct {
	width  float64
	height float64
}

// WithBoardSize overrides the default frame dimensions.
func WithBoardSize(width, height float64) BoardOption {
	return func(r *boardRenderer) {
		r.width = width
		r.height = height
	}
}

// RenderBoard generates an SVG of the three pegs and their disks. Disks
// are centered on their peg, color-coded by size, and labeled with their
// size digit.
func RenderBoard(state hanoi.GameState, opts ...BoardOption) []byte {
	r := &boardRenderer{width: DefaultBoardWidth, height: DefaultBoardHeight}
	for _, opt := range opts {
		opt(r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	fmt.Fprintf(&buf, `<rect width="%.0f" height="%.0f" fill="#f8f9fa" stroke="#dee2e6" stroke-width="2"/>`+"\n",
		r.width, r.height)

	pegWidth := r.width / hanoi.NumPegs
	for i := hanoi.PegA; i <= hanoi.PegC; i++ {
		r.renderPeg(&buf, state[i], float64(i)*pegWidth, pegWidth)
	}

	// Peg labels along the bottom edge.
	for i := hanoi.PegA; i <= hanoi.PegC; i++ {
		x := float64(i)*pegWidth + pegWidth/2
		fmt.Fprintf(&buf, `<text x="%.0f" y="%.0f" text-anchor="middle" font-size="16" font-weight="bold" fill="#495057">%s</text>`+"\n",
			x, r.height-10, i.Label())
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *boardRenderer) renderPeg(buf *bytes.Buffer, peg hanoi.PegState, xOffset, pegWidth float64) {
	pegX := xOffset + pegWidth/2
	pegY := r.height - pegBaseHeight

	// Peg post.
	fmt.Fprintf(buf, `<rect x="%.0f" y="%.0f" width="10" height="%.0f" fill="#6c757d"/>`+"\n",
		pegX-5, pegY, pegBaseHeight)

	// Disks, bottom-to-top.
	for j, disk := range peg {
		diskWidth := minDiskWidth
		if w := float64(disk.Size) * diskWidthStep; w > diskWidth {
			diskWidth = w
		}
		diskX := pegX - diskWidth/2
		diskY := pegY - float64(j+1)*diskHeight

		fmt.Fprintf(buf, `<rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="%s" stroke="#495057" stroke-width="1"/>`+"\n",
			diskX, diskY, diskWidth, diskHeight-2, diskColor(disk.Size))
		fmt.Fprintf(buf, `<text x="%.0f" y="%.0f" text-anchor="middle" font-size="10" fill="white">%d</text>`+"\n",
			pegX, diskY+diskHeight/2+4, disk.Size)
	}
}

// diskColor picks a distinct hue per disk size by stepping around the
// HSL color wheel.
func diskColor(size int) string {
	return fmt.Sprintf("hsl(%d, 70%%, 60%%)", (size*30)%360)
}
