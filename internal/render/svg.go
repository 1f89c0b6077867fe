package render

import (
	"fmt"
	"strings"

	"protmotif/internal/domain"
)

const (
	blockWidth  = 10
	blockHeight = 30
	svgHeight   = 50
)

// LegendEntry labels one structure class.
type LegendEntry struct {
	Class domain.StructureClass
	Label string
	Color string
}

// Legend lists the classes in display order.
var Legend = [3]LegendEntry{
	{domain.Helix, "alpha-helix", "red"},
	{domain.Strand, "beta-strand", "yellow"},
	{domain.Coil, "coil", "gray"},
}

// Color returns the fill colour for a class code.
func Color(c byte) string {
	for _, e := range Legend {
		if byte(e.Class) == c {
			return e.Color
		}
	}
	return "black"
}

// SVG renders classes as an SVG document.
func SVG(classes string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`,
		len(classes)*blockWidth, svgHeight)
	for i := 0; i < len(classes); i++ {
		fmt.Fprintf(&b, `<rect x="%d" y="0" width="%d" height="%d" fill="%s"/>`,
			i*blockWidth, blockWidth, blockHeight, Color(classes[i]))
	}
	for i, e := range Legend {
		x := 10 + i*65
		fmt.Fprintf(&b, `<rect x="%d" y="35" width="10" height="10" fill="%s"/>`, x, e.Color)
		fmt.Fprintf(&b, `<text x="%d" y="45" font-size="10">%s</text>`, x+15, e.Label)
	}
	b.WriteString(`</svg>`)
	return b.String()
}
