package render_test

import (
	"strings"
	"testing"

	"protmotif/internal/render"
)

func TestSVG_OneBlockPerResidue(t *testing.T) {
	svg := render.SVG("HECX")
	if !strings.HasPrefix(svg, `<svg width="40" height="50"`) || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("unexpected frame: %s", svg)
	}
	for _, want := range []string{
		`<rect x="0" y="0" width="10" height="30" fill="red"/>`,
		`<rect x="10" y="0" width="10" height="30" fill="yellow"/>`,
		`<rect x="20" y="0" width="10" height="30" fill="gray"/>`,
		`<rect x="30" y="0" width="10" height="30" fill="black"/>`,
	} {
		if !strings.Contains(svg, want) {
			t.Fatalf("missing %s in %s", want, svg)
		}
	}
	if got := strings.Count(svg, `height="30"`); got != 4 {
		t.Fatalf("want 4 residue blocks, got %d", got)
	}
}

func TestSVG_Legend(t *testing.T) {
	svg := render.SVG("")
	for _, label := range []string{"alpha-helix", "beta-strand", "coil"} {
		if !strings.Contains(svg, ">"+label+"</text>") {
			t.Fatalf("legend %q missing", label)
		}
	}
}

func TestColor(t *testing.T) {
	tests := map[byte]string{'H': "red", 'E': "yellow", 'C': "gray", 'X': "black", 'h': "black"}
	for c, want := range tests {
		if got := render.Color(c); got != want {
			t.Fatalf("Color(%c) = %s, want %s", c, got, want)
		}
	}
}

func TestTerminal_WrapsAndLabels(t *testing.T) {
	out := render.Terminal(strings.Repeat("H", 25), 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("want 3 bar rows and a legend, got %d lines:\n%s", len(lines), out)
	}
	if got := strings.Count(lines[0], "█"); got != 10 {
		t.Fatalf("first row has %d blocks, want 10", got)
	}
	if got := strings.Count(lines[2], "█"); got != 5 {
		t.Fatalf("last row has %d blocks, want 5", got)
	}
	if !strings.Contains(lines[3], "beta-strand") {
		t.Fatalf("legend missing: %q", lines[3])
	}
}
