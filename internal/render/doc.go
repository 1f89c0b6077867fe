// Package render draws structure-class strings as coloured bar charts.
//
// SVG produces the image served over HTTP: one 10x30 block per residue
// (Helix red, Strand yellow, Coil gray, anything else black) and a legend.
// Terminal produces the same chart for a TTY using lipgloss colours.
package render
