package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const block = "█"

var termColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("#EF4444"),
	"yellow": lipgloss.Color("#F59E0B"),
	"gray":   lipgloss.Color("#9CA3AF"),
	"black":  lipgloss.Color("#111827"),
}

var legendStyle = lipgloss.NewStyle().Italic(true)

// Terminal renders classes as rows of coloured blocks, wrapping every width
// residues (no wrapping when width <= 0), followed by the legend.
func Terminal(classes string, width int) string {
	if width <= 0 {
		width = len(classes)
	}
	var rows []string
	for start := 0; start < len(classes); start += width {
		end := min(start+width, len(classes))
		var row strings.Builder
		for i := start; i < end; i++ {
			row.WriteString(blockStyle(Color(classes[i])).Render(block))
		}
		rows = append(rows, row.String())
	}

	entries := make([]string, 0, len(Legend))
	for _, e := range Legend {
		entries = append(entries, blockStyle(e.Color).Render(block)+" "+legendStyle.Render(e.Label))
	}
	rows = append(rows, strings.Join(entries, "   "))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func blockStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(termColors[color])
}
