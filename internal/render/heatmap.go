// Package render draws flip-count maps and profiles in the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/rayannott/flipmap/internal/gridmap"
)

// shades is a cold-to-hot 256-color ramp indexed by normalized flip count.
var shades = []lipgloss.Style{
	lipgloss.NewStyle().Background(lipgloss.Color("17")),
	lipgloss.NewStyle().Background(lipgloss.Color("18")),
	lipgloss.NewStyle().Background(lipgloss.Color("19")),
	lipgloss.NewStyle().Background(lipgloss.Color("26")),
	lipgloss.NewStyle().Background(lipgloss.Color("32")),
	lipgloss.NewStyle().Background(lipgloss.Color("37")),
	lipgloss.NewStyle().Background(lipgloss.Color("42")),
	lipgloss.NewStyle().Background(lipgloss.Color("106")),
	lipgloss.NewStyle().Background(lipgloss.Color("142")),
	lipgloss.NewStyle().Background(lipgloss.Color("178")),
	lipgloss.NewStyle().Background(lipgloss.Color("208")),
	lipgloss.NewStyle().Background(lipgloss.Color("196")),
	lipgloss.NewStyle().Background(lipgloss.Color("231")),
}

var legendLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

func shadeFor(count, max int) lipgloss.Style {
	if max <= 0 {
		return shades[0]
	}
	idx := count * (len(shades) - 1) / max
	if idx >= len(shades) {
		idx = len(shades) - 1
	}
	return shades[idx]
}

// Heatmap renders the map as colored cells, two characters per cell so the
// image is roughly square in a terminal.
func Heatmap(m *gridmap.Map) string {
	var sb strings.Builder
	max := m.Max()

	for i := 0; i < m.Rows; i++ {
		for _, v := range m.Row(i) {
			sb.WriteString(shadeFor(v, max).Render("  "))
		}
		sb.WriteRune('\n')
	}

	sb.WriteString(legendLabel.Render(fmt.Sprintf("θ1 ∈ [0, π] (rows), θ2 ∈ [-π, π] (cols), 0..%d flips", max)))
	sb.WriteRune('\n')
	return sb.String()
}

// RowProfile plots the flip counts of one row against the θ2 axis.
func RowProfile(m *gridmap.Map, i int) string {
	row := m.Row(i)
	vals := make([]float64, len(row))
	for j, v := range row {
		vals[j] = float64(v)
	}
	return asciigraph.Plot(vals,
		asciigraph.Height(12),
		asciigraph.Caption(fmt.Sprintf("flip counts, row %d of %d", i, m.Rows)),
	)
}

// AnglePlot plots a single angle history against time.
func AnglePlot(values []float64, caption string) string {
	return asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Caption(caption),
	)
}
