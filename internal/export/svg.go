package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/rayannott/flipmap/internal/gridmap"
)

// heatPalette ramps dark blue through red to white with rising flip count.
var heatPalette = []string{
	"#0a0a23", "#16265c", "#1d3c8f", "#2a6ab0", "#3f9fbf",
	"#5fc9a9", "#9fdd72", "#e3e34f", "#f2a93b", "#e9632b",
	"#d02e24", "#a31f4f", "#ffffff",
}

func colorFor(count, max int) string {
	if max <= 0 {
		return heatPalette[0]
	}
	idx := count * (len(heatPalette) - 1) / max
	if idx >= len(heatPalette) {
		idx = len(heatPalette) - 1
	}
	return heatPalette[idx]
}

// MapToSVG renders a map as a heatmap, one cell-sized rect per grid cell.
func MapToSVG(m *gridmap.Map, cell int) string {
	if m == nil || cell <= 0 {
		return ""
	}

	width := m.Cols * cell
	height := m.Rows * cell
	max := m.Max()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, heatPalette[0]))

	for i := 0; i < m.Rows; i++ {
		for j, v := range m.Row(i) {
			if v == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, j*cell, i*cell, cell, cell, colorFor(v, max)))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG saves a heatmap rendering of the map.
func WriteSVG(path string, m *gridmap.Map, cell int) error {
	svg := MapToSVG(m, cell)
	if svg == "" {
		return fmt.Errorf("export: nothing to render")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
