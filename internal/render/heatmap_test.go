package render

import (
	"strings"
	"testing"

	"github.com/rayannott/flipmap/internal/gridmap"
)

func testMap(t *testing.T) *gridmap.Map {
	t.Helper()
	m, err := gridmap.FromRows([][]int{
		{0, 1, 2, 3, 4},
		{5, 6, 7, 8, 9},
		{1, 1, 2, 3, 5},
	})
	if err != nil {
		t.Fatalf("building test map: %v", err)
	}
	return m
}

func TestHeatmap(t *testing.T) {
	out := Heatmap(testMap(t))

	// one line per row plus the legend
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "flips") {
		t.Error("legend missing")
	}
}

func TestRowProfile(t *testing.T) {
	out := RowProfile(testMap(t), 1)
	if out == "" {
		t.Error("expected a plot")
	}
	if !strings.Contains(out, "row 1") {
		t.Error("caption missing")
	}
}

func TestAnglePlot(t *testing.T) {
	out := AnglePlot([]float64{0, 0.5, 1.0, 0.5, 0}, "theta2 over time")
	if !strings.Contains(out, "theta2 over time") {
		t.Error("caption missing")
	}
}
