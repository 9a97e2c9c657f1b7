package export

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rayannott/flipmap/internal/gridmap"
	"github.com/rayannott/flipmap/internal/pendulum"
)

type mapDocument struct {
	N         int                `json:"n"`
	Rows      int                `json:"rows"`
	Cols      int                `json:"cols"`
	MaxFlips  int                `json:"max_flips"`
	Constants pendulum.Constants `json:"constants"`
	Timestamp time.Time          `json:"timestamp"`
	Counts    [][]int            `json:"counts"`
}

// WriteJSON saves a map with its physical constants and run metadata.
func WriteJSON(path string, m *gridmap.Map, cnst pendulum.Constants) error {
	counts := make([][]int, m.Rows)
	for i := range counts {
		counts[i] = m.Row(i)
	}

	doc := mapDocument{
		N:         m.N,
		Rows:      m.Rows,
		Cols:      m.Cols,
		MaxFlips:  m.Max(),
		Constants: cnst,
		Timestamp: time.Now(),
		Counts:    counts,
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
