// Package export writes computed flip-count maps to CSV, JSON, XLSX and
// SVG, and reads CSV maps back for re-rendering.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rayannott/flipmap/internal/gridmap"
)

// ErrShape indicates a CSV file whose dimensions are not (N, 2N-1).
var ErrShape = errors.New("export: map must have shape (N, 2N-1)")

// WriteCSV saves a map as plain integer rows, no header.
func WriteCSV(path string, m *gridmap.Map) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	record := make([]string, m.Cols)
	for i := 0; i < m.Rows; i++ {
		for j, v := range m.Row(i) {
			record[j] = strconv.Itoa(v)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Error()
}

// ReadCSV loads a map previously written by WriteCSV.
func ReadCSV(path string) (*gridmap.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	n := len(records)
	if n < 2 || len(records[0]) != 2*n-1 {
		return nil, ErrShape
	}

	counts := make([][]int, n)
	for i, record := range records {
		if len(record) != 2*n-1 {
			return nil, ErrShape
		}
		row := make([]int, len(record))
		for j, field := range record {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			row[j] = v
		}
		counts[i] = row
	}

	return gridmap.FromRows(counts)
}
