// Package gridmap classifies a dense grid of double-pendulum initial
// conditions by flip count, sequentially or across a worker pool.
package gridmap

import (
	"errors"
	"math"
)

// Map is a dense flip-count matrix. Rows index the first arm's initial
// angle on [0, π], columns the second arm's on [-π, π]. For resolution N
// the shape is (N, 2N-1). Immutable once built.
type Map struct {
	N    int
	Rows int
	Cols int
	data []int
}

func newMap(n int) *Map {
	rows, cols := n, 2*n-1
	return &Map{
		N:    n,
		Rows: rows,
		Cols: cols,
		data: make([]int, rows*cols),
	}
}

// ErrRowShape indicates row data that does not form an (N, 2N-1) matrix.
var ErrRowShape = errors.New("gridmap: row data must have shape (N, 2N-1)")

// FromRows builds a Map from explicit row data of shape (N, 2N-1).
// Used when loading a previously exported map.
func FromRows(rows [][]int) (*Map, error) {
	n := len(rows)
	if n < 2 {
		return nil, ErrRowShape
	}
	m := newMap(n)
	for i, row := range rows {
		if len(row) != m.Cols {
			return nil, ErrRowShape
		}
		copy(m.Row(i), row)
	}
	return m, nil
}

func (m *Map) At(i, j int) int { return m.data[i*m.Cols+j] }

// Row returns the backing slice for row i. Callers must not modify it.
func (m *Map) Row(i int) []int {
	return m.data[i*m.Cols : (i+1)*m.Cols]
}

func (m *Map) Equal(other *Map) bool {
	if other == nil || m.Rows != other.Rows || m.Cols != other.Cols {
		return false
	}
	for k := range m.data {
		if m.data[k] != other.data[k] {
			return false
		}
	}
	return true
}

// Max returns the largest flip count in the map.
func (m *Map) Max() int {
	max := 0
	for _, v := range m.data {
		if v > max {
			max = v
		}
	}
	return max
}

// Theta1s returns the row axis: N initial angles on [0, π].
func Theta1s(n int) []float64 {
	return linspace(0, math.Pi, n)
}

// Theta2s returns the column axis: 2N-1 initial angles on [-π, π].
func Theta2s(n int) []float64 {
	return linspace(-math.Pi, math.Pi, 2*n-1)
}

func linspace(a, b float64, n int) []float64 {
	vals := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range vals {
		vals[i] = a + float64(i)*step
	}
	vals[n-1] = b
	return vals
}
