// Package flip counts full revolutions of the second pendulum arm.
//
// The angle history must be unbounded (not wrapped to [-π, π]): the detector
// partitions the real line into π-wide bands and records an event whenever
// consecutive samples land in different bands AND the band left behind has
// an even index. Counting only even-band departures registers each full
// revolution once instead of twice.
package flip

import (
	"errors"
	"math"
)

// ErrLengthMismatch indicates time and angle series of different lengths.
var ErrLengthMismatch = errors.New("flip: time and angle series lengths differ")

// band returns the index of the π-wide band containing the angle.
func band(theta float64) int {
	return int(math.Floor(theta / math.Pi))
}

// Count returns the number of flip events in an angle history of the second
// arm. A series that never crosses a π boundary yields zero.
func Count(theta2 []float64) int {
	n := 0
	for k := 0; k+1 < len(theta2); k++ {
		a, b := band(theta2[k]), band(theta2[k+1])
		if a != b && a%2 == 0 {
			n++
		}
	}
	return n
}

// Times returns the timestamps of flip events, taken from the sample at
// which each crossing originates.
func Times(times, theta2 []float64) ([]float64, error) {
	if len(times) != len(theta2) {
		return nil, ErrLengthMismatch
	}
	var res []float64
	for k := 0; k+1 < len(theta2); k++ {
		a, b := band(theta2[k]), band(theta2[k+1])
		if a != b && a%2 == 0 {
			res = append(res, times[k])
		}
	}
	return res, nil
}
