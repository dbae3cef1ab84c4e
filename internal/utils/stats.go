package utils

import (
	"math"
	"sort"
)

// Clip limits v to the [lo, hi] interval. NaN passes through untouched so
// undefined pixels stay undefined.
func Clip(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NewGrid allocates a height x width grid of zeros.
func NewGrid(height, width int) [][]float64 {
	grid := make([][]float64, height)
	for i := range grid {
		grid[i] = make([]float64, width)
	}
	return grid
}

// GridShape returns (height, width) of a grid; (0, 0) for an empty one.
func GridShape(grid [][]float64) (int, int) {
	if len(grid) == 0 {
		return 0, 0
	}
	return len(grid), len(grid[0])
}

// FullGrid allocates a height x width grid filled with value.
func FullGrid(height, width int, value float64) [][]float64 {
	grid := make([][]float64, height)
	for i := range grid {
		grid[i] = make([]float64, width)
		for j := range grid[i] {
			grid[i][j] = value
		}
	}
	return grid
}

// NaNMean averages all defined values of the grid. Returns NaN when every
// pixel is undefined.
func NaNMean(grid [][]float64) float64 {
	var sum float64
	var count int
	for _, row := range grid {
		for _, v := range row {
			if math.IsNaN(v) {
				continue
			}
			sum += v
			count++
		}
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

// NaNPercentile computes the p-th percentile of the grid's defined values
// with linear interpolation between ranks, and reports how many defined
// values participated. Returns NaN when the grid has no defined values.
func NaNPercentile(grid [][]float64, p float64) (float64, int) {
	var values []float64
	for _, row := range grid {
		for _, v := range row {
			if !math.IsNaN(v) {
				values = append(values, v)
			}
		}
	}
	if len(values) == 0 {
		return math.NaN(), 0
	}
	sort.Float64s(values)

	rank := p / 100 * float64(len(values)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return values[lower], len(values)
	}
	frac := rank - float64(lower)
	return values[lower] + frac*(values[upper]-values[lower]), len(values)
}
