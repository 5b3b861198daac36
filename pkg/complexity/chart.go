package complexity

import (
	"errors"
	"math"
)

const (
	// DefaultSamples is the number of points per curve when unspecified.
	DefaultSamples = 20
	// DefaultMaxN is the right edge of the chart.
	DefaultMaxN = 20.0
	// MaxSamples bounds the points per curve.
	MaxSamples = 500
)

// ErrInvalidChart is returned for sample counts or ranges that cannot be plotted.
var ErrInvalidChart = errors.New("invalid chart parameters")

// Point is one (n, f(n)) sample.
type Point struct {
	N     float64 `json:"n"`
	Value float64 `json:"value"`
}

// Curve is the growth curve of one complexity class.
type Curve struct {
	Label    string  `json:"label"`
	Notation string  `json:"notation"`
	Rating   Rating  `json:"rating"`
	Points   []Point `json:"points"`
}

type growth struct {
	label    string
	notation string
	f        func(n float64) float64
}

// classes are plotted best to worst.
var classes = []growth{
	{"O(1)", "O(1)", func(float64) float64 { return 1 }},
	{"O(log n)", "O(log n)", func(n float64) float64 { return math.Log2(n) }},
	{"O(n)", "O(n)", func(n float64) float64 { return n }},
	{"O(n log n)", "O(n log n)", func(n float64) float64 { return n * math.Log2(n) }},
	{"O(n²)", "O(n²)", func(n float64) float64 { return n * n }},
	{"O(2ⁿ)", "O(2^n)", func(n float64) float64 { return math.Pow(2, n) }},
}

// Chart samples each complexity class at evenly spaced n in [1, maxN].
// Values are clipped to maxN so every curve shares the linear curve's scale.
func Chart(samples int, maxN float64) ([]Curve, error) {
	if samples < 2 || samples > MaxSamples || maxN <= 1 || math.IsInf(maxN, 0) || math.IsNaN(maxN) {
		return nil, ErrInvalidChart
	}

	step := (maxN - 1) / float64(samples-1)
	curves := make([]Curve, 0, len(classes))
	for _, c := range classes {
		pts := make([]Point, samples)
		for i := range pts {
			n := 1 + step*float64(i)
			pts[i] = Point{N: n, Value: math.Min(c.f(n), maxN)}
		}
		curves = append(curves, Curve{
			Label:    c.label,
			Notation: c.notation,
			Rating:   Classify(c.notation),
			Points:   pts,
		})
	}
	return curves, nil
}
