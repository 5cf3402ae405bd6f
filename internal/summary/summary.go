package summary

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Zuo-Peng/accplot/internal/parse"
)

type Axis struct {
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"stddev"`
	PeakToPeak float64 `json:"peak_to_peak"`
}

type Summary struct {
	Count         int     `json:"count"`
	X             Axis    `json:"accel_x"`
	Y             Axis    `json:"accel_y"`
	Z             Axis    `json:"accel_z"`
	MagnitudeMean float64 `json:"magnitude_mean"`
	MagnitudeMax  float64 `json:"magnitude_max"`
}

// Compute returns per-axis statistics for samples. Missing axis values are
// left out of that axis, and the magnitude covers complete samples only.
// An empty slice yields the zero Summary.
func Compute(samples []parse.Sample) Summary {
	n := len(samples)
	if n == 0 {
		return Summary{}
	}

	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	zs := make([]float64, 0, n)
	mags := make([]float64, 0, n)
	for _, s := range samples {
		xs = appendFinite(xs, s.X)
		ys = appendFinite(ys, s.Y)
		zs = appendFinite(zs, s.Z)
		if s.Complete() {
			mags = append(mags, Magnitude(s))
		}
	}

	sum := Summary{
		Count: n,
		X:     axis(xs),
		Y:     axis(ys),
		Z:     axis(zs),
	}
	if len(mags) > 0 {
		sum.MagnitudeMean = stat.Mean(mags, nil)
		sum.MagnitudeMax = floats.Max(mags)
	}
	return sum
}

func appendFinite(v []float64, x float64) []float64 {
	if !parse.Finite(x) {
		return v
	}
	return append(v, x)
}

// Magnitude is the norm of the acceleration vector.
func Magnitude(s parse.Sample) float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
}

func axis(v []float64) Axis {
	if len(v) == 0 {
		return Axis{}
	}
	a := Axis{
		Min:  floats.Min(v),
		Max:  floats.Max(v),
		Mean: stat.Mean(v, nil),
	}
	a.PeakToPeak = a.Max - a.Min
	// sample standard deviation is undefined for a single reading
	if len(v) > 1 {
		a.StdDev = stat.StdDev(v, nil)
	}
	return a
}
