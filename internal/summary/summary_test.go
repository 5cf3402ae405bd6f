package summary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Zuo-Peng/accplot/internal/parse"
)

func TestComputeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Compute(nil))
}

func TestComputeSingleSample(t *testing.T) {
	s := Compute([]parse.Sample{{X: 3, Y: 4, Z: 0}})

	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 3.0, s.X.Min)
	assert.Equal(t, 3.0, s.X.Max)
	assert.Equal(t, 0.0, s.X.StdDev)
	assert.Equal(t, 0.0, s.X.PeakToPeak)
	assert.InDelta(t, 5.0, s.MagnitudeMean, 1e-12)
	assert.InDelta(t, 5.0, s.MagnitudeMax, 1e-12)
}

func TestCompute(t *testing.T) {
	samples := []parse.Sample{
		{X: 1.20, Y: -0.30, Z: 9.81},
		{X: 0.00, Y: 0.00, Z: 9.80},
		{X: -2.50, Y: 1.10, Z: 8.95},
	}
	s := Compute(samples)

	assert.Equal(t, 3, s.Count)

	assert.Equal(t, -2.50, s.X.Min)
	assert.Equal(t, 1.20, s.X.Max)
	assert.InDelta(t, 3.70, s.X.PeakToPeak, 1e-12)
	assert.InDelta(t, (1.20+0.00-2.50)/3, s.X.Mean, 1e-12)

	assert.Equal(t, -0.30, s.Y.Min)
	assert.Equal(t, 1.10, s.Y.Max)

	assert.InDelta(t, 9.52, s.Z.Mean, 1e-12)
	// sample stddev of {9.81, 9.80, 8.95}
	assert.InDelta(t, 0.4936598019, s.Z.StdDev, 1e-9)

	assert.InDelta(t, Magnitude(samples[0]), s.MagnitudeMax, 1e-12)
	assert.Less(t, s.MagnitudeMean, s.MagnitudeMax)
}

func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 13.0, Magnitude(parse.Sample{X: 3, Y: 4, Z: 12}), 1e-12)
	assert.Equal(t, 0.0, Magnitude(parse.Sample{}))
}

func TestComputeSkipsMissing(t *testing.T) {
	nan := math.NaN()
	s := Compute([]parse.Sample{
		{X: 3, Y: 4, Z: 0},
		{X: 1, Y: nan, Z: 2},
		{X: nan, Y: nan, Z: 4},
	})

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 1.0, s.X.Min)
	assert.Equal(t, 3.0, s.X.Max)
	assert.InDelta(t, 2.0, s.X.Mean, 1e-12)
	assert.Equal(t, Axis{Min: 4, Max: 4, Mean: 4}, s.Y)
	assert.InDelta(t, 2.0, s.Z.Mean, 1e-12)
	assert.InDelta(t, 5.0, s.MagnitudeMean, 1e-12)
	assert.InDelta(t, 5.0, s.MagnitudeMax, 1e-12)
}

func TestComputeAxisAllMissing(t *testing.T) {
	nan := math.NaN()
	s := Compute([]parse.Sample{{X: 1, Y: nan, Z: 9}})

	assert.Equal(t, Axis{}, s.Y)
	assert.Equal(t, 0.0, s.MagnitudeMax)
}
