package parse

import (
	"math"

	"github.com/Zuo-Peng/accplot/internal/locate"
)

// Sample is one three-axis accelerometer reading in m/s². An axis whose
// CSV cell was missing holds NaN.
type Sample struct {
	X    float64
	Y    float64
	Z    float64
	Line int // line number in original file
}

// Complete reports whether all three axes carry a finite value.
func (s Sample) Complete() bool {
	return Finite(s.X) && Finite(s.Y) && Finite(s.Z)
}

// Finite reports whether v is a usable axis value.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type Result struct {
	Source  locate.Source
	Samples []Sample
	Lines   int // lines (text) or data rows (csv) read
	Skipped int // lines that did not carry a reading
	Missing int // csv cells left empty or marked NA
}
