package render

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Zuo-Peng/accplot/internal/parse"
)

const (
	OutputDir  = "analise"
	OutputName = "grafico_aceleracao.png"
)

const (
	chartTitle  = "Variação da Aceleração ao Longo do Tempo (Dados Simulados)"
	chartXLabel = "Amostra"
	chartYLabel = "Aceleração (m/s^2)"
	chartWidth  = 12 * vg.Inch
	chartHeight = 6 * vg.Inch
)

var ErrNoSamples = errors.New("no samples to plot")

type series struct {
	label string
	color color.Color
	value func(parse.Sample) float64
}

var accelSeries = []series{
	{"Aceleração X (m/s^2)", colornames.Red, func(s parse.Sample) float64 { return s.X }},
	{"Aceleração Y (m/s^2)", colornames.Green, func(s parse.Sample) float64 { return s.Y }},
	{"Aceleração Z (m/s^2)", colornames.Blue, func(s parse.Sample) float64 { return s.Z }},
}

// OutputPath is where the chart for the project at root is written.
func OutputPath(root string) string {
	return filepath.Join(root, OutputDir, OutputName)
}

// NewChart plots the three axes against the sample index.
func NewChart(samples []parse.Sample) (*plot.Plot, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}

	p := plot.New()
	p.Title.Text = chartTitle
	p.X.Label.Text = chartXLabel
	p.Y.Label.Text = chartYLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for _, s := range accelSeries {
		style := plotter.DefaultLineStyle
		style.Color = s.color
		style.Width = vg.Points(1.5)

		for _, pts := range segments(samples, s.value) {
			line, err := plotter.NewLine(pts)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", s.label, err)
			}
			line.LineStyle = style
			p.Add(line)
		}
		p.Legend.Add(s.label, &plotter.Line{LineStyle: style})
	}

	return p, nil
}

// segments splits one axis into runs of consecutive finite values so that
// missing readings leave a gap in the line.
func segments(samples []parse.Sample, value func(parse.Sample) float64) []plotter.XYs {
	var out []plotter.XYs
	var cur plotter.XYs
	for i, smp := range samples {
		v := value(smp)
		if !parse.Finite(v) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: float64(i), Y: v})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// SaveChart renders samples and writes the image to path, creating the
// parent directory if needed. The format follows the file extension.
func SaveChart(samples []parse.Sample, path string) error {
	p, err := NewChart(samples)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
