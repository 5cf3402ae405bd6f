package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/accplot/internal/parse"
	"github.com/Zuo-Peng/accplot/internal/summary"
)

const (
	colorReset = "\033[0m"
	colorX     = "\033[1;31m" // bold red
	colorY     = "\033[1;32m" // bold green
	colorZ     = "\033[1;34m" // bold blue
	colorDim   = "\033[2m"
	colorBold  = "\033[1m"
)

type Options struct {
	Limit int  // sample rows to print (0 = all)
	Color bool // emit ANSI colour codes
}

func (o Options) paint(code, s string) string {
	if !o.Color {
		return s
	}
	return code + s + colorReset
}

// padLeft right-aligns s in a column of the given visible width.
func padLeft(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}

// padRight left-aligns s in a column of the given visible width.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

const colW = 10

// RenderSummary renders the source header and the per-axis statistics table.
func RenderSummary(res *parse.Result, sum summary.Summary, opts Options) string {
	var b strings.Builder

	b.WriteString(opts.paint(colorDim, fmt.Sprintf("--- %s [%s] ---", res.Source.Path, res.Source.Format)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Amostras: %d   Linhas lidas: %d   Ignoradas: %d\n\n", sum.Count, res.Lines, res.Skipped)

	if sum.Count == 0 {
		b.WriteString("Nenhum dado válido encontrado.\n")
		return b.String()
	}

	header := padRight("Eixo", 6)
	for _, h := range []string{"Mín", "Máx", "Média", "Desvio", "Pico-pico"} {
		header += padLeft(h, colW)
	}
	b.WriteString(opts.paint(colorBold, header))
	b.WriteString("\n")

	rows := []struct {
		name  string
		color string
		axis  summary.Axis
	}{
		{"X", colorX, sum.X},
		{"Y", colorY, sum.Y},
		{"Z", colorZ, sum.Z},
	}
	for _, r := range rows {
		line := opts.paint(r.color, padRight(r.name, 6))
		for _, v := range []float64{r.axis.Min, r.axis.Max, r.axis.Mean, r.axis.StdDev, r.axis.PeakToPeak} {
			line += padLeft(fmt.Sprintf("%.3f", v), colW)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n|a| média %.3f m/s^2, máx %.3f m/s^2\n", sum.MagnitudeMean, sum.MagnitudeMax)
	return b.String()
}

// RenderSamples renders one row per sample: index, source line and the
// three axes. With opts.Limit > 0 the remaining rows are elided.
func RenderSamples(samples []parse.Sample, opts Options) string {
	var b strings.Builder

	header := padLeft("#", 6) + padLeft("Linha", 8) +
		padLeft("X", colW) + padLeft("Y", colW) + padLeft("Z", colW)
	b.WriteString(opts.paint(colorBold, header))
	b.WriteString("\n")

	shown := samples
	if opts.Limit > 0 && len(samples) > opts.Limit {
		shown = samples[:opts.Limit]
	}

	for i, s := range shown {
		b.WriteString(opts.paint(colorDim, padLeft(fmt.Sprintf("%d", i), 6)))
		b.WriteString(padLeft(fmt.Sprintf("%d", s.Line), 8))
		b.WriteString(opts.paint(colorX, padLeft(fmt.Sprintf("%.2f", s.X), colW)))
		b.WriteString(opts.paint(colorY, padLeft(fmt.Sprintf("%.2f", s.Y), colW)))
		b.WriteString(opts.paint(colorZ, padLeft(fmt.Sprintf("%.2f", s.Z), colW)))
		b.WriteString("\n")
	}

	if omitted := len(samples) - len(shown); omitted > 0 {
		b.WriteString(opts.paint(colorDim, fmt.Sprintf("... (%d amostras omitidas) ...", omitted)))
		b.WriteString("\n")
	}

	return b.String()
}
