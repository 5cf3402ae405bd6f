package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zuo-Peng/accplot/internal/parse"
	"github.com/Zuo-Peng/accplot/internal/summary"
)

const gaugeWidth = 24

// renderPreview renders the details of the sample at idx: values, a gauge
// per axis scaled to the file's range and the equivalent serial line.
func renderPreview(idx int, s parse.Sample, stats summary.Summary) string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(fmt.Sprintf("Amostra %d (linha %d)", idx, s.Line)))
	b.WriteString("\n\n")

	rows := []struct {
		name  string
		style lipgloss.Style
		value float64
		axis  summary.Axis
	}{
		{"X", styleAxisX, s.X, stats.X},
		{"Y", styleAxisY, s.Y, stats.Y},
		{"Z", styleAxisZ, s.Z, stats.Z},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %8.2f m/s^2  %s\n",
			r.style.Render(r.name), r.value, r.style.Render(gauge(r.value, r.axis.Min, r.axis.Max, gaugeWidth)))
	}
	fmt.Fprintf(&b, "|a| %7.2f m/s^2\n", summary.Magnitude(s))

	b.WriteString("\n")
	b.WriteString(styleTitle.Render("Linha serial"))
	b.WriteString("\n  ")
	b.WriteString(parse.FormatLine(s))
	b.WriteString("\n\n")

	b.WriteString(styleTitle.Render("Faixa do arquivo"))
	b.WriteString("\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s %8.2f .. %-8.2f média %.2f\n", r.style.Render(r.name), r.axis.Min, r.axis.Max, r.axis.Mean)
	}

	return b.String()
}

// gauge draws v's position within [lo, hi] as a bar of the given width.
func gauge(v, lo, hi float64, width int) string {
	if !parse.Finite(v) {
		return strings.Repeat("·", width)
	}
	filled := width
	if span := hi - lo; span > 0 {
		filled = int((v-lo)/span*float64(width) + 0.5)
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("·", width-filled)
}

// newViewport creates a new viewport model with the given dimensions.
func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.Style = stylePanelBorder
	return vp
}
