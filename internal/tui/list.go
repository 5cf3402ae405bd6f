package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/accplot/internal/parse"
)

// linesPerItem is the number of terminal lines each sample occupies.
const linesPerItem = 1

// renderList renders the left panel: the sample list with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.samples()) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("Nenhuma amostra")
		return empty
	}

	var lines []string
	for i, s := range m.samples() {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		lines = append(lines, formatSampleLine(i, s, width, i == m.cursor))
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatSampleLine formats one sample as
//
//	[>] #idx      x       y       z
//
// Axis fields that do not fit in width are dropped from the right.
func formatSampleLine(idx int, s parse.Sample, width int, selected bool) string {
	index := fmt.Sprintf("#%-5d", idx)
	avail := width - 2 - runewidth.StringWidth(index)

	line := styleListIndex.Render(index)
	fields := []struct {
		text  string
		style lipgloss.Style
	}{
		{fmt.Sprintf("%8.2f", s.X), styleAxisX},
		{fmt.Sprintf("%8.2f", s.Y), styleAxisY},
		{fmt.Sprintf("%8.2f", s.Z), styleAxisZ},
	}
	for _, f := range fields {
		w := runewidth.StringWidth(f.text)
		if w > avail {
			if avail > 0 {
				line += runewidth.Truncate(f.text, avail, "")
			}
			break
		}
		line += f.style.Render(f.text)
		avail -= w
	}

	if selected {
		return styleListSelected.Render("> ") + line
	}
	return "  " + line
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
