package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/accplot/internal/locate"
	"github.com/Zuo-Peng/accplot/internal/parse"
)

func testResult(n int) *parse.Result {
	res := &parse.Result{Source: locate.Source{Path: "dados/dados_simulados.txt", Format: locate.FormatText}}
	for i := 0; i < n; i++ {
		res.Samples = append(res.Samples, parse.Sample{
			X:    float64(i) * 0.1,
			Y:    -float64(i) * 0.2,
			Z:    9.8,
			Line: i + 1,
		})
	}
	return res
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return out
}

func sized(t *testing.T, n int) model {
	t.Helper()
	return update(t, initialModel(testResult(n)), tea.WindowSizeMsg{Width: 120, Height: 16})
}

func TestCursorMovement(t *testing.T) {
	m := sized(t, 50)
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, 0, m.previewIdx)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "cursor stays on the first sample")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.cursor)
	assert.Equal(t, 2, m.previewIdx)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 49, m.cursor)
	// panel height is 16-6 = 10 rows
	assert.Equal(t, 40, m.listOffset)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, 0, m.listOffset)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 10, m.cursor)
}

func TestJumpInput(t *testing.T) {
	m := sized(t, 50)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	assert.Equal(t, 2, m.cursor)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	assert.Equal(t, 25, m.cursor)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0")})
	assert.Equal(t, 49, m.cursor, "out of range jumps clamp to the last sample")
}

func TestEnterCopiesSelection(t *testing.T) {
	m := sized(t, 5)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	fm := next.(model)
	require.NotNil(t, fm.copied)
	assert.Equal(t, 2, fm.copied.Line)
	assert.True(t, fm.quitting)
	assert.NotNil(t, cmd)
}

func TestEmptyResult(t *testing.T) {
	m := sized(t, 0)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.cursor)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.copied)
	assert.False(t, m.quitting)

	assert.Contains(t, m.View(), "Nenhuma amostra")
}

func TestMouseClickSelects(t *testing.T) {
	m := sized(t, 20)

	// row 2 is the first list line (input row + top border)
	m = update(t, m, tea.MouseMsg{X: 3, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Equal(t, 3, m.cursor)
}

func TestViewShowsSamples(t *testing.T) {
	m := sized(t, 3)
	view := m.View()

	assert.Contains(t, view, "#1")
	assert.Contains(t, view, "3 amostras")
	assert.Contains(t, view, "Amostra 0 (linha 1)")
}

func TestRenderPreview(t *testing.T) {
	res := testResult(3)
	m := initialModel(res)
	out := renderPreview(1, res.Samples[1], m.stats)

	assert.Contains(t, out, "Amostra 1 (linha 2)")
	assert.Contains(t, out, "AccelX: 0.10, AccelY: -0.20, AccelZ: 9.80 m/s^2")
}

func TestGauge(t *testing.T) {
	assert.Equal(t, strings.Repeat("·", 10), gauge(0, 0, 10, 10))
	assert.Equal(t, strings.Repeat("█", 10), gauge(10, 0, 10, 10))
	assert.Equal(t, strings.Repeat("█", 5)+strings.Repeat("·", 5), gauge(5, 0, 10, 10))
	assert.Equal(t, strings.Repeat("█", 4), gauge(9.8, 9.8, 9.8, 4), "flat range fills the bar")
	assert.Equal(t, strings.Repeat("·", 4), gauge(-5, 0, 10, 4))
	assert.Equal(t, strings.Repeat("·", 4), gauge(math.NaN(), 0, 10, 4), "missing value leaves the bar empty")
}

func TestFormatSampleLineWideValues(t *testing.T) {
	s := parse.Sample{X: 123456.78, Y: -0.5, Z: 9.81}

	line := formatSampleLine(7, s, 60, false)
	assert.Contains(t, line, "#7")
	assert.Contains(t, line, "123456.78")
	assert.Contains(t, line, "   -0.50")
	assert.Contains(t, line, "    9.81")
}

func TestFormatSampleLineNarrow(t *testing.T) {
	s := parse.Sample{X: 1.5, Y: 2.5, Z: 3.5}

	line := formatSampleLine(0, s, 2+6+12, true)
	assert.Contains(t, line, "1.50")
	assert.NotContains(t, line, "2.50")
	assert.NotContains(t, line, "3.50")
}
