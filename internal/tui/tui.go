package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zuo-Peng/accplot/internal/parse"
	"github.com/Zuo-Peng/accplot/internal/summary"
)

// model

type model struct {
	result     *parse.Result
	stats      summary.Summary
	cursor     int
	listOffset int
	jumpInput  textinput.Model
	preview    viewport.Model
	previewIdx int // sample currently rendered in the preview, -1 = none
	width      int
	height     int
	ready      bool
	quitting   bool
	copied     *parse.Sample
}

func initialModel(res *parse.Result) model {
	ti := textinput.New()
	ti.Placeholder = "Ir para amostra..."
	ti.Focus()
	ti.Prompt = "# "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 12

	return model{
		result:     res,
		stats:      summary.Compute(res.Samples),
		jumpInput:  ti,
		preview:    viewport.New(0, 0),
		previewIdx: -1,
	}
}

// Run starts the sample browser and blocks until it exits. If the user
// picks a sample, its serial line is copied to the clipboard.
func Run(res *parse.Result) error {
	m := initialModel(res)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.copied != nil {
		return copySample(*fm.copied)
	}
	return nil
}

func copySample(s parse.Sample) error {
	line := parse.FormatLine(s)
	if err := clipboard.WriteAll(line); err != nil {
		fmt.Printf("%s\n", line)
		return nil
	}
	fmt.Printf("Copiado: %s\n", line)
	return nil
}

func (m model) samples() []parse.Sample {
	if m.result == nil {
		return nil
	}
	return m.result.Samples
}

// Init focuses the jump input.
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.preview = newViewport(m.previewWidth(), m.panelHeight())
		m.previewIdx = -1
		m.refreshPreview()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if m.cursor < len(m.samples()) {
				s := m.samples()[m.cursor]
				m.copied = &s
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, keys.Up):
			m.moveTo(m.cursor - 1)
			return m, nil

		case key.Matches(msg, keys.Down):
			m.moveTo(m.cursor + 1)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.moveTo(m.cursor - m.panelHeight()/linesPerItem)
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.moveTo(m.cursor + m.panelHeight()/linesPerItem)
			return m, nil

		case key.Matches(msg, keys.Home):
			m.moveTo(0)
			return m, nil

		case key.Matches(msg, keys.End):
			m.moveTo(len(m.samples()) - 1)
			return m, nil

		case key.Matches(msg, keys.PreviewUp):
			m.preview.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PreviewDn):
			m.preview.LineDown(m.panelHeight() / 2)
			return m, nil
		}

		// Pass remaining keys to the jump input
		prev := m.jumpInput.Value()
		var tiCmd tea.Cmd
		m.jumpInput, tiCmd = m.jumpInput.Update(msg)
		cmds = append(cmds, tiCmd)

		if v := m.jumpInput.Value(); v != prev {
			if idx, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				m.moveTo(idx)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if !m.ready || len(m.samples()) == 0 {
			return m, nil
		}

		region, itemIdx := m.hitTest(msg.X, msg.Y)

		switch {
		case region == regionList && msg.Button == tea.MouseButtonWheelUp:
			if m.listOffset > 0 {
				m.listOffset--
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonWheelDown:
			visibleItems := m.panelHeight() / linesPerItem
			maxOffset := len(m.samples()) - visibleItems
			if maxOffset < 0 {
				maxOffset = 0
			}
			if m.listOffset < maxOffset {
				m.listOffset++
			}
			return m, nil

		case region == regionList && msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			if itemIdx >= 0 && itemIdx < len(m.samples()) {
				m.moveTo(itemIdx)
			}
			return m, nil

		case region == regionPreview && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown):
			var vpCmd tea.Cmd
			m.preview, vpCmd = m.preview.Update(msg)
			return m, vpCmd
		}

		return m, nil
	}

	return m, tea.Batch(cmds...)
}

// moveTo places the cursor on idx, clamped to the sample range.
func (m *model) moveTo(idx int) {
	n := len(m.samples())
	if n == 0 {
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	m.cursor = idx
	m.adjustListScroll(m.panelHeight())
	m.refreshPreview()
}

func (m *model) refreshPreview() {
	if m.cursor >= len(m.samples()) {
		m.preview.SetContent("")
		m.previewIdx = -1
		return
	}
	if m.cursor == m.previewIdx {
		return
	}
	m.preview.SetContent(renderPreview(m.cursor, m.samples()[m.cursor], m.stats))
	m.preview.GotoTop()
	m.previewIdx = m.cursor
}

// View renders the full TUI.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	// Layout dimensions
	listW := m.listWidth()
	previewW := m.previewWidth()
	panelH := m.panelHeight()

	inputRow := m.jumpInput.View()

	listContent := m.renderList(listW, panelH)
	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(listContent)

	m.preview.Width = previewW
	m.preview.Height = panelH
	previewPanel := styleActiveBorder.
		Width(previewW).
		Height(panelH).
		Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, m.statusBar())
}

// helper methods

func (m model) listWidth() int {
	if m.width <= 0 {
		return 40
	}
	// 40% for list, minus border padding
	w := m.width*40/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) previewWidth() int {
	if m.width <= 0 {
		return 60
	}
	// 60% for preview, minus border padding
	w := m.width*60/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

type mouseRegion int

const (
	regionNone mouseRegion = iota
	regionList
	regionPreview
)

// hitTest maps terminal coordinates to a panel region and list item index.
func (m model) hitTest(x, y int) (mouseRegion, int) {
	pH := m.panelHeight()
	contentYStart := 2 // input row (1) + top border (1)
	contentYEnd := contentYStart + pH - 1

	if y < contentYStart || y > contentYEnd {
		return regionNone, -1
	}
	relY := y - contentYStart

	lw := m.listWidth()
	listBoxRight := lw + 1 // col 0=border, 1..lw=content, lw+1=border

	if x >= 1 && x <= lw {
		itemIndex := m.listOffset + (relY / linesPerItem)
		return regionList, itemIndex
	}

	if x > listBoxRight+1 {
		return regionPreview, -1
	}

	return regionNone, -1
}

func (m model) statusBar() string {
	var parts []string
	if m.result != nil {
		parts = append(parts, fmt.Sprintf("%d amostras", len(m.samples())))
		parts = append(parts, m.result.Source.Path)
	}
	parts = append(parts, "up/dn/pgup/pgdn navegar")
	parts = append(parts, "C-u/C-d detalhes")
	parts = append(parts, "Enter copiar linha")
	parts = append(parts, "Esc sair")
	return styleStatusBar.Render(strings.Join(parts, " | "))
}
