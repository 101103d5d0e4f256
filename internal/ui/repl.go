// Package ui renders the interactive surfaces: the REPL loop and the
// progress view for parallel script runs.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Prompt is what the REPL prints in front of the cursor.
const Prompt = "abc> "

// LineKind classifies one scrollback entry.
type LineKind int

const (
	// LineInput echoes what the user typed.
	LineInput LineKind = iota
	// LineResult is a computed value.
	LineResult
	// LineError is a rendered diagnostic.
	LineError
	// LineInfo is neutral chrome: banners, session notices.
	LineInfo
)

// Line is one scrollback entry.
type Line struct {
	Kind LineKind
	Text string
}

// Submit evaluates one input line and returns the scrollback lines to
// append. The model stays free of evaluator details this way.
type Submit func(input string) []Line

type replModel struct {
	input   textinput.Model
	submit  Submit
	lines   []Line
	history []string
	// histPos == len(history) означает редактирование новой строки
	histPos  int
	draft    string
	width    int
	height   int
	quitting bool
}

// NewReplModel returns a Bubble Tea model for the interactive loop. The
// banner lines seed the scrollback; submit runs on every non-blank entry.
func NewReplModel(banner []Line, submit Submit) tea.Model {
	ti := textinput.New()
	ti.Prompt = Prompt
	ti.PromptStyle = promptStyle
	ti.Focus()

	return &replModel{
		input:  ti,
		submit: submit,
		lines:  append([]Line(nil), banner...),
		width:  80,
		height: 24,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			// На пустой строке Ctrl+D завершает сессию, иначе textinput
			// удаляет символ под курсором.
			if m.input.Value() == "" {
				m.quitting = true
				return m, tea.Quit
			}
		case tea.KeyEnter:
			m.submitLine()
			return m, nil
		case tea.KeyUp:
			m.historyBack()
			return m, nil
		case tea.KeyDown:
			m.historyForward()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = msg.Width - len(Prompt) - 2
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	for _, line := range m.visibleLines() {
		b.WriteString(renderLine(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

// submitLine echoes the input, runs it, and resets the prompt. Blank lines
// echo but never reach the evaluator or the history.
func (m *replModel) submitLine() {
	value := m.input.Value()
	m.lines = append(m.lines, Line{Kind: LineInput, Text: Prompt + value})
	if strings.TrimSpace(value) != "" {
		m.history = append(m.history, value)
		if m.submit != nil {
			m.lines = append(m.lines, m.submit(value)...)
		}
	}
	m.histPos = len(m.history)
	m.draft = ""
	m.input.SetValue("")
}

func (m *replModel) historyBack() {
	if m.histPos == 0 {
		return
	}
	if m.histPos == len(m.history) {
		m.draft = m.input.Value()
	}
	m.histPos--
	m.input.SetValue(m.history[m.histPos])
	m.input.CursorEnd()
}

func (m *replModel) historyForward() {
	if m.histPos >= len(m.history) {
		return
	}
	m.histPos++
	if m.histPos == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[m.histPos])
	}
	m.input.CursorEnd()
}

// visibleLines keeps the scrollback inside the terminal height, leaving a
// row for the prompt.
func (m *replModel) visibleLines() []Line {
	limit := m.height - 2
	if limit < 1 {
		limit = 1
	}
	if len(m.lines) <= limit {
		return m.lines
	}
	return m.lines[len(m.lines)-limit:]
}

func renderLine(line Line, width int) string {
	text := truncate(line.Text, width)
	switch line.Kind {
	case LineResult:
		return resultStyle.Render(text)
	case LineError:
		return errorStyle.Render(text)
	case LineInfo:
		return infoStyle.Render(text)
	default:
		return text
	}
}
