package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/base64mix/codec"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type opMode int

const (
	opEncodeStd opMode = iota
	opEncodeURL
	opDecodeStd
	opDecodeURL
	opDecodeMix
	opModeCount
)

func (m opMode) String() string {
	switch m {
	case opEncodeStd:
		return "encode std"
	case opEncodeURL:
		return "encode url"
	case opDecodeStd:
		return "decode std"
	case opDecodeURL:
		return "decode url"
	case opDecodeMix:
		return "decode mix"
	}
	return "unknown"
}

func (m opMode) run(in []byte) ([]byte, error) {
	switch m {
	case opEncodeStd:
		return codec.EncodeStd(in)
	case opEncodeURL:
		return codec.EncodeURL(in)
	case opDecodeStd:
		return codec.DecodeStd(in)
	case opDecodeURL:
		return codec.DecodeURL(in)
	default:
		return codec.DecodeMix(in)
	}
}

type interactiveModel struct {
	err    error
	input  textinput.Model
	result string
	mode   opMode
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "type text or base64"
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 64
	return &interactiveModel{input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.mode = (m.mode + 1) % opModeCount
			m.refresh()
			return m, nil

		case "shift+tab":
			m.mode = (m.mode + opModeCount - 1) % opModeCount
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *interactiveModel) refresh() {
	out, err := m.mode.run([]byte(m.input.Value()))
	if err != nil {
		m.result = ""
		m.err = err
		return
	}
	m.err = nil
	m.result = string(out)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("b64mix"))
	b.WriteString("\n\n")

	var modes []string
	for mode := opMode(0); mode < opModeCount; mode++ {
		label := " " + mode.String() + " "
		if mode == m.mode {
			modes = append(modes, selectedStyle.Render(label))
		} else {
			modes = append(modes, modeStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(modes, " "))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case m.result == "":
		b.WriteString(helpStyle.Render("(empty)"))
	default:
		b.WriteString(resultStyle.Render(m.result))
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("tab: switch mode • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive mode: %w", err)
	}
	return nil
}
