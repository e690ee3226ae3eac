package view

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// focus represents which panel has keyboard input.
type focus int

const (
	focusCircuit focus = iota
	focusSource
)

// Model is the read-only viewer state: the circuit diagram derived from the
// generated program and the program text itself.
type Model struct {
	circuit *Circuit
	qasm    string
	source  viewport.Model
	focus   focus
	step    int // selected step in the diagram
	width   int
	height  int
}

// New parses generated program text into a viewer model.
func New(qasm string) (Model, error) {
	c, err := ParseQASM(qasm)
	if err != nil {
		return Model{}, errors.Wrap(err, "parse generated qasm")
	}

	vp := viewport.New(40, 20)
	vp.SetContent(qasm)

	return Model{circuit: c, qasm: qasm, source: vp}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.source.Width = max(msg.Width/3-6, 20)
		m.source.Height = max(msg.Height-10, 4)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.focus == focusCircuit {
				m.focus = focusSource
			} else {
				m.focus = focusCircuit
			}
		default:
			if m.focus == focusCircuit {
				m.updateCircuitKeys(msg.String())
			} else {
				var cmd tea.Cmd
				m.source, cmd = m.source.Update(msg)
				return m, cmd
			}
		}
	}
	return m, nil
}

func (m *Model) updateCircuitKeys(key string) {
	switch key {
	case "left", "h":
		if m.step > 0 {
			m.step--
		}
	case "right", "l":
		if m.step < m.circuit.MaxSteps-1 {
			m.step++
		}
	case "home":
		m.step = 0
	case "end":
		m.step = max(m.circuit.MaxSteps-1, 0)
	}
}

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	ctrlH := 3
	panelH := m.height - ctrlH - 2
	circW := m.width * 2 / 3
	srcW := m.width - circW - 2

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderCircuitPanel(circW, panelH),
		m.renderSourcePanel(srcW, panelH),
	)
	return panels + "\n" + m.renderControlsPanel(m.width-2)
}

// Run opens the viewer for the given generated program and blocks until the
// user quits.
func Run(qasm string) error {
	m, err := New(qasm)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "run viewer")
	}
	return nil
}
