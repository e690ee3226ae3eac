package view

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureCircuit(t *testing.T) *Circuit {
	t.Helper()
	c, err := ParseQASM("qreg q[3];\n" +
		"// New operator from line 1\n" +
		"ry(pi/2) q[0];\n" +
		"cx q[0], q[2];\n" +
		"rz(0.5*1.0*$[1]) q[2];\n" +
		"cx q[0], q[2];\n" +
		"ry(-pi/2) q[0];\n")
	require.NoError(t, err)
	return c
}

func TestGetCellInfoCNOT(t *testing.T) {
	c := fixtureCircuit(t)

	// Step 2 is cx q[0], q[2].
	ctrl := c.getCellInfo(2, 0)
	assert.True(t, ctrl.isControl)
	assert.True(t, ctrl.vertBelow)
	assert.False(t, ctrl.vertAbove)

	mid := c.getCellInfo(2, 1)
	assert.True(t, mid.passThrough)
	assert.True(t, mid.vertAbove)
	assert.True(t, mid.vertBelow)

	tgt := c.getCellInfo(2, 2)
	assert.True(t, tgt.isTarget)
	assert.True(t, tgt.vertAbove)
	assert.False(t, tgt.vertBelow)
}

func TestRenderCellGlyphs(t *testing.T) {
	c := fixtureCircuit(t)

	_, mid, _ := renderCell(c.getCellInfo(2, 0))
	assert.Contains(t, mid, "●")

	_, mid, _ = renderCell(c.getCellInfo(2, 2))
	assert.Contains(t, mid, "⊕")

	_, mid, _ = renderCell(c.getCellInfo(3, 2))
	assert.Contains(t, mid, "RZ")

	_, mid, _ = renderCell(c.getCellInfo(0, 1))
	assert.Contains(t, mid, "┆")

	// Empty wire cell
	_, mid, _ = renderCell(c.getCellInfo(1, 2))
	assert.Equal(t, strings.Repeat("─", cellW), mid)
}

func TestModelNavigation(t *testing.T) {
	qasm := "qreg q[1];\n// New operator from line 1\nry(pi/2) q[0];\nrz(0.5*1*$[1]) q[0];\nry(-pi/2) q[0];\n"
	m, err := New(qasm)
	require.NoError(t, err)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	assert.Equal(t, 1, m.step)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = next.(Model)
	assert.Equal(t, 3, m.step)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	assert.Equal(t, 3, m.step, "cursor stays on the last step")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m = next.(Model)
	assert.Equal(t, 0, m.step)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, focusSource, m.focus)
}

func TestViewRendersPanels(t *testing.T) {
	m, err := New("qreg q[2];\n// New operator from line 1\nrz(0.5*1*$[1]) q[1];\n")
	require.NoError(t, err)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	out := m.View()
	assert.Contains(t, out, "Circuit")
	assert.Contains(t, out, "OpenQASM")
	assert.Contains(t, out, "q[0]")
	assert.Contains(t, out, "q[1]")
}
