package view

import (
	"fmt"
	"strings"
)

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// cellInfo describes what occupies a single cell in the diagram grid.
type cellInfo struct {
	gate        *Gate
	isControl   bool
	isTarget    bool
	vertAbove   bool
	vertBelow   bool
	passThrough bool
	isSep       bool
}

// getCellInfo returns rendering information for the cell at (step, qubit).
func (c *Circuit) getCellInfo(step, qubit int) cellInfo {
	var info cellInfo
	g := c.gateAt(step)
	if g == nil {
		return info
	}

	switch {
	case g.Type == "SEP":
		info.isSep = true

	case g.Type == "CX":
		minQ, maxQ := min(g.Control, g.Target), max(g.Control, g.Target)
		if qubit == g.Control {
			info.gate = g
			info.isControl = true
		} else if qubit == g.Target {
			info.gate = g
			info.isTarget = true
		} else if qubit > minQ && qubit < maxQ {
			info.passThrough = true
		}
		if qubit > minQ && qubit <= maxQ {
			info.vertAbove = true
		}
		if qubit >= minQ && qubit < maxQ {
			info.vertBelow = true
		}

	default:
		if g.Target == qubit {
			info.gate = g
		}
	}
	return info
}

// renderCell returns 3 lines (top, mid, bot) for a single cell, each exactly
// cellW visual characters wide.
func renderCell(info cellInfo) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	switch {
	case info.isSep:
		top = sepStyle.Render(strings.Repeat(" ", halfW) + "┆" + strings.Repeat(" ", cellW-halfW-1))
		mid = strings.Repeat("─", dashL) + sepStyle.Render("┆") + strings.Repeat("─", dashR)
		bot = top

	case info.isControl:
		top = emptyRow
		if info.vertAbove {
			top = vertRow
		}
		mid = strings.Repeat("─", dashL) + gateStyle.Render("●") + strings.Repeat("─", dashR)
		bot = emptyRow
		if info.vertBelow {
			bot = vertRow
		}

	case info.isTarget:
		top = emptyRow
		if info.vertAbove {
			top = vertRow
		}
		mid = strings.Repeat("─", dashL) + gateStyle.Render("⊕") + strings.Repeat("─", dashR)
		bot = emptyRow
		if info.vertBelow {
			bot = vertRow
		}

	case info.gate != nil:
		margin := (cellW - gateBoxW) / 2
		rightMargin := cellW - margin - gateBoxW
		name := padCenter(info.gate.Type, gateNameW)
		top = strings.Repeat(" ", margin) + gateStyle.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
		mid = strings.Repeat("─", margin) + gateStyle.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
		bot = strings.Repeat(" ", margin) + gateStyle.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)

	case info.passThrough:
		top = vertRow
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
		bot = vertRow

	default:
		top = emptyRow
		if info.vertAbove {
			top = vertRow
		}
		mid = strings.Repeat("─", cellW)
		bot = emptyRow
		if info.vertBelow {
			bot = vertRow
		}
	}
	return
}

// renderCircuitPanel renders the diagram grid with horizontal scrolling
// around the selected step.
func (m Model) renderCircuitPanel(width, height int) string {
	var sb strings.Builder

	title := "Circuit"
	if m.focus == focusCircuit {
		title += " [ACTIVE]"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")

	availWidth := width - labelVisualW - 4
	visible := max(availWidth/cellW, 1)

	startStep := 0
	if m.step >= visible {
		startStep = m.step - visible + 1
	}
	if startStep > 0 {
		fmt.Fprintf(&sb, "  ◀ showing steps %d–%d\n", startStep, startStep+visible-1)
	}

	header := strings.Repeat(" ", labelVisualW)
	for step := startStep; step < startStep+visible; step++ {
		label := padCenter(fmt.Sprintf("%d", step), cellW)
		if step == m.step {
			header += stepCursorStyle.Render(label)
		} else {
			header += dimStyle.Render(label)
		}
	}
	sb.WriteString(header + "\n")

	for qubit := 0; qubit < m.circuit.NumQubits; qubit++ {
		topLine := strings.Repeat(" ", labelVisualW)
		label := fmt.Sprintf("q[%d]", qubit)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-5s", label)) + "──"
		botLine := strings.Repeat(" ", labelVisualW)

		for step := startStep; step < startStep+visible; step++ {
			top, mid, bot := renderCell(m.circuit.getCellInfo(step, qubit))
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	fmt.Fprintf(&sb, "\n  Step %d/%d", m.step, max(m.circuit.MaxSteps-1, 0))
	if src := m.circuit.sourceAt(m.step); src != "" {
		fmt.Fprintf(&sb, "  │  %s", activeStyle.Render(src))
	}

	return circuitStyle.Width(width).Height(height).Render(sb.String())
}

// renderSourcePanel renders the generated QASM text panel.
func (m Model) renderSourcePanel(width, height int) string {
	var sb strings.Builder

	title := "OpenQASM"
	if m.focus == focusSource {
		title += " [ACTIVE]"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(m.source.View())

	return sourceStyle.Width(width).Height(height).Render(sb.String())
}

// renderControlsPanel renders the bottom help bar.
func (m Model) renderControlsPanel(width int) string {
	var sb strings.Builder

	sb.WriteString(activeStyle.Render("Navigate: "))
	sb.WriteString("←→/hl Step  Home/End Jump  ↑↓/jk Scroll source")
	sb.WriteString("    ")
	sb.WriteString(activeStyle.Render("Tab"))
	sb.WriteString(" Switch focus  ")
	sb.WriteString(activeStyle.Render("q"))
	sb.WriteString(" Quit")

	return controlsStyle.Width(width).Render(sb.String())
}
