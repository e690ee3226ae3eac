// Package view renders a compiled ansatz program as an interactive terminal
// circuit diagram next to its OpenQASM source.
package view

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Gate is one instruction of a generated program, reduced to what the
// diagram needs. SEP marks an operator boundary (the per-term comment line).
type Gate struct {
	Type    string // RX, RY, RZ, CX or SEP
	Target  int    // -1 for SEP
	Control int    // -1 unless CX
	Arg     string // angle text, e.g. "pi/2" or "0.5*2.0*$[1]"
	Line    int    // originating input line for SEP entries
	Step    int
}

// Circuit is the diagram model rebuilt from generated OpenQASM text. The
// emitted blocks are strictly sequential, so every instruction occupies its
// own step.
type Circuit struct {
	NumQubits int
	Gates     []Gate
	MaxSteps  int
	Sources   []string // instruction text per step, shown in the status line
}

// Pre-compiled regexps for the generated-QASM subset.
var (
	rotationRegex = regexp.MustCompile(`^(rx|ry|rz)\(([^)]+)\)\s+q\[(\d+)\];$`)
	cnotRegex     = regexp.MustCompile(`^cx\s+q\[(\d+)\],\s*q\[(\d+)\];$`)
	qregRegex     = regexp.MustCompile(`^qreg\s+q\[(\d+)\];$`)
	qubitRegex    = regexp.MustCompile(`^qubit\[(\d+)\]\s+q;$`)
	operatorRegex = regexp.MustCompile(`^// New operator from line (\d+)$`)
)

// ParseQASM rebuilds the diagram model from generated program text. It
// understands exactly the subset the compiler emits: register declarations in
// both dialects, rotations, CNOTs and the per-operator comment.
func ParseQASM(qasm string) (*Circuit, error) {
	c := &Circuit{}

	push := func(g Gate, source string) {
		g.Step = c.MaxSteps
		c.Gates = append(c.Gates, g)
		c.Sources = append(c.Sources, source)
		c.MaxSteps++
	}

	for i, raw := range strings.Split(qasm, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "",
			strings.HasPrefix(line, "OPENQASM"),
			strings.HasPrefix(line, "include"),
			strings.HasPrefix(line, "creg"),
			strings.HasPrefix(line, "bit["):

		case qregRegex.MatchString(line):
			n, _ := strconv.Atoi(qregRegex.FindStringSubmatch(line)[1])
			c.NumQubits = n

		case qubitRegex.MatchString(line):
			n, _ := strconv.Atoi(qubitRegex.FindStringSubmatch(line)[1])
			c.NumQubits = n

		case operatorRegex.MatchString(line):
			n, _ := strconv.Atoi(operatorRegex.FindStringSubmatch(line)[1])
			push(Gate{Type: "SEP", Target: -1, Control: -1, Line: n}, line)

		case strings.HasPrefix(line, "//"):

		case rotationRegex.MatchString(line):
			m := rotationRegex.FindStringSubmatch(line)
			target, _ := strconv.Atoi(m[3])
			push(Gate{Type: strings.ToUpper(m[1]), Target: target, Control: -1, Arg: m[2]}, line)

		case cnotRegex.MatchString(line):
			m := cnotRegex.FindStringSubmatch(line)
			control, _ := strconv.Atoi(m[1])
			target, _ := strconv.Atoi(m[2])
			push(Gate{Type: "CX", Target: target, Control: control}, line)

		default:
			return nil, errors.Errorf("line %d: unrecognized instruction %q", i+1, line)
		}
	}

	for _, g := range c.Gates {
		if g.Target >= c.NumQubits {
			c.NumQubits = g.Target + 1
		}
		if g.Control >= c.NumQubits {
			c.NumQubits = g.Control + 1
		}
	}
	return c, nil
}

// gateAt returns the gate occupying the given step, or nil. Steps hold at
// most one instruction.
func (c *Circuit) gateAt(step int) *Gate {
	if step < 0 || step >= len(c.Gates) {
		return nil
	}
	return &c.Gates[step]
}

// sourceAt returns the instruction text of a step, or "".
func (c *Circuit) sourceAt(step int) string {
	if step < 0 || step >= len(c.Sources) {
		return ""
	}
	return c.Sources[step]
}
