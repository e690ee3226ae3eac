package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pauliqasm"
)

// compileFixture runs the real compiler so the parser is tested against the
// exact text it will see in production.
func compileFixture(t *testing.T, lines []string, opts pauliqasm.Options) string {
	t.Helper()
	terms, err := pauliqasm.LoadTerms(lines)
	require.NoError(t, err)
	qasm, err := pauliqasm.Compile(context.Background(), terms, opts)
	require.NoError(t, err)
	return qasm
}

func TestParseQASMGeneratedProgram(t *testing.T) {
	qasm := compileFixture(t, []string{"XZ 1.0 1"}, pauliqasm.Options{})

	c, err := ParseQASM(qasm)
	require.NoError(t, err)

	assert.Equal(t, 2, c.NumQubits)

	// SEP, ry, cx, rz, cx, ry: one step each.
	require.Len(t, c.Gates, 6)
	assert.Equal(t, 6, c.MaxSteps)

	assert.Equal(t, "SEP", c.Gates[0].Type)
	assert.Equal(t, 1, c.Gates[0].Line)

	assert.Equal(t, "RY", c.Gates[1].Type)
	assert.Equal(t, 0, c.Gates[1].Target)
	assert.Equal(t, "pi/2", c.Gates[1].Arg)

	assert.Equal(t, "CX", c.Gates[2].Type)
	assert.Equal(t, 0, c.Gates[2].Control)
	assert.Equal(t, 1, c.Gates[2].Target)

	assert.Equal(t, "RZ", c.Gates[3].Type)
	assert.Equal(t, 1, c.Gates[3].Target)
	assert.Equal(t, "0.5*1.0*$[1]", c.Gates[3].Arg)

	assert.Equal(t, "CX", c.Gates[4].Type)
	assert.Equal(t, "RY", c.Gates[5].Type)
	assert.Equal(t, "-pi/2", c.Gates[5].Arg)

	for i, g := range c.Gates {
		assert.Equal(t, i, g.Step)
	}
}

func TestParseQASMVersion3Header(t *testing.T) {
	qasm := compileFixture(t, []string{"IXY 2.0 0"}, pauliqasm.Options{Version: 3})

	c, err := ParseQASM(qasm)
	require.NoError(t, err)
	assert.Equal(t, 3, c.NumQubits)
	assert.NotEmpty(t, c.Gates)
}

func TestParseQASMUnknownInstruction(t *testing.T) {
	_, err := ParseQASM("OPENQASM 2.0;\nqreg q[1];\nh q[0];\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized instruction")
}

func TestParseQASMSources(t *testing.T) {
	qasm := compileFixture(t, []string{"X 2.0 1"}, pauliqasm.Options{})

	c, err := ParseQASM(qasm)
	require.NoError(t, err)
	require.Equal(t, len(c.Gates), len(c.Sources))
	assert.Equal(t, "rz(0.5*2.0*$[1]) q[0];", c.sourceAt(2))
	assert.Equal(t, "", c.sourceAt(99))
}
