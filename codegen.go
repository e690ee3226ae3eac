package pauliqasm

import (
	"fmt"
	"strconv"
)

// defaultMultiplier is the angle scale of a first-order Pauli exponential,
// kept as text so an override can substitute an arbitrary constant.
const defaultMultiplier = "0.5*"

// multiplierText formats a caller-supplied angle scale override. Shortest
// round-trippable decimal, so equal overrides always emit equal text.
func multiplierText(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64) + "*"
}

// coefText returns the emitted form of the coefficient: the validated input
// lexeme when the term came from LoadTerms, shortest round-trippable decimal
// for hand-built terms.
func coefText(t Term) string {
	if t.CoefText != "" {
		return t.CoefText
	}
	return strconv.FormatFloat(t.Coef, 'g', -1, 64)
}

// emitTerm builds the OpenQASM block implementing one term's Pauli-exponential
// rotation. Basis-change rotations and a CNOT ladder funnel every touched
// qubit into the pivot (the highest-indexed one), which carries the single
// parameterized Z rotation with symbolic angle <mult><coef>*$[<param>].
//
// Layers are applied X list first, then Y, then Z, ascending within each
// list; every new layer wraps the block accumulated so far. The pivot's own
// basis change needs no CNOT and must wrap the finished block, so it is held
// back until all other layers are placed.
func emitTerm(t Term, ix BasisIndices, mult string) (string, error) {
	pivot := ix.pivot()
	if pivot == 0 {
		return "", &DecodeError{Line: t.Index}
	}

	block := fmt.Sprintf("rz(%s%s*$[%d]) q[%d];\n", mult, coefText(t), t.Param, pivot-1)
	var pivotBefore, pivotAfter string

	wrap := func(qubit int, before, after string) {
		cx := fmt.Sprintf("cx q[%d], q[%d];\n", qubit-1, pivot-1)
		block = before + cx + block + cx + after
	}

	for _, q := range ix.X {
		before := fmt.Sprintf("ry(pi/2) q[%d];\n", q-1)
		after := fmt.Sprintf("ry(-pi/2) q[%d];\n", q-1)
		if q == pivot {
			pivotBefore, pivotAfter = before, after
			continue
		}
		wrap(q, before, after)
	}
	for _, q := range ix.Y {
		before := fmt.Sprintf("rx(-pi/2) q[%d];\n", q-1)
		after := fmt.Sprintf("rx(pi/2) q[%d];\n", q-1)
		if q == pivot {
			pivotBefore, pivotAfter = before, after
			continue
		}
		wrap(q, before, after)
	}
	for _, q := range ix.Z {
		// Already in the Z basis: non-pivot qubits need only the mirrored
		// CNOT pair, the pivot nothing at all.
		if q == pivot {
			continue
		}
		wrap(q, "", "")
	}

	return fmt.Sprintf("\n// New operator from line %d\n", t.Index) + pivotBefore + block + pivotAfter, nil
}
