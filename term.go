package pauliqasm

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Term is one record of the ansatz description: a Pauli string, its
// coefficient and its group parameter. Terms with equal group parameters
// share the symbolic angle parameter in the generated program ("dependent"
// terms); a raw parameter of 0 marks the term as independent and is
// normalized to the term's own line number.
type Term struct {
	Index    int     // 1-based position in the input; defines output order
	Basis    string  // string over {I,X,Y,Z}, one character per qubit
	Coef     float64 // nonzero coefficient
	CoefText string  // input lexeme of Coef, reused verbatim in emitted angles
	Param    uint64  // group parameter, normalized
}

// LoadTerms parses raw input lines into Terms. The first line fixes the
// circuit width; every later basis string must match it. Loading is
// all-or-nothing: the first bad line aborts and no terms are returned.
func LoadTerms(lines []string) ([]Term, error) {
	terms := make([]Term, 0, len(lines))
	numQubits := 0

	for i, line := range lines {
		n := i + 1
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, &FormatError{Line: n}
		}

		coef, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || math.IsNaN(coef) || math.IsInf(coef, 0) {
			return nil, &FormatError{Line: n}
		}

		param, err := parseParamField(fields[2], n)
		if err != nil {
			return nil, err
		}

		if n == 1 {
			numQubits = len(fields[0])
		}

		t := Term{Index: n, Basis: fields[0], Coef: coef, CoefText: fields[1], Param: param}
		if err := t.validate(numQubits); err != nil {
			return nil, err
		}
		if t.Param == 0 {
			t.Param = uint64(n)
		}
		terms = append(terms, t)
	}
	return terms, nil
}

// parseParamField parses the raw group parameter, distinguishing a negative
// value (semantically invalid) from a token that is not an integer at all.
func parseParamField(s string, line int) (uint64, error) {
	if strings.HasPrefix(s, "-") {
		if _, err := strconv.ParseInt(s, 10, 64); err == nil || errors.Is(err, strconv.ErrRange) {
			return 0, &ValidationError{Line: line, Reason: "negative parameter"}
		}
		return 0, &FormatError{Line: line}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &ValidationError{Line: line, Reason: "parameter out of bound"}
		}
		return 0, &FormatError{Line: line}
	}
	return v, nil
}

// validate checks the term against the circuit width fixed by the first
// record. Shared by the loader and by Compile for hand-built terms.
func (t Term) validate(numQubits int) error {
	switch {
	case t.Basis == "":
		return &ValidationError{Line: t.Index, Reason: "empty operator"}
	case len(t.Basis) != numQubits:
		return &ValidationError{
			Line:   t.Index,
			Reason: fmt.Sprintf("length mismatch: operator spans %d qubits, circuit has %d", len(t.Basis), numQubits),
		}
	case t.Coef == 0:
		return &ValidationError{Line: t.Index, Reason: "zero coefficient"}
	}
	return nil
}
