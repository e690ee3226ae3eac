package pauliqasm

import "fmt"

// FormatError reports an input line that does not tokenize into the three
// required fields, or whose numeric fields do not parse at all.
type FormatError struct {
	Line int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: wrong format, want \"<basis> <coefficient> <parameter>\"", e.Line)
}

// ValidationError reports a record that tokenizes but is semantically
// invalid: length mismatch, empty operator, zero coefficient, or a parameter
// outside its range.
type ValidationError struct {
	Line   int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// DecodeError reports a basis string that cannot be decomposed: either a
// character outside {I,X,Y,Z}, or an all-identity operator. The latter has no
// pivot qubit and therefore no valid target for the central rotation.
type DecodeError struct {
	Line int
	Pos  int  // 1-based position of the offending character, 0 for all-identity
	Char rune // offending character, 0 for all-identity
}

func (e *DecodeError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("line %d: operator contains no non-identity gate", e.Line)
	}
	return fmt.Sprintf("line %d: unsupported character %q at position %d", e.Line, e.Char, e.Pos)
}
