// Package pauliqasm compiles textual descriptions of Pauli-exponential sums,
// as used to specify variational circuit ansätze, into OpenQASM programs.
//
// Each input record names a Pauli string, a coefficient and a group
// parameter. A term exp(-i θ/2 P) is realized as basis-change rotations and a
// CNOT ladder funneling every touched qubit into the highest-indexed one,
// which carries a single parameterized Z rotation whose angle stays symbolic
// ($[k]) so a variational optimizer can bind it later.
//
// Terms are compiled concurrently, but the assembled program only depends on
// the input order and options, never on scheduling.
package pauliqasm
