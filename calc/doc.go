// Package calc implements the expression engine behind the calculator's Enter key.
//
// A line is scanned left to right and resolved on the fly with three stacks
// (operands, operators, pending function names); there is no syntax tree.
// Every operator is left-associative, so 2^3^2 is 64. A literal that runs
// straight into a letter multiplies what follows ("2sin(30)").
//
// The package does no I/O and keeps no state between calls apart from the
// angle mode held by an Evaluator.
package calc
