// Package instruction turns free-form arithmetic instructions into the
// ordered button presses a visual calculator needs to carry them out.
// Parsing and compilation are pure; issuing the presses lives in
// internal/automation.
package instruction

import "strconv"

// Op identifies one arithmetic operation.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
	OpDivide   Op = "divide"
	OpSquare   Op = "square"
	OpSqrt     Op = "sqrt"
)

// Unary reports whether the operation applies to the currently displayed
// result and therefore carries no operands.
func (o Op) Unary() bool {
	return o == OpSquare || o == OpSqrt
}

// Step is one parsed arithmetic action. A and B are only meaningful for
// binary operations; unary steps always act on the result of the step
// before them.
type Step struct {
	Op Op  `json:"op"`
	A  int `json:"a,omitempty"`
	B  int `json:"b,omitempty"`
}

// Symbol is one atomic button press: a digit, an operator glyph, the
// evaluate key, or a named function key.
type Symbol string

const (
	SymAdd      Symbol = "+"
	SymSubtract Symbol = "-"
	SymMultiply Symbol = "×"
	SymDivide   Symbol = "÷"
	SymEvaluate Symbol = "="
	SymSquare   Symbol = "square"
	SymSqrt     Symbol = "√"
)

// DigitSymbol returns the press for a single digit 0-9.
func DigitSymbol(d int) Symbol {
	return Symbol(strconv.Itoa(d))
}

// operatorSymbols maps every operation to the button that triggers it.
var operatorSymbols = map[Op]Symbol{
	OpAdd:      SymAdd,
	OpSubtract: SymSubtract,
	OpMultiply: SymMultiply,
	OpDivide:   SymDivide,
	OpSquare:   SymSquare,
	OpSqrt:     SymSqrt,
}

// Symbol returns the button press for the operation, and whether the
// operation is known.
func (o Op) Symbol() (Symbol, bool) {
	s, ok := operatorSymbols[o]
	return s, ok
}
