package instruction

import "errors"

// Parsing errors. All of them are recoverable by re-prompting the caller
// with a corrected instruction; they are wrapped with the offending token
// so the caller can see what went wrong.
var (
	// ErrUnsupportedInstruction means no recognised operator keyword was
	// found in the instruction (or one of its clauses).
	ErrUnsupportedInstruction = errors.New("unsupported instruction")

	// ErrNumberParse means a numeric token could not be mapped to an
	// integer, for example a number word beyond the supported range.
	ErrNumberParse = errors.New("cannot parse number")

	// ErrAmbiguousOperand means a binary operator is missing one or both
	// operands, or a unary operator opens a chain with no prior result
	// to act on.
	ErrAmbiguousOperand = errors.New("ambiguous operand")
)
