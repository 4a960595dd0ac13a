package instruction

import (
	"fmt"
	"strings"
)

// Parse converts a natural-language arithmetic instruction into an ordered
// sequence of steps. The instruction may chain several operations with
// "and then"; every follow-up unary operation applies to the result of the
// step before it.
//
//	Parse("Add 2 and 3 and then find the square of the result")
//	→ [{add 2 3} {square}]
func Parse(text string) ([]Step, error) {
	norm := normalize(text)
	if norm == "" {
		return nil, fmt.Errorf("%w: empty instruction", ErrUnsupportedInstruction)
	}

	clauses := splitClauses(norm)
	if len(clauses) == 0 {
		return nil, fmt.Errorf("%w: empty instruction", ErrUnsupportedInstruction)
	}

	steps := make([]Step, 0, len(clauses))
	for i, clause := range clauses {
		step, err := parseClause(clause, i == 0)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}

	return steps, nil
}

// parseClause parses a single clause into one step. first marks the opening
// clause of the chain, which must be a binary operation: a unary operation
// has no prior result to act on.
func parseClause(clause string, first bool) (Step, error) {
	op, keyword, ok := matchOperator(clause)
	if !ok {
		return Step{}, fmt.Errorf("%w: no operator in %q", ErrUnsupportedInstruction, clause)
	}

	if op.Unary() {
		if first {
			return Step{}, fmt.Errorf("%w: %q has no prior result to apply %q to", ErrAmbiguousOperand, clause, keyword)
		}
		return Step{Op: op}, nil
	}

	nums, err := extractNumbers(strings.Fields(clause))
	if err != nil {
		return Step{}, err
	}
	if len(nums) < 2 {
		return Step{}, fmt.Errorf("%w: %q needs two operands, found %d", ErrAmbiguousOperand, keyword, len(nums))
	}

	a, b := nums[0], nums[1]
	// "subtract A from B" enters the minuend first.
	if op == OpSubtract && containsWord(clause, "from") {
		a, b = b, a
	}

	return Step{Op: op, A: a, B: b}, nil
}
