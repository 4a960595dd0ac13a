package instruction

import "fmt"

// Compile flattens parsed steps into the literal presses required, in order.
// Multi-digit operands become one press per digit, most-significant first.
// Every binary step is committed with an evaluate press; unary function keys
// commit on their own, so none follows them.
func Compile(steps []Step) ([]Symbol, error) {
	var syms []Symbol

	for i, step := range steps {
		sym, ok := step.Op.Symbol()
		if !ok {
			return nil, fmt.Errorf("step %d: unknown operation %q", i, step.Op)
		}

		if step.Op.Unary() {
			syms = append(syms, sym)
			continue
		}

		a, err := digitSymbols(step.A)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		b, err := digitSymbols(step.B)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		syms = append(syms, a...)
		syms = append(syms, sym)
		syms = append(syms, b...)
		syms = append(syms, SymEvaluate)
	}

	return syms, nil
}

// digitSymbols decomposes a non-negative operand into digit presses.
func digitSymbols(n int) ([]Symbol, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative operand %d has no key sequence", n)
	}
	if n < 10 {
		return []Symbol{DigitSymbol(n)}, nil
	}

	var digits []Symbol
	for n > 0 {
		digits = append([]Symbol{DigitSymbol(n % 10)}, digits...)
		n /= 10
	}
	return digits, nil
}
