package instruction

import (
	"fmt"
	"strconv"
)

// extractNumbers returns the operand values of a clause in textual order.
// Digit runs stand alone; number words compose pairwise as tens+unit.
func extractNumbers(fields []string) ([]int, error) {
	var nums []int

	for i := 0; i < len(fields); {
		tok := fields[i]

		if isDigits(tok) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrNumberParse, tok)
			}
			nums = append(nums, v)
			i++
			continue
		}

		if v, ok := numberWords[tok]; ok {
			if i+1 < len(fields) {
				if next, ok := numberWords[fields[i+1]]; ok {
					// Only tens+unit composes: "twenty five" → 25.
					if v >= 20 && v%10 == 0 && next >= 1 && next <= 9 {
						nums = append(nums, v+next)
						i += 2
						continue
					}
					return nil, fmt.Errorf("%w: cannot combine %q and %q", ErrNumberParse, tok, fields[i+1])
				}
				if magnitudeWords[fields[i+1]] {
					return nil, fmt.Errorf("%w: %q %s is beyond the supported range", ErrNumberParse, tok, fields[i+1])
				}
			}
			nums = append(nums, v)
			i++
			continue
		}

		if magnitudeWords[tok] {
			return nil, fmt.Errorf("%w: %q is beyond the supported range", ErrNumberParse, tok)
		}

		i++
	}

	return nums, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
