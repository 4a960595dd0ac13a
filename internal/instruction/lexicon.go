package instruction

import (
	"regexp"
	"strings"
)

// The lexicon is kept as data tables rather than inline conditionals so the
// supported grammar can be extended (or tested) without touching the parser.

// operatorKeywords maps keywords to operations, ordered so that the longest
// keyword wins: "square root" must be tried before "square".
var operatorKeywords = []struct {
	keyword string
	op      Op
}{
	{"square root", OpSqrt},
	{"sqrt", OpSqrt},
	{"square", OpSquare},
	{"subtract", OpSubtract},
	{"minus", OpSubtract},
	{"multiply", OpMultiply},
	{"times", OpMultiply},
	{"divide", OpDivide},
	{"add", OpAdd},
	{"plus", OpAdd},
}

// numberWords maps English numerals to their values. Two adjacent words
// compose only as tens+unit ("twenty five" → 25); anything longer is out
// of the supported range.
var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// magnitudeWords are numerals the grammar recognises but does not support.
// Seeing one is a parse failure rather than a guess at composition rules.
var magnitudeWords = map[string]bool{
	"hundred":  true,
	"thousand": true,
	"million":  true,
	"billion":  true,
}

// connectivePattern splits an instruction into ordered clauses. "and then"
// and a bare "then" both chain a follow-up operation onto the running
// result.
var connectivePattern = regexp.MustCompile(`\band then\b|\bthen\b`)

// punctuationReplacer strips characters that would otherwise glue a number
// to a word ("25." or "twenty-five").
var punctuationReplacer = strings.NewReplacer(
	",", " ", ".", " ", "!", " ", "?", " ", ";", " ", ":", " ", "-", " ",
)

// normalize lowercases the text and collapses punctuation and whitespace so
// token scans can rely on single-space separation.
func normalize(text string) string {
	s := strings.ToLower(text)
	s = punctuationReplacer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// splitClauses returns the ordered clauses of a normalized instruction.
func splitClauses(text string) []string {
	parts := connectivePattern.Split(text, -1)
	clauses := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			clauses = append(clauses, p)
		}
	}
	return clauses
}

// containsWord reports whether the clause contains the keyword as a whole
// word (or whole phrase, for multi-word keywords).
func containsWord(clause, keyword string) bool {
	return strings.Contains(" "+clause+" ", " "+keyword+" ")
}

// matchOperator scans the clause for the first operator keyword in lexicon
// order, so longer keywords shadow their prefixes.
func matchOperator(clause string) (Op, string, bool) {
	for _, entry := range operatorKeywords {
		if containsWord(clause, entry.keyword) {
			return entry.op, entry.keyword, true
		}
	}
	return "", "", false
}
