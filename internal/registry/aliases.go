package registry

// Known synonyms per button, keyed by every spelling a caller may use.
// Each value lists the aliases tried against the registry, canonical icon
// name first. Exact icon-name matching runs before substring containment,
// which is what keeps "+" from landing on "+/-" or memory-add buttons.
var buttonAliases = map[string][]string{}

func init() {
	register := func(aliases []string, names ...string) {
		for _, n := range names {
			buttonAliases[n] = aliases
		}
	}

	register([]string{"+ button", "addition", "plus"}, "+", "plus", "addition")
	register([]string{"- button", "minus", "subtract"}, "-", "minus", "subtraction")
	register([]string{"× button", "multiplication", "multiply"}, "×", "*", "multiply", "times", "multiplication")
	register([]string{"÷ button", "division", "divide"}, "÷", "/", "divide", "division")
	register([]string{"= button", "equals"}, "=", "equals", "equal")
	register([]string{"x² button", "square"}, "square", "x²", "squared")
	register([]string{"√x button", "square root"}, "√", "sqrt", "square root")

	digits := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	for _, d := range digits {
		register([]string{d + " button"}, d)
	}
}

// aliasesFor returns the aliases to match for a lowercased button name.
// Unknown names fall back to the name itself, which still goes through the
// exact-then-substring matching rules.
func aliasesFor(name string) []string {
	if aliases, ok := buttonAliases[name]; ok {
		return aliases
	}
	return []string{name + " button", name}
}
