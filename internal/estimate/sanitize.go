package estimate

import "regexp"

// amountPattern matches complete and partial decimal numbers as they are
// typed: "", "12", "12.", ".5", "12.5". No sign, no exponent, one dot.
var amountPattern = regexp.MustCompile(`^[0-9]*\.?[0-9]*$`)

// Accept reports whether s may be stored as an input value.
func Accept(s string) bool {
	return s == "" || amountPattern.MatchString(s)
}

// Sanitize returns proposed if it is acceptable, otherwise prev.
// Rejection is silent: the field simply keeps its previous value.
func Sanitize(prev, proposed string) string {
	if Accept(proposed) {
		return proposed
	}
	return prev
}
