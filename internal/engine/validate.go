package engine

// Validate reports whether text is non-empty and drawn entirely from the
// arithmetic charset: digits, the four operators, decimal point,
// parentheses, and spaces. It is a character gate, not a structural check;
// text like "5++" passes here and is rejected by the evaluator.
func Validate(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
		case r == '+' || r == '-' || r == '*' || r == '/':
		case r == '.' || r == '(' || r == ')' || r == ' ':
		default:
			return false
		}
	}
	return true
}
