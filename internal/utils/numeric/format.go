package numeric

import "strconv"

// FormatFloat renders a float the way the rest of the compiler expects it:
// shortest decimal form that round-trips, never scientific notation.
// 5.0 -> "5", 0.5 -> "0.5", 3.14 -> "3.14".
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseFloat parses a numeric literal. It rejects anything the lexer's
// digits-and-dots scan can produce that is not a valid float, such as
// "3.1.4" or a bare ".".
func ParseFloat(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}
