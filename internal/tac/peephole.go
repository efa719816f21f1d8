package tac

import "strings"

// Peephole eliminates single-use temporaries from a TAC sequence. It is
// purely textual over the lines, independent of how they were
// generated. Chains of the form
//
//	t1 = <expr>
//	x = t1
//
// collapse to "x = <expr>" whenever t1 is used nowhere else. Lines with
// multiply-used temporaries, or right-hand sides that are not a bare
// temporary reference, pass through unchanged.
func Peephole(code []string) []string {
	tempDefinitions := make(map[string]string)
	tempUsageCount := make(map[string]int)

	// First pass: record each temporary's defining expression and count
	// every appearance of a temporary inside any right-hand side. The
	// split is on non-alphanumeric runes so an operand inside call syntax
	// like sqrt(t1) still counts.
	for _, line := range code {
		lhs, rhs, ok := splitAssign(line)
		if !ok {
			continue
		}

		if isTemp(lhs) {
			tempDefinitions[lhs] = rhs
		}

		for _, part := range strings.FieldsFunc(rhs, func(r rune) bool {
			return !isAlphanumeric(r)
		}) {
			if isTemp(part) {
				tempUsageCount[part]++
			}
		}
	}

	// Second pass: a line defining a temporary followed immediately by a
	// pure copy of it, with no other uses, is marked for removal.
	skip := make(map[int]bool)
	for i := 0; i+1 < len(code); i++ {
		currLHS, _, currOK := splitAssign(code[i])
		_, nextRHS, nextOK := splitAssign(code[i+1])

		if currOK && nextOK && isTemp(currLHS) && nextRHS == currLHS && tempUsageCount[currLHS] == 1 {
			skip[i] = true
		}
	}

	// Third pass: drop marked lines and substitute the recorded
	// definition wherever a remaining right-hand side is exactly a
	// single-use temporary.
	optimized := make([]string, 0, len(code))
	for i, line := range code {
		if skip[i] {
			continue
		}

		lhs, rhs, ok := splitAssign(line)
		if ok && isTemp(rhs) && tempUsageCount[rhs] == 1 {
			if definition, defined := tempDefinitions[rhs]; defined {
				optimized = append(optimized, lhs+" = "+definition)
				continue
			}
		}

		optimized = append(optimized, line)
	}

	return optimized
}

// splitAssign splits "dest = expr" into its two sides. Lines that are
// not assignments report ok=false and pass through untouched.
func splitAssign(line string) (lhs, rhs string, ok bool) {
	parts := strings.Fields(line)
	if len(parts) < 3 || parts[1] != "=" {
		return "", "", false
	}
	return parts[0], strings.Join(parts[2:], " "), true
}

// isTemp reports whether s is a synthesized temporary name: 't'
// followed by one or more digits.
func isTemp(s string) bool {
	if len(s) < 2 || s[0] != 't' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
