package calculator

import "strings"

// MaxLineLen is the longest input line the validator accepts, in visible
// characters. Longer lines are assumed to be truncated.
const MaxLineLen = 99

// forbidden lists the characters that may not appear anywhere in a line.
const forbidden = "!\"#$&'`~\\|<>?_@;=[]{}\t\v\f\r"

const (
	// badLead are the characters that may not start a line. The minus is
	// absent: a leading unary minus is fine.
	badLead = " .*/:%^)"
	// badTrail are the characters that may not end a line.
	badTrail = ".+*/:%^("
	// badAfterOp are the characters that may not directly follow a decimal
	// point or an operator. The minus is absent so that unary minus can
	// follow another operator, as in "5*-2".
	badAfterOp = ".+*/:%^),"
	// badAfterOpen are the characters that may not directly follow an open
	// parenthesis.
	badAfterOpen = ".+*/:%^,)"
)

// Validate reports whether a line of input is an acceptably formed
// expression. The empty line is valid; callers use it as a stop signal.
func Validate(line string) bool {
	return Check(line) == nil
}

// Check runs the validation pipeline and returns the first rule violation
// as a *ValidationError, or nil if the line is acceptable. A single
// trailing newline is ignored. Check has no side effects; it consults only
// its argument and the immutable alias table.
func Check(line string) error {
	line = strings.TrimSuffix(line, "\n")
	if line == "" {
		return nil
	}
	checks := []func(string) *ValidationError{
		checkLength,
		checkEdges,
		checkForbidden,
		checkComposition,
		checkAdjacent,
		checkParens,
		checkPoints,
		checkSpaces,
		checkIdents,
	}
	for _, f := range checks {
		if err := f(line); err != nil {
			return err
		}
	}
	return nil
}

func checkLength(line string) *ValidationError {
	if len(line) > MaxLineLen {
		return &ValidationError{Rule: "length", Col: MaxLineLen + 1}
	}
	return nil
}

func checkEdges(line string) *ValidationError {
	if strings.IndexByte(badLead, line[0]) >= 0 {
		return &ValidationError{Rule: "leading character", Col: 1, Text: line[:1]}
	}
	last := len(line) - 1
	if strings.IndexByte(badTrail, line[last]) >= 0 {
		return &ValidationError{Rule: "trailing character", Col: last + 1, Text: line[last:]}
	}
	return nil
}

func checkForbidden(line string) *ValidationError {
	if i := strings.IndexAny(line, forbidden); i >= 0 {
		return &ValidationError{Rule: "forbidden character", Col: i + 1, Text: line[i : i+1]}
	}
	return nil
}

// checkComposition rejects lines whose overall character makeup cannot form
// an expression: a bare number with nothing to do, operators with nothing
// to operate on, names or parentheses with no operands.
func checkComposition(line string) *ValidationError {
	var digit, op, letter, paren bool
	for i := 0; i < len(line); i++ {
		switch classify(line[i]) {
		case tokenDigit:
			digit = true
		case tokenOp:
			op = true
		case tokenLetter:
			letter = true
		case tokenOpen, tokenClose:
			paren = true
		}
	}
	switch {
	case digit && !op && !letter:
		return &ValidationError{Rule: "composition", Text: "number without operation"}
	case op && !digit:
		return &ValidationError{Rule: "composition", Text: "operators without numbers"}
	case letter && !digit:
		return &ValidationError{Rule: "composition", Text: "names without numbers"}
	case paren && !digit && !letter:
		return &ValidationError{Rule: "composition", Text: "parentheses without operands"}
	}
	return nil
}

// checkAdjacent rejects two-character sequences that can never occur in a
// well-formed expression, e.g. an operator directly followed by another
// operator, a close parenthesis, or a comma.
func checkAdjacent(line string) *ValidationError {
	for i := 0; i+1 < len(line); i++ {
		a, b := line[i], line[i+1]
		bad := false
		switch {
		case a == '.' || strings.IndexByte(operators, a) >= 0:
			bad = strings.IndexByte(badAfterOp, b) >= 0
		case a == '(':
			bad = strings.IndexByte(badAfterOpen, b) >= 0
		case a == ' ':
			bad = b == ' '
		}
		if bad {
			return &ValidationError{Rule: "adjacent characters", Col: i + 1, Text: line[i : i+2]}
		}
	}
	return nil
}

// checkParens requires balanced parentheses and an explicit operator
// between a number and a parenthesized group: "5(5)" is not an implicit
// multiplication here.
func checkParens(line string) *ValidationError {
	depth := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '(':
			if i > 0 && i+1 < len(line) && isDigit(line[i-1]) && isDigit(line[i+1]) {
				return &ValidationError{Rule: "parentheses", Col: i + 1, Text: line[i-1 : i+2]}
			}
			depth++
		case ')':
			depth--
			if depth < 0 {
				return &ValidationError{Rule: "parentheses", Col: i + 1, Text: ")"}
			}
		}
	}
	if depth != 0 {
		return &ValidationError{Rule: "parentheses", Col: len(line), Text: "("}
	}
	return nil
}

// checkPoints allows a decimal point only between two digits and at most
// once per numeric literal.
func checkPoints(line string) *ValidationError {
	active := false
	for i := 0; i < len(line); i++ {
		switch classify(line[i]) {
		case tokenPoint:
			if active || i == 0 || !isDigit(line[i-1]) || i+1 >= len(line) || !isDigit(line[i+1]) {
				return &ValidationError{Rule: "decimal point", Col: i + 1, Text: "."}
			}
			active = true
		case tokenDigit:
			// Still inside the same literal.
		default:
			active = false
		}
	}
	return nil
}

// checkSpaces rejects a space between two digits, which would break one
// number into two.
func checkSpaces(line string) *ValidationError {
	for i := 1; i+1 < len(line); i++ {
		if line[i] == ' ' && isDigit(line[i-1]) && isDigit(line[i+1]) {
			return &ValidationError{Rule: "space placement", Col: i + 1, Text: line[i-1 : i+2]}
		}
	}
	return nil
}

// checkIdents scans maximal alphabetic runs and requires each to be a
// registered function alias directly followed by an open parenthesis.
func checkIdents(line string) *ValidationError {
	start := -1
	for i := 0; i < len(line); i++ {
		if classify(line[i]) == tokenLetter {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			name := line[start:i]
			if _, ok := Resolve(name); !ok {
				return &ValidationError{Rule: "unknown identifier", Col: start + 1, Text: name}
			}
			if line[i] != '(' {
				return &ValidationError{Rule: "function call", Col: i + 1, Text: name}
			}
			start = -1
		}
	}
	if start >= 0 {
		return &ValidationError{Rule: "function call", Col: start + 1, Text: line[start:]}
	}
	return nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
