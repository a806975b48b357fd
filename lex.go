package calculator

import "strings"

type tokenKind int

const (
	// tokenEnd indicates the end of the line.
	tokenEnd tokenKind = iota
	// tokenDigit is a decimal digit.
	tokenDigit
	// tokenPoint is the decimal point.
	tokenPoint
	// tokenLetter is an alphabetic character, part of a function name.
	tokenLetter
	// tokenOp is one of the binary operators + - * / : % ^.
	tokenOp
	// tokenComma separates function arguments.
	tokenComma
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenSpace is a space character.
	tokenSpace
	// tokenOther is any character outside the classes above.
	tokenOther
)

// operators contains the characters which are considered to be binary
// operators. The minus also serves as the unary sign inside factors.
const operators = "+-*/:%^"

// classify reports the token class of a single character.
func classify(b byte) tokenKind {
	switch {
	case b >= '0' && b <= '9':
		return tokenDigit
	case b == '.':
		return tokenPoint
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return tokenLetter
	case strings.IndexByte(operators, b) >= 0:
		return tokenOp
	case b == ',':
		return tokenComma
	case b == '(':
		return tokenOpen
	case b == ')':
		return tokenClose
	case b == ' ':
		return tokenSpace
	case b == '\n':
		return tokenEnd
	default:
		return tokenOther
	}
}

// cursor is a monotonically advancing view into a validated input line. The
// position only ever moves forward; single-token lookahead is done by
// peeking without advancing.
type cursor struct {
	src string
	pos int
}

// peek returns the next significant character, skipping spaces. At the end
// of the line the result is 0 with kind tokenEnd. peek advances the cursor
// past any skipped spaces but never past the returned character.
func (c *cursor) peek() (byte, tokenKind) {
	for c.pos < len(c.src) && c.src[c.pos] == ' ' {
		c.pos++
	}
	if c.pos >= len(c.src) {
		return 0, tokenEnd
	}
	b := c.src[c.pos]
	return b, classify(b)
}

// advance moves the cursor past the character last returned by peek.
func (c *cursor) advance() {
	if c.pos < len(c.src) {
		c.pos++
	}
}

// scanNumber consumes a maximal numeric literal: a contiguous run of digits
// containing at most one decimal point. The validator guarantees the run is
// well formed, so the text parses as a float.
func (c *cursor) scanNumber() string {
	start := c.pos
	dot := false
	for c.pos < len(c.src) {
		switch classify(c.src[c.pos]) {
		case tokenDigit:
		case tokenPoint:
			if dot {
				return c.src[start:c.pos]
			}
			dot = true
		default:
			return c.src[start:c.pos]
		}
		c.pos++
	}
	return c.src[start:c.pos]
}

// scanName consumes a maximal run of alphabetic characters.
func (c *cursor) scanName() string {
	start := c.pos
	for c.pos < len(c.src) && classify(c.src[c.pos]) == tokenLetter {
		c.pos++
	}
	return c.src[start:c.pos]
}
