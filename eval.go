package calculator

import (
	"math"
	"strconv"
	"strings"
)

// Evaluate validates a line and computes its value. The returned error is a
// *ValidationError or *SyntaxError for input that cannot be parsed, a
// *DomainError for a function argument outside its domain, or a
// *DispatchError for a registry inconsistency. Division and modulo by zero
// are not errors; they produce IEEE infinities and NaNs.
func Evaluate(line string) (float64, error) {
	line = strings.TrimSuffix(line, "\n")
	if err := Check(line); err != nil {
		return 0, err
	}
	if line == "" {
		return 0, &SyntaxError{Col: 1, Msg: "empty expression"}
	}
	c := &cursor{src: line}
	v, err := expression(c)
	if err != nil {
		return 0, err
	}
	if b, kind := c.peek(); kind != tokenEnd {
		return 0, &SyntaxError{Col: c.pos + 1, Msg: "unexpected " + strconv.QuoteRune(rune(b))}
	}
	return v, nil
}

// expression evaluates a sequence of terms joined by + and -, folding left
// to right.
func expression(c *cursor) (float64, error) {
	v, err := term(c)
	if err != nil {
		return 0, err
	}
	for {
		b, kind := c.peek()
		if kind != tokenOp || (b != '+' && b != '-') {
			return v, nil
		}
		c.advance()
		r, err := term(c)
		if err != nil {
			return 0, err
		}
		if b == '+' {
			v += r
		} else {
			v -= r
		}
	}
}

// term evaluates a sequence of factors joined by * / : % ^, folding left to
// right. All five operators share one precedence level, so exponentiation
// is left-associative: 2^3^2 is 64.
func term(c *cursor) (float64, error) {
	v, err := factor(c)
	if err != nil {
		return 0, err
	}
	for {
		b, kind := c.peek()
		if kind != tokenOp || b == '+' || b == '-' {
			return v, nil
		}
		c.advance()
		r, err := factor(c)
		if err != nil {
			return 0, err
		}
		switch b {
		case '*':
			v *= r
		case '/', ':':
			v /= r
		case '%':
			v = math.Mod(v, r)
		case '^':
			v = math.Pow(v, r)
		}
	}
}

// factor evaluates an optionally negated number, parenthesized expression,
// or function call. Repeated minus signs flip the sign each time; the sign
// applies to the value of the inner factor, not to a fresh expression.
func factor(c *cursor) (float64, error) {
	sign := 1.0
	for {
		b, kind := c.peek()
		if kind == tokenOp && b == '-' {
			sign = -sign
			c.advance()
			continue
		}
		break
	}
	_, kind := c.peek()
	switch kind {
	case tokenOpen:
		c.advance()
		v, err := expression(c)
		if err != nil {
			return 0, err
		}
		if err := expect(c, ')'); err != nil {
			return 0, err
		}
		return sign * v, nil
	case tokenDigit, tokenPoint:
		col := c.pos + 1
		text := c.scanNumber()
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, &SyntaxError{Col: col, Msg: "malformed number " + strconv.Quote(text)}
		}
		return sign * v, nil
	case tokenLetter:
		col := c.pos + 1
		name := c.scanName()
		id, ok := Resolve(name)
		if !ok {
			return 0, &SyntaxError{Col: col, Msg: "unknown function " + strconv.Quote(name)}
		}
		if err := expect(c, '('); err != nil {
			return 0, err
		}
		v, err := call(c, id)
		if err != nil {
			return 0, err
		}
		return sign * v, nil
	default:
		return 0, &SyntaxError{Col: c.pos + 1, Msg: "expected a number, parenthesis, or function"}
	}
}

// expect consumes the given character or fails.
func expect(c *cursor, want byte) error {
	b, kind := c.peek()
	if kind == tokenEnd || b != want {
		return &SyntaxError{Col: c.pos + 1, Msg: "expected " + strconv.QuoteRune(rune(want))}
	}
	c.advance()
	return nil
}

// Integral reports whether x has no fractional part. Callers choosing a
// display precision should use this exact test.
func Integral(x float64) bool {
	return x == math.Floor(x)
}

// Format renders a result the way the calculator presents it: integral
// values with a fixed two decimal places, fractional values with the
// shortest representation that round-trips.
func Format(x float64) string {
	if Integral(x) && !math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', 2, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
