package calculator

import "strconv"

// ValidationError indicates a line rejected by one of the validator's
// rules before any parsing took place. It implements InputError.
type ValidationError struct {
	// Rule names the check that rejected the line.
	Rule string
	// Col is the 1-based position of the offending character, or 0 when the
	// rule applies to the line as a whole.
	Col int
	// Text is the offending fragment, if the rule has one.
	Text string
}

func (err *ValidationError) Error() string {
	s := "invalid input (" + err.Rule + ")"
	if err.Text != "" {
		s += ": " + strconv.Quote(err.Text)
	}
	if err.Col > 0 {
		return errpos(err.Col, s)
	}
	return s
}

func (err *ValidationError) Pos() int {
	return err.Col
}

// SyntaxError indicates input that passed the validator but could not be
// parsed as an expression. It implements InputError.
type SyntaxError struct {
	// Col is the position at which parsing failed.
	Col int
	// Msg describes what the parser expected.
	Msg string
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// DomainError is returned when a function is applied to an argument outside
// its mathematically valid input range.
type DomainError struct {
	// Func is the canonical name of the function.
	Func string
	// X is the out-of-domain argument.
	X float64
}

func (err *DomainError) Error() string {
	return strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain of " + err.Func
}

// DispatchError reports a function identifier that resolved to no entry in
// the evaluation table. It indicates a defect in the registry, not bad
// input, but it is surfaced as an ordinary error rather than a panic.
type DispatchError struct {
	// Ident is the unhandled identifier.
	Ident Ident
}

func (err *DispatchError) Error() string {
	return "no evaluation rule for function " + err.Ident.String()
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Errors caused by
// invalid user input implement InputError.
type InputError interface {
	error
	// Pos returns the 1-based character position the error refers to.
	Pos() int
}

var (
	_ InputError = (*ValidationError)(nil)
	_ InputError = (*SyntaxError)(nil)
)
