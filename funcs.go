package calculator

import "math"

// call evaluates a function's arguments and applies it. The cursor sits
// just past the opening parenthesis; call consumes through the matching
// close. Log takes exactly two comma-separated arguments, Min and Max take
// one or more, everything else takes exactly one.
func call(c *cursor, id Ident) (float64, error) {
	switch id {
	case Log:
		base, err := expression(c)
		if err != nil {
			return 0, err
		}
		if err := expect(c, ','); err != nil {
			return 0, err
		}
		x, err := expression(c)
		if err != nil {
			return 0, err
		}
		if err := expect(c, ')'); err != nil {
			return 0, err
		}
		if base <= 0 || base == 1 {
			return 0, &DomainError{Func: "Log", X: base}
		}
		if x <= 0 {
			return 0, &DomainError{Func: "Log", X: x}
		}
		return math.Log(x) / math.Log(base), nil
	case Min, Max:
		v, err := expression(c)
		if err != nil {
			return 0, err
		}
		for {
			_, kind := c.peek()
			if kind != tokenComma {
				break
			}
			c.advance()
			r, err := expression(c)
			if err != nil {
				return 0, err
			}
			if id == Min && r < v || id == Max && r > v {
				v = r
			}
		}
		if err := expect(c, ')'); err != nil {
			return 0, err
		}
		return v, nil
	default:
		x, err := expression(c)
		if err != nil {
			return 0, err
		}
		if err := expect(c, ')'); err != nil {
			return 0, err
		}
		return apply(id, x)
	}
}

// apply computes a one-argument function, checking its domain first.
func apply(id Ident, x float64) (float64, error) {
	switch id {
	case Sqrt:
		if x < 0 {
			return 0, &DomainError{Func: "Sqrt", X: x}
		}
		return math.Sqrt(x), nil
	case Ln:
		if x <= 0 {
			return 0, &DomainError{Func: "Ln", X: x}
		}
		return math.Log(x), nil
	case Log10:
		if x <= 0 {
			return 0, &DomainError{Func: "Log10", X: x}
		}
		return math.Log10(x), nil
	case Exp:
		return math.Exp(x), nil
	case Sin:
		return math.Sin(x), nil
	case Cos:
		return math.Cos(x), nil
	case Tan:
		if math.Cos(x) == 0 {
			return 0, &DomainError{Func: "Tan", X: x}
		}
		return math.Tan(x), nil
	case Cotan:
		s := math.Sin(x)
		if s == 0 {
			return 0, &DomainError{Func: "Cotan", X: x}
		}
		return math.Cos(x) / s, nil
	case Asin:
		if x < -1 || x > 1 {
			return 0, &DomainError{Func: "Asin", X: x}
		}
		return math.Asin(x), nil
	case Acos:
		if x < -1 || x > 1 {
			return 0, &DomainError{Func: "Acos", X: x}
		}
		return math.Acos(x), nil
	case Atan:
		return math.Atan(x), nil
	case Acotan:
		return math.Pi/2 - math.Atan(x), nil
	case Sinh:
		return math.Sinh(x), nil
	case Cosh:
		return math.Cosh(x), nil
	case Tanh:
		return math.Tanh(x), nil
	case Cotanh:
		t := math.Tanh(x)
		if t == 0 {
			return 0, &DomainError{Func: "Cotanh", X: x}
		}
		return 1 / t, nil
	case Asinh:
		return math.Asinh(x), nil
	case Acosh:
		if x < 1 {
			return 0, &DomainError{Func: "Acosh", X: x}
		}
		return math.Acosh(x), nil
	case Atanh:
		if x <= -1 || x >= 1 {
			return 0, &DomainError{Func: "Atanh", X: x}
		}
		return math.Atanh(x), nil
	case Acotanh:
		if x <= -1 || x >= 1 {
			return 0, &DomainError{Func: "Acotanh", X: x}
		}
		return math.Log((1+x)/(1-x)) / 2, nil
	case Abs:
		return math.Abs(x), nil
	case Ceil:
		return math.Ceil(x), nil
	case Floor:
		return math.Floor(x), nil
	case Round:
		return math.Round(x), nil
	case Trunc:
		return math.Trunc(x), nil
	case Sign:
		switch {
		case x > 0:
			return 1, nil
		case x < 0:
			return -1, nil
		default:
			return 0, nil
		}
	case Rad:
		return x * math.Pi / 180, nil
	case Deg:
		return x * 180 / math.Pi, nil
	case Fact:
		if x < 0 || x != math.Trunc(x) {
			return 0, &DomainError{Func: "Fact", X: x}
		}
		r := 1.0
		for i := 2.0; i <= x; i++ {
			r *= i
		}
		return r, nil
	default:
		return 0, &DispatchError{Ident: id}
	}
}
