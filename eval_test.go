package calculator_test

import (
	"math"
	"testing"

	calculator "github.com/Enduranc3/Calculator"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want float64
	}{
		{"add", "4+5", 9},
		{"sub", "4-5", -1},
		{"mul", "4*5", 20},
		{"div", "20/4", 5},
		{"colon-div", "20:4", 5},
		{"mod", "10%3", 1},
		{"mod-negative", "-10%3", math.Mod(-10, 3)},
		{"pow", "2^3", 8},
		{"pow-left-assoc", "2^3^2", 64},
		{"mixed-level", "2+3*4", 14},
		{"left-fold", "10-2-3", 5},
		{"parens", "3.5*(2-1)", 3.5},
		{"unary-minus", "-5+3", -2},
		{"double-minus", "2--3", 5},
		{"sign-inner-factor", "-2^2", 4},
		{"spaces", "1 + 2 * 3", 7},
		{"sqrt", "sqrt(4)", 2},
		{"sin-zero", "sin(0)", 0},
		{"fact", "fact(5)", 120},
		{"fact-zero", "fact(0)+0", 1},
		{"log-base", "log(2,8)", 3},
		{"min", "min(3,1,2)", 1},
		{"max", "max(3,1,2)", 3},
		{"min-one-arg", "min(7)+0", 7},
		{"abs", "abs(-3)", 3},
		{"nested", "sqrt(abs(-16))", 4},
		{"round", "round(2.5)", 3},
		{"sign-negative", "sign(-9)", -1},
		{"deg", "deg(0)+1", 1},
		{"call-in-term", "2*sin(0)+1", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := calculator.Evaluate(c.src)
			if err != nil {
				t.Fatalf("Evaluate(%q) failed: %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("Evaluate(%q) = %g, want %g", c.src, got, c.want)
			}
		})
	}
}

func TestEvaluateAliases(t *testing.T) {
	pairs := []struct {
		name string
		a, b string
	}{
		{"tangent", "tan(1)", "tg(1)"},
		{"cotangent", "ctg(1)", "cotan(1)"},
		{"arctangent", "atan(1)", "arctg(1)"},
		{"case-insensitive", "SIN(0)", "sin(0)"},
		{"mixed-case", "SqRt(4)", "sqrt(4)"},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			x, err := calculator.Evaluate(p.a)
			if err != nil {
				t.Fatalf("Evaluate(%q) failed: %v", p.a, err)
			}
			y, err := calculator.Evaluate(p.b)
			if err != nil {
				t.Fatalf("Evaluate(%q) failed: %v", p.b, err)
			}
			if x != y {
				t.Errorf("%q = %g but %q = %g", p.a, x, p.b, y)
			}
		})
	}
}

func TestEvaluateIEEE(t *testing.T) {
	cases := []struct {
		name string
		src  string
		ok   func(float64) bool
	}{
		{"div-zero", "1/0", func(x float64) bool { return math.IsInf(x, 1) }},
		{"div-zero-neg", "-1/0", func(x float64) bool { return math.IsInf(x, -1) }},
		{"zero-div-zero", "0/0", math.IsNaN},
		{"mod-zero", "10%0", math.IsNaN},
		{"pow-nan", "(-8)^0.5", math.IsNaN},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := calculator.Evaluate(c.src)
			if err != nil {
				t.Fatalf("Evaluate(%q) failed: %v", c.src, err)
			}
			if !c.ok(got) {
				t.Errorf("Evaluate(%q) = %g", c.src, got)
			}
		})
	}
}

func TestEvaluateInvalidInput(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"leading-op", "*5"},
		{"trailing-op", "5+"},
		{"double-point", "5..5"},
		{"double-space", "5  5"},
		{"unknown-func", "foo(5)"},
		{"unbalanced", "(5+1"},
		{"implicit-mul", "5(5)+1"},
		{"log-extra-comma", "log(2,8,9)"},
		{"trailing-term", "(2-1)5"},
		{"leading-plus", "+5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calculator.Evaluate(c.src)
			if err == nil {
				t.Fatalf("Evaluate(%q) succeeded", c.src)
			}
			switch err.(type) {
			case *calculator.ValidationError, *calculator.SyntaxError:
			default:
				t.Errorf("Evaluate(%q) error %#v is not an invalid-input error", c.src, err)
			}
		})
	}
}

func TestEvaluateDomainErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		fn   string
	}{
		{"sqrt-negative", "sqrt(-1)", "Sqrt"},
		{"ln-zero", "ln(0)", "Ln"},
		{"log-base-one", "log(1,8)", "Log"},
		{"log-base-negative", "log(-1,8)", "Log"},
		{"log-value-negative", "log(2,-8)", "Log"},
		{"asin-range", "asin(2)", "Asin"},
		{"acosh-range", "acosh(0)", "Acosh"},
		{"atanh-range", "atanh(1)", "Atanh"},
		{"acotanh-range", "acoth(2)", "Acotanh"},
		{"fact-negative", "fact(-1)", "Fact"},
		{"fact-fractional", "fact(2.5)", "Fact"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calculator.Evaluate(c.src)
			if err == nil {
				t.Fatalf("Evaluate(%q) succeeded", c.src)
			}
			d, ok := err.(*calculator.DomainError)
			if !ok {
				t.Fatalf("Evaluate(%q) error %#v is not *DomainError", c.src, err)
			}
			if d.Func != c.fn {
				t.Errorf("Evaluate(%q) blamed %q, want %q", c.src, d.Func, c.fn)
			}
		})
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	for _, src := range []string{"3.5*(2-1)", "fact(5)", "2^3^2", "sin(1)+cos(1)"} {
		a, errA := calculator.Evaluate(src)
		b, errB := calculator.Evaluate(src)
		if a != b || (errA == nil) != (errB == nil) {
			t.Errorf("Evaluate(%q) not stable: %g/%v then %g/%v", src, a, errA, b, errB)
		}
	}
}

func TestIntegral(t *testing.T) {
	cases := []struct {
		x    float64
		want bool
	}{
		{0, true},
		{120, true},
		{-3, true},
		{2.5, false},
		{-0.1, false},
	}
	for _, c := range cases {
		if got := calculator.Integral(c.x); got != c.want {
			t.Errorf("Integral(%g) = %v, want %v", c.x, got, c.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{120, "120.00"},
		{-3, "-3.00"},
		{0.5, "0.5"},
		{3.5, "3.5"},
	}
	for _, c := range cases {
		if got := calculator.Format(c.x); got != c.want {
			t.Errorf("Format(%g) = %q, want %q", c.x, got, c.want)
		}
	}
}

func BenchmarkEvaluate(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"arith", "1+2*3-4/5"},
		{"parens", "3.5*(2-1)+(4-2)*(8-3)"},
		{"calls", "sin(1)+cos(1)*sqrt(2)"},
		{"variadic", "min(3,1,2)+max(4,5,6)"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				calculator.Evaluate(c.src)
			}
		})
	}
}
