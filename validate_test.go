package calculator

import (
	"strings"
	"testing"
)

func TestValidateAccepts(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"newline-only", "\n"},
		{"simple", "3.5*(2-1)"},
		{"call", "sin(0)"},
		{"fact", "fact(5)"},
		{"spaces", "1 + 2 * 3"},
		{"unary-minus", "-5+3"},
		{"unary-after-op", "5*-2"},
		{"unary-after-open", "(-5+3)*2"},
		{"colon", "10:2"},
		{"percent", "10%3"},
		{"power", "2^3^2"},
		{"nested-calls", "sqrt(abs(0-4))"},
		{"two-args", "log(2,8)"},
		{"variadic", "min(3,1,2)"},
		{"decimals", "min(1.5,2.5)"},
		{"alias-case", "SIN(0)"},
		{"trailing-newline", "1+2\n"},
		{"max-length", strings.Repeat("1+", 49) + "1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := Check(c.src); err != nil {
				t.Errorf("Check(%q) = %v, want nil", c.src, err)
			}
			if !Validate(c.src) {
				t.Errorf("Validate(%q) = false, want true", c.src)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		src  string
		rule string
	}{
		{"too-long", strings.Repeat("1+", 60) + "1", "length"},
		{"leading-op", "*5", "leading character"},
		{"leading-space", " 5+5", "leading character"},
		{"leading-point", ".5+1", "leading character"},
		{"leading-close", ")5+5(", "leading character"},
		{"trailing-op", "5+", "trailing character"},
		{"trailing-point", "5+5.", "trailing character"},
		{"trailing-open", "5+5(", "trailing character"},
		{"forbidden", "5!+2", "forbidden character"},
		{"forbidden-eq", "5=5", "forbidden character"},
		{"forbidden-tab", "5+\t2", "forbidden character"},
		{"bare-number", "5", "composition"},
		{"bare-decimal", "5.5", "composition"},
		{"bare-double-point", "5..5", "composition"},
		{"ops-only", "+-", "composition"},
		{"double-op", "5++5", "adjacent characters"},
		{"op-close", "(5+)", "adjacent characters"},
		{"double-point", "1+5..5", "adjacent characters"},
		{"empty-parens", "2*()", "adjacent characters"},
		{"open-op", "2*(+5)", "adjacent characters"},
		{"double-space", "5  +5", "adjacent characters"},
		{"unbalanced-open", "(5+1", "parentheses"},
		{"unbalanced-close", "5+1)", "parentheses"},
		{"implicit-mul", "5(5)+1", "parentheses"},
		{"point-after-op", "5+.5", "adjacent characters"},
		{"point-no-digit", "5+(.5)", "adjacent characters"},
		{"two-points-one-literal", "1.2.3+1", "decimal point"},
		{"digit-space-digit", "5 5*2", "space placement"},
		{"unknown-ident", "foo(5)", "unknown identifier"},
		{"ident-no-paren", "sin 0", "function call"},
		{"ident-at-end", "2+sin", "function call"},
		{"ident-then-op", "2+abs+1", "function call"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Check(c.src)
			if err == nil {
				t.Fatalf("Check(%q) = nil, want %s violation", c.src, c.rule)
			}
			v, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Check(%q) = %#v, want *ValidationError", c.src, err)
			}
			if v.Rule != c.rule {
				t.Errorf("Check(%q) violated %q, want %q (%v)", c.src, v.Rule, c.rule, err)
			}
			if Validate(c.src) {
				t.Errorf("Validate(%q) = true, want false", c.src)
			}
		})
	}
}

func TestValidateIdempotent(t *testing.T) {
	for _, src := range []string{"", "3.5*(2-1)", "*5", "foo(5)"} {
		a := Validate(src)
		b := Validate(src)
		if a != b {
			t.Errorf("Validate(%q) flipped from %v to %v", src, a, b)
		}
	}
}

func TestCheckReportsPosition(t *testing.T) {
	err := Check("5+$2")
	v, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("Check = %#v, want *ValidationError", err)
	}
	if v.Pos() != 3 {
		t.Errorf("Pos() = %d, want 3", v.Pos())
	}
	if !strings.Contains(err.Error(), "forbidden") {
		t.Errorf("%q does not name the rule", err.Error())
	}
}
