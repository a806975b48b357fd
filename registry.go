package calculator

import (
	"sort"
	"strconv"
	"strings"
)

// Ident is the canonical identifier a function alias resolves to.
type Ident int

const (
	identNone Ident = iota
	Sqrt
	Ln
	Exp
	Sin
	Cos
	Tan
	Cotan
	Asin
	Acos
	Atan
	Acotan
	Sinh
	Cosh
	Tanh
	Cotanh
	Asinh
	Acosh
	Atanh
	Acotanh
	Abs
	Ceil
	Floor
	Round
	Trunc
	Sign
	Rad
	Deg
	Fact
	Log
	Log10
	Min
	Max
)

var identNames = [...]string{
	identNone: "none",
	Sqrt:      "Sqrt",
	Ln:        "Ln",
	Exp:       "Exp",
	Sin:       "Sin",
	Cos:       "Cos",
	Tan:       "Tan",
	Cotan:     "Cotan",
	Asin:      "Asin",
	Acos:      "Acos",
	Atan:      "Atan",
	Acotan:    "Acotan",
	Sinh:      "Sinh",
	Cosh:      "Cosh",
	Tanh:      "Tanh",
	Cotanh:    "Cotanh",
	Asinh:     "Asinh",
	Acosh:     "Acosh",
	Atanh:     "Atanh",
	Acotanh:   "Acotanh",
	Abs:       "Abs",
	Ceil:      "Ceil",
	Floor:     "Floor",
	Round:     "Round",
	Trunc:     "Trunc",
	Sign:      "Sign",
	Rad:       "Rad",
	Deg:       "Deg",
	Fact:      "Fact",
	Log:       "Log",
	Log10:     "Log10",
	Min:       "Min",
	Max:       "Max",
}

func (id Ident) String() string {
	if id < 0 || int(id) >= len(identNames) {
		return "Ident(" + strconv.Itoa(int(id)) + ")"
	}
	return identNames[id]
}

// aliases maps every accepted spelling of a function name, lowercase, to
// its canonical identifier. Several functions have many spellings; "tg" and
// "tan" are the same tangent, the cotangent answers to five names. The
// table is never mutated after initialization, so it is safe to share
// between goroutines.
var aliases = map[string]Ident{
	"sqrt": Sqrt,

	"ln":  Ln,
	"exp": Exp,

	"sin": Sin,
	"cos": Cos,
	"tan": Tan,
	"tg":  Tan,

	"ctan":  Cotan,
	"ctg":   Cotan,
	"cotan": Cotan,
	"cot":   Cotan,
	"cotg":  Cotan,

	"asin":   Asin,
	"arcsin": Asin,
	"acos":   Acos,
	"arccos": Acos,
	"atan":   Atan,
	"arctan": Atan,
	"arctg":  Atan,
	"atg":    Atan,

	"acot":   Acotan,
	"acotan": Acotan,
	"arccot": Acotan,
	"arcctg": Acotan,
	"actg":   Acotan,

	"sinh": Sinh,
	"sh":   Sinh,
	"cosh": Cosh,
	"ch":   Cosh,
	"tanh": Tanh,
	"th":   Tanh,

	"ctanh": Cotanh,
	"cth":   Cotanh,
	"coth":  Cotanh,

	"asinh":   Asinh,
	"arcsinh": Asinh,
	"arsh":    Asinh,
	"acosh":   Acosh,
	"arccosh": Acosh,
	"arch":    Acosh,
	"atanh":   Atanh,
	"arctanh": Atanh,
	"arth":    Atanh,

	"acoth":   Acotanh,
	"acotanh": Acotanh,
	"arccoth": Acotanh,
	"arcth":   Acotanh,

	"abs":      Abs,
	"ceil":     Ceil,
	"ceiling":  Ceil,
	"floor":    Floor,
	"round":    Round,
	"trunc":    Trunc,
	"truncate": Trunc,

	"sign": Sign,
	"sgn":  Sign,

	"rad":     Rad,
	"radians": Rad,
	"deg":     Deg,
	"degrees": Deg,

	"fact":      Fact,
	"factorial": Fact,

	"log":   Log,
	"log10": Log10,
	"lg":    Log10,

	"min": Min,
	"max": Max,
}

// Resolve looks up a function alias, case-insensitively. The second result
// reports whether the alias is known.
func Resolve(alias string) (Ident, bool) {
	id, ok := aliases[strings.ToLower(alias)]
	return id, ok
}

// Alias is one entry of the registry listing.
type Alias struct {
	Name  string `json:"name"`
	Ident string `json:"ident"`
}

// Aliases returns every registered alias with its canonical function name,
// sorted by alias.
func Aliases() []Alias {
	v := make([]Alias, 0, len(aliases))
	for name, id := range aliases {
		v = append(v, Alias{Name: name, Ident: id.String()})
	}
	sort.Slice(v, func(i, j int) bool { return v[i].Name < v[j].Name })
	return v
}
