package mathexpr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"golang.org/x/text/width"

	"github.com/gogpu/fplot"
)

// Sentinel errors for the mathexpr package.
var (
	// ErrEmpty is returned when the expression is blank.
	ErrEmpty = errors.New("mathexpr: empty expression")

	// ErrNotNumeric is returned when an expression yields a non-number.
	ErrNotNumeric = errors.New("mathexpr: result is not a number")
)

// Variable is the name of the free variable.
const Variable = "x"

var symbolReplacer = strings.NewReplacer(
	"−", "-",
	"×", "*",
	"·", "*",
	"÷", "/",
	"π", "pi",
	"²", "^2",
	"³", "^3",
)

// Normalize folds full-width input to ASCII and rewrites the common
// typographic operators to their ASCII equivalents.
func Normalize(expression string) string {
	return strings.TrimSpace(symbolReplacer.Replace(width.Fold.String(expression)))
}

// Program is a compiled expression. It implements fplot.Evaluator.
type Program struct {
	source  string
	program *vm.Program
}

// Compile normalizes and compiles expression.
func Compile(expression string) (*Program, error) {
	src := Normalize(expression)
	if src == "" {
		return nil, ErrEmpty
	}
	opts := append([]expr.Option{expr.Env(newEnv(0))}, functions...)
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("mathexpr: compile %q: %w", expression, err)
	}
	return &Program{source: src, program: program}, nil
}

// Evaluate runs the program with x bound to the given value. A NaN or
// infinite result, such as 1/x at 0 or log(x) at 0, is reported as a
// wrapped [fplot.ErrUndefined] alongside a NaN value.
func (p *Program) Evaluate(x float64) (float64, error) {
	out, err := expr.Run(p.program, newEnv(x))
	if err != nil {
		return math.NaN(), fmt.Errorf("mathexpr: evaluate %q at x=%g: %w", p.source, x, err)
	}
	y, ok := toFloat(out)
	if !ok {
		return math.NaN(), fmt.Errorf("mathexpr: evaluate %q at x=%g: %w (got %T)", p.source, x, ErrNotNumeric, out)
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return math.NaN(), fmt.Errorf("mathexpr: %q at x=%g is %v: %w", p.source, x, y, fplot.ErrUndefined)
	}
	return y, nil
}

// String returns the normalized source of the program.
func (p *Program) String() string {
	return p.source
}

// Compiler implements fplot.Compiler.
type Compiler struct{}

// Compile compiles expression into an fplot.Evaluator.
func (Compiler) Compile(expression string) (fplot.Evaluator, error) {
	p, err := Compile(expression)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func newEnv(x float64) map[string]any {
	return map[string]any{
		Variable: x,
		"pi":     math.Pi,
		"e":      math.E,
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
