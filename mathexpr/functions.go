package mathexpr

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
)

// unary lists the one-argument functions available in expressions.
// abs, ceil, floor and round come from the expr builtins.
var unary = map[string]func(float64) float64{
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log":   math.Log10,
	"log10": math.Log10,
	"log2":  math.Log2,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"sign":  sign,
}

var functions = buildFunctions()

func buildFunctions() []expr.Option {
	opts := make([]expr.Option, 0, len(unary))
	for name, fn := range unary {
		opts = append(opts, expr.Function(name, wrapUnary(name, fn)))
	}
	return opts
}

func wrapUnary(name string, fn func(float64) float64) func(params ...any) (any, error) {
	return func(params ...any) (any, error) {
		if len(params) != 1 {
			return nil, fmt.Errorf("%s: expected 1 argument, got %d", name, len(params))
		}
		v, ok := toFloat(params[0])
		if !ok {
			return nil, fmt.Errorf("%s: argument is %T, not a number", name, params[0])
		}
		return fn(v), nil
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return v
	}
}
