package fplot

import (
	"errors"
	"math"
)

// Evaluator computes a real function of one variable. An error, NaN or
// infinite result all mean the function is undefined at x.
type Evaluator interface {
	Evaluate(x float64) (float64, error)
}

// EvaluatorFunc adapts an ordinary function to the Evaluator interface.
type EvaluatorFunc func(x float64) (float64, error)

// Evaluate calls f(x).
func (f EvaluatorFunc) Evaluate(x float64) (float64, error) {
	return f(x)
}

// Compiler turns expression text into an Evaluator.
type Compiler interface {
	Compile(expression string) (Evaluator, error)
}

// CompilerFunc adapts an ordinary function to the Compiler interface.
type CompilerFunc func(expression string) (Evaluator, error)

// Compile calls f(expression).
func (f CompilerFunc) Compile(expression string) (Evaluator, error) {
	return f(expression)
}

// evaluate calls ev and converts a panic into an error.
func evaluate(ev Evaluator, x float64) (y float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			y, err = math.NaN(), &panicError{value: r}
		}
	}()
	return ev.Evaluate(x)
}

// evaluateFinite returns the function value at x and whether it is usable.
// Failures of any kind are folded into ok == false.
func evaluateFinite(ev Evaluator, x float64) (float64, bool) {
	y, err := evaluate(ev, x)
	if err != nil || !isFinite(y) {
		return 0, false
	}
	return y, true
}

// probe checks that ev can be evaluated at x. ErrUndefined and non-finite
// results are acceptable; any other failure is returned.
func probe(ev Evaluator, x float64) error {
	_, err := evaluate(ev, x)
	if err == nil || errors.Is(err, ErrUndefined) {
		return nil
	}
	return err
}
