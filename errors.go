package fplot

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fplot package.
var (
	// ErrUndefined is returned (possibly wrapped) by evaluators when the
	// function has no value at the requested point, such as 1/x at 0.
	// It is the evaluator-side equivalent of returning NaN.
	ErrUndefined = errors.New("fplot: function undefined at point")

	// ErrNoCompiler is returned by AddFunction when the engine has no
	// expression compiler.
	ErrNoCompiler = errors.New("fplot: no expression compiler configured")
)

// ParseError reports an expression that cannot be evaluated even once.
type ParseError struct {
	Expression string
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fplot: cannot evaluate expression %q: %v", e.Expression, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// panicError carries a value recovered from a panicking evaluator.
type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("fplot: evaluator panicked: %v", e.value)
}
