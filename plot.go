package fplot

import "image/color"

// FunctionPlot is one function added to an engine. It is immutable.
type FunctionPlot struct {
	expression string
	evaluator  Evaluator
	color      color.Color
}

// NewFunctionPlot returns a plot of ev labelled with expression. The
// expression text also identifies the plot in the asymptote cache.
func NewFunctionPlot(expression string, ev Evaluator, c color.Color) *FunctionPlot {
	if c == nil {
		c = Palette[0]
	}
	return &FunctionPlot{expression: expression, evaluator: ev, color: c}
}

// Expression returns the source text of the plot.
func (p *FunctionPlot) Expression() string { return p.expression }

// Evaluator returns the function being plotted.
func (p *FunctionPlot) Evaluator() Evaluator { return p.evaluator }

// Color returns the curve color.
func (p *FunctionPlot) Color() color.Color { return p.color }

// DemoFunctions is a sample set covering polynomials, periodic functions,
// poles and a restricted domain. The last entry is not a valid expression
// and is rejected by AddFunction.
var DemoFunctions = []string{
	"x^2",
	"x+1",
	"sin(x)",
	"cos(x)",
	"tan(x)",
	"1/x",
	"log(x)",
	"x^3 + x^2 - 2*x + 1",
	"error",
}
