package fplot

import (
	"errors"
	"image/color"
	"math"
)

// Zoom factors applied per wheel notch.
const (
	ZoomInFactor  = 1.1
	ZoomOutFactor = 0.9
)

// Engine owns a coordinate system and a list of plots, turns pointer
// input into pan and zoom, and renders frames.
//
// An Engine is driven from a single goroutine (the UI loop) and is not
// safe for concurrent use.
type Engine struct {
	opts    options
	cs      *CoordinateSystem
	plots   []*FunctionPlot
	sampler *Sampler
}

// New creates an engine for a viewport of the given size, with the
// default view (see ResetView).
func New(viewport Size, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{
		opts:    o,
		sampler: NewSampler(NewAsymptoteCache(o.cacheCapacity)),
	}
	e.cs = e.newCoordinateSystem(viewport, o.showGrid)
	return e
}

func (e *Engine) newCoordinateSystem(viewport Size, showGrid bool) *CoordinateSystem {
	cs := NewCoordinateSystem(viewport)
	cs.ShowGrid = showGrid
	cs.MinScale = e.opts.minScale
	cs.MaxScale = e.opts.maxScale
	return cs
}

// CoordinateSystem returns the engine's coordinate system.
func (e *Engine) CoordinateSystem() *CoordinateSystem {
	return e.cs
}

// AddFunction compiles expression with the configured compiler and adds
// it as a plot. The expression is evaluated once at x = 0 first; if that
// fails the expression is rejected with a *ParseError. A result of NaN,
// infinity or ErrUndefined at 0 is accepted.
func (e *Engine) AddFunction(expression string, c color.Color) (*FunctionPlot, error) {
	if e.opts.compiler == nil {
		return nil, ErrNoCompiler
	}
	ev, err := e.opts.compiler.Compile(expression)
	if err != nil {
		Logger().Warn("fplot: expression rejected", "expression", expression, "err", err)
		return nil, &ParseError{Expression: expression, Err: err}
	}
	return e.AddEvaluator(expression, ev, c)
}

// AddEvaluator adds an already compiled function under the given
// expression text, applying the same x = 0 check as AddFunction.
func (e *Engine) AddEvaluator(expression string, ev Evaluator, c color.Color) (*FunctionPlot, error) {
	if ev == nil {
		return nil, &ParseError{Expression: expression, Err: errors.New("nil evaluator")}
	}
	if err := probe(ev, 0); err != nil {
		Logger().Warn("fplot: expression rejected", "expression", expression, "err", err)
		return nil, &ParseError{Expression: expression, Err: err}
	}
	p := NewFunctionPlot(expression, ev, c)
	e.plots = append(e.plots, p)
	return p, nil
}

// Functions returns the plots in the order they were added.
func (e *Engine) Functions() []*FunctionPlot {
	out := make([]*FunctionPlot, len(e.plots))
	copy(out, e.plots)
	return out
}

// ClearFunctions removes every plot and drops cached asymptote verdicts.
func (e *Engine) ClearFunctions() {
	e.plots = nil
	e.sampler.Cache().Clear()
}

// ResetView restores the default scale and centers world (0, 0) in the
// viewport. The grid setting is kept.
func (e *Engine) ResetView() {
	e.cs = e.newCoordinateSystem(e.cs.Viewport, e.cs.ShowGrid)
}

// SetShowGrid enables or disables grid lines.
func (e *Engine) SetShowGrid(show bool) {
	e.cs.ShowGrid = show
}

// OnResize records a new viewport size.
func (e *Engine) OnResize(size Size) {
	e.cs.Resize(size)
}

// OnPointerDown starts a drag at p.
func (e *Engine) OnPointerDown(p Point) {
	e.cs.StartDrag(p)
}

// OnPointerMove pans while a drag is active and reports whether the view
// changed.
func (e *Engine) OnPointerMove(p Point) bool {
	if !e.cs.IsDragging() {
		return false
	}
	e.cs.HandleDrag(p)
	return true
}

// OnPointerUp ends a drag.
func (e *Engine) OnPointerUp(Point) {
	e.cs.EndDrag()
}

// OnScroll zooms in for delta > 0 and out for delta < 0, anchored at p.
// It reports whether the view changed.
func (e *Engine) OnScroll(delta float64, p Point) bool {
	switch {
	case delta > 0:
		return e.cs.Zoom(ZoomInFactor, p)
	case delta < 0:
		return e.cs.Zoom(ZoomOutFactor, p)
	default:
		return false
	}
}

// Line is a screen-space line segment.
type Line struct {
	From, To Point
}

// Curve is the sampled form of one plot.
type Curve struct {
	Plot     *FunctionPlot
	Segments []Segment
}

// Frame is everything a renderer needs to draw one repaint, in screen
// coordinates and in drawing order.
type Frame struct {
	Viewport   Size
	GridLines  []Line
	AxisLines  []Line
	TickMarks  []Line
	TickLabels []TickLabel
	Curves     []Curve
}

// Render computes a frame for the current view. Apart from filling the
// asymptote cache it has no side effects.
func (e *Engine) Render() Frame {
	cs := e.cs
	f := Frame{Viewport: cs.Viewport}

	r := cs.VisibleRange()
	interval := ChooseTickIntervalFor(cs.Scale, e.opts.tickSpacing)
	xTicks := PlanAxisTicks(r.Min.X, r.Max.X, interval, AxisX)
	yTicks := PlanAxisTicks(r.Min.Y, r.Max.Y, interval, AxisY)

	if cs.ShowGrid {
		f.GridLines = e.gridLines(xTicks, yTicks)
	}
	f.AxisLines = e.axisLines()
	e.xAxisTicks(&f, xTicks)
	e.yAxisTicks(&f, yTicks)

	f.Curves = make([]Curve, 0, len(e.plots))
	for _, p := range e.plots {
		f.Curves = append(f.Curves, Curve{Plot: p, Segments: e.sampler.Sample(p, cs)})
	}
	return f
}

func (e *Engine) gridLines(xTicks, yTicks AxisTicks) []Line {
	cs := e.cs
	w, h := float64(cs.Viewport.Width), float64(cs.Viewport.Height)

	lines := make([]Line, 0, len(xTicks.Values)+len(yTicks.Values))
	for _, v := range xTicks.Values {
		x := cs.WorldToScreen(Point{X: v}).X
		lines = append(lines, Line{From: Point{X: x}, To: Point{X: x, Y: h}})
	}
	for _, v := range yTicks.Values {
		y := cs.WorldToScreen(Point{Y: v}).Y
		lines = append(lines, Line{From: Point{Y: y}, To: Point{X: w, Y: y}})
	}
	return lines
}

func (e *Engine) axisLines() []Line {
	cs := e.cs
	w, h := float64(cs.Viewport.Width), float64(cs.Viewport.Height)
	return []Line{
		{From: Point{Y: cs.Origin.Y}, To: Point{X: w, Y: cs.Origin.Y}},
		{From: Point{X: cs.Origin.X}, To: Point{X: cs.Origin.X, Y: h}},
	}
}

// xAxisTicks adds marks across the X axis and labels centred below them.
// Labels that would cross the left or right edge are left out.
func (e *Engine) xAxisTicks(f *Frame, ticks AxisTicks) {
	cs := e.cs
	w := float64(cs.Viewport.Width)
	for _, v := range ticks.Values {
		x := cs.WorldToScreen(Point{X: v}).X
		f.TickMarks = append(f.TickMarks, Line{
			From: Point{X: x, Y: cs.Origin.Y - TickSize},
			To:   Point{X: x, Y: cs.Origin.Y + TickSize},
		})

		label := e.label(AxisX, v, ticks.Interval)
		lw, lh := label.Bounds.Max.X, label.Bounds.Max.Y
		left := x - lw/2
		if left < 0 || left+lw > w {
			continue
		}
		top := cs.Origin.Y + TickSize + labelGap
		label.Bounds = Rect{Min: Point{X: left, Y: top}, Max: Point{X: left + lw, Y: top + lh}}
		f.TickLabels = append(f.TickLabels, label)
	}
}

// yAxisTicks adds marks across the Y axis and labels to their left.
// The tick at zero is skipped since the X axis labels the origin, and
// labels that would cross the top or bottom edge are left out.
func (e *Engine) yAxisTicks(f *Frame, ticks AxisTicks) {
	cs := e.cs
	h := float64(cs.Viewport.Height)
	for _, v := range ticks.Values {
		if math.Abs(v) < ticks.Interval*0.01 {
			continue
		}
		y := cs.WorldToScreen(Point{Y: v}).Y
		f.TickMarks = append(f.TickMarks, Line{
			From: Point{X: cs.Origin.X - TickSize, Y: y},
			To:   Point{X: cs.Origin.X + TickSize, Y: y},
		})

		label := e.label(AxisY, v, ticks.Interval)
		lw, lh := label.Bounds.Max.X, label.Bounds.Max.Y
		top := y - lh/2
		if top < 0 || top+lh > h {
			continue
		}
		left := cs.Origin.X - TickSize - labelGap - lw
		label.Bounds = Rect{Min: Point{X: left, Y: top}, Max: Point{X: left + lw, Y: top + lh}}
		f.TickLabels = append(f.TickLabels, label)
	}
}

// label formats and measures a tick label. The returned Bounds holds the
// label size in Max and is positioned by the caller.
func (e *Engine) label(axis Axis, value, interval float64) TickLabel {
	text, scale := FormatLabel(value, interval)
	size := e.opts.fontSize * scale
	w, h := e.opts.measurer.MeasureText(text, size)
	return TickLabel{
		Axis:      axis,
		Value:     value,
		Text:      text,
		FontScale: scale,
		FontSize:  size,
		Bounds:    Rect{Max: Point{X: w, Y: h}},
	}
}
