// Package fplot is a graphing engine for real functions of one variable
// on a pannable, zoomable plane.
//
// # Overview
//
// fplot turns a viewport and a set of functions into a [Frame]: grid
// lines, axes, tick marks, tick labels and the polyline segments of every
// curve, all in screen coordinates. Drawing the frame is left to a
// renderer such as the draw sub-package, which rasterises it with gg.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fplot"
//	    "github.com/gogpu/fplot/mathexpr"
//	)
//
//	eng := fplot.New(fplot.Sz(800, 600), fplot.WithCompiler(mathexpr.Compiler{}))
//	if _, err := eng.AddFunction("sin(x)", fplot.PaletteColor(0)); err != nil {
//	    log.Fatal(err)
//	}
//	frame := eng.Render()
//
// # Architecture
//
// The engine is built from four parts:
//   - [CoordinateSystem]: the world/screen affine map and pan/zoom/drag state
//   - Tick planning: [ChooseTickInterval], [PlanAxisTicks] and [FormatLabel]
//   - [Sampler]: adaptive evaluation and segmentation of curves
//   - [AsymptoteCache]: memoized "is this function asymptotic here" verdicts
//
// # Coordinate System
//
// World coordinates are the mathematical plane, Y up. Screen coordinates
// are pixels with (0,0) at top-left, Y down:
//
//	screen.x = origin.x + world.x * scale
//	screen.y = origin.y - world.y * scale
//
// # Functions
//
// A function is any [Evaluator]. Errors, panics, NaN and infinite results
// all mark the function as undefined at that point; the curve is broken
// there instead of failing the frame. Expression text is compiled by a
// [Compiler]; the mathexpr sub-package provides one.
//
// # Concurrency
//
// An [Engine] is driven from a single goroutine. Input handlers and Render
// must not run concurrently.
package fplot
