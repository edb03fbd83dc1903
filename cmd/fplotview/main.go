// Command fplotview is an interactive function plotter.
//
// Drag with the left mouse button to pan and use the wheel to zoom around
// the cursor. R resets the view, G toggles the grid, C removes every
// function and Escape quits.
//
// Usage:
//
//	fplotview -f "sin(x)" -f "1/x:blue"
//	fplotview -demo
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/fplot"
	"github.com/gogpu/fplot/draw"
	"github.com/gogpu/fplot/mathexpr"
)

func main() {
	var (
		funcs   funcFlags
		width   = flag.Int("width", 800, "initial window width")
		height  = flag.Int("height", 600, "initial window height")
		demo    = flag.Bool("demo", false, "plot the demo function set")
		verbose = flag.Bool("v", false, "log sampling details")
	)
	flag.Var(&funcs, "f", `function to plot as "expr" or "expr:color" (repeatable)`)
	flag.Parse()

	if *verbose {
		fplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	r, err := draw.NewRenderer(draw.DefaultStyle())
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Close()

	eng := fplot.New(fplot.Sz(*width, *height),
		fplot.WithCompiler(mathexpr.Compiler{}),
		fplot.WithTextMeasurer(r))

	if *demo {
		funcs = append(slices.Clone(fplot.DemoFunctions), funcs...)
	}
	for i, arg := range funcs {
		expression, c := fplot.SplitColorSuffix(arg, i)
		if _, err := eng.AddFunction(expression, c); err != nil {
			log.Printf("Skipping %q: %v", expression, err)
		}
	}

	ebiten.SetWindowTitle("fplot")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(newViewer(eng, r)); err != nil {
		log.Fatalf("Viewer stopped: %v", err)
	}
}
