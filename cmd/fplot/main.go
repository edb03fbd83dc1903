// Command fplot plots functions of x to a PNG image.
//
// Usage:
//
//	fplot -f "sin(x)" -f "1/x:blue" -output plot.png
//	fplot -demo -scale 80
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/fplot"
	"github.com/gogpu/fplot/draw"
	"github.com/gogpu/fplot/mathexpr"
)

func main() {
	var (
		funcs   funcFlags
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "plot.png", "output file")
		scale   = flag.Float64("scale", fplot.DefaultScale, "pixels per unit")
		grid    = flag.Bool("grid", true, "draw grid lines")
		demo    = flag.Bool("demo", false, "plot the demo function set")
		verbose = flag.Bool("v", false, "log sampling details")
	)
	flag.Var(&funcs, "f", `function to plot as "expr" or "expr:color" (repeatable)`)
	flag.Parse()

	if *verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		fplot.SetLogger(l)
		gg.SetLogger(l)
	}

	r, err := draw.NewRenderer(draw.DefaultStyle())
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Close()

	eng := fplot.New(fplot.Sz(*width, *height),
		fplot.WithCompiler(mathexpr.Compiler{}),
		fplot.WithTextMeasurer(r),
		fplot.WithGrid(*grid))
	eng.CoordinateSystem().Zoom(*scale/fplot.DefaultScale, eng.CoordinateSystem().Origin)

	if *demo {
		funcs = append(slices.Clone(fplot.DemoFunctions), funcs...)
	}
	for i, arg := range funcs {
		expression, c := fplot.SplitColorSuffix(arg, i)
		if _, err := eng.AddFunction(expression, c); err != nil {
			log.Printf("Skipping %q: %v", expression, err)
		}
	}

	dc, err := r.Render(eng.Render())
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	defer dc.Close()

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Plot saved to %s (%dx%d, %d functions)\n", *output, *width, *height, len(eng.Functions()))
}
