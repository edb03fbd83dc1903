// Package draw rasterises fplot frames with gg.
//
// A [Renderer] owns the label font. It also implements
// [fplot.TextMeasurer], so passing it to the engine with
// [fplot.WithTextMeasurer] keeps label edge suppression consistent with
// the glyphs that are actually drawn:
//
//	r, err := draw.NewRenderer(draw.DefaultStyle())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	eng := fplot.New(fplot.Sz(800, 600), fplot.WithTextMeasurer(r))
//	dc := gg.NewContext(800, 600)
//	if err := r.Draw(dc, eng.Render()); err != nil {
//	    log.Fatal(err)
//	}
//	_ = dc.SavePNG("plot.png")
package draw
