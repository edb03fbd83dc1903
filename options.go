package fplot

// Option configures an Engine during creation.
//
// Example:
//
//	eng := fplot.New(fplot.Sz(800, 600),
//	    fplot.WithCompiler(mathexpr.Compiler{}),
//	    fplot.WithCacheCapacity(64))
type Option func(*options)

type options struct {
	compiler      Compiler
	measurer      TextMeasurer
	cacheCapacity int
	minScale      float64
	maxScale      float64
	tickSpacing   float64
	fontSize      float64
	showGrid      bool
}

func defaultOptions() options {
	return options{
		measurer:      newBasicMeasurer(),
		cacheCapacity: DefaultCacheCapacity,
		tickSpacing:   DefaultTickSpacing,
		fontSize:      DefaultLabelFontSize,
		showGrid:      true,
	}
}

// WithCompiler sets the compiler used by AddFunction.
func WithCompiler(c Compiler) Option {
	return func(o *options) {
		o.compiler = c
	}
}

// WithTextMeasurer sets how tick labels are measured for edge
// suppression. The default measures with a 7x13 bitmap font.
func WithTextMeasurer(m TextMeasurer) Option {
	return func(o *options) {
		if m != nil {
			o.measurer = m
		}
	}
}

// WithCacheCapacity bounds the asymptote cache. A capacity <= 0 means
// unbounded.
func WithCacheCapacity(n int) Option {
	return func(o *options) {
		o.cacheCapacity = n
	}
}

// WithScaleLimits clamps zooming to [minScale, maxScale] pixels per unit.
// Zero leaves that side unbounded, which is the default.
func WithScaleLimits(minScale, maxScale float64) Option {
	return func(o *options) {
		o.minScale = minScale
		o.maxScale = maxScale
	}
}

// WithTickSpacing sets the nominal pixel distance between ticks.
func WithTickSpacing(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.tickSpacing = px
		}
	}
}

// WithLabelFontSize sets the unscaled tick label size in pixels.
func WithLabelFontSize(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.fontSize = px
		}
	}
}

// WithGrid sets whether grid lines are rendered initially.
func WithGrid(show bool) Option {
	return func(o *options) {
		o.showGrid = show
	}
}
