package fplot

import "math"

// Sampling parameters.
const (
	// MinBaseSamples is the lower bound of the per-pass sample count.
	MinBaseSamples = 1000

	// MaxContinuityJump is the largest vertical pixel step between two
	// consecutive valid samples that still joins them with a line.
	MaxContinuityJump = 300.0

	// Oversampling applied to functions flagged as asymptotic: 10x, or
	// 20x when more than 5% of the probes jumped.
	asymptoticOversample = 10
	severeOversample     = 20
	severeJumpRatio      = 0.05
)

// Segment is a continuous run of screen points, drawn as one polyline.
// Emitted segments always hold at least two points.
type Segment []Point

// Sampler turns functions into polyline segments for a coordinate system.
// Sampler is not safe for concurrent use.
type Sampler struct {
	cache *AsymptoteCache
}

// NewSampler returns a sampler that consults c for asymptote verdicts.
// A nil c gets a private cache of [DefaultCacheCapacity] verdicts.
func NewSampler(c *AsymptoteCache) *Sampler {
	if c == nil {
		c = NewAsymptoteCache(DefaultCacheCapacity)
	}
	return &Sampler{cache: c}
}

// Cache returns the asymptote cache used by the sampler.
func (s *Sampler) Cache() *AsymptoteCache {
	return s.cache
}

// Sample evaluates plot across the visible X range of cs and splits the
// result into segments.
//
// A sample is invalid when the evaluator fails, panics, or returns a
// non-finite value, or when its screen Y leaves [-height, +height].
// Invalid samples close the current segment. A valid sample more than
// [MaxContinuityJump] pixels above or below the previous one also closes
// it, and starts the next segment. Segments of fewer than two points are
// dropped.
func (s *Sampler) Sample(plot *FunctionPlot, cs *CoordinateSystem) []Segment {
	if plot == nil || plot.Evaluator() == nil {
		return nil
	}
	r := cs.VisibleRange()
	if !isFinite(r.Min.X) || !isFinite(r.Max.X) {
		return nil
	}

	analysis := s.cache.Analyze(plot, cs, r.Min.X, r.Max.X)
	samples := SampleCount(cs.Viewport.Width, analysis)
	segments := sampleSegments(plot.Evaluator(), cs, r.Min.X, r.Max.X, samples)

	Logger().Debug("fplot: sampled function",
		"expression", plot.Expression(),
		"samples", samples,
		"asymptotic", analysis.IsAsymptotic,
		"segments", len(segments))
	return segments
}

// SampleCount returns the number of sample intervals for a viewport
// width: max(width, MinBaseSamples), multiplied when a is asymptotic.
func SampleCount(width int, a AsymptoteAnalysis) int {
	base := max(width, MinBaseSamples)
	if !a.IsAsymptotic {
		return base
	}
	if a.Probes > 0 && float64(a.JumpCount) > float64(a.Probes)*severeJumpRatio {
		return base * severeOversample
	}
	return base * asymptoticOversample
}

func sampleSegments(ev Evaluator, cs *CoordinateSystem, startX, endX float64, samples int) []Segment {
	var (
		segments []Segment
		current  Segment
		last     Point
		haveLast bool
	)
	flush := func() {
		if len(current) >= 2 {
			segments = append(segments, current)
		}
		current = nil
	}

	for i := 0; i <= samples; i++ {
		p, ok := samplePoint(ev, cs, sampleX(startX, endX, i, samples))
		if !ok {
			flush()
			haveLast = false
			continue
		}
		if haveLast && math.Abs(p.Y-last.Y) > MaxContinuityJump {
			flush()
		}
		current = append(current, p)
		last, haveLast = p, true
	}
	flush()
	return segments
}

// sampleX returns the i-th of n+1 evenly spaced points in [start, end].
func sampleX(start, end float64, i, n int) float64 {
	return start + (end-start)*float64(i)/float64(n)
}

// samplePoint evaluates ev at worldX and maps the result to the screen.
// ok is false for failed evaluations and for points whose screen Y is
// outside [-height, +height].
func samplePoint(ev Evaluator, cs *CoordinateSystem, worldX float64) (Point, bool) {
	y, ok := evaluateFinite(ev, worldX)
	if !ok {
		return Point{}, false
	}
	p := cs.WorldToScreen(Point{X: worldX, Y: y})
	h := float64(cs.Viewport.Height)
	if !(p.Y >= -h && p.Y <= h) || !isFinite(p.X) {
		return Point{}, false
	}
	return p, true
}
