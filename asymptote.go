package fplot

import (
	"math"

	"github.com/gogpu/fplot/internal/cache"
)

// Asymptote detection parameters.
const (
	// AsymptoteProbes is the number of probe intervals used by the pre-pass.
	AsymptoteProbes = 500

	// DefaultCacheCapacity is the number of verdicts an AsymptoteCache keeps.
	DefaultCacheCapacity = 256

	// asymptoteJumpRatio is the share of jumping probes above which a
	// function counts as asymptotic.
	asymptoteJumpRatio = 0.001

	// jumpHeightRatio is the vertical pixel delta, as a share of the
	// viewport height, that counts as a jump between two probes.
	jumpHeightRatio = 0.8

	// cacheKeyPrecision is the number of decimals the range bounds are
	// rounded to before keying the cache.
	cacheKeyPrecision = 2
)

// AsymptoteAnalysis is the verdict of the asymptote pre-pass.
type AsymptoteAnalysis struct {
	// IsAsymptotic is set when more than 0.1% of the probes jumped.
	IsAsymptotic bool

	// JumpCount is the number of probes that were invalid or moved by
	// more than 80% of the viewport height from the previous valid probe.
	JumpCount int

	// Probes is the number of probe intervals.
	Probes int
}

// AnalyzeAsymptotes probes ev at probes+1 evenly spaced points across
// [startX, endX] and counts jumps.
func AnalyzeAsymptotes(ev Evaluator, cs *CoordinateSystem, startX, endX float64, probes int) AsymptoteAnalysis {
	if probes < 1 {
		probes = 1
	}
	threshold := float64(cs.Viewport.Height) * jumpHeightRatio

	jumps := 0
	var last Point
	haveLast := false
	for i := 0; i <= probes; i++ {
		p, ok := samplePoint(ev, cs, sampleX(startX, endX, i, probes))
		if !ok {
			jumps++
			haveLast = false
			continue
		}
		if haveLast && math.Abs(p.Y-last.Y) > threshold {
			jumps++
		}
		last, haveLast = p, true
	}

	return AsymptoteAnalysis{
		IsAsymptotic: float64(jumps) > float64(probes)*asymptoteJumpRatio,
		JumpCount:    jumps,
		Probes:       probes,
	}
}

// asymptoteKey identifies a verdict: the expression text and the range
// rounded to cacheKeyPrecision decimals, so sub-pixel pans reuse it.
type asymptoteKey struct {
	expression string
	start, end float64
}

func newAsymptoteKey(expression string, startX, endX float64) asymptoteKey {
	return asymptoteKey{
		expression: expression,
		start:      roundTo(startX, cacheKeyPrecision),
		end:        roundTo(endX, cacheKeyPrecision),
	}
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

// AsymptoteCache memoizes asymptote verdicts per expression and range.
// It holds a bounded number of verdicts and drops the least recently
// used one when full.
type AsymptoteCache struct {
	lru *cache.LRU[asymptoteKey, AsymptoteAnalysis]
}

// NewAsymptoteCache returns a cache holding up to capacity verdicts.
// A capacity <= 0 means unbounded.
func NewAsymptoteCache(capacity int) *AsymptoteCache {
	return &AsymptoteCache{lru: cache.New[asymptoteKey, AsymptoteAnalysis](capacity)}
}

// Analyze returns the cached verdict for plot over [startX, endX],
// running the pre-pass on a miss.
func (c *AsymptoteCache) Analyze(plot *FunctionPlot, cs *CoordinateSystem, startX, endX float64) AsymptoteAnalysis {
	key := newAsymptoteKey(plot.Expression(), startX, endX)
	return c.lru.GetOrCreate(key, func() AsymptoteAnalysis {
		a := AnalyzeAsymptotes(plot.Evaluator(), cs, startX, endX, AsymptoteProbes)
		Logger().Debug("fplot: asymptote analysis",
			"expression", plot.Expression(),
			"start", key.start,
			"end", key.end,
			"jumps", a.JumpCount,
			"asymptotic", a.IsAsymptotic)
		return a
	})
}

// Len returns the number of cached verdicts.
func (c *AsymptoteCache) Len() int {
	return c.lru.Len()
}

// Clear drops every cached verdict.
func (c *AsymptoteCache) Clear() {
	c.lru.Clear()
}
