package fplot

import "math"

// Tick planning constants.
const (
	// DefaultTickSpacing is the nominal on-screen distance between ticks.
	DefaultTickSpacing = 60.0

	// MinTickInterval and MaxTickInterval bound the world-space interval
	// so tick loops never degenerate.
	MinTickInterval = 1e-10
	MaxTickInterval = 1e10
)

// niceFactors is the 1-2-5 per decade sequence.
var niceFactors = [...]float64{1, 2, 5}

// Axis identifies the horizontal or vertical axis.
type Axis int

const (
	// AxisX is the horizontal axis.
	AxisX Axis = iota
	// AxisY is the vertical axis.
	AxisY
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "unknown"
	}
}

// MaxTicks returns the tick cap for the axis: 100 horizontally,
// 50 vertically.
func (a Axis) MaxTicks() int {
	if a == AxisY {
		return 50
	}
	return 100
}

// ChooseTickInterval returns the world-space tick spacing for scale using
// the [DefaultTickSpacing] target.
func ChooseTickInterval(scale float64) float64 {
	return ChooseTickIntervalFor(scale, DefaultTickSpacing)
}

// ChooseTickIntervalFor snaps spacing/scale to the nearest value of the
// form {1, 2, 5} x 10^n, clamped to [MinTickInterval, MaxTickInterval].
func ChooseTickIntervalFor(scale, spacing float64) float64 {
	ideal := spacing / scale
	if !(ideal > 0) || math.IsInf(ideal, 0) {
		if math.IsInf(ideal, 1) {
			return MaxTickInterval
		}
		return 1
	}

	exp := int(math.Floor(math.Log10(ideal)))
	// Log10 is off by one ulp for some exact powers of ten (1000 -> 2.999...).
	if math.Pow10(exp+1) <= ideal {
		exp++
	} else if math.Pow10(exp) > ideal {
		exp--
	}
	magnitude := math.Pow10(exp)
	normalized := ideal / magnitude

	best := niceFactors[0]
	bestDiff := math.Inf(1)
	for _, f := range niceFactors {
		if d := math.Abs(normalized - f); d < bestDiff {
			best, bestDiff = f, d
		}
	}

	return clamp(best*magnitude, MinTickInterval, MaxTickInterval)
}

// AxisTicks is the tick plan for one axis.
type AxisTicks struct {
	Axis Axis

	// Interval is the spacing actually used, after density adjustment.
	Interval float64

	// Values are the world coordinates of the ticks, ascending.
	Values []float64
}

// PlanAxisTicks places ticks at every multiple of interval inside
// [minWorld, maxWorld]. When that yields more ticks than axis.MaxTicks()
// the interval is widened (x5 above a 4x overshoot, otherwise x2) until
// the plan fits.
func PlanAxisTicks(minWorld, maxWorld, interval float64, axis Axis) AxisTicks {
	plan := AxisTicks{Axis: axis, Interval: interval}
	if !isFinite(minWorld) || !isFinite(maxWorld) || !isFinite(interval) || interval <= 0 || maxWorld < minWorld {
		return plan
	}

	maxTicks := float64(axis.MaxTicks())
	first, last := tickRange(minWorld, maxWorld, interval)
	// count is NaN when the bounds overflow at this interval; that widens
	// like a large overshoot.
	for count := last - first + 1; !(count <= maxTicks); count = last - first + 1 {
		ratio := count / maxTicks
		switch {
		case ratio > 4 || math.IsNaN(ratio):
			interval *= 5
		default:
			interval *= 2
		}
		if math.IsInf(interval, 0) {
			plan.Interval = interval
			return plan
		}
		first, last = tickRange(minWorld, maxWorld, interval)
	}

	plan.Interval = interval
	if last < first {
		return plan
	}

	n := int(last-first) + 1
	plan.Values = make([]float64, 0, n)
	for i := range n {
		v := (first + float64(i)) * interval
		if v == 0 {
			v = 0 // normalize -0
		}
		// Past 2^53 neighbouring multipliers round to the same value.
		if k := len(plan.Values); k > 0 && v <= plan.Values[k-1] {
			continue
		}
		plan.Values = append(plan.Values, v)
	}
	return plan
}

// tickRange returns the multipliers of the first and last tick, so the
// ticks are first*interval ... last*interval.
func tickRange(minWorld, maxWorld, interval float64) (first, last float64) {
	return math.Ceil(minWorld / interval), math.Floor(maxWorld / interval)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
