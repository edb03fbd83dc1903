package fplot

import (
	"math"
	"math/rand"
	"testing"
)

func TestChooseTickInterval(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		want  float64
	}{
		{"default scale", 50, 1},            // ideal 1.2
		{"ideal 2.4 snaps to 2", 25, 2},     // ideal 2.4
		{"ideal 6 snaps to 5", 10, 5},       // ideal 6
		{"ideal 0.6 snaps to 0.5", 100, 0.5}, // ideal 0.6
		{"ideal 12 snaps to 10", 5, 10},
		{"ideal 3.4 snaps to 2", 60 / 3.4, 2},
		{"ideal 3.6 snaps to 5", 60 / 3.6, 5},
		{"exact power of ten", 0.06, 1000},
		{"tiny interval", 6e4, 1e-3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChooseTickInterval(tt.scale)
			if !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("ChooseTickInterval(%v) = %v, want %v", tt.scale, got, tt.want)
			}
		})
	}
}

func TestChooseTickIntervalScaleInvariance(t *testing.T) {
	for _, scale := range []float64{0.37, 1, 3.3, 50, 77, 1234, 1e5, 2.2e-3} {
		a := ChooseTickInterval(scale)
		b := ChooseTickInterval(scale / 10)
		if !almostEqual(b/a, 10, 1e-12) {
			t.Errorf("scale %v: intervals %v and %v do not differ by 10x", scale, a, b)
		}
	}
}

func TestChooseTickIntervalClamp(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		want  float64
	}{
		{"huge scale", 1e20, MinTickInterval},
		{"tiny scale", 1e-20, MaxTickInterval},
		{"zero scale", 0, MaxTickInterval},
		{"negative scale", -1, 1},
		{"nan scale", math.NaN(), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChooseTickInterval(tt.scale); got != tt.want {
				t.Errorf("ChooseTickInterval(%v) = %v, want %v", tt.scale, got, tt.want)
			}
		})
	}
}

func TestPlanAxisTicks(t *testing.T) {
	tests := []struct {
		name         string
		min, max     float64
		interval     float64
		axis         Axis
		wantFirst    float64
		wantLast     float64
		wantCount    int
		wantInterval float64
	}{
		{"default x range", -8, 8, 1, AxisX, -8, 8, 17, 1},
		{"default y range", -6, 6, 1, AxisY, -6, 6, 13, 1},
		{"unaligned bounds", -0.5, 2.5, 1, AxisX, 0, 2, 3, 1},
		{"fractional interval", 0.05, 0.5, 0.2, AxisX, 0.2, 0.4, 2, 0.2},
		{"overshoot 3x doubles", 0, 299, 1, AxisX, 0, 296, 75, 4},
		{"overshoot 10x", 0, 1000, 1, AxisX, 0, 1000, 51, 20},
		{"y cap is 50", 0, 60, 1, AxisY, 0, 60, 31, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanAxisTicks(tt.min, tt.max, tt.interval, tt.axis)
			if plan.Axis != tt.axis {
				t.Errorf("Axis = %v, want %v", plan.Axis, tt.axis)
			}
			if !almostEqual(plan.Interval, tt.wantInterval, 1e-12) {
				t.Errorf("Interval = %v, want %v", plan.Interval, tt.wantInterval)
			}
			if len(plan.Values) != tt.wantCount {
				t.Fatalf("got %d ticks, want %d: %v", len(plan.Values), tt.wantCount, plan.Values)
			}
			if !almostEqual(plan.Values[0], tt.wantFirst, 1e-12) {
				t.Errorf("first tick = %v, want %v", plan.Values[0], tt.wantFirst)
			}
			if last := plan.Values[len(plan.Values)-1]; !almostEqual(last, tt.wantLast, 1e-12) {
				t.Errorf("last tick = %v, want %v", last, tt.wantLast)
			}
		})
	}
}

func TestPlanAxisTicksNormalizesNegativeZero(t *testing.T) {
	plan := PlanAxisTicks(-1, 1, 1, AxisX)
	if len(plan.Values) != 3 {
		t.Fatalf("got %d ticks, want 3", len(plan.Values))
	}
	if z := plan.Values[1]; z != 0 || math.Signbit(z) {
		t.Errorf("middle tick = %v (signbit %v), want +0", z, math.Signbit(z))
	}
}

func TestPlanAxisTicksInvalidInput(t *testing.T) {
	tests := []struct {
		name               string
		min, max, interval float64
	}{
		{"nan min", math.NaN(), 1, 1},
		{"inf max", 0, math.Inf(1), 1},
		{"zero interval", 0, 1, 0},
		{"negative interval", 0, 1, -1},
		{"reversed range", 1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if plan := PlanAxisTicks(tt.min, tt.max, tt.interval, AxisX); len(plan.Values) != 0 {
				t.Errorf("got %d ticks, want none", len(plan.Values))
			}
		})
	}
}

func TestPlanAxisTicksHugeBounds(t *testing.T) {
	tests := []struct {
		name               string
		min, max, interval float64
	}{
		{"bounds overflow the interval", 1e300, 1.1e300, 1e-10},
		{"range overflows the interval", -1e300, 1e300, 1e-10},
		{"multipliers beyond 2^53", 1 << 53, 1<<53 + 20, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanAxisTicks(tt.min, tt.max, tt.interval, AxisX)
			if len(plan.Values) > AxisX.MaxTicks() {
				t.Fatalf("got %d ticks, cap is %d", len(plan.Values), AxisX.MaxTicks())
			}
			tol := 1e-9 * math.Max(math.Abs(tt.min), math.Abs(tt.max))
			for i, v := range plan.Values {
				if v < tt.min-tol || v > tt.max+tol {
					t.Errorf("tick %v outside [%v, %v]", v, tt.min, tt.max)
				}
				if i > 0 && v <= plan.Values[i-1] {
					t.Errorf("tick %d = %v does not follow %v", i, v, plan.Values[i-1])
				}
			}
		})
	}
}

func TestPlanAxisTicksDensityBound(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	scales := []float64{1e-15, 1e-6, 0.01, 1, 50, 1e4, 1e9, 1e15}
	for i := 0; i < 500; i++ {
		width := 1 + rng.Intn(20000)
		height := 1 + rng.Intn(20000)
		scale := scales[rng.Intn(len(scales))] * (0.5 + rng.Float64())

		cs := &CoordinateSystem{
			Scale:    scale,
			Origin:   Pt(rng.Float64()*float64(width), rng.Float64()*float64(height)),
			Viewport: Sz(width, height),
		}
		r := cs.VisibleRange()
		interval := ChooseTickInterval(scale)

		x := PlanAxisTicks(r.Min.X, r.Max.X, interval, AxisX)
		if len(x.Values) > AxisX.MaxTicks() {
			t.Fatalf("width %d scale %g: %d x ticks exceed cap %d", width, scale, len(x.Values), AxisX.MaxTicks())
		}
		y := PlanAxisTicks(r.Min.Y, r.Max.Y, interval, AxisY)
		if len(y.Values) > AxisY.MaxTicks() {
			t.Fatalf("height %d scale %g: %d y ticks exceed cap %d", height, scale, len(y.Values), AxisY.MaxTicks())
		}
	}
}

func TestAxis(t *testing.T) {
	if AxisX.MaxTicks() != 100 || AxisY.MaxTicks() != 50 {
		t.Errorf("caps = %d/%d, want 100/50", AxisX.MaxTicks(), AxisY.MaxTicks())
	}
	if AxisX.String() != "x" || AxisY.String() != "y" || Axis(7).String() != "unknown" {
		t.Error("unexpected Axis.String output")
	}
}
