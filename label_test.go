package fplot

import (
	"math"
	"testing"
)

func TestFormatLabel(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		interval  float64
		wantText  string
		wantScale float64
	}{
		{"pi at unit interval", 3.14159, 1, "3.1", 0.95},
		{"integer tick", 2, 1, "2", 0.95},
		{"negative integer tick", -7, 1, "-7", 0.95},
		{"zero", 0, 1, "0", 0.95},
		{"tenths", 0.5, 0.1, "0.5", 0.9},
		{"twentieths", -1.25, 0.05, "-1.25", 0.85},
		{"hundreds", 100, 100, "100", 1},
		{"thousands keep zeros", 1000, 1000, "1000", 1},
		{"tiny negative rounds to zero", -0.00001, 1, "0", 0.95},
		{"interval of 2", 4, 2, "4", 0.95},
		{"interval of 10", 20, 10, "20", 1},
		{"precision capped at 8", 1.5e-12, 1e-12, "0", 0.6},
		{"zero interval", 1, 0, "1", 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, scale := FormatLabel(tt.value, tt.interval)
			if text != tt.wantText {
				t.Errorf("FormatLabel(%v, %v) text = %q, want %q", tt.value, tt.interval, text, tt.wantText)
			}
			if !almostEqual(scale, tt.wantScale, 1e-12) {
				t.Errorf("FormatLabel(%v, %v) scale = %v, want %v", tt.value, tt.interval, scale, tt.wantScale)
			}
		})
	}
}

func TestFormatLabelNonFinite(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		text, scale := FormatLabel(v, 1)
		if text != InfinityGlyph || scale != 1 {
			t.Errorf("FormatLabel(%v) = %q, %v; want %q, 1", v, text, scale, InfinityGlyph)
		}
	}
}

func TestLabelDecimals(t *testing.T) {
	tests := []struct {
		interval float64
		want     int
	}{
		{1, 1},
		{2, 1},
		{5, 1},
		{10, 0},
		{0.1, 2},
		{0.2, 2},
		{0.01, 3},
		{1e-7, 8},
		{1e-9, 8},
		{1e6, 0},
		{-0.5, 2},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}
	for _, tt := range tests {
		if got := labelDecimals(tt.interval); got != tt.want {
			t.Errorf("labelDecimals(%v) = %d, want %d", tt.interval, got, tt.want)
		}
	}
}

func TestBasicMeasurer(t *testing.T) {
	m := newBasicMeasurer()

	w, h := m.MeasureText("123", 13)
	if w != 21 || h != 13 {
		t.Errorf("MeasureText(123, 13) = %vx%v, want 21x13", w, h)
	}

	w2, h2 := m.MeasureText("123", 26)
	if w2 != 2*w || h2 != 26 {
		t.Errorf("MeasureText(123, 26) = %vx%v, want %vx26", w2, h2, 2*w)
	}

	if w, _ := m.MeasureText("", 14); w != 0 {
		t.Errorf("empty text width = %v, want 0", w)
	}
}
