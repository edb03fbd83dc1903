package fplot

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// InfinityGlyph is the label text for non-finite tick values.
const InfinityGlyph = "∞"

// Label layout constants, in pixels.
const (
	DefaultLabelFontSize = 14.0
	TickSize             = 5.0
	labelGap             = 2.0
	maxLabelDecimals     = 8
)

// TickLabel is a formatted tick label placed in screen space.
type TickLabel struct {
	Axis  Axis
	Value float64
	Text  string

	// FontScale shrinks the font as the label gains decimals:
	// 1 - 0.05 * decimals.
	FontScale float64

	// FontSize is the label size in pixels, already scaled.
	FontSize float64

	// Bounds is the screen rectangle the label occupies.
	Bounds Rect
}

// FormatLabel formats a tick value for a given tick interval.
//
// The number of decimals is clamp(ceil(-log10(|interval|)) + 1, 0, 8).
// The value is printed with that many decimals using '.' as separator,
// then trailing zeros are dropped. The returned font scale is
// 1 - 0.05 * decimals. Non-finite values print as [InfinityGlyph].
func FormatLabel(value, interval float64) (text string, fontScale float64) {
	if !isFinite(value) {
		return InfinityGlyph, 1
	}

	decimals := labelDecimals(interval)
	text = strconv.FormatFloat(value, 'f', decimals, 64)
	if strings.IndexByte(text, '.') >= 0 {
		text = strings.TrimRight(text, "0")
		text = strings.TrimSuffix(text, ".")
	}
	if text == "-0" {
		text = "0"
	}
	return text, 1 - 0.05*float64(decimals)
}

func labelDecimals(interval float64) int {
	abs := math.Abs(interval)
	if math.IsNaN(abs) {
		return 0
	}
	lg := math.Log10(abs)
	if r := math.Round(lg); math.Abs(lg-r) < 1e-9 {
		lg = r
	}
	return int(clamp(math.Ceil(-lg)+1, 0, maxLabelDecimals))
}

// TextMeasurer reports the on-screen extent of a label rendered at size
// pixels. Renderers supply one that matches their font so edge
// suppression agrees with what is drawn.
type TextMeasurer interface {
	MeasureText(text string, size float64) (width, height float64)
}

// basicMeasurer measures with the fixed 7x13 bitmap face, scaled to size.
type basicMeasurer struct {
	face *basicfont.Face
}

func newBasicMeasurer() basicMeasurer {
	return basicMeasurer{face: basicfont.Face7x13}
}

func (m basicMeasurer) MeasureText(text string, size float64) (width, height float64) {
	metrics := m.face.Metrics()
	native := fixedToFloat(metrics.Height)
	if native == 0 {
		return 0, 0
	}
	k := size / native
	return fixedToFloat(font.MeasureString(m.face, text)) * k, size
}

func fixedToFloat[T ~int32](v T) float64 {
	return float64(v) / 64
}
