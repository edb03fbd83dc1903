package fplot

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Palette is the default sequence of curve colors.
var Palette = []color.Color{
	colornames.Red,
	colornames.Blue,
	colornames.Green,
	colornames.Yellow,
	colornames.Purple,
	colornames.Orange,
	colornames.Brown,
}

// PaletteColor returns the i-th palette color, cycling.
func PaletteColor(i int) color.Color {
	i %= len(Palette)
	if i < 0 {
		i += len(Palette)
	}
	return Palette[i]
}

// ParseColor parses an SVG color name ("red", "steelblue") or a hex
// color in one of the forms "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA".
// The leading '#' is optional for hex input.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")

	var digits [8]uint8
	for i := 0; i < len(hex); i++ {
		if i >= len(digits) {
			return nil, fmt.Errorf("fplot: invalid color %q", s)
		}
		d, ok := hexDigit(hex[i])
		if !ok {
			return nil, fmt.Errorf("fplot: invalid color %q", s)
		}
		digits[i] = d
	}

	switch len(hex) {
	case 3, 4:
		c := color.NRGBA{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 255}
		if len(hex) == 4 {
			c.A = digits[3] * 17
		}
		return c, nil
	case 6, 8:
		c := color.NRGBA{
			R: digits[0]<<4 | digits[1],
			G: digits[2]<<4 | digits[3],
			B: digits[4]<<4 | digits[5],
			A: 255,
		}
		if len(hex) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
		return c, nil
	default:
		return nil, fmt.Errorf("fplot: invalid color %q", s)
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// SplitColorSuffix splits "expr:color" into the expression and its color.
// When the text after the last ':' is not a color the whole string is the
// expression, so ternaries like "x > 0 ? x : -x" pass through unchanged.
// Without a color the i-th palette color is returned.
func SplitColorSuffix(s string, i int) (expression string, c color.Color) {
	if j := strings.LastIndex(s, ":"); j >= 0 {
		if c, err := ParseColor(s[j+1:]); err == nil {
			return strings.TrimSpace(s[:j]), c
		}
	}
	return strings.TrimSpace(s), PaletteColor(i)
}
