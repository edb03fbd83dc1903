package draw

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Style holds the colors and stroke widths used to draw a frame.
// Curve colors come from the plots themselves.
type Style struct {
	Background color.Color
	Grid       color.Color
	Axis       color.Color
	Label      color.Color

	GridWidth  float64
	AxisWidth  float64
	TickWidth  float64
	CurveWidth float64

	// GridDash is the dash pattern of grid lines. Empty means solid.
	GridDash []float64
}

// DefaultStyle returns black axes and labels over a white background with
// a dashed light gray grid.
func DefaultStyle() Style {
	return Style{
		Background: colornames.White,
		Grid:       colornames.Lightgray,
		Axis:       colornames.Black,
		Label:      colornames.Black,
		GridWidth:  0.5,
		AxisWidth:  1.5,
		TickWidth:  1,
		CurveWidth: 2,
		GridDash:   []float64{4, 4},
	}
}
