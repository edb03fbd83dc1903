package draw

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fplot"
	"github.com/gogpu/fplot/internal/cache"
)

// faceCacheCapacity bounds the number of label sizes kept as faces.
// Label sizes come from a handful of font scales, so this is rarely hit.
const faceCacheCapacity = 16

// ErrEmptyViewport is returned by Render for frames with no area.
var ErrEmptyViewport = errors.New("draw: empty viewport")

// Renderer draws fplot frames onto gg contexts.
type Renderer struct {
	Style Style

	source *text.FontSource
	faces  *cache.LRU[float64, text.Face]
}

// NewRenderer returns a renderer that draws labels in Go Regular.
func NewRenderer(style Style) (*Renderer, error) {
	return NewRendererWithFont(style, goregular.TTF)
}

// NewRendererWithFont returns a renderer that draws labels with the given
// TrueType or OpenType font data.
func NewRendererWithFont(style Style, font []byte) (*Renderer, error) {
	source, err := text.NewFontSource(font)
	if err != nil {
		return nil, fmt.Errorf("draw: load font: %w", err)
	}
	return &Renderer{
		Style:  style,
		source: source,
		faces:  cache.New[float64, text.Face](faceCacheCapacity),
	}, nil
}

// Close releases the font.
func (r *Renderer) Close() error {
	r.faces.Clear()
	return r.source.Close()
}

func (r *Renderer) face(size float64) text.Face {
	return r.faces.GetOrCreate(size, func() text.Face {
		return r.source.Face(size)
	})
}

// MeasureText implements fplot.TextMeasurer. The height is the line
// height of the face.
func (r *Renderer) MeasureText(s string, size float64) (width, height float64) {
	if size <= 0 {
		return 0, 0
	}
	return text.Measure(s, r.face(size))
}

// Render draws f onto a new context sized to the frame viewport.
func (r *Renderer) Render(f fplot.Frame) (*gg.Context, error) {
	if f.Viewport.Width <= 0 || f.Viewport.Height <= 0 {
		return nil, ErrEmptyViewport
	}
	dc := gg.NewContext(f.Viewport.Width, f.Viewport.Height)
	if err := r.Draw(dc, f); err != nil {
		return nil, err
	}
	return dc, nil
}

// Draw paints f onto dc: background, grid, axes, tick marks, labels and
// finally the curves, so curves stay on top.
func (r *Renderer) Draw(dc *gg.Context, f fplot.Frame) error {
	st := r.Style
	dc.ClearWithColor(gg.FromColor(st.Background))

	grid := gg.DefaultStroke().WithWidth(st.GridWidth).WithDashPattern(st.GridDash...)
	if err := strokeLines(dc, f.GridLines, st.Grid, grid); err != nil {
		return fmt.Errorf("draw: grid: %w", err)
	}
	if err := strokeLines(dc, f.AxisLines, st.Axis, solid(st.AxisWidth)); err != nil {
		return fmt.Errorf("draw: axes: %w", err)
	}
	if err := strokeLines(dc, f.TickMarks, st.Axis, solid(st.TickWidth)); err != nil {
		return fmt.Errorf("draw: ticks: %w", err)
	}

	dc.SetColor(st.Label)
	for _, l := range f.TickLabels {
		face := r.face(l.FontSize)
		dc.SetFont(face)
		dc.DrawString(l.Text, l.Bounds.Min.X, l.Bounds.Min.Y+face.Metrics().Ascent)
	}

	for _, c := range f.Curves {
		if err := r.drawCurve(dc, c); err != nil {
			return fmt.Errorf("draw: curve %q: %w", c.Plot.Expression(), err)
		}
	}
	return nil
}

// DrawPixels draws f onto dc and returns the context's premultiplied RGBA
// pixels, row by row, after flushing pending GPU work. The slice aliases
// dc's buffer and is valid until the next drawing call.
func (r *Renderer) DrawPixels(dc *gg.Context, f fplot.Frame) ([]byte, error) {
	if err := r.Draw(dc, f); err != nil {
		return nil, err
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("draw: flush: %w", err)
	}
	return dc.ResizeTarget().Data(), nil
}

func (r *Renderer) drawCurve(dc *gg.Context, c fplot.Curve) error {
	if len(c.Segments) == 0 {
		return nil
	}
	dc.SetColor(c.Plot.Color())
	dc.SetStroke(solid(r.Style.CurveWidth).WithJoin(gg.LineJoinRound))
	for _, seg := range c.Segments {
		dc.MoveTo(seg[0].X, seg[0].Y)
		for _, p := range seg[1:] {
			dc.LineTo(p.X, p.Y)
		}
	}
	return dc.Stroke()
}

// solid returns an undashed stroke of width w.
func solid(w float64) gg.Stroke {
	return gg.DefaultStroke().WithWidth(w)
}

// strokeLines sets the whole stroke style before drawing; once a context
// holds a Stroke, SetLineWidth no longer affects it.
func strokeLines(dc *gg.Context, lines []fplot.Line, c color.Color, stroke gg.Stroke) error {
	if len(lines) == 0 {
		return nil
	}
	dc.SetColor(c)
	dc.SetStroke(stroke)
	for _, l := range lines {
		dc.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y)
	}
	return dc.Stroke()
}
