package main

import (
	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/fplot"
	"github.com/gogpu/fplot/draw"
)

// viewer adapts an fplot engine to ebiten's game loop. Frames are redrawn
// with gg only after input changed the view; otherwise the last frame is
// reused.
type viewer struct {
	eng *fplot.Engine
	r   *draw.Renderer

	dc     *gg.Context
	frame  *ebiten.Image
	size   fplot.Size
	cursor fplot.Point
	dirty  bool
}

func newViewer(eng *fplot.Engine, r *draw.Renderer) *viewer {
	return &viewer{eng: eng, r: r, dirty: true}
}

func (v *viewer) Update() error {
	x, y := ebiten.CursorPosition()
	p := fplot.Pt(float64(x), float64(y))
	moved := p != v.cursor
	v.cursor = p

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		v.eng.OnPointerDown(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		v.eng.OnPointerUp(p)
	case moved:
		v.markIf(v.eng.OnPointerMove(p))
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		v.markIf(v.eng.OnScroll(dy, p))
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.eng.ResetView()
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		v.eng.SetShowGrid(!v.eng.CoordinateSystem().ShowGrid)
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		v.eng.ClearFunctions()
		v.dirty = true
	}
	return nil
}

func (v *viewer) markIf(changed bool) {
	if changed {
		v.dirty = true
	}
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.dirty {
		v.redraw()
	}
	if v.frame != nil {
		screen.DrawImage(v.frame, nil)
	}
}

func (v *viewer) redraw() {
	w, h := v.size.Width, v.size.Height
	if w <= 0 || h <= 0 {
		return
	}
	if v.dc == nil {
		v.dc = gg.NewContext(w, h)
	} else if err := v.dc.Resize(w, h); err != nil {
		fplot.Logger().Warn("fplotview: resize failed", "err", err)
		return
	}
	pix, err := v.r.DrawPixels(v.dc, v.eng.Render())
	if err != nil {
		fplot.Logger().Warn("fplotview: draw failed", "err", err)
		return
	}

	if v.frame == nil || v.frame.Bounds().Dx() != w || v.frame.Bounds().Dy() != h {
		if v.frame != nil {
			v.frame.Deallocate()
		}
		v.frame = ebiten.NewImage(w, h)
	}
	v.frame.WritePixels(pix)
	v.dirty = false
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if size := fplot.Sz(outsideWidth, outsideHeight); size != v.size {
		v.size = size
		v.eng.OnResize(size)
		v.dirty = true
	}
	return outsideWidth, outsideHeight
}
