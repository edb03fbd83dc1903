package fplot

import "math"

// DefaultScale is the initial zoom level in pixels per world unit.
const DefaultScale = 50.0

// CoordinateSystem is the affine map between world coordinates and
// screen coordinates, together with the pan/zoom/drag state that moves it.
//
// The map is
//
//	screen.x = origin.x + world.x * scale
//	screen.y = origin.y - world.y * scale
//
// so world Y grows upward while screen Y grows downward.
//
// A CoordinateSystem is owned by a single controller (normally an
// [Engine]) and is not safe for concurrent use.
type CoordinateSystem struct {
	// Scale is the number of pixels per world unit. It must stay > 0.
	Scale float64

	// Origin is the screen point that world (0, 0) maps to.
	Origin Point

	// Viewport is the size of the drawing surface in pixels.
	Viewport Size

	// ShowGrid enables grid lines in rendered frames.
	ShowGrid bool

	// MinScale and MaxScale bound Zoom when non-zero.
	MinScale, MaxScale float64

	dragging    bool
	lastPointer Point
}

// NewCoordinateSystem returns a coordinate system at [DefaultScale] with
// world (0, 0) in the middle of the viewport and the grid enabled.
func NewCoordinateSystem(viewport Size) *CoordinateSystem {
	return &CoordinateSystem{
		Scale:    DefaultScale,
		Origin:   viewport.Center(),
		Viewport: viewport,
		ShowGrid: true,
	}
}

// WorldToScreen converts a world point to screen pixels.
func (cs *CoordinateSystem) WorldToScreen(world Point) Point {
	return Point{
		X: cs.Origin.X + world.X*cs.Scale,
		Y: cs.Origin.Y - world.Y*cs.Scale,
	}
}

// ScreenToWorld converts a screen point to world coordinates.
// It is the exact inverse of WorldToScreen.
func (cs *CoordinateSystem) ScreenToWorld(screen Point) Point {
	return Point{
		X: (screen.X - cs.Origin.X) / cs.Scale,
		Y: (cs.Origin.Y - screen.Y) / cs.Scale,
	}
}

// Pan moves the origin by a screen-space delta.
func (cs *CoordinateSystem) Pan(delta Point) {
	cs.Origin = cs.Origin.Add(delta)
}

// Zoom multiplies the scale by factor while keeping the world point under
// anchor (a screen point) fixed.
//
// There is no default bound on the scale; extreme zoom levels lose
// floating-point precision. A step that would leave the scale non-finite
// or non-positive is ignored and reported as false. When MinScale or
// MaxScale are set the new scale is clamped to them.
func (cs *CoordinateSystem) Zoom(factor float64, anchor Point) bool {
	next := cs.Scale * factor
	if cs.MinScale > 0 && next < cs.MinScale {
		next = cs.MinScale
	}
	if cs.MaxScale > 0 && next > cs.MaxScale {
		next = cs.MaxScale
	}
	if !isFinite(next) || next <= 0 {
		Logger().Debug("fplot: zoom step rejected", "scale", cs.Scale, "factor", factor)
		return false
	}

	before := cs.ScreenToWorld(anchor)
	cs.Scale = next
	after := cs.ScreenToWorld(anchor)

	cs.Origin.X += (after.X - before.X) * cs.Scale
	cs.Origin.Y -= (after.Y - before.Y) * cs.Scale
	return true
}

// StartDrag enters the dragging state with p as the anchor.
func (cs *CoordinateSystem) StartDrag(p Point) {
	cs.lastPointer = p
	cs.dragging = true
}

// HandleDrag pans by the distance from the last pointer position and
// records p as the new anchor. It does nothing unless a drag is active.
func (cs *CoordinateSystem) HandleDrag(p Point) {
	if !cs.dragging {
		return
	}
	cs.Pan(p.Sub(cs.lastPointer))
	cs.lastPointer = p
}

// EndDrag leaves the dragging state.
func (cs *CoordinateSystem) EndDrag() {
	cs.dragging = false
}

// IsDragging reports whether a drag is in progress.
func (cs *CoordinateSystem) IsDragging() bool {
	return cs.dragging
}

// Resize updates the viewport size. The origin is left where it is.
func (cs *CoordinateSystem) Resize(viewport Size) {
	cs.Viewport = viewport
}

// VisibleRange returns the world rectangle covered by the viewport.
func (cs *CoordinateSystem) VisibleRange() Rect {
	topLeft := cs.ScreenToWorld(Point{})
	bottomRight := cs.ScreenToWorld(Point{
		X: float64(cs.Viewport.Width),
		Y: float64(cs.Viewport.Height),
	})
	return Rect{
		Min: Point{X: math.Min(topLeft.X, bottomRight.X), Y: math.Min(topLeft.Y, bottomRight.Y)},
		Max: Point{X: math.Max(topLeft.X, bottomRight.X), Y: math.Max(topLeft.Y, bottomRight.Y)},
	}
}

// Contains reports whether a world point is inside the visible range.
func (cs *CoordinateSystem) Contains(world Point) bool {
	return cs.VisibleRange().Contains(world)
}
