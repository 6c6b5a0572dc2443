package geometry

import "math"

// Vec is a 2D point or velocity in world units.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// CirclesOverlap reports whether two circles are strictly closer than the sum of their radii.
func CirclesOverlap(a Vec, ra float64, b Vec, rb float64) bool {
	return Distance(a, b) < ra+rb
}

// WouldCollide reports whether a circle at center with the given radius,
// advanced one tick by velocity, touches r inflated on every side by
// cellSize/2 - radius - 1. The inflation snaps the boundary to the cell grid
// so that any body narrower than a cell stays confined to cell-wide corridors.
func WouldCollide(center Vec, radius float64, velocity Vec, r Rect, cellSize float64) bool {
	padding := cellSize/2 - radius - 1
	return center.Y-radius+velocity.Y <= r.Y+r.Height+padding &&
		center.X+radius+velocity.X >= r.X-padding &&
		center.Y+radius+velocity.Y >= r.Y-padding &&
		center.X-radius+velocity.X <= r.X+r.Width+padding
}
