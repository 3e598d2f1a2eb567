package modifier

// Transform is a placement applied on top of a Shape's own geometry:
// an absolute top-left position, a rotation in radians about the visual
// center, and per-axis scale factors applied about the visual center.
type Transform struct {
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

// IdentityTransform returns the placement that reproduces the shape exactly
// where it is.
func IdentityTransform(s Shape) Transform {
	return Transform{
		X:        s.X,
		Y:        s.Y,
		Rotation: s.Rotation,
		ScaleX:   1,
		ScaleY:   1,
	}
}

// Position returns the transform's top-left anchor point.
func (t Transform) Position() Point {
	return Point{X: t.X, Y: t.Y}
}

// WithPosition returns a copy of the transform moved to p.
func (t Transform) WithPosition(p Point) Transform {
	t.X, t.Y = p.X, p.Y
	return t
}
