package modifier

import "math"

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Bounds returns the shape's axis-aligned bounding box ignoring rotation.
// Shapes with explicit dimensions use them directly; otherwise the size is
// estimated per shape type from well-known properties, falling back to
// DefaultSize.
func (s Shape) Bounds() Rect {
	w, h := s.estimateSize()
	return Rect{
		Min: s.Position(),
		Max: s.Position().Add(Point{X: w, Y: h}),
	}
}

// RotatedBounds returns the axis-aligned box enclosing the shape as it
// appears on canvas. The stored position is the rotated top-left corner
// (VisualCenter = position + half.Rotate(rotation)), so the displayed
// corners are the unrotated corner offsets rotated about the position.
func (s Shape) RotatedBounds() Rect {
	if s.Rotation == 0 {
		return s.Bounds()
	}
	b := s.Bounds()
	corners := []Point{
		b.Min,
		{X: b.Max.X, Y: b.Min.Y},
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
	}
	result := EmptyRect()
	for _, c := range corners {
		result = result.UnionPoint(c.RotateAround(b.Min, s.Rotation))
	}
	return result
}

// estimateSize returns the effective width and height of the shape.
// Explicit dimensions win; otherwise type-specific heuristics apply.
func (s Shape) estimateSize() (w, h float64) {
	if s.Width > 0 && s.Height > 0 {
		return s.Width, s.Height
	}
	switch s.Type {
	case "circle":
		r := s.propFloat("radius", DefaultSize/2)
		return 2 * r, 2 * r
	case "ellipse":
		rx := s.propFloat("radiusX", DefaultSize/2)
		ry := s.propFloat("radiusY", DefaultSize/2)
		return 2 * rx, 2 * ry
	case "line":
		// Line endpoints are stored relative to the position. Axis-aligned
		// lines keep a hairline extent on the flat axis so the measured
		// bounds never collapse into an empty rect.
		w = math.Abs(s.propFloat("x2", DefaultSize))
		h = math.Abs(s.propFloat("y2", 0))
		return math.Max(w, 1), math.Max(h, 1)
	case "text":
		size := s.propFloat("fontSize", 16)
		runes := 0
		if t, ok := s.Props["text"].(string); ok {
			runes = len([]rune(t))
		}
		if runes == 0 {
			runes = 1
		}
		return size * 0.6 * float64(runes), size * 1.2
	}
	return s.Dimensions()
}

// GroupBounds returns the axis-aligned bounding box across a set of shapes,
// using each shape's own rotated bounds. Returns an empty rect for an empty
// slice.
func GroupBounds(shapes []Shape) Rect {
	result := EmptyRect()
	for _, s := range shapes {
		result = result.Union(s.RotatedBounds())
	}
	return result
}
