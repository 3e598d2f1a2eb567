package modifier

import "github.com/google/uuid"

// DefaultSize is the width and height assumed for shapes that carry no
// explicit size fields.
const DefaultSize = 100.0

// Shape is a canvas object: a top-left-anchored position, a rotation about
// the visual center, optional dimensions, and opaque type-specific bags.
//
// Shape is an immutable value as far as this package is concerned: the engine
// never mutates a Shape in place — every transformation produces a new value.
// The Props and Meta maps are owned by the caller; the engine only reads them
// and copies them (shallow per key) when deriving new shapes.
type Shape struct {
	ID       string
	Type     string
	X, Y     float64
	Rotation float64 // radians
	Width    float64 // <= 0 means no explicit size
	Height   float64 // <= 0 means no explicit size
	Props    map[string]any
	Meta     map[string]any
}

// NewShape creates a shape with a fresh ID at the given top-left position.
func NewShape(typ string, x, y, width, height float64) Shape {
	return Shape{
		ID:     uuid.NewString(),
		Type:   typ,
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

// Position returns the shape's top-left anchor point.
func (s Shape) Position() Point {
	return Point{X: s.X, Y: s.Y}
}

// Dimensions returns the shape's width and height, falling back to
// DefaultSize for axes with no explicit size.
func (s Shape) Dimensions() (w, h float64) {
	w, h = s.Width, s.Height
	if w <= 0 {
		w = DefaultSize
	}
	if h <= 0 {
		h = DefaultSize
	}
	return w, h
}

// HalfDimensions returns the half-width/half-height vector.
func (s Shape) HalfDimensions() Point {
	w, h := s.Dimensions()
	return Point{X: w / 2, Y: h / 2}
}

// VisualCenter returns the center of the shape as it appears on canvas.
// The stored position is top-left-anchored, so the center is the position
// plus the half-dimension vector rotated by the shape's own rotation.
func (s Shape) VisualCenter() Point {
	return s.Position().Add(s.HalfDimensions().Rotate(s.Rotation))
}

// Clone returns a copy of the shape with its own Props and Meta maps.
func (s Shape) Clone() Shape {
	c := s
	c.Props = cloneBag(s.Props)
	c.Meta = cloneBag(s.Meta)
	return c
}

// propFloat reads a numeric property from the shape's bag.
// Returns def when the key is absent or not numeric.
func (s Shape) propFloat(key string, def float64) float64 {
	v, ok := s.Props[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	}
	return def
}

func cloneBag(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	c := make(map[string]any, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
