package modifier

import "math"

// minScale is the floor applied to degenerate (zero or negative) scale
// settings so scale never collapses geometry entirely.
const minScale = 0.01

// LinearArraySettings configures a linear array: count copies along a
// direction vector given as percentages of the target dimensions.
type LinearArraySettings struct {
	// Count is the total number of instances per input, including the
	// original. Clamped to a minimum of 1.
	Count int

	// OffsetX and OffsetY are per-step offsets in percent of the target
	// width and height (the shape's own dimensions, or the group bounding
	// box in group mode). 100 means one full width/height per step.
	OffsetX float64
	OffsetY float64

	// RotationStep is added per index, in degrees (instance i gets
	// i*RotationStep).
	RotationStep float64

	// RotateAll is a uniform rotation applied to every instance, in degrees.
	RotateAll float64

	// ScaleStep is the scale of the final instance in percent; intermediate
	// instances interpolate linearly from 100 down (or up) to it.
	// Zero means no scaling (100).
	ScaleStep float64
}

func (LinearArraySettings) kind() Type { return TypeLinearArray }

func (s LinearArraySettings) normalize() LinearArraySettings {
	if s.Count < 1 {
		Logger().Debug("clamped linear-array count", "count", s.Count)
		s.Count = 1
	}
	if s.ScaleStep == 0 {
		s.ScaleStep = 100
	} else if s.ScaleStep < minScale*100 {
		Logger().Debug("clamped linear-array scale step", "scaleStep", s.ScaleStep)
		s.ScaleStep = minScale * 100
	}
	s.OffsetX = finite(s.OffsetX)
	s.OffsetY = finite(s.OffsetY)
	s.RotationStep = finite(s.RotationStep)
	s.RotateAll = finite(s.RotateAll)
	return s
}

// CircularArraySettings configures a circular array: count copies placed on
// an arc around a back-solved center so instance 0 stays on the source.
type CircularArraySettings struct {
	// Count is the total number of instances per input. Clamped to 1.
	Count int

	// Radius is the arc radius in pixels.
	Radius float64

	// StartAngle and EndAngle bound the arc, in degrees. The angle step is
	// (EndAngle-StartAngle)/(Count-1), so both endpoints are occupied.
	StartAngle float64
	EndAngle   float64

	// CenterOffsetX and CenterOffsetY shift the arc center in pixels.
	// The shift moves the whole ring, instance 0 included.
	CenterOffsetX float64
	CenterOffsetY float64

	// RotateEach is added per index, in degrees.
	RotateEach float64

	// RotateAll is a uniform rotation applied to every instance, in degrees.
	RotateAll float64

	// AlignToTangent rotates each instance to follow the arc direction.
	AlignToTangent bool
}

func (CircularArraySettings) kind() Type { return TypeCircularArray }

func (s CircularArraySettings) normalize() CircularArraySettings {
	if s.Count < 1 {
		Logger().Debug("clamped circular-array count", "count", s.Count)
		s.Count = 1
	}
	if s.Radius < 0 || math.IsNaN(s.Radius) {
		Logger().Debug("clamped circular-array radius", "radius", s.Radius)
		s.Radius = 0
	}
	s.StartAngle = finite(s.StartAngle)
	s.EndAngle = finite(s.EndAngle)
	s.CenterOffsetX = finite(s.CenterOffsetX)
	s.CenterOffsetY = finite(s.CenterOffsetY)
	s.RotateEach = finite(s.RotateEach)
	s.RotateAll = finite(s.RotateAll)
	return s
}

// GridArraySettings configures a rows-by-columns grid in row-major order.
type GridArraySettings struct {
	// Rows and Columns are clamped to a minimum of 1 each.
	Rows    int
	Columns int

	// SpacingX and SpacingY are the per-cell spacing in percent of the
	// target width and height.
	SpacingX float64
	SpacingY float64

	// OffsetX and OffsetY shift the whole grid, in percent of the target
	// dimensions.
	OffsetX float64
	OffsetY float64
}

func (GridArraySettings) kind() Type { return TypeGridArray }

func (s GridArraySettings) normalize() GridArraySettings {
	if s.Rows < 1 {
		Logger().Debug("clamped grid-array rows", "rows", s.Rows)
		s.Rows = 1
	}
	if s.Columns < 1 {
		Logger().Debug("clamped grid-array columns", "columns", s.Columns)
		s.Columns = 1
	}
	s.SpacingX = finite(s.SpacingX)
	s.SpacingY = finite(s.SpacingY)
	s.OffsetX = finite(s.OffsetX)
	s.OffsetY = finite(s.OffsetY)
	return s
}

// Axis selects the reflection axis for a mirror modifier.
type Axis string

// Reflection axes. AxisX flips horizontally across a vertical line;
// AxisY flips vertically across a horizontal line.
const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// MirrorSettings configures a mirror: the whole current instance collection
// is reflected across a line through the collection's bounding-box center.
type MirrorSettings struct {
	// Axis selects the reflection line orientation. Invalid values fall
	// back to AxisX.
	Axis Axis

	// Offset shifts the reflection line from the bounding-box center,
	// in pixels.
	Offset float64

	// MergeThreshold drops a reflected instance whose position lands within
	// this distance (pixels, Euclidean) of an existing instance — the
	// analogue of boolean-union merge. Zero keeps every reflection.
	MergeThreshold float64
}

func (MirrorSettings) kind() Type { return TypeMirror }

func (s MirrorSettings) normalize() MirrorSettings {
	if s.Axis != AxisX && s.Axis != AxisY {
		Logger().Debug("defaulted mirror axis", "axis", string(s.Axis))
		s.Axis = AxisX
	}
	if s.MergeThreshold < 0 || math.IsNaN(s.MergeThreshold) {
		Logger().Debug("clamped mirror merge threshold", "threshold", s.MergeThreshold)
		s.MergeThreshold = 0
	}
	s.Offset = finite(s.Offset)
	return s
}

// finite maps NaN and infinities to 0 so malformed settings cannot propagate
// through position math.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
