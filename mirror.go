package modifier

import "math"

// MirrorOrder selects how reflected instances are ordered relative to their
// originals. The reversal of each sub-group is a visual convention — it makes
// the mirrored continuation of an array read contiguous instead of
// reversed-then-duplicated — not a geometric necessity, so it is swappable.
type MirrorOrder int

const (
	// MirrorOrderContiguous reverses reflected instances within each
	// originating sub-group (instances sharing a provenance source).
	// This is the default.
	MirrorOrderContiguous MirrorOrder = iota

	// MirrorOrderAppend emits reflected instances in the same order as
	// their originals.
	MirrorOrderAppend
)

// mirror reflects the entire current instance collection across a line
// through the collection's bounding-box center. Reflecting the compound
// state, rather than each instance independently, is what makes "mirrored
// array" and "array of mirror" compositions work.
type mirror struct {
	order MirrorOrder
}

func (mirror) Kind() Type { return TypeMirror }

func (m mirror) Apply(col InstanceCollection, mod Modifier) InstanceCollection {
	s, ok := mod.Settings.(MirrorSettings)
	if !ok {
		settingsMismatch(mod, TypeMirror)
		return col
	}
	s = s.normalize()
	if len(col.Instances) == 0 {
		return col
	}

	center := col.Bounds().Center()
	var line float64
	if s.Axis == AxisX {
		line = center.X + s.Offset
	} else {
		line = center.Y + s.Offset
	}

	// Reflect every instance, then order per policy, then merge-filter in
	// emission order so the threshold sees instances in their final order.
	reflected := make([]Instance, len(col.Instances))
	for i, in := range col.Instances {
		reflected[i] = reflectInstance(in, s.Axis, line)
	}
	if m.order == MirrorOrderContiguous {
		reflected = reverseSubGroups(reflected, col.Instances)
	}

	out := col
	out.Instances = append([]Instance(nil), col.Instances...)
	for _, cand := range reflected {
		if s.MergeThreshold > 0 && mergesInto(cand, out.Instances, s.MergeThreshold) {
			continue
		}
		out.Instances = append(out.Instances, cand)
	}
	return out.reindex()
}

// reflectInstance mirrors one instance across the given line.
//
// Axis X: the visual center's x is reflected, rotation becomes pi−rotation,
// and a flipped-X flag is recorded. Axis Y: y is reflected, rotation is
// negated, flipped-Y is recorded. Flip flags stand in for negative scale,
// which cannot be supported generically across arbitrary shape kinds.
func reflectInstance(in Instance, axis Axis, line float64) Instance {
	c := in.VisualCenter()
	var mc Point
	var rot float64

	prov := in.Prov
	prov.Source = in.Index
	prov.Mirrored = true
	if axis == AxisX {
		mc = Point{X: 2*line - c.X, Y: c.Y}
		rot = math.Pi - in.Transform.Rotation
		prov.FlippedX = true
	} else {
		mc = Point{X: c.X, Y: 2*line - c.Y}
		rot = -in.Transform.Rotation
		prov.FlippedY = true
	}

	return Instance{
		Shape:     in.Shape,
		Transform: in.placedAtCenter(mc, rot),
		Prov:      prov,
	}
}

// reverseSubGroups reverses each run of reflected instances whose originals
// share a compound sub-group, keeping the runs themselves in first-appearance
// order. The sub-group is identified by following the originals' provenance
// chain one step back: instances expanded from the same pre-mirror ancestor
// belong together.
func reverseSubGroups(reflected, originals []Instance) []Instance {
	out := make([]Instance, 0, len(reflected))
	for start := 0; start < len(reflected); {
		end := start + 1
		for end < len(reflected) && originals[end].Prov.Source == originals[start].Prov.Source {
			end++
		}
		for i := end - 1; i >= start; i-- {
			out = append(out, reflected[i])
		}
		start = end
	}
	return out
}

// mergesInto reports whether the candidate's position lies within threshold
// of any already-emitted instance.
func mergesInto(cand Instance, existing []Instance, threshold float64) bool {
	c := cand.VisualCenter()
	for _, in := range existing {
		if c.Distance(in.VisualCenter()) < threshold {
			return true
		}
	}
	return false
}
