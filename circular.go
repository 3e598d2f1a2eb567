package modifier

import "math"

// circularArray places Count copies of each input instance on an arc.
// The arc center is back-solved from the start angle so instance 0 lands
// exactly on the source; there is no special-cased first element.
type circularArray struct{}

func (circularArray) Kind() Type { return TypeCircularArray }

func (circularArray) Apply(col InstanceCollection, mod Modifier) InstanceCollection {
	s, ok := mod.Settings.(CircularArraySettings)
	if !ok {
		settingsMismatch(mod, TypeCircularArray)
		return col
	}
	s = s.normalize()

	start := Radians(s.StartAngle)
	var step float64
	if s.Count > 1 {
		step = Radians(s.EndAngle-s.StartAngle) / float64(s.Count-1)
	}

	out := col
	out.Instances = make([]Instance, 0, len(col.Instances)*s.Count)
	for _, in := range col.Instances {
		anchor := expansionPivot(col, in)

		// Back-solve the ring center so that angle start lands on the
		// anchor. The center offset shifts the whole ring, the first
		// instance included.
		ringCenter := anchor.
			Add(Point{X: s.CenterOffsetX, Y: s.CenterOffsetY}).
			Sub(dir(start).Mul(s.Radius))

		for i := 0; i < s.Count; i++ {
			angle := start + float64(i)*step
			pos := ringCenter.Add(dir(angle).Mul(s.Radius))

			delta := Radians(s.RotateAll) + float64(i)*Radians(s.RotateEach)
			if s.AlignToTangent {
				delta += angle + math.Pi/2
			}

			// Carry the instance rigidly: its center keeps the same
			// offset from the anchor, rotated by the extra rotation.
			center := in.VisualCenter().Sub(anchor).Rotate(delta).Add(pos)
			rot := in.Transform.Rotation + delta

			prov := in.Prov
			prov.Source = in.Index
			prov.ArrayIndex = i
			prov.Angle = angle

			out.Instances = append(out.Instances, Instance{
				Shape:     in.Shape,
				Transform: in.placedAtCenter(center, rot),
				Prov:      prov,
			})
		}
	}
	return out.reindex()
}

// dir returns the unit vector at angle radians (y-down canvas convention).
func dir(angle float64) Point {
	return Point{X: math.Cos(angle), Y: math.Sin(angle)}
}
