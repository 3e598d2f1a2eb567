package modifier

// linearArray expands each input instance into Count copies along a
// direction vector, with optional per-index rotation and scale
// interpolation.
type linearArray struct{}

func (linearArray) Kind() Type { return TypeLinearArray }

func (linearArray) Apply(col InstanceCollection, mod Modifier) InstanceCollection {
	s, ok := mod.Settings.(LinearArraySettings)
	if !ok {
		settingsMismatch(mod, TypeLinearArray)
		return col
	}
	s = s.normalize()

	out := col
	out.Instances = make([]Instance, 0, len(col.Instances)*s.Count)
	for _, in := range col.Instances {
		targetW, targetH := targetDimensions(col, in)
		pivot := expansionPivot(col, in)

		// Percentage offsets become pixel offsets against the target
		// dimensions, rotated into the target's local axes so arrays
		// follow a rotated source instead of orbiting incorrectly.
		step := Point{X: s.OffsetX / 100 * targetW, Y: s.OffsetY / 100 * targetH}
		if basis := offsetBasis(col, in); basis != 0 {
			step = step.Rotate(basis)
		}

		for i := 0; i < s.Count; i++ {
			delta := Radians(s.RotateAll + float64(i)*s.RotationStep)

			// Rotate about the pivot first, then translate. In
			// single-shape mode the pivot is the instance's own center,
			// so rotation leaves the center in place; in group mode
			// members orbit the group center as a rigid unit.
			center := in.VisualCenter().
				RotateAround(pivot, delta).
				Add(step.Mul(float64(i)))
			rot := in.Transform.Rotation + delta

			scale := 1.0
			if s.Count > 1 {
				// Linear interpolation from 1.0 at i=0 to ScaleStep/100
				// at the final index. Count 1 stays at 1.0.
				t := float64(i) / float64(s.Count-1)
				scale = 1 + (s.ScaleStep/100-1)*t
			}

			tf := in.placedAtCenter(center, rot)
			tf.ScaleX = in.Transform.ScaleX * scale
			tf.ScaleY = in.Transform.ScaleY * scale

			prov := in.Prov
			prov.Source = in.Index
			prov.ArrayIndex = i

			out.Instances = append(out.Instances, Instance{
				Shape:     in.Shape,
				Transform: tf,
				Prov:      prov,
			})
		}
	}
	return out.reindex()
}
