package modifier

// gridArray expands each input instance into a rows-by-columns lattice in
// row-major order. Unlike the other arrays it works on raw positions:
// rotation and scale pass through unchanged from the input instance.
type gridArray struct{}

func (gridArray) Kind() Type { return TypeGridArray }

func (gridArray) Apply(col InstanceCollection, mod Modifier) InstanceCollection {
	s, ok := mod.Settings.(GridArraySettings)
	if !ok {
		settingsMismatch(mod, TypeGridArray)
		return col
	}
	s = s.normalize()

	out := col
	out.Instances = make([]Instance, 0, len(col.Instances)*s.Rows*s.Columns)
	for _, in := range col.Instances {
		targetW, targetH := targetDimensions(col, in)
		offset := Point{X: s.OffsetX / 100 * targetW, Y: s.OffsetY / 100 * targetH}
		spacing := Point{X: s.SpacingX / 100 * targetW, Y: s.SpacingY / 100 * targetH}

		for row := 0; row < s.Rows; row++ {
			for c := 0; c < s.Columns; c++ {
				pos := in.Transform.Position().
					Add(offset).
					Add(Point{X: float64(c) * spacing.X, Y: float64(row) * spacing.Y})

				prov := in.Prov
				prov.Source = in.Index
				prov.ArrayIndex = row*s.Columns + c
				prov.Row = row
				prov.Col = c

				out.Instances = append(out.Instances, Instance{
					Shape:     in.Shape,
					Transform: in.Transform.WithPosition(pos),
					Prov:      prov,
				})
			}
		}
	}
	return out.reindex()
}
