package modifier

// Processor expands or transforms an instance collection according to one
// modifier. Implementations are pure: they read the input state and the
// modifier settings and return a new state, never mutating shared data.
type Processor interface {
	// Kind returns the modifier type this processor handles.
	Kind() Type

	// Apply consumes the output of the previous stage and produces the next
	// one. Group context, when present, travels on the collection.
	Apply(state InstanceCollection, mod Modifier) InstanceCollection
}

// settingsMismatch logs a modifier whose settings record does not match its
// declared type. The stage is skipped, never fatal. Stack.Process checks
// this before dispatch; the per-processor guards remain for direct Apply
// callers.
func settingsMismatch(mod Modifier, want Type) {
	got := ""
	if mod.Settings != nil {
		got = string(mod.Settings.kind())
	}
	Logger().Warn("skipping modifier with mismatched settings",
		"id", mod.ID, "want", string(want), "got", got)
}

// targetDimensions returns the base for percentage-relative settings: the
// group bounding box in group mode, the instance's own shape otherwise.
// Within one Process call the base never mixes, because the group context is
// resolved once and carried on the collection.
func targetDimensions(col InstanceCollection, in Instance) (w, h float64) {
	if col.Group != nil {
		return col.Group.Dimensions()
	}
	return in.Shape.Dimensions()
}

// expansionPivot returns the rotation pivot for array expansion: the group
// center in group mode (members orbit the group as a rigid unit), the
// instance's own visual center otherwise.
func expansionPivot(col InstanceCollection, in Instance) Point {
	if col.Group != nil {
		return col.Group.Center()
	}
	return in.VisualCenter()
}

// offsetBasis returns the rotation applied to percentage offset vectors so
// they follow the target's local axes: the group's live rotation in group
// mode, the instance's current rotation otherwise.
func offsetBasis(col InstanceCollection, in Instance) float64 {
	if col.Group != nil {
		return col.Group.Transform.Rotation
	}
	return in.Transform.Rotation
}
