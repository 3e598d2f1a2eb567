// Package modifier implements a procedural modifier stack for 2D canvas shapes.
//
// # Overview
//
// A modifier is an ordered, typed rule (linear array, circular array, grid
// array, mirror) attached to a shape. Each modifier expands or reflects the
// shape into a deterministic set of derived instances, and modifiers compose:
// an array of an array, a mirror of an array, and so on. The package is the
// transform-composition engine only — it computes derived placements. Editing
// modifier settings, persisting modifier records, and materializing derived
// instances into live canvas objects are the caller's concern.
//
// # Quick Start
//
//	import "github.com/gogpu/modifier"
//
//	shape := modifier.NewShape("rect", 0, 0, 100, 100)
//	mods := []modifier.Modifier{
//		modifier.NewLinearArray(modifier.LinearArraySettings{Count: 3, OffsetX: 100}),
//		modifier.NewMirror(modifier.MirrorSettings{Axis: modifier.AxisX}),
//	}
//
//	stack := modifier.NewStack()
//	result := stack.Process(shape, mods)
//	for _, derived := range result.Extract() {
//		// create/update live objects from derived placements
//	}
//
// # Architecture
//
// The engine is a sequential fold: an InstanceCollection seeded with a single
// identity instance is threaded through one pure processor per enabled
// modifier, in ascending modifier order. Array processors expand each input
// instance independently; the mirror processor reflects the entire collection
// so compound states mirror as a whole. All processors are pure functions of
// their inputs — identical inputs always yield identical outputs.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Shape positions are top-left anchored; rotation is in radians about the
//     shape's visual center
//
// Modifier settings use degrees for angles and percentages for offsets, as
// presented to users; the engine converts internally.
//
// # Group Mode
//
// When a Resolver reports that the target shape belongs to a composite,
// percentage offsets resolve against the group bounding box and rotation
// pivots on the group center, so the whole group clones as one object while
// member shapes keep their relative layout.
package modifier

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
