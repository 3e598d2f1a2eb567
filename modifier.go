package modifier

import (
	"sort"

	"github.com/google/uuid"
)

// Type discriminates modifier kinds. It doubles as the processor-registry
// key and as the block label in modfile documents.
type Type string

// Known modifier types.
const (
	TypeLinearArray   Type = "linear-array"
	TypeCircularArray Type = "circular-array"
	TypeGridArray     Type = "grid-array"
	TypeMirror        Type = "mirror"
)

// Valid reports whether t names a known modifier type.
func (t Type) Valid() bool {
	switch t {
	case TypeLinearArray, TypeCircularArray, TypeGridArray, TypeMirror:
		return true
	}
	return false
}

// Settings is the closed sum of per-kind settings records.
// Exactly one concrete type exists per modifier Type; the unexported method
// keeps the sum closed to this package.
type Settings interface {
	kind() Type
}

// Modifier is an enabled, ordered, typed procedural rule attached to a shape.
// Modifiers are owned and persisted by the caller; the engine receives them
// by value and never mutates them.
type Modifier struct {
	ID       string
	Type     Type
	Enabled  bool
	Order    int
	Settings Settings
}

// NewLinearArray creates an enabled linear-array modifier with a fresh ID.
func NewLinearArray(s LinearArraySettings) Modifier {
	return Modifier{ID: uuid.NewString(), Type: TypeLinearArray, Enabled: true, Settings: s}
}

// NewCircularArray creates an enabled circular-array modifier with a fresh ID.
func NewCircularArray(s CircularArraySettings) Modifier {
	return Modifier{ID: uuid.NewString(), Type: TypeCircularArray, Enabled: true, Settings: s}
}

// NewGridArray creates an enabled grid-array modifier with a fresh ID.
func NewGridArray(s GridArraySettings) Modifier {
	return Modifier{ID: uuid.NewString(), Type: TypeGridArray, Enabled: true, Settings: s}
}

// NewMirror creates an enabled mirror modifier with a fresh ID.
func NewMirror(s MirrorSettings) Modifier {
	return Modifier{ID: uuid.NewString(), Type: TypeMirror, Enabled: true, Settings: s}
}

// WithOrder returns a copy of the modifier at the given stack position.
func (m Modifier) WithOrder(order int) Modifier {
	m.Order = order
	return m
}

// activeModifiers filters to enabled modifiers and sorts ascending by Order.
// The sort is stable: order ties keep the input sequence.
func activeModifiers(mods []Modifier) []Modifier {
	active := make([]Modifier, 0, len(mods))
	for _, m := range mods {
		if m.Enabled {
			active = append(active, m)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Order < active[j].Order
	})
	return active
}
