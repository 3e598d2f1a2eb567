package modifier

// Stack is the modifier-stack orchestrator. It filters and sorts the
// modifier list, resolves group context once per call, and folds the
// collection through one processor per enabled modifier.
//
// A Stack is stateless between calls and safe for concurrent use: every
// Process call builds its state from scratch, so results are deterministic
// and safe to memoize or recompute speculatively.
type Stack struct {
	resolver   Resolver
	processors map[Type]Processor
}

// NewStack creates a stack with the built-in processors.
func NewStack(opts ...Option) *Stack {
	o := defaultStackOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Stack{resolver: o.resolver}
	s.processors = map[Type]Processor{
		TypeLinearArray:   linearArray{},
		TypeCircularArray: circularArray{},
		TypeGridArray:     gridArray{},
		TypeMirror:        mirror{order: o.mirrorOrder},
	}
	return s
}

// Process expands the shape through its modifiers and returns the final
// instance collection.
//
// The pipeline: resolve group context (once, shared by every stage), filter
// to enabled modifiers, stable-sort ascending by Order, seed the collection
// with identity instances, then fold each processor over the state. An
// unrecognized modifier type, or a settings record that does not match its
// declared type, is logged and skipped without counting as an applied
// stage, never fatal to the remaining pipeline. The result always holds at
// least the identity instances.
func (s *Stack) Process(shape Shape, mods []Modifier) InstanceCollection {
	var group *GroupContext
	if s.resolver != nil {
		if g, ok := s.resolver.Resolve(shape); ok {
			group = &g
		}
	}

	state := newCollection(shape, group)
	for _, m := range activeModifiers(mods) {
		p, ok := s.processors[m.Type]
		if !ok {
			Logger().Warn("skipping modifier with unknown type",
				"id", m.ID, "type", string(m.Type))
			continue
		}
		if m.Settings == nil || m.Settings.kind() != m.Type {
			settingsMismatch(m, m.Type)
			continue
		}
		state = p.Apply(state, m)
		state.Stages++
		Logger().Debug("applied modifier",
			"type", string(m.Type), "instances", state.Len())
	}
	return state
}

// Process is a convenience for one-off calls with default options.
func Process(shape Shape, mods []Modifier) InstanceCollection {
	return NewStack().Process(shape, mods)
}
