package modifier

// Option configures a Stack during creation.
// Use functional options to customize Stack behavior.
//
// Example:
//
//	// Default single-shape processing
//	stack := modifier.NewStack()
//
//	// Group-relative processing with a resolver collaborator
//	stack := modifier.NewStack(modifier.WithResolver(resolver))
type Option func(*stackOptions)

// stackOptions holds optional configuration for Stack creation.
type stackOptions struct {
	resolver    Resolver
	mirrorOrder MirrorOrder
}

// defaultStackOptions returns the default stack options.
func defaultStackOptions() stackOptions {
	return stackOptions{
		resolver:    nil, // single-shape mode unless a resolver is supplied
		mirrorOrder: MirrorOrderContiguous,
	}
}

// WithResolver sets the group-context resolver collaborator. When the
// resolver reports that a shape belongs to a composite, every processor
// invocation of that Process call runs in group-relative mode.
func WithResolver(r Resolver) Option {
	return func(o *stackOptions) {
		o.resolver = r
	}
}

// WithMirrorOrder sets the ordering policy for reflected instances.
// The default is MirrorOrderContiguous.
func WithMirrorOrder(order MirrorOrder) Option {
	return func(o *stackOptions) {
		o.mirrorOrder = order
	}
}
