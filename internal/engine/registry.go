package engine

// Registry is the ordered, immutable set of rules assembled at startup.
type Registry struct {
	rules []Rule
}

func NewRegistry(rules ...Rule) *Registry {
	return &Registry{rules: rules}
}

// DefaultRegistry wires the production rule set. Adding a rule means
// appending here.
func DefaultRegistry() *Registry {
	return NewRegistry(
		&InteractionGapRule{},
		&MissingVideoRule{},
		&SchoolListRule{},
		&TaskOverdueRule{},
		&EventPrepRule{},
		&ProfileIncompleteRule{},
	)
}

// All returns the rules in registration order.
func (r *Registry) All() []Rule {
	return r.rules
}
