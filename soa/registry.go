package soa

// TypeImpl reports one generated type to an external documentation viewer:
// its name, its shape kind, and whether it satisfies the
// no-interior-mutability marker property the viewer groups by.
type TypeImpl struct {
	Name   string
	Kind   string
	Marker bool
}

// ImplSet is the full report for one record's generated family.
type ImplSet struct {
	Record string
	Types  []TypeImpl
}

// Registry hands ImplSets to a consumer that may not be ready yet: publish
// registers immediately when a consumer is installed, otherwise the payload
// is buffered and flushed, in publish order, the moment Ready is called.
// Registration, rendering and search indexing stay with the consumer.
//
// Registry is not goroutine-safe.
type Registry struct {
	consumer func(ImplSet)
	pending  []ImplSet
}

// Publish delivers the set now if a consumer is ready, else buffers it.
func (r *Registry) Publish(s ImplSet) {
	if r.consumer != nil {
		r.consumer(s)
		return
	}
	r.pending = append(r.pending, s)
}

// Ready installs the consumer and flushes anything buffered, oldest first.
func (r *Registry) Ready(fn func(ImplSet)) {
	r.consumer = fn
	if fn == nil {
		return
	}
	for _, s := range r.pending {
		fn(s)
	}
	r.pending = nil
}

// Pending returns the number of buffered sets.
func (r *Registry) Pending() int { return len(r.pending) }
