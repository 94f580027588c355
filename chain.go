package onstep

// Chain is an append-only set of callbacks dispatched together. It is the
// mechanism that lets many subscribers share one upstream subscription.
//
// The zero value is an empty, ready-to-use chain.
type Chain[E any] struct {
	callbacks []func(E)
}

// Register appends fn to the dispatch set. Registrations are permanent for
// the process lifetime; there is no removal. Registering a nil callback
// panics immediately rather than failing at dispatch time.
func (c *Chain[E]) Register(fn func(E)) {
	if fn == nil {
		panic("onstep: nil callback registered on chain")
	}
	c.callbacks = append(c.callbacks, fn)
}

// Execute invokes every registered callback exactly once with ev, most
// recently registered first. Callbacks must not depend on that order for
// correctness. The chain is side-effect only: callback results, where layers
// above need them, travel through those layers' own typed signatures.
func (c *Chain[E]) Execute(ev E) {
	for i := len(c.callbacks) - 1; i >= 0; i-- {
		c.callbacks[i](ev)
	}
}

// Any reports whether at least one callback has ever been registered. It is
// monotonic: once true, it stays true.
func (c *Chain[E]) Any() bool {
	return len(c.callbacks) > 0
}
