package onstep

// Executor bridges a parent registrar's invocations to a chain. It receives
// the chain's dispatch function and the argument the parent supplied, and
// decides how the one maps to the other, e.g. by dispatching once per
// connected player.
type Executor[P, E any] func(dispatch func(E), parent P)

// LazyChain is a chain whose aggregate executor is registered with a parent
// registrar only once the first child callback arrives. Until then the
// parent is never touched, so building a pipeline nobody subscribes to has
// zero engine-side cost and no side effects.
type LazyChain[P, E any] struct {
	chain  Chain[E]
	parent Registrar[func(P)]
	run    Executor[P, E]
}

// NewLazyChain builds a lazy chain over parent. run is invoked with the
// chain's dispatch function whenever the parent fires, once the chain has
// at least one callback.
func NewLazyChain[P, E any](parent Registrar[func(P)], run Executor[P, E]) *LazyChain[P, E] {
	if parent == nil {
		panic("onstep: lazy chain without parent registrar")
	}
	if run == nil {
		panic("onstep: lazy chain without executor")
	}
	return &LazyChain[P, E]{parent: parent, run: run}
}

// Register appends fn to the chain. The transition from zero to one
// callbacks installs the aggregate executor with the parent registrar;
// every later registration only grows the chain and never touches the
// parent again.
func (l *LazyChain[P, E]) Register(fn func(E)) {
	first := !l.chain.Any()
	l.chain.Register(fn)
	if first {
		l.parent.Register(func(p P) {
			l.run(l.chain.Execute, p)
		})
	}
}

// Any reports whether at least one callback has ever been registered.
func (l *LazyChain[P, E]) Any() bool {
	return l.chain.Any()
}
