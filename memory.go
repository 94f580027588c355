package onstep

import "github.com/google/uuid"

// MemoryFunc is a per-player tick callback handed its stored state from the
// previous invocation for the same player. Whatever it returns becomes the
// next stored state; returning None clears the slot so the player starts
// fresh on their next tick.
type MemoryFunc[S any] func(state Option[S], t Tick) Option[S]

// NewMemoryCallback wraps inner with a private per-player store. Each
// invocation looks up the state for the tick's player (absent reads as
// None), runs inner, and persists its result.
//
// Construction subscribes a cleanup to quits that unconditionally drops the
// departing player's entry, so two connection periods sharing an identity
// never observe each other's state.
func NewMemoryCallback[S any](inner MemoryFunc[S], quits QuitRegistrar) func(Tick) {
	if inner == nil {
		panic("onstep: nil memory callback")
	}
	if quits == nil {
		panic("onstep: memory callback without quit registrar")
	}

	store := make(map[uuid.UUID]S)
	quits.Register(func(p Player) {
		delete(store, p.UUID())
	})

	return func(t Tick) {
		key := t.Player.UUID()
		old := None[S]()
		if v, ok := store[key]; ok {
			old = Some(v)
		}
		if v, ok := inner(old, t).Get(); ok {
			store[key] = v
		} else {
			delete(store, key)
		}
	}
}

// MemoryTicks registers callbacks behind per-player memory scopes. Every
// Register call gets its own store; callbacks never see each other's state.
type MemoryTicks[S any] struct {
	parent Registrar[func(Tick)]
	quits  QuitRegistrar
}

// Memory returns the memory-scoped registrar for state type S. It is a
// package-level function because Go methods cannot introduce type
// parameters.
func Memory[S any](h *Hooks) *MemoryTicks[S] {
	return &MemoryTicks[S]{parent: h.ticks, quits: h.quits}
}

// NewMemoryTicks builds a memory-capable registrar over an arbitrary
// per-player tick registrar, for pipelines assembled without the Hooks
// facade.
func NewMemoryTicks[S any](parent Registrar[func(Tick)], quits QuitRegistrar) *MemoryTicks[S] {
	if parent == nil {
		panic("onstep: memory ticks without parent registrar")
	}
	if quits == nil {
		panic("onstep: memory ticks without quit registrar")
	}
	return &MemoryTicks[S]{parent: parent, quits: quits}
}

// Register installs inner behind a fresh memory scope.
func (r *MemoryTicks[S]) Register(inner MemoryFunc[S]) {
	r.parent.Register(NewMemoryCallback(inner, r.quits))
}
