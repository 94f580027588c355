package onstep

// Extraction is an extractor's verdict for one tick: the new state when a
// change was detected (an empty State means "no change"), plus whatever
// auxiliary data the reaction should receive alongside it.
type Extraction[S, X any] struct {
	State Option[S]
	Extra X
}

// Extractor inspects the current engine conditions against the stored state
// and decides whether the watched value changed.
type Extractor[S, X any] func(old Option[S], t Tick) Extraction[S, X]

// ChangeFunc reacts to a detected change. next is the freshly extracted
// state; old is empty on the first sighting of the player.
type ChangeFunc[S, X any] func(p Player, old Option[S], next S, extra X)

// NewChangeCallback reduces a continuous per-tick poll into discrete change
// events. Each tick the extractor runs; when it reports no change, the old
// state is returned verbatim, so the memory layer cannot tell the tick from
// any other stable one and the reaction stays silent. When it reports a new
// state, onChange fires with the old and new values and the new state is
// stored.
func NewChangeCallback[S, X any](extract Extractor[S, X], onChange ChangeFunc[S, X]) MemoryFunc[S] {
	if extract == nil {
		panic("onstep: nil extractor")
	}
	if onChange == nil {
		panic("onstep: nil change callback")
	}

	return func(old Option[S], t Tick) Option[S] {
		res := extract(old, t)
		next, changed := res.State.Get()
		if !changed {
			return old
		}
		onChange(t.Player, old, next, res.Extra)
		return res.State
	}
}

// ChangeTicks registers extractor/reaction pairs. Each pair is composed
// into a change callback and installed behind its own memory scope on the
// parent registrar.
type ChangeTicks[S, X any] struct {
	parent Registrar[MemoryFunc[S]]
}

// OnChange returns the change-detection registrar for state type S and
// auxiliary data type X.
func OnChange[S, X any](h *Hooks) *ChangeTicks[S, X] {
	return &ChangeTicks[S, X]{parent: Memory[S](h)}
}

// NewChangeTicks builds a change-detection registrar over an arbitrary
// memory-capable registrar.
func NewChangeTicks[S, X any](parent Registrar[MemoryFunc[S]]) *ChangeTicks[S, X] {
	if parent == nil {
		panic("onstep: change ticks without parent registrar")
	}
	return &ChangeTicks[S, X]{parent: parent}
}

// Register composes extract and onChange and installs them behind a fresh
// memory scope.
func (r *ChangeTicks[S, X]) Register(extract Extractor[S, X], onChange ChangeFunc[S, X]) {
	r.parent.Register(NewChangeCallback(extract, onChange))
}
