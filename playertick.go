package onstep

// Tick is the event delivered to per-player tick callbacks: which player
// this invocation is for, and the time elapsed since the previous engine
// tick in seconds.
type Tick struct {
	Player Player
	Dtime  float64
}

// PlayerTicks fans a single engine tick out to every connected player.
// A callback registered here runs once per player per tick, for every
// player connected at the moment the tick fires; players connecting
// mid-tick are picked up on the next one.
//
// The underlying engine tick subscription is installed lazily on the first
// registration.
type PlayerTicks struct {
	lazy *LazyChain[float64, Tick]
}

// NewPlayerTicks builds the per-player tick registrar from the host's tick
// hook and player enumeration.
func NewPlayerTicks(ticks TickRegistrar, players PlayerLister) *PlayerTicks {
	if ticks == nil {
		panic("onstep: player ticks without tick registrar")
	}
	if players == nil {
		panic("onstep: player ticks without player lister")
	}
	return &PlayerTicks{
		lazy: NewLazyChain[float64, Tick](ticks, func(dispatch func(Tick), dtime float64) {
			for _, p := range players.Players() {
				dispatch(Tick{Player: p, Dtime: dtime})
			}
		}),
	}
}

// Register subscribes fn to run once per connected player per engine tick.
func (r *PlayerTicks) Register(fn func(Tick)) {
	r.lazy.Register(fn)
}

// Any reports whether any callback has ever been registered.
func (r *PlayerTicks) Any() bool {
	return r.lazy.Any()
}
