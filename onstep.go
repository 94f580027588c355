// Package onstep composes independent per-player, per-tick behaviors over a
// single host-engine tick subscription.
//
// A voxel engine typically exposes one global "run this every tick" hook.
// Subscribing every behavior to it directly scatters player iteration and
// per-player bookkeeping across the codebase. onstep instead stacks small
// registrars on top of the engine hook:
//
//   - a chain dispatches many callbacks through one subscription
//   - the engine-level subscription is only installed once a first callback
//     exists, so an unused pipeline costs nothing
//   - a memory scope hands each callback private per-player state that is
//     created on first sight and discarded on disconnect
//   - a change-detection layer reduces a continuous per-tick poll into
//     discrete "value changed" events
//
// # Quick Start
//
// Wire the host engine once and enable behaviors:
//
//	hooks := onstep.New(onstep.Engine{
//	    Ticks:   srv.TickHooks(),
//	    Quits:   srv.QuitHooks(),
//	    Players: srv,
//	}, logger)
//
//	onstep.EnableBlockDamage(hooks, srv.World(), table)
//	onstep.EnableFootstepLog(hooks)
//
// Custom behaviors register at whichever layer fits:
//
//	// Plain per-player tick, no state.
//	hooks.PlayerTicks().Register(func(t onstep.Tick) {
//	    // runs once per connected player per tick
//	})
//
//	// Per-player state threaded between ticks.
//	onstep.Memory[int](hooks).Register(func(n onstep.Option[int], t onstep.Tick) onstep.Option[int] {
//	    return onstep.Some(n.Or(0) + 1)
//	})
//
//	// React only when a derived value changes.
//	onstep.OnChange[string, struct{}](hooks).Register(extract, react)
//
// # Layer Reference
//
//	Chain[E]          many callbacks, one subscription, LIFO dispatch
//	LazyChain[P, E]   chain + deferred parent registration
//	PlayerTicks       engine tick fanned out to every connected player
//	MemoryTicks[S]    per-player state of type S per registered callback
//	ChangeTicks[S, X] extractor/reaction pairs over a memory scope
//
// The host runtime is assumed single-threaded and cooperative; nothing in this
// package locks, blocks or spawns goroutines. Registering a nil callback or
// constructing a layer without its collaborators panics at setup time so mod
// wiring mistakes surface on load, not mid-game.
package onstep

// Version is the player-onstep-hooks version.
const Version = "1.0.0"
