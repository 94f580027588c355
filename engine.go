package onstep

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Player is the host engine's view of a connected player. Implementations
// wrap whatever the engine uses as its player handle.
type Player interface {
	// UUID identifies the player. It is unique and stable for the duration
	// of the connection; after a disconnect the engine may hand the same
	// identity to an unrelated player.
	UUID() uuid.UUID

	// Name returns the player's display name.
	Name() string

	// Position returns the player's exact position.
	Position() mgl64.Vec3

	// Health returns the player's current health.
	Health() float64

	// Hurt deals the given amount of damage to the player.
	Hurt(damage float64)
}

// TickRegistrar is the host hook invoking callbacks once per engine tick
// with the elapsed time since the previous tick, in seconds.
type TickRegistrar interface {
	Register(fn func(dtime float64))
}

// QuitRegistrar is the host hook invoking callbacks once per player
// disconnect, after which the player's identity must not retain state.
type QuitRegistrar interface {
	Register(fn func(p Player))
}

// PlayerLister enumerates the currently connected players. The order is up
// to the host and need not be stable across ticks.
type PlayerLister interface {
	Players() []Player
}

// World looks up the name of the block at a position.
type World interface {
	Block(pos cube.Pos) string
}

// Engine bundles the host capabilities the hook pipeline consumes.
type Engine struct {
	Ticks   TickRegistrar
	Quits   QuitRegistrar
	Players PlayerLister
}

func (e Engine) validate() {
	if e.Ticks == nil {
		panic("onstep: engine without tick registrar")
	}
	if e.Quits == nil {
		panic("onstep: engine without quit registrar")
	}
	if e.Players == nil {
		panic("onstep: engine without player lister")
	}
}
