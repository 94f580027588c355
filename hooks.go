package onstep

import "github.com/rs/zerolog"

// Hooks wires the per-player tick pipeline for one host engine instance and
// hands out the registrars behaviors subscribe through.
type Hooks struct {
	ticks *PlayerTicks
	quits QuitRegistrar
	log   zerolog.Logger
}

// New validates the engine surface and builds the pipeline. The host's tick
// registrar is not touched until the first callback registers somewhere in
// the pipeline.
func New(engine Engine, log zerolog.Logger) *Hooks {
	engine.validate()
	return &Hooks{
		ticks: NewPlayerTicks(engine.Ticks, engine.Players),
		quits: engine.Quits,
		log:   log,
	}
}

// PlayerTicks returns the once-per-player-per-tick registrar.
func (h *Hooks) PlayerTicks() *PlayerTicks {
	return h.ticks
}

// Quits returns the host's disconnect registrar.
func (h *Hooks) Quits() QuitRegistrar {
	return h.quits
}

// Logger returns a child logger tagged with the given component name.
func (h *Hooks) Logger(component string) zerolog.Logger {
	return h.log.With().Str("component", component).Logger()
}
