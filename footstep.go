package onstep

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// EnableFootstepLog logs a line whenever a player's foot block position
// changes between ticks. The rounded position is the watched state; the
// exact position rides along as the extractor's auxiliary output. Nothing
// is logged while a player stays inside the same block.
func EnableFootstepLog(h *Hooks) {
	log := h.Logger("footstep")

	OnChange[cube.Pos, mgl64.Vec3](h).Register(
		func(old Option[cube.Pos], t Tick) Extraction[cube.Pos, mgl64.Vec3] {
			exact := t.Player.Position()
			pos := cube.PosFromVec3(exact)
			if prev, ok := old.Get(); ok && prev == pos {
				return Extraction[cube.Pos, mgl64.Vec3]{State: None[cube.Pos](), Extra: exact}
			}
			return Extraction[cube.Pos, mgl64.Vec3]{State: Some(pos), Extra: exact}
		},
		func(p Player, old Option[cube.Pos], next cube.Pos, exact mgl64.Vec3) {
			ev := log.Info().
				Str("player", p.Name()).
				Ints("entered", next[:]).
				Floats64("exact", exact[:])
			if prev, ok := old.Get(); ok {
				ev = ev.Ints("left", prev[:])
			}
			ev.Msg("foot position changed")
		},
	)
}
