package onstep

import "github.com/df-mc/dragonfly/server/block/cube"

// feetPos returns the position of the block directly under the player.
func feetPos(p Player) cube.Pos {
	return cube.PosFromVec3(p.Position()).Side(cube.FaceDown)
}

// EnableBlockDamage hurts players standing on blocks listed in table.
//
// Cooldowns are tracked per player per block name: the first tick on a
// harmful block deals its damage and arms its cooldown; while the cooldown
// runs down the block is harmless to that player; once it expires the next
// tick on it hits again. A disconnect drops all of a player's cooldowns.
func EnableBlockDamage(h *Hooks, w World, table DamageTable) {
	if w == nil {
		panic("onstep: block damage without world")
	}
	if len(table) == 0 {
		panic("onstep: block damage with empty table")
	}
	log := h.Logger("blockdamage")

	Memory[map[string]float64](h).Register(func(state Option[map[string]float64], t Tick) Option[map[string]float64] {
		cooldowns := state.Or(nil)
		for name, left := range cooldowns {
			left -= t.Dtime
			if left <= 0 {
				delete(cooldowns, name)
			} else {
				cooldowns[name] = left
			}
		}

		name := w.Block(feetPos(t.Player))
		if bd, harmful := table[name]; harmful {
			if _, waiting := cooldowns[name]; !waiting {
				t.Player.Hurt(bd.Damage)
				if cooldowns == nil {
					cooldowns = make(map[string]float64, 1)
				}
				cooldowns[name] = bd.Cooldown
				log.Debug().
					Str("player", t.Player.Name()).
					Str("block", name).
					Float64("damage", bd.Damage).
					Float64("health", t.Player.Health()).
					Msg("standing damage dealt")
			}
		}

		if len(cooldowns) == 0 {
			return None[map[string]float64]()
		}
		return Some(cooldowns)
	})
}
