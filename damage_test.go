package onstep

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// fakeWorld maps positions to block names, everything else is air.
type fakeWorld map[cube.Pos]string

func (w fakeWorld) Block(pos cube.Pos) string {
	if name, ok := w[pos]; ok {
		return name
	}
	return "air"
}

var lavaTable = DamageTable{
	"lava": {Damage: 2, Cooldown: 1.0},
}

// standOn places p so that the block under their feet is at pos.
func standOn(p *fakePlayer, pos cube.Pos) {
	p.pos = mgl64.Vec3{float64(pos.X()) + 0.5, float64(pos.Y()) + 1.5, float64(pos.Z()) + 0.5}
}

func TestBlockDamageCooldownCycle(t *testing.T) {
	eng := &fakeEngine{}
	h := testHooks(eng)
	world := fakeWorld{cube.Pos{0, 9, 0}: "lava"}
	EnableBlockDamage(h, world, lavaTable)

	p := newFakePlayer("steve")
	standOn(p, cube.Pos{0, 9, 0})
	eng.connect(p)

	eng.ticks.tick(0.5)
	if p.health != 18 {
		t.Fatalf("first tick on lava: expected health 18, got %v", p.health)
	}

	eng.ticks.tick(0.5) // cooldown 1.0 -> 0.5, no hit
	if p.health != 18 {
		t.Fatalf("tick within cooldown: expected health 18, got %v", p.health)
	}

	eng.ticks.tick(0.5) // cooldown expires, next hit lands
	if p.health != 16 {
		t.Fatalf("tick after cooldown: expected health 16, got %v", p.health)
	}
}

func TestBlockDamageIgnoresSafeBlocks(t *testing.T) {
	eng := &fakeEngine{}
	h := testHooks(eng)
	world := fakeWorld{cube.Pos{0, 9, 0}: "stone"}
	EnableBlockDamage(h, world, lavaTable)

	p := newFakePlayer("steve")
	standOn(p, cube.Pos{0, 9, 0})
	eng.connect(p)

	eng.ticks.tick(0.5)
	eng.ticks.tick(0.5)

	if p.health != 20 {
		t.Fatalf("standing on stone: expected health 20, got %v", p.health)
	}
}

func TestBlockDamageCooldownDroppedOnDisconnect(t *testing.T) {
	eng := &fakeEngine{}
	h := testHooks(eng)
	world := fakeWorld{cube.Pos{0, 9, 0}: "lava"}
	EnableBlockDamage(h, world, lavaTable)

	p := newFakePlayer("steve")
	standOn(p, cube.Pos{0, 9, 0})
	eng.connect(p)

	eng.ticks.tick(0.1)
	if p.health != 18 {
		t.Fatalf("expected health 18 after first hit, got %v", p.health)
	}

	// Reconnect while the cooldown would still be armed. The fresh
	// connection period must not inherit it.
	eng.disconnect(p)
	eng.connect(p)
	eng.ticks.tick(0.1)

	if p.health != 16 {
		t.Fatalf("expected immediate hit after reconnect, got health %v", p.health)
	}
}

func TestBlockDamageTracksCooldownPerBlockKind(t *testing.T) {
	eng := &fakeEngine{}
	h := testHooks(eng)
	world := fakeWorld{
		cube.Pos{0, 9, 0}: "lava",
		cube.Pos{5, 9, 0}: "magma",
	}
	table := DamageTable{
		"lava":  {Damage: 2, Cooldown: 10},
		"magma": {Damage: 1, Cooldown: 10},
	}
	EnableBlockDamage(h, world, table)

	p := newFakePlayer("steve")
	eng.connect(p)

	standOn(p, cube.Pos{0, 9, 0})
	eng.ticks.tick(0.1)
	if p.health != 18 {
		t.Fatalf("expected lava hit, got health %v", p.health)
	}

	// Lava's cooldown must not shield the player from magma.
	standOn(p, cube.Pos{5, 9, 0})
	eng.ticks.tick(0.1)
	if p.health != 17 {
		t.Fatalf("expected magma hit despite lava cooldown, got health %v", p.health)
	}
}

func TestEnableBlockDamageValidation(t *testing.T) {
	eng := &fakeEngine{}
	h := testHooks(eng)

	if !mustPanic(func() { EnableBlockDamage(h, nil, lavaTable) }) {
		t.Fatal("expected panic on nil world")
	}
	if !mustPanic(func() { EnableBlockDamage(h, fakeWorld{}, nil) }) {
		t.Fatal("expected panic on empty table")
	}
}
