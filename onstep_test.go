package onstep

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// fakeTicks records tick subscriptions and lets tests fire ticks by hand.
type fakeTicks struct {
	registered []func(float64)
}

func (f *fakeTicks) Register(fn func(dtime float64)) {
	f.registered = append(f.registered, fn)
}

func (f *fakeTicks) tick(dtime float64) {
	for _, fn := range f.registered {
		fn(dtime)
	}
}

// fakeQuits records disconnect subscriptions and lets tests fire them.
type fakeQuits struct {
	registered []func(Player)
}

func (f *fakeQuits) Register(fn func(p Player)) {
	f.registered = append(f.registered, fn)
}

func (f *fakeQuits) quit(p Player) {
	for _, fn := range f.registered {
		fn(p)
	}
}

type fakePlayer struct {
	id     uuid.UUID
	name   string
	pos    mgl64.Vec3
	health float64
}

func newFakePlayer(name string) *fakePlayer {
	return &fakePlayer{id: uuid.New(), name: name, health: 20}
}

func (p *fakePlayer) UUID() uuid.UUID      { return p.id }
func (p *fakePlayer) Name() string         { return p.name }
func (p *fakePlayer) Position() mgl64.Vec3 { return p.pos }
func (p *fakePlayer) Health() float64      { return p.health }
func (p *fakePlayer) Hurt(damage float64)  { p.health -= damage }

// fakeEngine is a hand-driven host: tests connect players, advance ticks
// and fire disconnects in whatever order the scenario needs.
type fakeEngine struct {
	ticks   fakeTicks
	quits   fakeQuits
	players []Player
}

func (f *fakeEngine) Players() []Player { return f.players }

func (f *fakeEngine) engine() Engine {
	return Engine{Ticks: &f.ticks, Quits: &f.quits, Players: f}
}

func (f *fakeEngine) connect(p Player) {
	f.players = append(f.players, p)
}

func (f *fakeEngine) disconnect(p Player) {
	for i, q := range f.players {
		if q == p {
			f.players = append(f.players[:i], f.players[i+1:]...)
			break
		}
	}
	f.quits.quit(p)
}

func testHooks(f *fakeEngine) *Hooks {
	return New(f.engine(), zerolog.Nop())
}

// mustPanic runs fn and reports whether it panicked.
func mustPanic(fn func()) (panicked bool) {
	defer func() {
		panicked = recover() != nil
	}()
	fn()
	return
}
