package onstep

// Registrar is the generic capability shape shared by every layer whose
// register operation takes a single callback argument. What the callback is
// invoked with, and how often, is defined entirely by the registrar handing
// it out: once per tick, once per player per tick, once per disconnect.
//
// Registrars compose; a registrar built from another registrar is still a
// valid registrar, which is how the layers in this package stack.
type Registrar[F any] interface {
	Register(fn F)
}
