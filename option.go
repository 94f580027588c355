package onstep

// Option is a tagged state value. The empty Option doubles as "no stored
// state yet" and "forget what was stored"; the memory layer treats the two
// identically.
type Option[S any] struct {
	value S
	ok    bool
}

// Some wraps v in a present Option.
func Some[S any](v S) Option[S] {
	return Option[S]{value: v, ok: true}
}

// None returns the empty Option for S.
func None[S any]() Option[S] {
	return Option[S]{}
}

// Get returns the held value and whether one is present.
func (o Option[S]) Get() (S, bool) {
	return o.value, o.ok
}

// Empty reports whether the Option holds no value.
func (o Option[S]) Empty() bool {
	return !o.ok
}

// Or returns the held value, or fallback when empty.
func (o Option[S]) Or(fallback S) S {
	if o.ok {
		return o.value
	}
	return fallback
}
