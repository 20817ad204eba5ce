/*
Package maybe provides an option type for values which may be absent.

Color probing is a high-frequency operation where most candidate strings
are not colors at all. Functions which classify such candidates return
a Maybe instead of an error, leaving it to the caller to pattern-match
the outcome:

	switch m := csscolor.Parse(s).Match(); m {
	case m.Just(&c):
		...
	case m.Nothing():
		...
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

// Maybe is either Just a value or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	IsNothing() bool
}

type option[T any] struct {
	value   T
	present bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return option[T]{value: x, present: true}
}

// Nothing is the absent value of type T.
func Nothing[T any]() Maybe[T] {
	return option[T]{}
}

// Of returns Just(x) if ok, Nothing otherwise. It bridges Go's comma-ok idiom.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (o option[T]) Match() Matcher[T] {
	return matcher[T]{o: o}
}

// WithDefault unwraps the value or returns def.
func (o option[T]) WithDefault(def T) T {
	if o.present {
		return o.value
	}
	return def
}

func (o option[T]) IsNothing() bool {
	return !o.present
}

// AndThen chains a computation which may itself produce Nothing.
func AndThen[T, S any](x Maybe[T], f func(T) Maybe[S]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements. Every case method returns the
// matcher itself if it matches, nil otherwise.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	o option[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.o.present {
		if v != nil {
			*v = mm.o.value
		}
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.o.present {
		return mm
	}
	return nil
}
