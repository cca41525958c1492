// Package option provides a container for a value that may be absent.
//
// An absent Option carries no reason. Code that turns an error into an
// Option gives up every detail about the failure.
package option

// Option holds either a value or nothing.
type Option[T any] struct {
	something T
	present   bool
}

// Some returns a present Option holding t.
func Some[T any](t T) Option[T] {
	return Option[T]{something: t, present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromResult converts a (value, error) pair. The error is dropped.
func FromResult[T any](some T, e error) Option[T] {
	if e != nil {
		return None[T]()
	}
	return Some(some)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.something, o.present
}

// Unwrap returns the value, panicking if the Option is absent.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("option: Unwrap called on None")
	}
	return o.something
}

// Expect returns the value, panicking with msg if the Option is absent.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(msg)
	}
	return o.something
}

// UnwrapOr returns the value, or def when absent.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.present {
		return def
	}
	return o.something
}

// Match calls onSome with the value or onNone when absent.
func Match[T, R any](o Option[T], onSome func(value T) R, onNone func() R) R {
	if o.present {
		return onSome(o.something)
	}
	return onNone()
}
