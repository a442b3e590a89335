package optional

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNullValue is the panic value of Of and OfNonNull when given a nil value.
var ErrNullValue = errors.New("optional: value must not be nil")

// ErrNoSuchElement is the panic value of Get when called on an empty Optional.
var ErrNoSuchElement = errors.New("optional: no value present")

// Optional represents a value that may or may not be present.
// It is modeled on java.util.Optional and is either present (containing a
// non-nil value) or empty. The zero value is empty and ready to use.
//
// Optional is an immutable value type: no method mutates its receiver, and
// instances may be freely shared across goroutines.
type Optional[T any] struct {
	value   T
	present bool
}

// Of creates an Optional containing the provided value.
// It panics with ErrNullValue if the value is nil (a nil interface, or a nil
// pointer, map, slice, function or channel). Use OfNullable to construct from
// a possibly-nil source without panicking.
func Of[T any](value T) Optional[T] {
	if isNil(value) {
		panic(ErrNullValue)
	}

	return Optional[T]{
		value:   value,
		present: true,
	}
}

// OfNonNull creates an Optional containing the provided value.
// It is identical to Of and panics with ErrNullValue on a nil value.
func OfNonNull[T any](value T) Optional[T] {
	return Of(value)
}

// OfNullable creates an Optional from a possibly-nil value.
// A nil value yields an empty Optional; any other value yields a present one.
// OfNullable never panics.
func OfNullable[T any](value T) Optional[T] {
	if isNil(value) {
		return Empty[T]()
	}

	return Of(value)
}

// Empty creates an Optional that contains no value.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent returns true if the Optional contains a value, false otherwise.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsEmpty returns true if the Optional is empty, false otherwise.
// It is always the negation of IsPresent.
func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the contained value.
// It panics with ErrNoSuchElement if the Optional is empty. Use OrElse,
// OrElseGet or OrElseThrow when a fallback is preferable to a panic.
func (o Optional[T]) Get() T {
	if !o.present {
		panic(ErrNoSuchElement)
	}

	return o.value
}

// IfPresent invokes action with the contained value if one is present.
// If the Optional is empty, action is not invoked. The action runs
// synchronously, before IfPresent returns.
func (o Optional[T]) IfPresent(action func(T)) {
	if o.present {
		action(o.value)
	}
}

// IfPresentOrElse invokes action with the contained value if one is present,
// otherwise invokes emptyAction. Exactly one of the two callbacks runs.
func (o Optional[T]) IfPresentOrElse(action func(T), emptyAction func()) {
	if o.present {
		action(o.value)
	} else {
		emptyAction()
	}
}

// Filter returns the Optional unchanged if it contains a value that satisfies
// the predicate, and an empty Optional otherwise. If the Optional is already
// empty, the predicate is not invoked.
func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if !o.present {
		return o
	}

	if predicate(o.value) {
		return o
	}

	return Empty[T]()
}

// Or returns the Optional unchanged if it contains a value, otherwise returns
// the Optional produced by supplier. The supplier is only invoked on an empty
// Optional.
func (o Optional[T]) Or(supplier func() Optional[T]) Optional[T] {
	if o.present {
		return o
	}

	return supplier()
}

// OrElse returns the contained value if present, otherwise returns other.
func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}

	return other
}

// OrElseGet returns the contained value if present, otherwise returns the
// result of supplier. Unlike OrElse, the fallback is computed lazily: the
// supplier is never invoked on a present Optional.
func (o Optional[T]) OrElseGet(supplier func() T) T {
	if o.present {
		return o.value
	}

	return supplier()
}

// OrElseThrow returns the contained value if present. On an empty Optional it
// returns the zero value of T together with the error produced by errFn.
// The error producer is only invoked on an empty Optional.
func (o Optional[T]) OrElseThrow(errFn func() error) (T, error) {
	if o.present {
		return o.value, nil
	}

	var zero T
	return zero, errFn()
}

// String implements fmt.Stringer.
// A present Optional formats as "Optional[<value>]", an empty one as
// "Optional.empty".
func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}

	return fmt.Sprintf("Optional[%v]", o.value)
}

// isNil reports whether v is nil or a nil value of a nilable kind.
// Both of the source environment's absence markers (null and undefined)
// collapse to this single notion of absence.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
