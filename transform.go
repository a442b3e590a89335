package optional

// Map applies mapper to the contained value if one is present and returns the
// result wrapped via OfNullable: a nil mapper result collapses to an empty
// Optional rather than panicking, unlike the strict factories. If o is empty,
// the mapper is not invoked and an empty Optional is returned.
//
// Map is a package-level function rather than a method because Go methods
// cannot introduce the second type parameter U.
func Map[T, U any](o Optional[T], mapper func(T) U) Optional[U] {
	if !o.present {
		return Empty[U]()
	}

	return OfNullable(mapper(o.value))
}

// FlatMap applies mapper to the contained value if one is present and returns
// the mapper's Optional directly, without additional wrapping. If o is empty,
// the mapper is not invoked and an empty Optional is returned.
func FlatMap[T, U any](o Optional[T], mapper func(T) Optional[U]) Optional[U] {
	if !o.present {
		return Empty[U]()
	}

	return mapper(o.value)
}
