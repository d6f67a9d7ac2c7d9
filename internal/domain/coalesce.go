package domain

// Coalesce returns the first non-zero value, or the zero value.
func Coalesce[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}

// PtrOrNil returns nil for the zero value, otherwise a pointer to a copy of v.
func PtrOrNil[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}
