package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr keeps current when the patch field was omitted.
func CoalescePtr[T any](patch *T, current *T) *T {
	if patch != nil {
		return patch
	}
	return current
}
