package service

// prepend returns a new slice with v at the head. History-like collections
// are newest-first, so adds insert at the head.
func prepend[T any](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, v)
	return append(out, list...)
}

// appendCopy returns a new slice with v at the tail. A plain append could
// write into spare capacity shared with an earlier snapshot.
func appendCopy[T any](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, v)
}

// without returns a new slice excluding elements matched by drop.
func without[T any](list []T, drop func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if !drop(v) {
			out = append(out, v)
		}
	}
	return out
}
