package common

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Map applies fn to every element, keeping order and length.
func Map[S ~[]E, E, R any](s S, fn func(E) R) []R {
	out := make([]R, len(s))
	for i, e := range s {
		out[i] = fn(e)
	}

	return out
}

// Every reports whether pred holds for all elements. True for an empty slice.
func Every[S ~[]E, E any](s S, pred func(E) bool) bool {
	for _, e := range s {
		if !pred(e) {
			return false
		}
	}

	return true
}
