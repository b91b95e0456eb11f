package collections

// Contains is a generic function which returns true if elem is contained within the elements slice.
func Contains[T comparable](elem T, elements []T) bool {
	for _, e := range elements {
		if elem == e {
			return true
		}
	}
	return false
}

// FirstMissing returns the first element of subset which is not contained within set.
// The boolean is false when subset is fully contained within set.
func FirstMissing[T comparable](subset, set []T) (T, bool) {
	for _, elem := range subset {
		if !Contains(elem, set) {
			return elem, true
		}
	}

	var zero T
	return zero, false
}
