package internal

// Abs returns the absolute value of v.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Reverse reverses s in place and returns it.
func Reverse[T any](s []T) []T {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// ReconstructPath rebuilds a path by following predecessor links back from current
// until pred reports none, returning it start first.
func ReconstructPath[ID comparable, T any](current ID, none ID, value func(ID) T, pred func(ID) ID) []T {
	var path []T
	for id := current; id != none; id = pred(id) {
		path = append(path, value(id))
	}
	return Reverse(path)
}
