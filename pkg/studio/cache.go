package studio

// Pure cache transformations. Each returns a new slice and never mutates
// its input, so the stores can apply them under lock after a confirmed
// remote write and the logic stays testable without any network.

func prependEntry[T any](entries []T, entry T) []T {
	out := make([]T, 0, len(entries)+1)
	out = append(out, entry)
	return append(out, entries...)
}

// replaceEntry swaps the first entry matching the predicate, preserving
// its position in the sequence. The slice is returned unchanged when
// nothing matches.
func replaceEntry[T any](entries []T, match func(T) bool, replacement T) []T {
	out := make([]T, len(entries))
	copy(out, entries)
	for i := range out {
		if match(out[i]) {
			out[i] = replacement
			break
		}
	}
	return out
}

func removeEntry[T any](entries []T, match func(T) bool) []T {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if !match(e) {
			out = append(out, e)
		}
	}
	return out
}
