// Package stream bounds and collects lazy result sequences.
package stream

import "iter"

// Limit yields at most the first n elements of seq. When n <= 0 the source
// sequence is returned unmodified: zero means unlimited, not empty. The
// remainder of a truncated sequence is never pulled.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return seq
	}
	return func(yield func(T) bool) {
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count == n {
				return
			}
		}
	}
}

// Collect materializes a sequence into a slice. Mostly useful in tests and
// at the serialization boundary; queries themselves stay lazy.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}
