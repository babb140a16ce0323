package internal

import (
	"iter"
)

// Pairs groups consecutive values of seq into (first, second) pairs.
// A trailing unpaired value is dropped.
func Pairs[T any](seq iter.Seq[T]) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		var first T
		var have bool
		for val := range seq {
			if !have {
				first = val
				have = true
				continue
			}
			have = false
			if !yield(first, val) {
				return // Stop if the consumer stops
			}
		}
	}
}

// Filter yields only the values of seq for which keep returns true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for val := range seq {
			if keep(val) && !yield(val) {
				return
			}
		}
	}
}
