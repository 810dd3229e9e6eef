// Package types holds small generic containers shared across packages.
package types

import (
	"cmp"
	"maps"
	"slices"
)

// Set is a hash set of comparable values. The zero value is not usable;
// create one with NewSet.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding values, without duplicates.
func NewSet[T comparable](values ...T) Set[T] {
	set := make(Set[T], len(values))
	set.Add(values...)
	return set
}

// Add inserts values and reports how many of them were not present yet.
func (s Set[T]) Add(values ...T) int {
	added := 0
	for _, v := range values {
		if _, ok := s[v]; ok {
			continue
		}

		s[v] = struct{}{}
		added++
	}

	return added
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the elements of s in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(maps.Keys(s))
}
