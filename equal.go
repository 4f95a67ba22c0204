package foldmap

import "maps"

// Equal reports whether two Maps hold identical (canonical key, value) sets.
// Each side's keys normalize under its own folder, so maps that preserved
// different literal key forms still compare equal when their classes and
// values match. Like slices.Equal, this is a function rather than a method
// so V can be constrained to comparable.
//
// Maps built with folders that disagree on canonical forms compare by
// whatever those forms happen to be, the same way any two mappings with
// different key schemes would.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	if len(a.values) != len(b.values) {
		return false
	}
	// The preserved table's keyspace is the map's canonical index, so no
	// re-folding is needed here.
	for canon, p := range a.preserved {
		bp, ok := b.preserved[canon]
		if !ok || b.values[bp] != a.values[p] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied value comparison, for value
// types that are not comparable.
func EqualFunc[K comparable, V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if len(a.values) != len(b.values) {
		return false
	}
	for canon, p := range a.preserved {
		bp, ok := b.preserved[canon]
		if !ok || !eq(a.values[p], b.values[bp]) {
			return false
		}
	}
	return true
}

// EqualMap compares a Map against a plain, non-folding map: direct
// structural equality of the preserved-key value table. Keys of plain that
// merely fold together with stored keys do not match; use Equal against a
// folding Map for class-aware comparison.
func EqualMap[K, V comparable](m *Map[K, V], plain map[K]V) bool {
	return maps.Equal(m.values, plain)
}
