package foldmap

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"strings"

	"golang.org/x/exp/slices"
)

// ErrKeyNotFound is returned when no populated equivalence class exists for
// a key's canonical form.
var ErrKeyNotFound = errors.New("key not found")

// Map is a mutable mapping in which keys that fold to the same canonical
// form address the same entry. The zero value is not usable; construct with
// New, NewWith, Collect, or FromMap.
//
// Internally a Map keeps two tables in lockstep: canonical key to preserved
// key, and preserved key to value. The preserved key is the literal key form
// enumerated by Keys and All; which form is retained is the Folder's
// Preserve decision. Enumeration follows insertion order of each class's
// first population.
//
// A Map has no internal locking; see the package documentation for the
// concurrency contract.
type Map[K comparable, V any] struct {
	folder    Folder[K]
	preserved map[K]K // canonical key -> preserved key
	values    map[K]V // preserved key -> value
	order     []K     // preserved keys, class first-population order
}

// New creates an empty Map with the default folder: first-seen retention
// over case-insensitive string keys.
func New[K comparable, V any]() *Map[K, V] {
	return NewWith[K, V](Default[K]())
}

// NewWith creates an empty Map using the given folder. A nil folder selects
// the default.
func NewWith[K comparable, V any](f Folder[K]) *Map[K, V] {
	if f == nil {
		f = Default[K]()
	}
	return &Map[K, V]{
		folder:    f,
		preserved: make(map[K]K),
		values:    make(map[K]V),
	}
}

// Collect builds a Map from an ordered sequence of key-value pairs, applying
// Set for each pair in order. Later pairs whose keys fold into an
// already-seen class overwrite per the folder's retention policy.
func Collect[K comparable, V any](f Folder[K], entries iter.Seq2[K, V]) *Map[K, V] {
	m := NewWith[K, V](f)
	m.Update(entries)
	return m
}

// FromMap builds a Map from a plain map. Entry order follows Go map
// iteration, so when src contains several keys of one equivalence class,
// which of them wins is unspecified.
func FromMap[K comparable, V any](f Folder[K], src map[K]V) *Map[K, V] {
	return Collect(f, maps.All(src))
}

// Get retrieves the value stored for key's equivalence class.
// Returns ErrKeyNotFound if the class is unpopulated; never mutates.
func (m *Map[K, V]) Get(key K) (V, error) {
	p, ok := m.preserved[m.folder.Canonical(key)]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	return m.values[p], nil
}

// Lookup is the comma-ok form of Get.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	p, ok := m.preserved[m.folder.Canonical(key)]
	if !ok {
		var zero V
		return zero, false
	}
	return m.values[p], true
}

// Has reports whether key's equivalence class is populated.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.preserved[m.folder.Canonical(key)]
	return ok
}

// Set stores value for key's equivalence class. The folder's Preserve
// decision picks the class representative; when it replaces an existing
// representative the old entry is dropped and the class re-enters at the
// tail of the iteration order. Both tables reflect the change before Set
// returns.
func (m *Map[K, V]) Set(key K, value V) {
	canon := m.folder.Canonical(key)
	existing, exists := m.preserved[canon]
	chosen := m.folder.Preserve(key, existing, exists)

	if exists && chosen != existing {
		// Representative replacement is delete-then-insert: the old
		// entry goes away and the class loses its order slot.
		delete(m.values, existing)
		m.dropOrder(existing)
		exists = false
	}
	if !exists {
		m.order = append(m.order, chosen)
	}
	m.preserved[canon] = chosen
	m.values[chosen] = value
}

// Delete removes the entry for key's equivalence class. Returns
// ErrKeyNotFound if the class is unpopulated, in which case nothing is
// mutated. The preserved key is looked up before either table is touched so
// a failed delete can never leave the tables out of step.
func (m *Map[K, V]) Delete(key K) error {
	canon := m.folder.Canonical(key)
	p, ok := m.preserved[canon]
	if !ok {
		return ErrKeyNotFound
	}
	delete(m.preserved, canon)
	delete(m.values, p)
	m.dropOrder(p)
	return nil
}

// Pop removes the entry for key's equivalence class and returns its value.
// Returns ErrKeyNotFound (and mutates nothing) if the class is unpopulated.
func (m *Map[K, V]) Pop(key K) (V, error) {
	canon := m.folder.Canonical(key)
	p, ok := m.preserved[canon]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	v := m.values[p]
	delete(m.preserved, canon)
	delete(m.values, p)
	m.dropOrder(p)
	return v, nil
}

// Len returns the number of populated equivalence classes.
func (m *Map[K, V]) Len() int {
	return len(m.values)
}

// Keys returns an iterator over preserved keys in insertion order of each
// class's first population. The sequence is restartable; each range walks
// the current contents. Mutating the map during a walk is unsupported.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, p := range m.order {
			if !yield(p) {
				return
			}
		}
	}
}

// Values returns an iterator over values in the same order as Keys.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, p := range m.order {
			if !yield(m.values[p]) {
				return
			}
		}
	}
}

// All returns an iterator over (preserved key, value) pairs in the same
// order as Keys.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range m.order {
			if !yield(p, m.values[p]) {
				return
			}
		}
	}
}

// Preserved returns the representative key for key's equivalence class.
func (m *Map[K, V]) Preserved(key K) (K, bool) {
	p, ok := m.preserved[m.folder.Canonical(key)]
	return p, ok
}

// Canonical returns the folder's canonical form of key.
func (m *Map[K, V]) Canonical(key K) K {
	return m.folder.Canonical(key)
}

// Update applies Set for each pair in order; within an equivalence class
// the last pair wins, subject to the retention policy.
func (m *Map[K, V]) Update(entries iter.Seq2[K, V]) {
	for k, v := range entries {
		m.Set(k, v)
	}
}

// Clear removes every entry.
func (m *Map[K, V]) Clear() {
	clear(m.preserved)
	clear(m.values)
	m.order = m.order[:0]
}

// Clone returns a shallow copy: an independent Map sharing the folder but
// not the tables. Values are not deep-copied.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		folder:    m.folder,
		preserved: maps.Clone(m.preserved),
		values:    maps.Clone(m.values),
		order:     slices.Clone(m.order),
	}
}

// String renders the map as foldmap.Map[k1:v1 k2:v2] in iteration order.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("foldmap.Map[")
	for i, p := range m.order {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", p, m.values[p])
	}
	b.WriteByte(']')
	return b.String()
}

// dropOrder removes one occurrence of p from the order slice.
func (m *Map[K, V]) dropOrder(p K) {
	if i := slices.Index(m.order, p); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
}
