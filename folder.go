package foldmap

import (
	"strings"

	"golang.org/x/exp/slices"
)

// FoldFunc normalizes a key to the canonical form shared by every key in its
// equivalence class. A FoldFunc must be total: it must return a usable
// canonical key for every value of K, falling back to the key itself for
// dynamic types it does not handle.
type FoldFunc[K comparable] func(K) K

// Folder is the pluggable policy pair that defines a Map's behavior:
// Canonical decides which keys are equivalent, and Preserve decides which
// literal key form represents an equivalence class in enumeration.
//
// Preserve is called on every Set with the incoming key and the class's
// current preserved key (exists reports whether the class is populated).
// Implementations must return a key belonging to the incoming key's
// equivalence class; returning a key from another class aliases the two
// classes and the Map's behavior becomes undefined.
type Folder[K comparable] interface {
	// Canonical returns the canonical form of key. It must succeed for
	// every key of type K.
	Canonical(key K) K

	// Preserve returns the key to store as the class representative.
	Preserve(incoming K, existing K, exists bool) K
}

// Default returns the folder used by New: first-seen retention over
// case-insensitive string keys.
func Default[K comparable]() Folder[K] {
	return KeepFirst[K](nil)
}

// KeepFirst returns a Folder that retains the first key form seen for each
// equivalence class. A nil fold selects CaseFold.
func KeepFirst[K comparable](fold FoldFunc[K]) Folder[K] {
	return keepFirst[K]{fold: orCaseFold(fold)}
}

// KeepCanonical returns a Folder whose preserved keys are always the
// canonical form, making the enumerated key set deterministic regardless of
// insertion history. A nil fold selects CaseFold.
func KeepCanonical[K comparable](fold FoldFunc[K]) Folder[K] {
	return keepCanonical[K]{fold: orCaseFold(fold)}
}

// KeepLatest returns a Folder that preserves the key form used by the most
// recent Set on each class. Replacing the representative behaves like
// delete-then-insert: the class drops its old entry and re-enters at the
// tail of the iteration order. A nil fold selects CaseFold.
func KeepLatest[K comparable](fold FoldFunc[K]) Folder[K] {
	return keepLatest[K]{fold: orCaseFold(fold)}
}

func orCaseFold[K comparable](fold FoldFunc[K]) FoldFunc[K] {
	if fold == nil {
		return CaseFold[K]
	}
	return fold
}

type keepFirst[K comparable] struct {
	fold FoldFunc[K]
}

func (f keepFirst[K]) Canonical(key K) K { return f.fold(key) }

func (f keepFirst[K]) Preserve(incoming K, existing K, exists bool) K {
	if exists {
		return existing
	}
	return incoming
}

type keepCanonical[K comparable] struct {
	fold FoldFunc[K]
}

func (f keepCanonical[K]) Canonical(key K) K { return f.fold(key) }

func (f keepCanonical[K]) Preserve(incoming K, _ K, _ bool) K {
	return f.fold(incoming)
}

type keepLatest[K comparable] struct {
	fold FoldFunc[K]
}

func (f keepLatest[K]) Canonical(key K) K { return f.fold(key) }

func (f keepLatest[K]) Preserve(incoming K, _ K, _ bool) K {
	return incoming
}

// CaseFold lower-cases keys whose dynamic type is string and returns every
// other key unchanged. Named string types are not folded; assert to string
// in a custom FoldFunc if that is wanted.
func CaseFold[K comparable](key K) K {
	if s, ok := any(key).(string); ok {
		return fromString[K](strings.ToLower(s), key)
	}
	return key
}

// StripSpace removes all whitespace from string keys, so "the clown" and
// "  the   clown " fold together. Non-string keys pass through unchanged.
// Folding is case-sensitive; compose with strings.ToLower in a custom
// FoldFunc for both.
func StripSpace[K comparable](key K) K {
	if s, ok := any(key).(string); ok {
		return fromString[K](strings.Join(strings.Fields(s), ""), key)
	}
	return key
}

// SortRunes sorts the runes of string keys, folding anagrams together:
// "abc" and "bac" address the same entry. Non-string keys pass through
// unchanged.
func SortRunes[K comparable](key K) K {
	s, ok := any(key).(string)
	if !ok {
		return key
	}
	runes := []rune(s)
	slices.Sort(runes)
	return fromString[K](string(runes), key)
}

// fromString converts a folded string back to K. The assertion can only fail
// when K is a named string type, which the stock folds leave unfolded.
func fromString[K comparable](s string, orig K) K {
	if k, ok := any(s).(K); ok {
		return k
	}
	return orig
}
