// Package foldmap provides a key-folding associative container: a mutable
// mapping in which distinct keys that normalize to the same canonical form
// refer to the same stored entry.
//
// # Overview
//
// The canonical use is case-insensitive string keys: after m.Set("Clown",
// "Bozo"), both m.Get("clown") and m.Get("CLOWN") find the entry. The
// normalization rule is pluggable, so the same container also serves
// whitespace-insensitive keys, anagram-folding keys, or any equivalence a
// caller can express as a function over the key type.
//
// Each equivalence class is enumerated under a single representative, its
// preserved key. Which literal key form is retained is itself pluggable: by
// default the first form seen for a class sticks, but the canonical form or
// the most recently set form can be retained instead.
//
// # Architecture
//
// A Map routes every operation through a Folder, then lands on two native
// maps kept in lockstep, plus a slice tracking enumeration order:
//
//	┌─────────────────────────────────────────┐
//	│               Map[K, V]                 │
//	├─────────────────────────────────────────┤
//	│  Folder:                                │
//	│    Canonical(key)  - class membership   │
//	│    Preserve(k,p,ok)- representative     │
//	├─────────────────────────────────────────┤
//	│  State:                                 │
//	│    preserved map   - canonical → key    │
//	│    values map      - key → value        │
//	│    order slice     - enumeration order  │
//	└─────────────────────────────────────────┘
//
// Every canonical key in the preserved table has exactly one entry in the
// values table, keyed by the representative it maps to; the two tables are
// always mutated together, and a failed Get, Delete, or Pop mutates nothing.
//
// # Folders
//
// Retention policies (each takes a FoldFunc; nil means CaseFold):
//   - KeepFirst - the first key form seen for a class is retained (default)
//   - KeepCanonical - the canonical form is retained, so enumeration is
//     deterministic regardless of insertion history
//   - KeepLatest - the most recently set form is retained; replacing the
//     representative drops the old entry and moves the class to the tail
//     of the enumeration order (delete-then-insert semantics)
//
// Stock fold functions, all total over any comparable key type:
//   - CaseFold - lower-cases string keys; everything else passes through
//   - StripSpace - removes whitespace from string keys
//   - SortRunes - sorts the runes of string keys, folding anagrams
//
// Custom equivalences implement Folder directly or wrap a FoldFunc in one of
// the policy constructors. Preserve must return a key within the incoming
// key's equivalence class.
//
// # Usage
//
// Basic case-insensitive mapping:
//
//	m := foldmap.New[string, string]()
//	m.Set("Clown", "Bozo")
//	m.Set("clown", "Krusty")
//	v, _ := m.Get("CLOWN")        // "Krusty"
//	keys := slices.Collect(m.Keys()) // ["Clown"] - first form seen
//
// Mixed key types fold only where the FoldFunc applies:
//
//	m := foldmap.New[any, any]()
//	m.Set("Key", 1)   // folds case-insensitively
//	m.Set(42, 2)      // exact-match, coexists
//	m.Set(nil, 3)     // exact-match, coexists
//
// Bulk construction applies entries in order, later entries overwriting
// earlier ones that fold to the same class:
//
//	m := foldmap.Collect(foldmap.KeepCanonical[string](nil), entries)
//	m2 := foldmap.FromMap(foldmap.Default[string](), plainMap)
//
// # Error Handling
//
// One sentinel, ErrKeyNotFound, returned by Get, Pop, and Delete when the
// key's class is unpopulated; match with errors.Is. Lookup and Has provide
// comma-ok alternatives. Normalization itself never fails: fold functions
// are total by construction.
//
// # Concurrency
//
// A Map has no internal locking and assumes one goroutine at a time. All
// operations run synchronously to completion, so an operation never observes
// another's partial mutation on the same instance; callers that share a Map
// across goroutines must supply their own mutual exclusion (one sync.Mutex
// per instance suffices).
//
// # Performance
//
// Get, Set, Has, and Lookup are O(1) amortized on the underlying native
// maps. Delete, Pop, and a Set that replaces a representative additionally
// remove an order slot, which is O(n) in the number of classes. Iteration
// is O(n) and lazy; the sequences returned by Keys, Values, and All are
// restartable and walk current contents on each range.
package foldmap
