package foldmap_test

import (
	"fmt"

	"github.com/dreamware/foldmap"
)

// Case-variant keys address the same entry; the first form seen is the one
// enumerated.
func Example() {
	d := foldmap.New[string, string]()
	d.Set("Clown", "Bozo")
	d.Set("clown", "Krusty")

	v, _ := d.Get("CLOWN")
	fmt.Println(v)

	for k := range d.Keys() {
		fmt.Println(k)
	}
	// Output:
	// Krusty
	// Clown
}

// KeepCanonical makes the enumerated keys deterministic: always the
// canonical form, regardless of which variant was set first.
func ExampleKeepCanonical() {
	d := foldmap.NewWith[string, string](foldmap.KeepCanonical[string](nil))
	d.Set("Clown", "Bozo")
	d.Set("CLOWN", "Krusty")

	for k, v := range d.All() {
		fmt.Println(k, v)
	}
	// Output:
	// clown Krusty
}

// KeepLatest preserves whichever key form was used most recently to Set.
func ExampleKeepLatest() {
	d := foldmap.NewWith[string, string](foldmap.KeepLatest[string](nil))
	d.Set("cloWN", "boZO")
	d.Set("CLOwn", "BOzo")

	for k, v := range d.All() {
		fmt.Println(k, v)
	}
	// Output:
	// CLOwn BOzo
}

// A custom fold function defines its own key equivalence; StripSpace folds
// whitespace variants together.
func ExampleStripSpace() {
	d := foldmap.NewWith[string, string](foldmap.KeepFirst(foldmap.StripSpace[string]))
	d.Set("theclown", "Bozo")

	v, _ := d.Get("   the      clown  ")
	fmt.Println(v)
	// Output:
	// Bozo
}

// Non-string keys are exact-match keys under the stock folds and coexist
// with folded string keys.
func ExampleMap_mixedKeys() {
	d := foldmap.New[any, any]()
	d.Set("Greeting", "hello")
	d.Set(42, "answer")

	v, _ := d.Get("GREETING")
	fmt.Println(v)
	v, _ = d.Get(42)
	fmt.Println(v)
	fmt.Println(d.Len())
	// Output:
	// hello
	// answer
	// 2
}
