package foldmap

import (
	"strconv"
	"testing"
)

func BenchmarkMapSet(b *testing.B) {
	keys := benchKeys(1024)
	m := New[string, int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Set(keys[i%len(keys)], i)
	}
}

func BenchmarkMapGet(b *testing.B) {
	keys := benchKeys(1024)
	m := New[string, int]()
	for i, k := range keys {
		m.Set(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Get(keys[i%len(keys)]); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNativeMapGet is the non-folding reference point.
func BenchmarkNativeMapGet(b *testing.B) {
	keys := benchKeys(1024)
	m := make(map[string]int, len(keys))
	for i, k := range keys {
		m[k] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m[keys[i%len(keys)]]; !ok {
			b.Fatal("missing key")
		}
	}
}

func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "Key-" + strconv.Itoa(i)
	}
	return keys
}
