package collection

import (
	"sort"

	"assertr/eq"
	"assertr/internal/render"
)

// CompareMaps reports whether m1 and m2 have the same cardinality and every key of
// m1 maps to a value in m2 that compares equal. Mismatches are recorded in ctx with
// m1 treated as the actual and m2 as the expected map, in key order.
func CompareMaps[K comparable, A, B any](m1 map[K]A, m2 map[K]B, ctx *eq.Context) bool {
	equal := len(m1) == len(m2)

	for _, k := range sortedKeys(m1) {
		want, ok := m2[k]
		if !ok {
			equal = false
			ctx.Add("Key not expected: " + render.Value(k))
			continue
		}

		if !eq.Compare(m1[k], want, ctx) {
			equal = false
			ctx.Add(render.Value(k) + ": expected " + render.Value(want) + ", but was " + render.Value(m1[k]))
		}
	}

	for _, k := range sortedKeys(m2) {
		if _, ok := m1[k]; !ok {
			equal = false
			ctx.Add("Key not found: " + render.Value(k))
		}
	}

	return equal
}

func sortedKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		return render.Value(keys[i]) < render.Value(keys[j])
	})

	return keys
}
