// SPDX-License-Identifier: MIT
// Package hashtable_test contains shared fixtures.

package hashtable_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhash/hashtable"
)

// badKey hashes every value to the same bucket, forcing collisions.
type badKey int

func (badKey) Hash64() uint64 { return 42 }

func compareBadKey(a, b badKey) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// mustNew builds an int→string table or fails the test.
func mustNew(t testing.TB, opts ...hashtable.Option) *hashtable.HashTable[int, string] {
	t.Helper()
	h, err := hashtable.New[int, string](opts...)
	require.NoError(t, err)

	return h
}

// mustNewBad builds a badKey→string table or fails the test.
func mustNewBad(t testing.TB, opts ...hashtable.Option) *hashtable.HashTable[badKey, string] {
	t.Helper()
	h, err := hashtable.NewFunc[badKey, string](compareBadKey, opts...)
	require.NoError(t, err)

	return h
}

// bucketOf returns bucket i or fails the test.
func bucketOf[K comparable, V any](t testing.TB, h *hashtable.HashTable[K, V], i int) *hashtable.Bucket[K, V] {
	t.Helper()
	b, err := h.Bucket(i)
	require.NoError(t, err)

	return b
}

// keysOf collects the keys yielded by seq in order.
func keysOf[K comparable, V any](seq iter.Seq2[K, V]) []K {
	var out []K
	for k := range seq {
		out = append(out, k)
	}

	return out
}
