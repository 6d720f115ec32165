// SPDX-License-Identifier: MIT

package hashtable

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
)

// HashTable is a fixed-capacity hash table whose buckets switch from list to
// tree representation under heavy collision. See the package documentation.
//
// A HashTable is not safe for concurrent use. Callers that share one across
// goroutines must serialize every call, reads included.
type HashTable[K comparable, V any] struct {
	buckets   []Bucket[K, V]
	hasher    keyHasher[K]
	length    int
	logger    *slog.Logger
	collector Collector
}

// New creates a table for naturally ordered keys; tree-mode buckets order
// keys with cmp.Compare. A NaN key is never equal to itself, so each Put of
// NaN stores a new entry that Get cannot find, in either bucket mode.
//
// Errors: ErrInvalidCapacity, ErrInvalidThreshold, ErrUnknownHashAlgorithm.
// Complexity: O(capacity).
func New[K cmp.Ordered, V any](opts ...Option) (*HashTable[K, V], error) {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc creates a table whose tree-mode buckets order keys with compare.
// compare must be a total order and return 0 whenever a == b. Key identity
// is always decided by ==; keys that compare equal without being == (NaN
// under cmp.Compare) are kept apart, as the list representation keeps them.
//
// Errors: ErrNilCompare plus those of New.
// Complexity: O(capacity).
func NewFunc[K comparable, V any](compare func(a, b K) int, opts ...Option) (*HashTable[K, V], error) {
	if compare == nil {
		return nil, ErrNilCompare
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	h := &HashTable[K, V]{
		buckets:   make([]Bucket[K, V], o.Capacity),
		hasher:    newKeyHasher[K](o.HashAlgorithm),
		logger:    o.Logger,
		collector: o.Collector,
	}
	for i := range h.buckets {
		h.buckets[i] = newBucket[K, V](compare, o.TreeifyThreshold)
	}

	return h, nil
}

// Capacity returns the fixed number of buckets.
func (h *HashTable[K, V]) Capacity() int { return len(h.buckets) }

// Len returns the number of entries, the absent key included. O(1).
func (h *HashTable[K, V]) Len() int { return h.length }

// Put stores value under key, overwriting any previous value.
// Complexity: O(bucket size) in list mode, O(tree height) in tree mode.
func (h *HashTable[K, V]) Put(key K, value V) {
	i := h.hasher.index(key, len(h.buckets))
	b := &h.buckets[i]
	mode := b.Mode()
	inserted, treeified := b.put(key, value)
	if inserted {
		h.length++
	}
	h.collector.RecordPut(mode, inserted)
	if treeified {
		n := b.Size()
		h.logger.Debug("bucket treeified", "bucket", i, "entries", n)
		h.collector.RecordTreeify(i, n)
	}
}

// Get returns the value stored under key and whether it was present.
func (h *HashTable[K, V]) Get(key K) (V, bool) {
	b := &h.buckets[h.hasher.index(key, len(h.buckets))]
	v, ok := b.Get(key)
	h.collector.RecordGet(b.Mode(), ok)

	return v, ok
}

// Remove deletes key. Removing a missing key does nothing.
func (h *HashTable[K, V]) Remove(key K) {
	b := &h.buckets[h.hasher.index(key, len(h.buckets))]
	removed := b.remove(key)
	if removed {
		h.length--
	}
	h.collector.RecordRemove(b.Mode(), removed)
}

// PutNil stores value under the absent key, which always lives in bucket 0.
// Returns ErrInvalidKey if bucket 0 is already in tree mode.
func (h *HashTable[K, V]) PutNil(value V) error {
	b := &h.buckets[0]
	inserted, err := b.putNil(value)
	if err != nil {
		h.logger.Debug("absent key rejected", "op", "put", "error", err)
		return err
	}
	if inserted {
		h.length++
	}
	h.collector.RecordPut(b.Mode(), inserted)

	return nil
}

// GetNil returns the value stored under the absent key.
// Returns ErrInvalidKey if bucket 0 is in tree mode.
func (h *HashTable[K, V]) GetNil() (V, bool, error) {
	b := &h.buckets[0]
	v, ok, err := b.getNil()
	if err != nil {
		h.logger.Debug("absent key rejected", "op", "get", "error", err)
		return v, false, err
	}
	h.collector.RecordGet(b.Mode(), ok)

	return v, ok, nil
}

// RemoveNil deletes the absent key; a no-op if it is not stored.
// Returns ErrInvalidKey if bucket 0 is in tree mode.
func (h *HashTable[K, V]) RemoveNil() error {
	b := &h.buckets[0]
	removed, err := b.removeNil()
	if err != nil {
		h.logger.Debug("absent key rejected", "op", "remove", "error", err)
		return err
	}
	if removed {
		h.length--
	}
	h.collector.RecordRemove(b.Mode(), removed)

	return nil
}

// Bucket returns bucket i for inspection.
func (h *HashTable[K, V]) Bucket(i int) (*Bucket[K, V], error) {
	if i < 0 || i >= len(h.buckets) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrBucketIndex, i, len(h.buckets))
	}

	return &h.buckets[i], nil
}

// All yields every present-key entry, bucket by bucket. Within a tree-mode
// bucket keys come in ascending order. The table must not be mutated while
// iterating.
func (h *HashTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range h.buckets {
			if !h.buckets[i].chain.all(yield) {
				return
			}
		}
	}
}

// Stats summarizes the bucket layout. O(n) because tree sizes are recounted.
func (h *HashTable[K, V]) Stats() Stats {
	s := Stats{Capacity: len(h.buckets), Len: h.length}
	for i := range h.buckets {
		b := &h.buckets[i]
		if b.Mode() == TreeMode {
			s.TreeBuckets++
		} else {
			s.ListBuckets++
		}
		n := b.Size()
		if n == 0 {
			s.EmptyBuckets++
		}
		s.LargestBucket = max(s.LargestBucket, n)
	}

	return s
}
