// SPDX-License-Identifier: MIT

// Package hashtable implements a fixed-capacity hash table whose buckets
// adapt to collisions.
//
// What is it?
//
//	Every bucket starts as a short list scanned with ==. Once a Put leaves a
//	bucket holding more than the treeify threshold (8 by default), the bucket
//	is rebuilt once as a binary search tree ordered by the table's comparator
//	and stays a tree for the rest of its life. A pathological key set that
//	lands in one bucket therefore costs O(tree height) per lookup instead of
//	O(n).
//
// Key features:
//   - New for cmp.Ordered keys, NewFunc with a caller-supplied comparator.
//   - Capacity is fixed at construction; there is no rehashing.
//   - Pluggable hashing for string and integer keys (xxHash64, Murmur3,
//     maphash) and a Hasher interface for key types that hash themselves.
//   - An absent key (PutNil/GetNil/RemoveNil) stored in bucket 0 while that
//     bucket is a list.
//   - Structured logging through log/slog and a Collector hook for metrics.
//
// Usage:
//
//	h, err := hashtable.New[int, string](hashtable.WithCapacity(64))
//	if err != nil {
//		return err
//	}
//	h.Put(1, "A")
//	v, ok := h.Get(1) // "A", true
//	h.Remove(1)
//
// Absent key:
//
//	The absent key has no representation in tree mode. A bucket that holds it
//	is never converted, and once bucket 0 is a tree the *Nil methods return
//	ErrInvalidKey.
//
// Trees are not rebalanced, and Bucket.Size recounts a tree on every call.
// A HashTable is not safe for concurrent use.
package hashtable
