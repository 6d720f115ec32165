// SPDX-License-Identifier: MIT

package hashtable

// Mode reports which collision chain representation a bucket is using.
type Mode uint8

const (
	// ListMode is the initial representation: a sequential list scanned with ==.
	ListMode Mode = iota
	// TreeMode is the terminal representation: an unbalanced binary search tree
	// ordered by the table's comparator.
	TreeMode
)

// String returns "list" or "tree".
func (m Mode) String() string {
	switch m {
	case ListMode:
		return "list"
	case TreeMode:
		return "tree"
	default:
		return "unknown"
	}
}

// Hasher lets a key type supply its own 64-bit hash. When a key implements
// Hasher the table uses Hash64 verbatim and ignores the configured
// HashAlgorithm. Equal keys must return equal hashes.
//
// Hash64 is called on every key, so a key type with a pointer receiver must
// handle a nil receiver itself; otherwise a nil key panics inside Hash64.
type Hasher interface {
	Hash64() uint64
}

// Stats is a point-in-time summary of a table's bucket layout.
// Computing it walks every bucket, so tree buckets are counted in O(n).
type Stats struct {
	Capacity      int // number of buckets
	Len           int // live entries, including the absent key
	ListBuckets   int // buckets still in ListMode
	TreeBuckets   int // buckets in TreeMode
	EmptyBuckets  int // buckets holding no entry
	LargestBucket int // size of the most populated bucket
}

// entry is one key/value pair of a list-mode bucket.
// nilKey marks the absent-key sentinel; key is the zero value in that case.
type entry[K comparable, V any] struct {
	key    K
	value  V
	nilKey bool
}

// treeNode is one key/value pair of a tree-mode bucket. Each node exclusively
// owns its two subtrees; there are no parent links.
type treeNode[K comparable, V any] struct {
	key         K
	value       V
	left, right *treeNode[K, V]
}
