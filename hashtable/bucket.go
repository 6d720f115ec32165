// SPDX-License-Identifier: MIT

package hashtable

import "iter"

// chain is the collision chain held by a bucket. Its dynamic type is the
// bucket's mode: *listChain or *treeChain, never both.
type chain[K comparable, V any] interface {
	mode() Mode
	put(key K, value V) (inserted bool)
	get(key K) (V, bool)
	remove(key K) (removed bool)
	size() int
	all(yield func(K, V) bool) bool
}

// Bucket is the collision chain behind one slot of a HashTable.
//
// A bucket starts in ListMode. When a Put leaves it with more than the
// treeify threshold entries, its entries are reinserted, in list order,
// into a binary search tree and the bucket stays in TreeMode for good.
// A bucket holding the absent key is exempt from that conversion until the
// absent key is removed, because a tree cannot order it.
//
// Buckets are read-only from outside the package; mutate through HashTable.
type Bucket[K comparable, V any] struct {
	chain     chain[K, V]
	compare   func(a, b K) int
	threshold int
}

func newBucket[K comparable, V any](compare func(a, b K) int, threshold int) Bucket[K, V] {
	return Bucket[K, V]{
		chain:     &listChain[K, V]{},
		compare:   compare,
		threshold: threshold,
	}
}

// Mode reports the current representation.
func (b *Bucket[K, V]) Mode() Mode { return b.chain.mode() }

// Size returns the number of entries, the absent key included.
// In TreeMode this is a full traversal: O(n), not cached.
func (b *Bucket[K, V]) Size() int { return b.chain.size() }

// Height returns the tree height in TreeMode and the list length in
// ListMode, i.e. the worst-case number of keys a lookup examines.
func (b *Bucket[K, V]) Height() int {
	if t, ok := b.chain.(*treeChain[K, V]); ok {
		return height(t.root)
	}

	return b.chain.size()
}

// Get returns the value stored under key.
func (b *Bucket[K, V]) Get(key K) (V, bool) { return b.chain.get(key) }

// All yields every present-key entry: list order in ListMode, ascending key
// order in TreeMode. The absent key is never yielded.
func (b *Bucket[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		b.chain.all(yield)
	}
}

// put inserts or overwrites key, then converts the bucket if it has grown
// past the threshold.
func (b *Bucket[K, V]) put(key K, value V) (inserted, treeified bool) {
	inserted = b.chain.put(key, value)
	if l, ok := b.chain.(*listChain[K, V]); ok && l.size() > b.threshold && l.findNil() < 0 {
		b.treeify(l)
		treeified = true
	}

	return inserted, treeified
}

func (b *Bucket[K, V]) remove(key K) bool { return b.chain.remove(key) }

// treeify rebuilds l as a tree by repeated insertion in list order and
// replaces the chain. The list is dropped.
func (b *Bucket[K, V]) treeify(l *listChain[K, V]) {
	t := &treeChain[K, V]{compare: b.compare}
	for _, e := range l.entries {
		t.put(e.key, e.value)
	}
	b.chain = t
}

func (b *Bucket[K, V]) putNil(value V) (bool, error) {
	l, ok := b.chain.(*listChain[K, V])
	if !ok {
		return false, ErrInvalidKey
	}

	return l.putNil(value), nil
}

func (b *Bucket[K, V]) getNil() (V, bool, error) {
	l, ok := b.chain.(*listChain[K, V])
	if !ok {
		var zero V
		return zero, false, ErrInvalidKey
	}
	v, found := l.getNil()

	return v, found, nil
}

func (b *Bucket[K, V]) removeNil() (bool, error) {
	l, ok := b.chain.(*listChain[K, V])
	if !ok {
		return false, ErrInvalidKey
	}

	return l.removeNil(), nil
}
