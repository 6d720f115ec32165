// SPDX-License-Identifier: MIT

package hashtable

// listChain is the list-mode representation of a bucket: entries in
// insertion order, compared with ==. It is the only representation that can
// hold the absent key.
type listChain[K comparable, V any] struct {
	entries []entry[K, V]
}

func (l *listChain[K, V]) mode() Mode { return ListMode }

func (l *listChain[K, V]) size() int { return len(l.entries) }

// find returns the position of key, or -1.
func (l *listChain[K, V]) find(key K) int {
	for i := range l.entries {
		if !l.entries[i].nilKey && l.entries[i].key == key {
			return i
		}
	}

	return -1
}

// findNil returns the position of the absent-key entry, or -1.
func (l *listChain[K, V]) findNil() int {
	for i := range l.entries {
		if l.entries[i].nilKey {
			return i
		}
	}

	return -1
}

func (l *listChain[K, V]) put(key K, value V) bool {
	if i := l.find(key); i >= 0 {
		l.entries[i].value = value
		return false
	}
	l.entries = append(l.entries, entry[K, V]{key: key, value: value})

	return true
}

func (l *listChain[K, V]) get(key K) (V, bool) {
	if i := l.find(key); i >= 0 {
		return l.entries[i].value, true
	}
	var zero V

	return zero, false
}

func (l *listChain[K, V]) remove(key K) bool {
	return l.removeAt(l.find(key))
}

func (l *listChain[K, V]) putNil(value V) bool {
	if i := l.findNil(); i >= 0 {
		l.entries[i].value = value
		return false
	}
	l.entries = append(l.entries, entry[K, V]{value: value, nilKey: true})

	return true
}

func (l *listChain[K, V]) getNil() (V, bool) {
	if i := l.findNil(); i >= 0 {
		return l.entries[i].value, true
	}
	var zero V

	return zero, false
}

func (l *listChain[K, V]) removeNil() bool {
	return l.removeAt(l.findNil())
}

// removeAt drops entry i keeping the order of the rest, since that order is
// what the tree is later built from. A negative i is a no-op.
func (l *listChain[K, V]) removeAt(i int) bool {
	if i < 0 {
		return false
	}
	copy(l.entries[i:], l.entries[i+1:])
	var zero entry[K, V]
	l.entries[len(l.entries)-1] = zero
	l.entries = l.entries[:len(l.entries)-1]

	return true
}

func (l *listChain[K, V]) all(yield func(K, V) bool) bool {
	for _, e := range l.entries {
		if e.nilKey {
			continue
		}
		if !yield(e.key, e.value) {
			return false
		}
	}

	return true
}
