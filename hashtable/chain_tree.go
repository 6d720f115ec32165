// SPDX-License-Identifier: MIT

package hashtable

// treeChain is the tree-mode representation of a bucket: an unbalanced
// binary search tree. Every key in a left subtree compares less than its
// parent and every key in a right subtree compares greater, or ties without
// being == to it.
//
// Lookups cost O(height). No rebalancing is done, so adversarial insertion
// order degrades the tree to a list.
type treeChain[K comparable, V any] struct {
	root    *treeNode[K, V]
	compare func(a, b K) int
}

func (t *treeChain[K, V]) mode() Mode { return TreeMode }

// order compares key against a node key. A key the comparator ties with but
// == rejects (NaN under cmp.Compare) sorts to the right, so the tree matches
// exactly the keys the list would.
func (t *treeChain[K, V]) order(key, nodeKey K) int {
	c := t.compare(key, nodeKey)
	if c == 0 && key != nodeKey {
		return 1
	}

	return c
}

// put descends to the matching node or to the empty child slot where key
// belongs. link always points at the slot that owns the current node.
func (t *treeChain[K, V]) put(key K, value V) bool {
	link := &t.root
	for *link != nil {
		n := *link
		c := t.order(key, n.key)
		switch {
		case c < 0:
			link = &n.left
		case c > 0:
			link = &n.right
		default:
			n.value = value
			return false
		}
	}
	*link = &treeNode[K, V]{key: key, value: value}

	return true
}

func (t *treeChain[K, V]) get(key K) (V, bool) {
	n := t.root
	for n != nil {
		c := t.order(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	var zero V

	return zero, false
}

func (t *treeChain[K, V]) remove(key K) bool {
	var removed bool
	t.root, removed = t.delete(t.root, key)

	return removed
}

// delete removes key from the subtree rooted at n and returns the new
// subtree root. A node with two children takes over the key and value of its
// in-order successor, whose node is then unlinked from the right subtree; the
// successor has no left child, so that second deletion is a splice.
func (t *treeChain[K, V]) delete(n *treeNode[K, V], key K) (*treeNode[K, V], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	c := t.order(key, n.key)
	switch {
	case c < 0:
		n.left, removed = t.delete(n.left, key)
	case c > 0:
		n.right, removed = t.delete(n.right, key)
	default:
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		succ := leftmost(n.right)
		n.key, n.value = succ.key, succ.value
		n.right = unlinkLeftmost(n.right)
		removed = true
	}

	return n, removed
}

// unlinkLeftmost removes the leftmost node of the subtree rooted at n and
// returns the new subtree root. It works on position, not key.
func unlinkLeftmost[K comparable, V any](n *treeNode[K, V]) *treeNode[K, V] {
	if n.left == nil {
		return n.right
	}
	n.left = unlinkLeftmost(n.left)

	return n
}

func leftmost[K comparable, V any](n *treeNode[K, V]) *treeNode[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}

// size walks the whole tree; the count is not cached.
func (t *treeChain[K, V]) size() int { return countNodes(t.root) }

func countNodes[K comparable, V any](n *treeNode[K, V]) int {
	if n == nil {
		return 0
	}

	return 1 + countNodes(n.left) + countNodes(n.right)
}

// all yields in ascending key order.
func (t *treeChain[K, V]) all(yield func(K, V) bool) bool {
	return inOrder(t.root, yield)
}

func inOrder[K comparable, V any](n *treeNode[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return inOrder(n.left, yield) && yield(n.key, n.value) && inOrder(n.right, yield)
}

// height is the number of nodes on the longest root-to-leaf path.
func height[K comparable, V any](n *treeNode[K, V]) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}
