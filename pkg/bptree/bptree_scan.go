package bptree

import "iter"

// Keys returns the keys in ascending order. The sequence walks the leaf chain
// from the current head each time it is ranged over; mutating the tree while
// ranging leaves the rest of that walk undefined.
func (tree *BPlusTree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := tree.head; n != nil; n = n.right {
			for i := range n.entries {
				if !yield(n.entries[i].key) {
					return
				}
			}
		}
	}
}

// All returns the key-value pairs in ascending key order, with the same
// restart semantics as Keys.
func (tree *BPlusTree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := tree.head; n != nil; n = n.right {
			for i := range n.entries {
				if !yield(n.entries[i].key, n.entries[i].val) {
					return
				}
			}
		}
	}
}

// Min returns the smallest key and its value.
func (tree *BPlusTree[K, V]) Min() (key K, val V, found bool) {
	if tree.size == 0 {
		return key, val, false
	}
	e := tree.head.entries[0]
	return e.key, e.val, true
}

// Max returns the largest key and its value.
func (tree *BPlusTree[K, V]) Max() (key K, val V, found bool) {
	if tree.size == 0 {
		return key, val, false
	}
	leaf := rightLeaf(tree.root)
	e := leaf.entries[len(leaf.entries)-1]
	return e.key, e.val, true
}

// Scan performs a full scan over the leaf chain, ascending or, with
// opts.Reverse, descending. Each entry is passed to scanFn; the scan stops
// once scanFn returns true.
func (tree *BPlusTree[K, V]) Scan(opts ScanOptions, scanFn func(key K, val V) bool) {
	if !opts.Reverse {
		tree.scan(tree.head, 0, false, scanFn)
		return
	}
	leaf := rightLeaf(tree.root)
	tree.scan(leaf, len(leaf.entries)-1, true, scanFn)
}

// ScanFrom performs a scan starting at the given key. Ascending scans start
// at the first key >= key, descending ones at the last key <= key; Strict
// excludes key itself.
func (tree *BPlusTree[K, V]) ScanFrom(key K, opts ScanOptions, scanFn func(key K, val V) bool) {
	loc := tree.locate(key)
	idx := loc.index
	if !opts.Reverse {
		if loc.found && opts.Strict {
			idx++
		}
		tree.scan(loc.n, idx, false, scanFn)
		return
	}

	// loc.index is the first key >= key; step back unless it is an exact
	// match that should be included.
	if !loc.found || opts.Strict {
		idx--
	}
	tree.scan(loc.n, idx, true, scanFn)
}

// scan follows the leaf chain from entry idx of leaf n. idx may point one
// past either end of n, in which case the walk continues in the neighbour.
func (tree *BPlusTree[K, V]) scan(n *node[K, V], idx int, reverse bool, scanFn func(key K, val V) bool) {
	for n != nil {
		if !reverse {
			for i := idx; i < len(n.entries); i++ {
				if scanFn(n.entries[i].key, n.entries[i].val) {
					return
				}
			}
			n = n.right
			idx = 0
			continue
		}

		for i := idx; i >= 0; i-- {
			if scanFn(n.entries[i].key, n.entries[i].val) {
				return
			}
		}
		n = n.left
		if n != nil {
			idx = len(n.entries) - 1
		}
	}
}
