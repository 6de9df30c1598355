package bptree

import (
	"go-bptree/pkg/customerrors"

	"github.com/pkg/errors"
)

// locator is the position of a key in the leaf level: the leaf that holds or
// would hold it and the left-most index whose key is >= the searched key.
type locator[K, V any] struct {
	n     *node[K, V]
	index int
	found bool
}

// locate descends from the root to the leaf responsible for key. At every
// index node it follows the first separator >= key, or last when the key is
// greater than all separators.
func (tree *BPlusTree[K, V]) locate(key K) locator[K, V] {
	n := tree.root
	for !n.leaf {
		idx, _ := n.search(key, tree.cmp)
		next := n.child(idx)
		if next == nil {
			panic(errors.Wrapf(customerrors.ErrCorrupted, "[locate] no child at %d of %s", idx, n))
		}
		n = next
	}

	idx, found := n.search(key, tree.cmp)
	return locator[K, V]{n: n, index: idx, found: found}
}

// leftLeaf returns the left most leaf node of the sub-tree with given node
// as the root.
func leftLeaf[K, V any](n *node[K, V]) *node[K, V] {
	for !n.leaf {
		n = n.child(0)
	}
	return n
}

// rightLeaf returns the right most leaf node of the sub-tree with given node
// as the root.
func rightLeaf[K, V any](n *node[K, V]) *node[K, V] {
	for !n.leaf {
		n = n.rightmost()
	}
	return n
}
