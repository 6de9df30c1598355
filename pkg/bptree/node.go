package bptree

import (
	"fmt"
	"strings"

	"go-bptree/pkg/customerrors"
	"go-bptree/util/helpers"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// entry is a leaf record (key, val) when it lives in a leaf node and an
// index record (key, child) otherwise. The owning node's leaf flag is the tag.
// An index key always equals the maximum key reachable through child.
type entry[K, V any] struct {
	key   K
	val   V
	child *node[K, V]
}

// node represents an internal or leaf node in the B+ tree.
type node[K, V any] struct {
	leaf bool

	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]

	// last routes keys greater than the last separator. Only nodes on the
	// rightmost spine have one, every other subtree is bounded by its
	// parent's separator.
	last *node[K, V]

	entries []entry[K, V]
}

// maxPrealloc bounds the entries preallocated per node; larger nodes grow
// through append.
const maxPrealloc = 64

// nodeCap is the initial entries capacity of a node in a tree of the given
// order: room for one overflow entry, up to maxPrealloc.
func nodeCap(order int) int {
	return helpers.Min(order, maxPrealloc) + 1
}

func newNode[K, V any](leaf bool, order int) *node[K, V] {
	return &node[K, V]{
		leaf:    leaf,
		entries: make([]entry[K, V], 0, nodeCap(order)),
	}
}

// search performs a binary search in the node entries for the given key
// and returns the left-most index whose key is >= key and a flag indicating
// whether key exists.
func (n *node[K, V]) search(key K, cmp func(a, b K) int) (idx int, found bool) {
	return slices.BinarySearchFunc(n.entries, key, func(e entry[K, V], k K) int {
		return cmp(e.key, k)
	})
}

// child returns the subtree routed through entry i, or last for i == len.
func (n *node[K, V]) child(i int) *node[K, V] {
	if i == len(n.entries) {
		return n.last
	}
	return n.entries[i].child
}

// rightmost returns the child holding the largest keys of an index node.
func (n *node[K, V]) rightmost() *node[K, V] {
	if n.last != nil {
		return n.last
	}
	if len(n.entries) == 0 {
		panic(errors.Wrap(customerrors.ErrCorrupted, "[rightmost] index node without children"))
	}
	return n.entries[len(n.entries)-1].child
}

func (n *node[K, V]) lastKey() K {
	if len(n.entries) == 0 {
		panic(errors.Wrap(customerrors.ErrCorrupted, "[lastKey] empty node"))
	}
	return n.entries[len(n.entries)-1].key
}

// insertEntry inserts the entry at the given index into the node.
func (n *node[K, V]) insertEntry(idx int, e entry[K, V]) {
	n.entries = append(n.entries, entry[K, V]{})
	copy(n.entries[idx+1:], n.entries[idx:])
	n.entries[idx] = e
}

// removeEntry removes the entry at given index and returns it.
func (n *node[K, V]) removeEntry(idx int) entry[K, V] {
	e := n.entries[idx]
	copy(n.entries[idx:], n.entries[idx+1:])
	n.entries[len(n.entries)-1] = entry[K, V]{}
	n.entries = n.entries[:len(n.entries)-1]
	return e
}

// removeHead drops the first count entries, shifting the rest left.
func (n *node[K, V]) removeHead(count int) {
	k := copy(n.entries, n.entries[count:])
	clear(n.entries[k:])
	n.entries = n.entries[:k]
}

// removeTail drops the last count entries.
func (n *node[K, V]) removeTail(count int) {
	k := len(n.entries) - count
	clear(n.entries[k:])
	n.entries = n.entries[:k]
}

// adopt points the children referenced by es back to n.
func (n *node[K, V]) adopt(es []entry[K, V]) {
	if n.leaf {
		return
	}
	for i := range es {
		es[i].child.parent = n
	}
}

// unlink removes n from its level chain.
func (n *node[K, V]) unlink() {
	if n.left != nil {
		n.left.right = n.right
	}
	if n.right != nil {
		n.right.left = n.left
	}
	n.left, n.right, n.parent = nil, nil, nil
}

// linkBefore splices n into the level chain right before next.
func (n *node[K, V]) linkBefore(next *node[K, V]) {
	n.right = next
	n.left = next.left
	if next.left != nil {
		next.left.right = n
	}
	next.left = n
}

func (n *node[K, V]) String() string {
	keys := make([]string, 0, len(n.entries))
	for _, e := range n.entries {
		keys = append(keys, fmt.Sprintf("%v", e.key))
	}
	s := "[" + strings.Join(keys, " ") + "]"
	if !n.leaf && n.last != nil {
		s += " +"
	}
	return s
}
