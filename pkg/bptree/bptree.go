// Package bptree implements an in-memory B+ tree ordered map. Values live
// only in leaves, leaves are chained for ordered range scans, and every
// index key is the maximum key of the subtree it points to.
//
// A BPlusTree is not safe for concurrent use.
package bptree

import (
	"fmt"
	"io"

	"go-bptree/pkg/customerrors"
	"go-bptree/util/helpers"
	"go-bptree/util/logger"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// New returns an empty B+ tree ordered by the natural order of K.
func New[K constraints.Ordered, V any](order int) (*BPlusTree[K, V], error) {
	return NewFunc[K, V](helpers.Compare[K], &Options{Order: order})
}

// NewFunc returns an empty B+ tree ordered by cmp, which must return a
// negative number, zero or a positive number when a < b, a == b or a > b.
// If nil options are provided, defaultOptions will be used.
func NewFunc[K, V any](cmp func(a, b K) int, opts *Options) (*BPlusTree[K, V], error) {
	if opts == nil {
		opts = &defaultOptions
	}
	if opts.Order < MinOrder {
		return nil, errors.Wrapf(customerrors.ErrInvalidOrder, "order %d is less than %d", opts.Order, MinOrder)
	}
	if cmp == nil {
		return nil, errors.New("nil comparator")
	}

	log := opts.Logger
	if log == nil {
		log = logger.L
	}

	tree := &BPlusTree[K, V]{
		order: opts.Order,
		half:  opts.Order/2 + opts.Order%2,
		cmp:   cmp,
		log:   log,
	}
	tree.Clear()
	return tree, nil
}

// BPlusTree represents an in-memory B+ tree. Leaves hold between half and
// order entries (the root may hold fewer) and sit at the same depth.
type BPlusTree[K, V any] struct {
	root *node[K, V]
	head *node[K, V]

	order int
	half  int
	size  int

	cmp func(a, b K) int
	log *logrus.Logger
}

// Get fetches the value associated with the given key.
func (tree *BPlusTree[K, V]) Get(key K) (val V, found bool) {
	loc := tree.locate(key)
	if !loc.found {
		return val, false
	}
	return loc.n.entries[loc.index].val, true
}

// Has reports whether key is present.
func (tree *BPlusTree[K, V]) Has(key K) bool {
	return tree.locate(key).found
}

// Put puts the key-value pair into the B+ tree. If the key already exists,
// its value is replaced and the previous one returned with replaced=true.
func (tree *BPlusTree[K, V]) Put(key K, val V) (old V, replaced bool) {
	loc := tree.locate(key)
	if loc.found {
		e := &loc.n.entries[loc.index]
		old, e.val = e.val, val
		return old, true
	}

	loc.n.insertEntry(loc.index, entry[K, V]{key: key, val: val})
	tree.size++
	tree.split(loc.n)
	return old, false
}

// Del removes the key-value entry from the B+ tree and returns the removed
// value. Removing an absent key returns found=false and changes nothing.
func (tree *BPlusTree[K, V]) Del(key K) (val V, found bool) {
	loc := tree.locate(key)
	if !loc.found {
		return val, false
	}

	val = loc.n.entries[loc.index].val
	tree.del(loc)
	tree.size--
	return val, true
}

// Len returns the number of entries in the entire tree.
func (tree *BPlusTree[K, V]) Len() int { return tree.size }

// Order returns the maximum number of entries per node.
func (tree *BPlusTree[K, V]) Order() int { return tree.order }

// Height returns the number of levels, 1 for a tree that is a single leaf.
func (tree *BPlusTree[K, V]) Height() int {
	h := 1
	for n := tree.root; !n.leaf; n = n.child(0) {
		h++
	}
	return h
}

// Clear drops all entries, leaving a single empty leaf.
func (tree *BPlusTree[K, V]) Clear() {
	tree.root = newNode[K, V](true, tree.order)
	tree.head = tree.root
	tree.size = 0
}

func (tree *BPlusTree[K, V]) String() string {
	return tree.render().String()
}

// Print writes the node structure of the tree to w.
func (tree *BPlusTree[K, V]) Print(w io.Writer) error {
	_, err := fmt.Fprint(w, tree.String())
	return err
}

func (tree *BPlusTree[K, V]) tracing() bool {
	return tree.log.IsLevelEnabled(logrus.TraceLevel)
}
