package bptree

import (
	"go-bptree/pkg/customerrors"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// del removes the located leaf entry and restores the invariants: the
// separators that named the removed key first, then the minimum fill from
// the leaf upward.
func (tree *BPlusTree[K, V]) del(loc locator[K, V]) {
	leaf := loc.n
	removed := leaf.removeEntry(loc.index)

	// A non-root leaf holds at least half >= 2 entries before removal, so
	// it is never empty here.
	if loc.index == len(leaf.entries) && leaf != tree.root {
		tree.fixSeparator(leaf, removed.key)
	}

	cur := leaf
	for cur != tree.root && len(cur.entries) < tree.half {
		left, right := tree.siblings(cur)
		if len(left.entries)+len(right.entries) <= tree.order {
			cur = tree.merge(left, right)
			continue
		}
		tree.borrow(cur, left, right)
		break
	}

	if root := tree.root; !root.leaf && len(root.entries) == 0 {
		tree.root = root.last
		tree.root.parent = nil
		root.last = nil
		if tree.tracing() {
			tree.log.WithField("height", tree.Height()).Trace("collapse root")
		}
	}
}

// fixSeparator rewrites the separator that indexed n under oldMax to n's
// current maximum. The walk continues while the rewritten separator is also
// the maximum of its own node, since only then the grandparent names oldMax
// as well.
func (tree *BPlusTree[K, V]) fixSeparator(n *node[K, V], oldMax K) {
	newMax := n.lastKey()
	for p := n.parent; p != nil; n, p = p, p.parent {
		if p.last == n {
			return
		}

		idx, found := p.search(oldMax, tree.cmp)
		if !found || p.entries[idx].child != n {
			panic(errors.Wrapf(customerrors.ErrCorrupted, "[fixSeparator] %v does not index %s in %s", oldMax, n, p))
		}
		if tree.cmp(p.entries[idx].key, newMax) == 0 {
			return
		}
		p.entries[idx].key = newMax

		if idx != len(p.entries)-1 || p.last != nil {
			return
		}
	}
}

// siblings pairs cur with an adjacent node under the same parent, preferring
// the right neighbour. The returned pair is in key order.
func (tree *BPlusTree[K, V]) siblings(cur *node[K, V]) (left, right *node[K, V]) {
	left, right = cur, cur.right
	if right == nil || right.parent != cur.parent {
		left, right = cur.left, cur
	}
	if left == nil || left.parent != right.parent {
		panic(errors.Wrapf(customerrors.ErrCorrupted, "[siblings] no sibling for %s", cur))
	}
	return left, right
}

// merge folds left into right, drops left's separator from the parent and
// returns the parent. right keeps its maximum, so no other separator
// changes, and left is never the parent's last child, so neither does the
// parent's maximum.
func (tree *BPlusTree[K, V]) merge(left, right *node[K, V]) *node[K, V] {
	p := left.parent
	idx, found := p.search(left.lastKey(), tree.cmp)
	if !found || p.entries[idx].child != left {
		panic(errors.Wrapf(customerrors.ErrCorrupted, "[merge] %s is not indexed in %s", left, p))
	}

	if tree.tracing() {
		tree.log.WithFields(logrus.Fields{
			"leaf":  left.leaf,
			"left":  len(left.entries),
			"right": len(right.entries),
		}).Trace("merge nodes")
	}

	merged := make([]entry[K, V], 0, nodeCap(tree.order))
	merged = append(merged, left.entries...)
	merged = append(merged, right.entries...)
	right.entries = merged
	right.adopt(left.entries)

	if tree.head == left {
		tree.head = right
	}
	left.unlink()
	left.entries = nil

	p.removeEntry(idx)
	return p
}

// borrow moves half-len(cur) entries from the sibling's far end to cur's
// near end and rewrites the separator of whichever node lost its maximum.
func (tree *BPlusTree[K, V]) borrow(cur, left, right *node[K, V]) {
	count := tree.half - len(cur.entries)

	if tree.tracing() {
		tree.log.WithFields(logrus.Fields{
			"leaf":     cur.leaf,
			"count":    count,
			"fromLeft": cur == right,
		}).Trace("borrow entries")
	}

	if cur == left {
		oldMax := cur.lastKey()
		moved := right.entries[:count]
		cur.entries = append(cur.entries, moved...)
		cur.adopt(moved)
		right.removeHead(count)
		tree.fixSeparator(cur, oldMax)
		return
	}

	oldMax := left.lastKey()
	n := len(left.entries)
	entries := make([]entry[K, V], 0, nodeCap(tree.order))
	entries = append(entries, left.entries[n-count:]...)
	entries = append(entries, cur.entries...)
	cur.entries = entries
	cur.adopt(cur.entries[:count])
	left.removeTail(count)
	tree.fixSeparator(left, oldMax)
}
