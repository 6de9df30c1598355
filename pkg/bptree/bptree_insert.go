package bptree

import "github.com/sirupsen/logrus"

// split restores the size bound upward from n. An overfull node gives its
// first half entries to a new left sibling and stays in place itself, so
// references to it (its right neighbour, its parent's separator or last
// pointer) remain valid. The new sibling is indexed in the parent under its
// maximum key; a split root grows the tree by one level.
func (tree *BPlusTree[K, V]) split(n *node[K, V]) {
	for len(n.entries) > tree.order {
		sibling := newNode[K, V](n.leaf, tree.order)
		sibling.entries = append(sibling.entries, n.entries[:tree.half]...)
		sibling.adopt(sibling.entries)
		n.removeHead(tree.half)

		sibling.linkBefore(n)
		if tree.head == n {
			tree.head = sibling
		}

		pe := entry[K, V]{key: sibling.lastKey(), child: sibling}
		if tree.tracing() {
			tree.log.WithFields(logrus.Fields{
				"leaf":      n.leaf,
				"separator": pe.key,
				"left":      len(sibling.entries),
				"right":     len(n.entries),
			}).Trace("split node")
		}

		p := n.parent
		if p == nil {
			root := newNode[K, V](false, tree.order)
			root.entries = append(root.entries, pe)
			root.last = n
			sibling.parent = root
			n.parent = root
			tree.root = root
			if tree.tracing() {
				tree.log.WithField("height", tree.Height()).Trace("grow root")
			}
			return
		}

		idx, _ := p.search(pe.key, tree.cmp)
		p.insertEntry(idx, pe)
		sibling.parent = p
		n = p
	}
}
