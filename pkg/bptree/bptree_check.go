package bptree

import (
	"go-bptree/pkg/customerrors"

	"github.com/pkg/errors"
)

// Check walks the tree level by level and verifies its structure: key order
// inside nodes and along the leaf chain, node fill, separators equal to
// subtree maxima, parent and sibling links, last pointers only on the
// rightmost spine, equal leaf depth, head and the cached size.
func (tree *BPlusTree[K, V]) Check() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, customerrors.ErrCorrupted) {
				err = e
				return
			}
			panic(r)
		}
	}()

	if tree.root == nil || tree.head == nil {
		return errors.Wrap(customerrors.ErrCorrupted, "missing root or head")
	}
	if tree.root.parent != nil {
		return errors.Wrap(customerrors.ErrCorrupted, "root has a parent")
	}

	level := []*node[K, V]{tree.root}
	for depth := 0; ; depth++ {
		if err := tree.checkLevel(level, depth); err != nil {
			return err
		}
		if level[0].leaf {
			return tree.checkLeaves(level)
		}

		next := make([]*node[K, V], 0, len(level)*tree.order)
		for _, n := range level {
			for i := range n.entries {
				next = append(next, n.entries[i].child)
			}
			if n.last != nil {
				next = append(next, n.last)
			}
		}
		level = next
	}
}

func (tree *BPlusTree[K, V]) checkLevel(level []*node[K, V], depth int) error {
	for i, n := range level {
		if n.leaf != level[0].leaf {
			return errors.Wrapf(customerrors.ErrCorrupted, "leaves at different depths (level %d)", depth)
		}

		var left, right *node[K, V]
		if i > 0 {
			left = level[i-1]
		}
		if i < len(level)-1 {
			right = level[i+1]
		}
		if n.left != left || n.right != right {
			return errors.Wrapf(customerrors.ErrCorrupted, "broken sibling links at %s (level %d)", n, depth)
		}

		if n != tree.root && (len(n.entries) < tree.half || len(n.entries) > tree.order) {
			return errors.Wrapf(customerrors.ErrCorrupted, "node %s holds %d entries, want %d..%d", n, len(n.entries), tree.half, tree.order)
		}
		if n == tree.root && len(n.entries) > tree.order {
			return errors.Wrapf(customerrors.ErrCorrupted, "root %s holds %d entries, want at most %d", n, len(n.entries), tree.order)
		}

		for j := 1; j < len(n.entries); j++ {
			if tree.cmp(n.entries[j-1].key, n.entries[j].key) >= 0 {
				return errors.Wrapf(customerrors.ErrCorrupted, "keys out of order in %s", n)
			}
		}

		if err := tree.checkChildren(n, i == len(level)-1); err != nil {
			return err
		}
	}
	return nil
}

func (tree *BPlusTree[K, V]) checkChildren(n *node[K, V], spine bool) error {
	if n.leaf {
		if n.last != nil {
			return errors.Wrapf(customerrors.ErrCorrupted, "leaf %s has a last child", n)
		}
		return nil
	}

	if spine != (n.last != nil) {
		return errors.Wrapf(customerrors.ErrCorrupted, "last child of %s does not follow the rightmost spine", n)
	}
	if len(n.entries) == 0 {
		return errors.Wrapf(customerrors.ErrCorrupted, "index node without separators")
	}

	for _, e := range n.entries {
		if e.child == nil || e.child.parent != n {
			return errors.Wrapf(customerrors.ErrCorrupted, "child of %v is not linked to %s", e.key, n)
		}
		if hi := rightLeaf(e.child).lastKey(); tree.cmp(hi, e.key) != 0 {
			return errors.Wrapf(customerrors.ErrCorrupted, "separator %v of %s differs from subtree maximum %v", e.key, n, hi)
		}
	}
	if n.last != nil {
		if n.last.parent != n {
			return errors.Wrapf(customerrors.ErrCorrupted, "last child of %s is not linked back", n)
		}
		if lo := leftLeaf(n.last).entries; len(lo) > 0 && tree.cmp(lo[0].key, n.lastKey()) <= 0 {
			return errors.Wrapf(customerrors.ErrCorrupted, "last child of %s holds a key <= %v", n, n.lastKey())
		}
	}
	return nil
}

func (tree *BPlusTree[K, V]) checkLeaves(leaves []*node[K, V]) error {
	if tree.head != leaves[0] {
		return errors.Wrap(customerrors.ErrCorrupted, "head is not the left most leaf")
	}

	count := 0
	var prev *entry[K, V]
	for _, n := range leaves {
		if n != tree.root && len(n.entries) == 0 {
			return errors.Wrapf(customerrors.ErrCorrupted, "empty non-root leaf")
		}
		for i := range n.entries {
			if prev != nil && tree.cmp(prev.key, n.entries[i].key) >= 0 {
				return errors.Wrapf(customerrors.ErrCorrupted, "leaf chain out of order at %v", n.entries[i].key)
			}
			prev = &n.entries[i]
			count++
		}
	}

	if count != tree.size {
		return errors.Wrapf(customerrors.ErrCorrupted, "leaf chain holds %d entries, size is %d", count, tree.size)
	}
	return nil
}
