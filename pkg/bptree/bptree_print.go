package bptree

import (
	"go-bptree/pkg/stack"

	"github.com/xlab/treeprint"
)

type renderFrame[K, V any] struct {
	n      *node[K, V]
	branch treeprint.Tree
}

// render builds a treeprint tree with one branch per node. Index nodes with
// a last child are marked with a trailing '+'.
func (tree *BPlusTree[K, V]) render() treeprint.Tree {
	t := treeprint.NewWithRoot(tree.root.String())

	frames := stack.New[renderFrame[K, V]](tree.Height())
	frames.Push(renderFrame[K, V]{n: tree.root, branch: t})
	for frames.Size() > 0 {
		f := frames.Pop()
		if f.n.leaf {
			continue
		}

		children := make([]*node[K, V], 0, len(f.n.entries)+1)
		for i := range f.n.entries {
			children = append(children, f.n.entries[i].child)
		}
		if f.n.last != nil {
			children = append(children, f.n.last)
		}

		for _, child := range children {
			if child.leaf {
				f.branch.AddNode(child.String())
				continue
			}
			frames.Push(renderFrame[K, V]{n: child, branch: f.branch.AddBranch(child.String())})
		}
	}
	return t
}
