package bptree

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_node_Search(t *testing.T) {
	n := node[string, int]{
		leaf: true,
		entries: []entry[string, int]{
			{key: "A"}, {key: "B"}, {key: "C"}, {key: "D"}, {key: "E"}, {key: "F"}, {key: "G"},
		},
	}

	idx, found := n.search("D", strings.Compare)
	require.True(t, found, "expected key to exist")
	require.Equal(t, 3, idx)

	idx, found = n.search("A", strings.Compare)
	require.True(t, found, "expected key to exist")
	require.Equal(t, 0, idx)

	idx, found = n.search("G", strings.Compare)
	require.True(t, found, "expected key to exist")
	require.Equal(t, 6, idx)

	idx, found = n.search("Ca", strings.Compare)
	require.False(t, found, "expected key to not exist")
	require.Equal(t, 3, idx)

	idx, found = n.search("X", strings.Compare)
	require.False(t, found, "expected key to not exist")
	require.Equal(t, 7, idx, "expected insertion index to be 7")
}

func Test_node_InsertRemove(t *testing.T) {
	n := newNode[int, string](true, 4)
	n.insertEntry(0, entry[int, string]{key: 3})
	n.insertEntry(0, entry[int, string]{key: 1})
	n.insertEntry(1, entry[int, string]{key: 2})
	n.insertEntry(3, entry[int, string]{key: 5})
	require.Equal(t, []int{1, 2, 3, 5}, nodeKeys(n))

	e := n.removeEntry(1)
	require.Equal(t, 2, e.key)
	require.Equal(t, []int{1, 3, 5}, nodeKeys(n))

	n.removeHead(1)
	require.Equal(t, []int{3, 5}, nodeKeys(n))

	n.removeTail(1)
	require.Equal(t, []int{3}, nodeKeys(n))
	require.Equal(t, 3, n.lastKey())
}

func Test_node_Children(t *testing.T) {
	a := newNode[int, string](true, 4)
	b := newNode[int, string](true, 4)
	c := newNode[int, string](true, 4)

	p := newNode[int, string](false, 4)
	p.entries = append(p.entries, entry[int, string]{key: 10, child: a}, entry[int, string]{key: 20, child: b})
	p.adopt(p.entries)

	require.Same(t, p, a.parent)
	require.Same(t, p, b.parent)
	require.Same(t, a, p.child(0))
	require.Same(t, b, p.child(1))
	require.Nil(t, p.child(2))
	require.Same(t, b, p.rightmost())

	p.last = c
	require.Same(t, c, p.child(2))
	require.Same(t, c, p.rightmost())
}

func Test_node_Links(t *testing.T) {
	a := newNode[int, string](true, 4)
	c := newNode[int, string](true, 4)
	a.right, c.left = c, a

	b := newNode[int, string](true, 4)
	b.linkBefore(c)
	require.Same(t, b, a.right)
	require.Same(t, a, b.left)
	require.Same(t, c, b.right)
	require.Same(t, b, c.left)

	b.unlink()
	require.Same(t, c, a.right)
	require.Same(t, a, c.left)
	require.Nil(t, b.left)
	require.Nil(t, b.right)
}

func Test_node_LastKeyPanicsOnEmpty(t *testing.T) {
	n := newNode[int, string](true, 4)
	require.Panics(t, func() { n.lastKey() })
}

func nodeKeys[K, V any](n *node[K, V]) []K {
	keys := make([]K, 0, len(n.entries))
	for _, e := range n.entries {
		keys = append(keys, e.key)
	}
	return keys
}

func Test_nodeCap(t *testing.T) {
	require.Equal(t, 4, nodeCap(3))
	require.Equal(t, maxPrealloc+1, nodeCap(maxPrealloc))
	require.Equal(t, maxPrealloc+1, nodeCap(1e8))
	require.Equal(t, maxPrealloc+1, nodeCap(math.MaxInt))
}
