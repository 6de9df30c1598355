package bench

import (
	"go-bptree/pkg/bptree"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/btree"
)

// target is an ordered int map under measurement.
type target interface {
	Name() string
	Put(key, val int)
	Get(key int) (int, bool)
	Del(key int)
	Keys() []int
}

type bptreeTarget struct {
	tree *bptree.BPlusTree[int, int]
}

func (t *bptreeTarget) Name() string            { return "bptree" }
func (t *bptreeTarget) Put(key, val int)        { t.tree.Put(key, val) }
func (t *bptreeTarget) Get(key int) (int, bool) { return t.tree.Get(key) }
func (t *bptreeTarget) Del(key int)             { t.tree.Del(key) }

func (t *bptreeTarget) Keys() []int {
	keys := make([]int, 0, t.tree.Len())
	for k := range t.tree.Keys() {
		keys = append(keys, k)
	}
	return keys
}

// treeMapTarget is the red-black tree map from gods.
type treeMapTarget struct {
	m *treemap.Map
}

func newTreeMapTarget() *treeMapTarget {
	return &treeMapTarget{m: treemap.NewWithIntComparator()}
}

func (t *treeMapTarget) Name() string     { return "rbtree" }
func (t *treeMapTarget) Put(key, val int) { t.m.Put(key, val) }
func (t *treeMapTarget) Del(key int)      { t.m.Remove(key) }

func (t *treeMapTarget) Get(key int) (int, bool) {
	v, found := t.m.Get(key)
	if !found {
		return 0, false
	}
	return v.(int), true
}

func (t *treeMapTarget) Keys() []int {
	keys := make([]int, 0, t.m.Size())
	for _, k := range t.m.Keys() {
		keys = append(keys, k.(int))
	}
	return keys
}

type item struct {
	key, val int
}

// btreeTarget is the classic B-tree from google/btree, which keeps values
// in inner nodes too.
type btreeTarget struct {
	t *btree.BTreeG[item]
}

func newBTreeTarget(order int) *btreeTarget {
	// a google/btree node of degree d holds up to 2d-1 items
	degree := order/2 + 1
	return &btreeTarget{t: btree.NewG[item](degree, func(a, b item) bool { return a.key < b.key })}
}

func (t *btreeTarget) Name() string     { return "btree" }
func (t *btreeTarget) Put(key, val int) { t.t.ReplaceOrInsert(item{key, val}) }
func (t *btreeTarget) Del(key int)      { t.t.Delete(item{key: key}) }

func (t *btreeTarget) Get(key int) (int, bool) {
	it, found := t.t.Get(item{key: key})
	return it.val, found
}

func (t *btreeTarget) Keys() []int {
	keys := make([]int, 0, t.t.Len())
	t.t.Ascend(func(it item) bool {
		keys = append(keys, it.key)
		return true
	})
	return keys
}
