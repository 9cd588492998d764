package search

import (
	"container/list"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// bucketFringe is a Fringe backed by an ordered tree of integer keys, each
// holding a FIFO deque of arena indices. Used by UCS, whose key is the
// accumulated path cost g: g only ever grows by small, repeated step
// costs, so most pushes land in a handful of already-open buckets rather
// than growing the tree, mirroring the bucketed TreeMap the source uses in
// place of a plain priority queue to keep tie-breaking exact.
type bucketFringe struct {
	tree *redblacktree.Tree
	size int
}

func newBucketFringe() *bucketFringe {
	return &bucketFringe{tree: redblacktree.NewWithIntComparator()}
}

func (f *bucketFringe) push(key, _, idx int) {
	v, found := f.tree.Get(key)
	var dq *list.List
	if found {
		dq = v.(*list.List)
	} else {
		dq = list.New()
		f.tree.Put(key, dq)
	}
	dq.PushBack(idx)
	f.size++
}

func (f *bucketFringe) pop() (int, bool) {
	for {
		n := f.tree.Left()
		if n == nil {
			return 0, false
		}
		dq := n.Value.(*list.List)
		front := dq.Front()
		idx := front.Value.(int)
		dq.Remove(front)
		f.size--
		if dq.Len() == 0 {
			f.tree.Remove(n.Key)
		}
		return idx, true
	}
}

func (f *bucketFringe) empty() bool { return f.size == 0 }
