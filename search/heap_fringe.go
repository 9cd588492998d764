package search

import "container/heap"

// heapFringe is a Fringe backed by container/heap, keyed by (key, seq) so
// that ties break FIFO. Used by A*, where keys (g+h) are not necessarily
// contiguous small integers, making a bucketed map less attractive than for
// UCS.
type heapFringe struct {
	pq fringePQ
}

func newHeapFringe() *heapFringe {
	pq := fringePQ{}
	heap.Init(&pq)
	return &heapFringe{pq: pq}
}

func (f *heapFringe) push(key, seq, idx int) {
	heap.Push(&f.pq, fringeItem{key: key, seq: seq, idx: idx})
}

func (f *heapFringe) pop() (int, bool) {
	if f.pq.Len() == 0 {
		return 0, false
	}
	item := heap.Pop(&f.pq).(fringeItem)
	return item.idx, true
}

func (f *heapFringe) empty() bool { return f.pq.Len() == 0 }

// fringeItem is one entry of the heap's backing slice.
type fringeItem struct {
	key, seq, idx int
}

// fringePQ implements heap.Interface, ordering by key ascending and
// breaking ties by seq ascending (earliest insertion wins).
type fringePQ []fringeItem

func (pq fringePQ) Len() int { return len(pq) }
func (pq fringePQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}
	return pq[i].seq < pq[j].seq
}
func (pq fringePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *fringePQ) Push(x interface{}) {
	*pq = append(*pq, x.(fringeItem))
}
func (pq *fringePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
