package astar

import "container/heap"

// frontierItem is one queued node with its f-score.
// seq orders items of equal f: lower seq is served first.
type frontierItem[N comparable, C Cost] struct {
	node  N
	f     C
	seq   uint64
	index int // position inside nodePQ, maintained by Swap
}

// nodePQ is a min-heap of *frontierItem ordered by (f, seq).
type nodePQ[N comparable, C Cost] []*frontierItem[N, C]

// Len returns the number of items in the heap.
func (pq nodePQ[N, C]) Len() int { return len(pq) }

// Less orders by f ascending, then by insertion sequence.
func (pq nodePQ[N, C]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements and keeps their indices in sync.
func (pq nodePQ[N, C]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push appends x; called by heap.Push only.
func (pq *nodePQ[N, C]) Push(x any) {
	item := x.(*frontierItem[N, C])
	item.index = len(*pq)
	*pq = append(*pq, item)
}

// Pop removes the last element; called by heap.Pop only.
func (pq *nodePQ[N, C]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}

// frontier is the open set. Unlike the lazy decrease-key heap used for plain
// Dijkstra, every node is queued at most once: an improvement rewrites the
// existing item and restores heap order with heap.Fix.
type frontier[N comparable, C Cost] struct {
	pq    nodePQ[N, C]
	items map[N]*frontierItem[N, C]
	seq   uint64
}

func newFrontier[N comparable, C Cost]() *frontier[N, C] {
	return &frontier[N, C]{
		pq:    make(nodePQ[N, C], 0, 64),
		items: make(map[N]*frontierItem[N, C]),
	}
}

// Len returns the number of queued nodes.
func (fr *frontier[N, C]) Len() int { return fr.pq.Len() }

// insertOrImprove queues node with key f, or lowers the key of an already
// queued node when f is strictly smaller. An improved item takes a fresh
// sequence number, so among equal keys it ranks as if just inserted.
// It reports whether the frontier changed.
func (fr *frontier[N, C]) insertOrImprove(node N, f C) bool {
	fr.seq++
	if item, queued := fr.items[node]; queued {
		if f >= item.f {
			return false
		}
		item.f = f
		item.seq = fr.seq
		heap.Fix(&fr.pq, item.index)

		return true
	}

	item := &frontierItem[N, C]{node: node, f: f, seq: fr.seq}
	heap.Push(&fr.pq, item)
	fr.items[node] = item

	return true
}

// popMinimum removes and returns the node with the smallest key.
// ok is false when the frontier is exhausted.
func (fr *frontier[N, C]) popMinimum() (node N, f C, ok bool) {
	if fr.pq.Len() == 0 {
		return node, f, false
	}
	item := heap.Pop(&fr.pq).(*frontierItem[N, C])
	delete(fr.items, item.node)

	return item.node, item.f, true
}
