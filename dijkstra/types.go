package dijkstra

// nodeItem represents a node and the tentative distance it was pushed with.
// It is stored in the priority queue to order nodes by increasing distance.
type nodeItem struct {
	id   int     // node index
	dist float64 // distance from source at push time
}

// nodePQ is a min-heap (priority queue) of nodeItem, ordered by nodeItem.dist ascending.
// We use the “lazy-decrease-key” approach: when we find a shorter distance to an existing node v,
// we push a new nodeItem onto the heap. The outdated entry remains but is ignored when popped.
// Equal distances are ordered by node index so the settle order is deterministic.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority, then smaller id.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns any that must be cast to nodeItem.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
