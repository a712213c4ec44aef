package huffman

import "container/heap"

// nodeHeap implements heap.Interface ordered by less.
type nodeHeap []*Node

func (h nodeHeap) Len() int           { return len(h) }
func (h nodeHeap) Less(i, j int) bool { return less(h[i], h[j]) }
func (h nodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)        { *h = append(*h, x.(*Node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// PriorityQueue holds not-yet-merged tree nodes, lightest first.
// Equal weights are ordered by the byte of each node's leftmost leaf, so
// the extraction order depends only on the set of nodes, not on insertion order.
type PriorityQueue struct {
	nodes nodeHeap
}

// BuildQueue returns a queue holding one leaf per entry of ft.
func BuildQueue(ft *FrequencyTable) (*PriorityQueue, error) {
	if ft == nil || ft.Len() == 0 {
		return nil, ErrEmptyInput
	}
	q := &PriorityQueue{nodes: make(nodeHeap, 0, ft.Len())}
	ft.Each(func(b byte, n uint64) {
		q.nodes = append(q.nodes, newLeaf(b, n))
	})
	heap.Init(&q.nodes)
	return q, nil
}

// Insert adds n to the queue.
func (q *PriorityQueue) Insert(n *Node) {
	heap.Push(&q.nodes, n)
}

// ExtractMin removes and returns the lowest-ordered node.
func (q *PriorityQueue) ExtractMin() (*Node, error) {
	if len(q.nodes) == 0 {
		return nil, ErrEmptyQueue
	}
	return heap.Pop(&q.nodes).(*Node), nil
}

// Len returns the number of queued nodes.
func (q *PriorityQueue) Len() int {
	return len(q.nodes)
}
