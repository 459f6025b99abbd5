package path

import (
	"container/heap"
)

func NewNode[T comparable](value T) *PqItem[T] {
	return &PqItem[T]{value: value}
}

// PqItem is a node managed by the priority queue.
type PqItem[T comparable] struct {
	value    T
	priority float64
	// maintained by the heap.Interface methods, -1 once popped
	index int
}

func (item *PqItem[T]) GetPriority() float64 {
	return item.priority
}

func (item *PqItem[T]) SetPriority(priority float64) {
	item.priority = priority
}

func (item *PqItem[T]) GetIndex() int {
	return item.index
}

func (item *PqItem[T]) GetValue() T {
	return item.value
}

func NewPriorityQueue[T comparable](items []*PqItem[T]) PriorityQueue[T] {
	pq := make(PriorityQueue[T], len(items))
	for i, item := range items {
		item.index = i
		pq[i] = item
	}
	heap.Init(&pq)
	return pq
}

// PriorityQueue is a min-heap of items ordered by priority.
type PriorityQueue[T comparable] []*PqItem[T]

func (pq PriorityQueue[T]) Len() int { return len(pq) }

func (pq PriorityQueue[T]) Less(i, j int) bool {
	return pq[i].priority < pq[j].priority
}

func (pq PriorityQueue[T]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *PriorityQueue[T]) Push(x any) {
	item := x.(*PqItem[T])
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *PriorityQueue[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

func (pq *PriorityQueue[T]) update(item *PqItem[T], priority float64) {
	item.priority = priority
	heap.Fix(pq, item.index)
}
