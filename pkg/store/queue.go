package store

import (
	"container/heap"
	"time"
)

// queueItem is a scheduling hint. It is only valid while the entry table
// still holds the same expiresAt for key.
type queueItem[K comparable] struct {
	key       K
	expiresAt time.Time
	seq       uint64 // insertion order, breaks ties between equal deadlines
	index     int    // position in the heap, -1 once removed
}

// expiryHeap implements heap.Interface ordered by deadline, then insertion.
type expiryHeap[K comparable] []*queueItem[K]

func (h expiryHeap[K]) Len() int { return len(h) }

func (h expiryHeap[K]) Less(i, j int) bool {
	if h[i].expiresAt.Equal(h[j].expiresAt) {
		return h[i].seq < h[j].seq
	}
	return h[i].expiresAt.Before(h[j].expiresAt)
}

func (h expiryHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *expiryHeap[K]) Push(x any) {
	item := x.(*queueItem[K])
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *expiryHeap[K]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// expiryQueue is a multiset of pending expirations. The same key may appear
// several times; stale items are dropped by the scheduler when they surface.
type expiryQueue[K comparable] struct {
	items expiryHeap[K]
	seq   uint64
}

func newExpiryQueue[K comparable]() *expiryQueue[K] {
	return &expiryQueue[K]{}
}

func (q *expiryQueue[K]) insert(key K, expiresAt time.Time) *queueItem[K] {
	q.seq++
	item := &queueItem[K]{key: key, expiresAt: expiresAt, seq: q.seq}
	heap.Push(&q.items, item)
	return item
}

func (q *expiryQueue[K]) peekMin() (*queueItem[K], bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return q.items[0], true
}

func (q *expiryQueue[K]) popMin() (*queueItem[K], bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return heap.Pop(&q.items).(*queueItem[K]), true
}

// remove takes item out of the queue wherever it sits. It is a no-op for an
// item that was already popped.
func (q *expiryQueue[K]) remove(item *queueItem[K]) bool {
	if item.index < 0 || item.index >= len(q.items) || q.items[item.index] != item {
		return false
	}
	heap.Remove(&q.items, item.index)
	return true
}

func (q *expiryQueue[K]) len() int {
	return len(q.items)
}

func (q *expiryQueue[K]) clear() {
	for _, item := range q.items {
		item.index = -1
	}
	q.items = nil
}
