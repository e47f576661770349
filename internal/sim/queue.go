package sim

import (
	"container/heap"
)

const queueCap = 256

// Queue is the scheduling queue: a max-heap over pending jobs.
//
// Ordering contract: highest Priority first; among equal priorities,
// smallest EnqueueTS first (FIFO within a priority band). A retried
// job re-enters with its new enqueue timestamp, so it competes on the
// same footing as jobs enqueued in the meantime.
type Queue struct {
	h jobHeap
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.h = make(jobHeap, 0, queueCap) // preallocate
	heap.Init(&q.h)
	return q
}

// Push inserts a job. O(log n).
func (q *Queue) Push(j Job) {
	heap.Push(&q.h, j)
}

// Pop removes and returns the highest-priority, earliest-enqueued
// pending job. If the queue is empty, Pop returns a zero Job and
// false; callers are expected to gate on Len, an unexpected false is
// a logic bug.
func (q *Queue) Pop() (Job, bool) {
	if q.h.Len() == 0 {
		return Job{}, false
	}
	return heap.Pop(&q.h).(Job), true
}

// Len returns the number of pending jobs.
func (q *Queue) Len() int {
	return q.h.Len()
}

// jobHeap — max-heap by (Priority desc, EnqueueTS asc)
type jobHeap []Job

func (h jobHeap) Len() int { return len(h) }
func (h jobHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority > h[j].Priority // max-heap
	}
	return h[i].EnqueueTS < h[j].EnqueueTS
}
func (h jobHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *jobHeap) Push(x any) {
	*h = append(*h, x.(Job))
}

func (h *jobHeap) Pop() any {
	old := *h
	n := len(old)
	j := old[n-1]
	old[n-1] = Job{}
	*h = old[:n-1]
	return j
}
