// File: queue.go
// Role: §4.D — the pending queue. A FIFO of node ids that may now satisfy
// a solving rule: a newly-ingested check node, a node whose u[n] just
// dropped below 2, or a newly-solved auxiliary re-probed for cascades.
//
// Dequeue policy is strict FIFO; duplicates are permitted and tolerated
// by the resolver (§4.H), which discards a stale re-visit once it finds
// u[n] >= 2 or the node already decommissioned.

package core

// fifo is a pool-backed singly-linked queue. It never allocates once its
// backing pool has cells to reuse.
type fifo struct {
	pool       *nodePool
	head, tail *cell
	size       int
}

// push enqueues val at the tail in O(1).
func (q *fifo) push(val int) {
	c := q.pool.get(val)
	if q.tail == nil {
		q.head, q.tail = c, c
	} else {
		q.tail.next = c
		q.tail = c
	}
	q.size++
}

// pop dequeues the head value in O(1). ok is false if the queue is empty.
func (q *fifo) pop() (val int, ok bool) {
	if q.head == nil {
		return 0, false
	}
	c := q.head
	q.head = c.next
	if q.head == nil {
		q.tail = nil
	}
	val = c.val
	q.pool.put(c)
	q.size--

	return val, true
}

// empty reports whether the queue currently holds no entries.
func (q *fifo) empty() bool { return q.head == nil }

// Len returns the number of entries currently queued (duplicates counted).
func (q *fifo) Len() int { return q.size }
