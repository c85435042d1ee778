package queue

import (
	"sync/atomic"

	"github.com/quicklog/quicklog/core"
)

// nodeSlots is the fan-out of a single linked-list node.
const nodeSlots = 2048

// slotTaken poisons a slot that a consumer claimed before the
// producer's store landed. The producer detects the marker through its
// failed CAS and retries with a fresh slot, so no record is lost.
var slotTaken = new(core.Record)

// node is one fixed-capacity segment of the queue. enqIdx and deqIdx
// only grow; a slot is written at most once by a producer and consumed
// at most once by a consumer.
type node struct {
	enqIdx atomic.Int64
	deqIdx atomic.Int64
	next   atomic.Pointer[node]
	slots  [nodeSlots]atomic.Pointer[core.Record]
}

// Queue is an unbounded lock-free MPMC FIFO of records. The zero value
// is not usable; construct with New.
type Queue struct {
	head atomic.Pointer[node]
	tail atomic.Pointer[node]
}

// New returns an empty queue.
func New() *Queue {
	n := &node{}
	q := &Queue{}
	q.head.Store(n)
	q.tail.Store(n)
	return q
}

// Push appends a record. It never blocks and never fails; when the
// tail node is full the pushing goroutine links a fresh node.
func (q *Queue) Push(r *core.Record) {
	for {
		t := q.tail.Load()
		idx := t.enqIdx.Add(1) - 1
		if idx < nodeSlots {
			if t.slots[idx].CompareAndSwap(nil, r) {
				return
			}
			// A consumer poisoned this slot while we were between the
			// index claim and the store. Claim another slot.
			continue
		}

		// Tail node is full. Either link a new node carrying r in its
		// first slot, or help advance tail past a node someone else
		// already linked, then retry.
		next := t.next.Load()
		if next == nil {
			n := &node{}
			n.enqIdx.Store(1)
			n.slots[0].Store(r)
			if t.next.CompareAndSwap(nil, n) {
				q.tail.CompareAndSwap(t, n)
				return
			}
			next = t.next.Load()
		}
		q.tail.CompareAndSwap(t, next)
	}
}

// TryPop removes and returns the oldest record, or (nil, false) when
// the queue is observed empty. It makes progress whenever the queue is
// non-empty.
func (q *Queue) TryPop() (*core.Record, bool) {
	for {
		h := q.head.Load()
		if h.deqIdx.Load() >= h.enqIdx.Load() && h.next.Load() == nil {
			return nil, false
		}
		idx := h.deqIdx.Add(1) - 1
		if idx >= nodeSlots {
			// This node is drained; move head to the next node. The
			// drained node becomes garbage once all consumers have
			// moved past it.
			next := h.next.Load()
			if next == nil {
				return nil, false
			}
			q.head.CompareAndSwap(h, next)
			continue
		}
		if r := h.slots[idx].Swap(slotTaken); r != nil {
			return r, true
		}
		// The producer that claimed this slot has not stored yet; the
		// poison marker redirects it to a later slot. Keep scanning.
	}
}
