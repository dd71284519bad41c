package event

import (
	"sync/atomic"

	"github.com/lixenwraith/tabstack/parameter"
)

// Queue carries events from wherever they are produced to the single
// switcher loop that consumes them. Animation completions arrive from
// Animator ticks, sound and close requests from gesture handling, and
// a host may push from its own goroutine, so Push is a lock-free CAS
// claim followed by a published flag per slot; the consumer skips any
// slot whose writer has claimed but not yet finished copying.
//
// The buffer is a fixed ring. When producers lap the consumer the
// oldest unread events are overwritten, which is the right failure
// mode here: a dropped stale animation-done is harmless, while
// blocking a producer would stall the frame.
type Queue struct {
	slots     [parameter.EventQueueSize]Event
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push claims the next slot, copies event into it, then marks it
// published. Safe from any goroutine
func (q *Queue) Push(event Event) {
	for {
		tail := q.tail.Load()
		if !q.tail.CompareAndSwap(tail, tail+1) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		q.slots[idx] = event
		// Publish only after the slot holds the complete event
		q.published[idx].Store(true)

		// If this write lapped the consumer, drop the overwritten
		// prefix by dragging head forward
		head := q.head.Load()
		if tail+1-head > parameter.EventQueueSize {
			q.head.CompareAndSwap(head, tail+1-parameter.EventQueueSize)
		}
		return
	}
}

// Consume drains every published event in FIFO order, or nil when
// nothing is pending. A slot that is claimed but not yet published
// stops the drain; it is picked up on the next call. Single consumer
// only
func (q *Queue) Consume() []Event {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if head == tail {
			return nil
		}

		pending := tail - head
		if pending > parameter.EventQueueSize {
			pending = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		drained := make([]Event, 0, pending)
		for i := uint64(0); i < pending; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !q.published[idx].Load() {
				break
			}
			drained = append(drained, q.slots[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(drained))) {
			if len(drained) == 0 {
				return nil
			}
			return drained
		}
	}
}

// Len approximates the pending count without consuming. The switcher's
// Busy check uses it to report whether another frame of processing is
// still needed
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	if tail-head > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return int(tail - head)
}
