// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slq

// Outcome is the result of scanning one slot during [Fifo.Update],
// and of the scan as a whole.
type Outcome int

const (
	// Unchanged continues the scan. As the result of Update it means no
	// slot terminated the scan: the queue was empty, or every slot was
	// visited without a Skip or Updated.
	Unchanged Outcome = iota

	// Skip stops the scan without implying a mutation. Typical use:
	// a pending entry already covers the new request, so the caller
	// should not enqueue it.
	Skip

	// Updated stops the scan after the callback mutated the slot in
	// place.
	Updated
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Skip:
		return "skip"
	case Updated:
		return "updated"
	default:
		return "invalid"
	}
}

// Update scans the occupied slots oldest-first under a single lock hold,
// invoking fn with a mutable width-sized view of each live slot. The scan
// stops at the first Skip or Updated and returns that outcome; it returns
// Unchanged if the queue is empty or the scan visits every slot without
// stopping. A nil queue or nil fn reports Unchanged without scanning.
//
// Holding the lock across the whole scan is what makes coalescing
// atomic: no enqueue or dequeue can interleave between the match and the
// mutation.
//
// fn must not call any method of this queue. The lock is not reentrant;
// doing so deadlocks every caller permanently. fn must also not retain
// the slot view past its return: the bytes belong to the queue.
func (f *Fifo) Update(fn func(slot []byte) Outcome) Outcome {
	if f == nil || fn == nil {
		return Unchanged
	}

	out := Unchanged
	f.lock.Lock()
	for i := 0; i < f.count; i++ {
		index := f.tail + i
		if index >= f.capacity {
			index -= f.capacity
		}
		off := index * f.width
		out = fn(f.buffer[off : off+f.width : off+f.width])
		if out == Skip || out == Updated {
			break
		}
	}
	f.lock.Unlock()
	return out
}
