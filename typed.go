// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slq

import "unsafe"

// Typed is a queue of fixed-size elements of type T over a [Fifo].
//
// The entry width is unsafe.Sizeof(T); elements are stored by value in the
// queue's byte buffer. T must not contain pointers: the buffer is opaque
// bytes, so any pointer stored through it is invisible to the garbage
// collector. Fixed-size message envelopes (IDs, masks, small arrays) are
// the intended element shape.
//
// Example:
//
//	type FlushRequest struct {
//	    Source uint32
//	    Start  uint64
//	    Size   uint64
//	}
//
//	q := slq.NewTyped[FlushRequest](16)
//	q.Enqueue(&FlushRequest{Source: hart, Start: base, Size: span})
//	req, err := q.Dequeue()
type Typed[T any] struct {
	f *Fifo
}

// NewTyped creates a queue holding capacity elements of type T, backed by
// an owned buffer and guarded by a [SpinLock].
//
// Panics if capacity < 1 or T is zero-sized.
func NewTyped[T any](capacity int) *Typed[T] {
	var zero T
	return BuildTyped[T](New(capacity, int(unsafe.Sizeof(zero))))
}

// elemBytes views the element pointed to by p as its raw bytes.
func elemBytes[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// Enqueue copies *elem into the next free slot.
// Returns ErrFull if the queue is at capacity.
func (q *Typed[T]) Enqueue(elem *T) error {
	if q == nil {
		return ErrNilQueue
	}
	if elem == nil {
		return ErrNilEntry
	}
	return q.f.Enqueue(elemBytes(elem))
}

// Dequeue removes and returns the oldest element.
// Returns (zero-value, ErrEmpty) if the queue holds no elements.
func (q *Typed[T]) Dequeue() (T, error) {
	var elem T
	if q == nil {
		return elem, ErrNilQueue
	}
	err := q.f.Dequeue(elemBytes(&elem))
	return elem, err
}

// Update scans the occupied elements oldest-first under a single lock
// hold, invoking fn with a pointer to each live element. Semantics and
// the reentrancy contract are those of [Fifo.Update]: fn must not call
// any method of this queue and must not retain the pointer.
func (q *Typed[T]) Update(fn func(elem *T) Outcome) Outcome {
	if q == nil || fn == nil {
		return Unchanged
	}
	return q.f.Update(func(slot []byte) Outcome {
		return fn((*T)(unsafe.Pointer(unsafe.SliceData(slot))))
	})
}

// Len returns the number of occupied elements.
func (q *Typed[T]) Len() int {
	if q == nil {
		return 0
	}
	return q.f.Len()
}

// Cap returns the queue capacity in elements.
func (q *Typed[T]) Cap() int {
	if q == nil {
		return 0
	}
	return q.f.Cap()
}

// Full reports whether the queue is at capacity.
func (q *Typed[T]) Full() bool {
	return q != nil && q.f.Full()
}

// Empty reports whether the queue holds no elements.
func (q *Typed[T]) Empty() bool {
	return q == nil || q.f.Empty()
}

// Reset drops all elements and zero-fills the backing buffer.
func (q *Typed[T]) Reset() error {
	if q == nil {
		return ErrNilQueue
	}
	return q.f.Reset()
}
