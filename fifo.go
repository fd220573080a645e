// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slq

import "sync"

// Fifo is a spin-locked bounded FIFO queue over fixed-width byte entries.
//
// The occupied region is the contiguous (mod capacity) run of count slots
// starting at tail; the next free slot is (tail+count) mod capacity. Every
// operation holds the lock across its whole invariant transition, so the
// queue is never observed in a partial state.
//
// Capacity and entry width are fixed at construction. Use [NewFifo] for an
// owned buffer or [New].WithBuffer for caller-supplied backing memory.
type Fifo struct {
	lock sync.Locker

	buffer   []byte
	capacity int
	width    int
	mode     copyMode

	// Guarded by lock.
	count int
	tail  int
}

// NewFifo creates a queue holding capacity entries of width bytes each,
// backed by an owned, zero-filled buffer and guarded by a [SpinLock].
//
// Panics if capacity < 1 or width < 1.
func NewFifo(capacity, width int) *Fifo {
	return New(capacity, width).Build()
}

func newFifo(capacity, width int, buffer []byte, lock sync.Locker) *Fifo {
	size := capacity * width
	if buffer == nil {
		buffer = alignedBuffer(size)
	} else {
		if len(buffer) < size {
			panic("slq: buffer smaller than capacity x width")
		}
		buffer = buffer[:size:size]
	}
	clear(buffer)

	if lock == nil {
		lock = new(SpinLock)
	}
	return &Fifo{
		lock:     lock,
		buffer:   buffer,
		capacity: capacity,
		width:    width,
		mode:     copyModeFor(width),
	}
}

// Cap returns the queue capacity in entries, or 0 for a nil queue.
func (f *Fifo) Cap() int {
	if f == nil {
		return 0
	}
	return f.capacity
}

// Width returns the entry width in bytes, or 0 for a nil queue.
func (f *Fifo) Width() int {
	if f == nil {
		return 0
	}
	return f.width
}

// Len returns the number of occupied entries, read under the lock.
// A nil queue reports 0.
func (f *Fifo) Len() int {
	if f == nil {
		return 0
	}
	f.lock.Lock()
	n := f.count
	f.lock.Unlock()
	return n
}

// Full reports whether the queue is at capacity, read under the lock.
// A nil queue reports false.
func (f *Fifo) Full() bool {
	if f == nil {
		return false
	}
	f.lock.Lock()
	full := f.count == f.capacity
	f.lock.Unlock()
	return full
}

// Empty reports whether the queue holds no entries, read under the lock.
// A nil queue reports true.
func (f *Fifo) Empty() bool {
	if f == nil {
		return true
	}
	f.lock.Lock()
	empty := f.count == 0
	f.lock.Unlock()
	return empty
}

// Reset drops all entries and zero-fills the backing buffer.
// Returns ErrNilQueue on a nil queue.
func (f *Fifo) Reset() error {
	if f == nil {
		return ErrNilQueue
	}
	f.lock.Lock()
	f.count = 0
	f.tail = 0
	clear(f.buffer)
	f.lock.Unlock()
	return nil
}

// Enqueue copies the first Width bytes of entry into the next free slot.
//
// Returns ErrFull if the queue is at capacity, ErrNilQueue / ErrNilEntry /
// ErrEntrySize on argument misuse. On any error the queue is unchanged.
func (f *Fifo) Enqueue(entry []byte) error {
	if f == nil {
		return ErrNilQueue
	}
	if entry == nil {
		return ErrNilEntry
	}
	if len(entry) < f.width {
		return ErrEntrySize
	}

	f.lock.Lock()
	if f.count == f.capacity {
		f.lock.Unlock()
		return ErrFull
	}
	head := f.tail + f.count
	if head >= f.capacity {
		head -= f.capacity
	}
	f.storeSlot(head*f.width, entry)
	f.count++
	f.lock.Unlock()
	return nil
}

// Dequeue copies the oldest entry into the first Width bytes of out and
// removes it, establishing FIFO order.
//
// Returns ErrEmpty if the queue holds no entries, ErrNilQueue /
// ErrNilEntry / ErrEntrySize on argument misuse. On any error the queue
// and out are unchanged.
func (f *Fifo) Dequeue(out []byte) error {
	if f == nil {
		return ErrNilQueue
	}
	if out == nil {
		return ErrNilEntry
	}
	if len(out) < f.width {
		return ErrEntrySize
	}

	f.lock.Lock()
	if f.count == 0 {
		f.lock.Unlock()
		return ErrEmpty
	}
	f.loadSlot(f.tail*f.width, out)
	f.count--
	f.tail++
	if f.tail >= f.capacity {
		f.tail = 0
	}
	f.lock.Unlock()
	return nil
}
