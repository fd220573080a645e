// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slq

import (
	"sync"
	"unsafe"
)

// Options configures queue construction.
type Options struct {
	capacity int
	width    int

	// Caller-supplied backing memory; owned buffer when nil.
	buffer []byte

	// Mutual-exclusion strategy; SpinLock when nil.
	lock sync.Locker
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Owned buffer, default SpinLock
//	q := slq.New(16, 4).Build()
//
//	// Caller-owned backing memory
//	q := slq.New(16, 4).WithBuffer(region).Build()
//
//	// Descheduling lock for scheduler environments
//	q := slq.New(16, 4).WithLock(new(sync.Mutex)).Build()
type Builder struct {
	opts Options
}

// New creates a queue builder for capacity entries of width bytes each.
//
// Capacity is exact; it is not rounded to a power of 2.
//
// Panics if capacity < 1 or width < 1.
func New(capacity, width int) *Builder {
	if capacity < 1 {
		panic("slq: capacity must be >= 1")
	}
	if width < 1 {
		panic("slq: entry width must be >= 1")
	}
	return &Builder{opts: Options{capacity: capacity, width: width}}
}

// WithBuffer binds caller-supplied backing memory instead of allocating.
//
// buf must be at least capacity × width bytes; Build panics otherwise.
// The region is zero-filled at Build and the queue holds sole mutable
// access to it from then on. Its lifetime is the caller's responsibility
// and must outlive every concurrent user of the queue.
func (b *Builder) WithBuffer(buf []byte) *Builder {
	b.opts.buffer = buf
	return b
}

// WithLock installs a mutual-exclusion strategy other than the default
// [SpinLock], e.g. a *sync.Mutex under a preemptive scheduler. Queue
// logic is identical under either lock.
//
// The locker must not be shared with anything that calls back into this
// queue while holding it.
func (b *Builder) WithLock(l sync.Locker) *Builder {
	b.opts.lock = l
	return b
}

// Build creates the configured *Fifo.
// Panics if a bound buffer is smaller than capacity × width.
func (b *Builder) Build() *Fifo {
	return newFifo(b.opts.capacity, b.opts.width, b.opts.buffer, b.opts.lock)
}

// BuildTyped creates a [Typed] queue from the builder with compile-time
// element typing.
//
// Panics if the builder width differs from the element size, or if a
// bound buffer is misaligned for the element type.
func BuildTyped[T any](b *Builder) *Typed[T] {
	var zero T
	if b.opts.width != int(unsafe.Sizeof(zero)) {
		panic("slq: builder width differs from element size")
	}
	if b.opts.buffer != nil {
		base := uintptr(unsafe.Pointer(unsafe.SliceData(b.opts.buffer)))
		if base%uintptr(unsafe.Alignof(zero)) != 0 {
			panic("slq: buffer misaligned for element type")
		}
	}
	return &Typed[T]{f: b.Build()}
}
