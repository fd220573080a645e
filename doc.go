// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slq provides a spin-locked bounded FIFO queue with fixed-width
// entries.
//
// slq is the lock-guarded sibling of the lock-free queues in
// [code.hybscloud.com/lfq]. Where lfq trades an exact length and arbitrary
// capacities for lock-freedom, slq keeps a single short critical section
// around a plain ring buffer and gains:
//
//   - An exact, always-consistent Len()
//   - Any capacity (no power-of-2 rounding)
//   - Caller-supplied backing memory (no allocation after construction)
//   - Atomic in-place coalescing of pending entries via Update
//
// The design follows firmware message queues: entries are raw fixed-width
// byte records, all bookkeeping lives in the queue, and every operation is
// bounded, non-blocking and allocation-free. The intended consumers are
// inter-core message-passing layers, interrupt-driven producers, and polling
// consumers.
//
// # Quick Start
//
// Byte-oriented queue:
//
//	q := slq.NewFifo(16, 4) // 16 entries, 4 bytes each
//
//	entry := []byte{0x01, 0x00, 0x00, 0x00}
//	if err := q.Enqueue(entry); err != nil {
//	    // slq.ErrFull - queue is at capacity
//	}
//
//	out := make([]byte, 4)
//	if err := q.Dequeue(out); err != nil {
//	    // slq.ErrEmpty - nothing pending
//	}
//
// Typed queue (width derived from the element type):
//
//	type Request struct {
//	    Hart uint32
//	    Op   uint32
//	}
//
//	q := slq.NewTyped[Request](16)
//	q.Enqueue(&Request{Hart: 2, Op: opFence})
//	req, err := q.Dequeue()
//
// # Memory Contract
//
// The queue owns a buffer of exactly capacity × width bytes. NewFifo and
// NewTyped allocate it; WithBuffer binds a caller-supplied region instead:
//
//	backing := make([]byte, 64)
//	q := slq.New(16, 4).WithBuffer(backing).Build()
//
// The region is zero-filled at bind time and the queue holds sole mutable
// access to it from then on. The caller must not touch the region until no
// concurrent user of the queue remains. The queue never grows, reallocates
// or releases it.
//
// Entries are opaque bytes of fixed width. Widths of 1, 2, 4 and 8 bytes
// (8 on 64-bit hosts) use native-width loads and stores; every other width
// uses a byte copy. Both are observably byte-for-byte equivalent; no
// endianness conversion is applied.
//
// # Locking
//
// All operations serialize through one mutual-exclusion guard. The default
// is [SpinLock], a test-and-set lock that pauses the CPU between attempts.
// Busy-waiting is the right discipline when callers are harts, interrupt
// handlers or pinned polling loops with nothing to deschedule into.
//
// Under a real scheduler, inject a descheduling lock instead:
//
//	q := slq.New(16, 4).WithLock(new(sync.Mutex)).Build()
//
// Queue logic is identical under either lock.
//
// # In-Place Coalescing
//
// Update scans the occupied slots oldest-first under a single lock hold,
// handing each slot to the caller as a mutable view. This makes
// replace-if-present semantics atomic, where a dequeue/inspect/enqueue
// round trip would not be:
//
//	out := q.Update(func(slot []byte) slq.Outcome {
//	    if slot[0] != target {
//	        return slq.Unchanged // keep scanning
//	    }
//	    if covered(slot) {
//	        return slq.Skip // already pending, enqueue nothing
//	    }
//	    merge(slot)         // widen the pending entry in place
//	    return slq.Updated
//	})
//	if out == slq.Unchanged {
//	    q.Enqueue(entry) // nothing matched, append normally
//	}
//
// The callback runs with the lock held. It must not call any method of the
// same queue: the lock is not reentrant and doing so deadlocks every caller
// permanently. The callback only ever receives the slot view, never the
// queue, so the hazard requires deliberately capturing the queue in the
// closure.
//
// # Error Handling
//
// Enqueue on a full queue returns [ErrFull]; Dequeue on an empty queue
// returns [ErrEmpty]. Both wrap [iox.ErrWouldBlock]: they are backpressure
// signals, not failures, and callers typically retry with a backoff:
//
//	backoff := iox.Backoff{}
//	for q.Enqueue(entry) != nil {
//	    backoff.Wait()
//	}
//	backoff.Reset()
//
// [ErrNilQueue], [ErrNilEntry] and [ErrEntrySize] report argument misuse
// and are plain failures ([IsWouldBlock] returns false for them).
//
// Read-only probes tolerate a nil queue: Len reports 0, Full reports false,
// Empty reports true, Update reports Unchanged. Mutating operations on a
// nil queue return ErrNilQueue.
//
// # Thread Safety
//
// Any number of goroutines may enqueue, dequeue and scan one queue
// concurrently; the lock serializes them. Distinct queues share no state.
// No operation blocks beyond lock acquisition, and no operation holds the
// lock across anything unbounded (Update's scan is bounded by the current
// length, which never exceeds capacity).
//
// # Race Detection
//
// SpinLock synchronizes through [code.hybscloud.com/atomix] operations,
// which the race detector cannot observe as a happens-before edge. Data
// protected only by SpinLock is therefore reported as racy even though it
// is correctly serialized. Concurrent tests are excluded from race builds
// via //go:build !race; use an injected sync.Mutex when running application
// code under the race detector.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause
// instructions.
package slq
