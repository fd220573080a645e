// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slq

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrFull indicates an enqueue was attempted while the queue is at capacity.
//
// ErrFull is a control flow signal, not a failure: the consumer is behind
// and the caller should retry later (with backoff or yield) or drop the
// entry, depending on its protocol.
//
// ErrFull wraps [iox.ErrWouldBlock] for ecosystem consistency, so both
// errors.Is(err, slq.ErrFull) and [IsWouldBlock] match it.
var ErrFull = fmt.Errorf("slq: queue full: %w", iox.ErrWouldBlock)

// ErrEmpty indicates a dequeue was attempted while the queue holds no
// entries.
//
// ErrEmpty is a control flow signal, not a failure. It wraps
// [iox.ErrWouldBlock] for ecosystem consistency, so both
// errors.Is(err, slq.ErrEmpty) and [IsWouldBlock] match it.
var ErrEmpty = fmt.Errorf("slq: queue empty: %w", iox.ErrWouldBlock)

// Argument errors. Unlike ErrFull and ErrEmpty these report caller bugs,
// not steady-state backpressure, and are never IsWouldBlock.
var (
	// ErrNilQueue indicates a mutating operation on a nil queue.
	ErrNilQueue = errors.New("slq: nil queue")

	// ErrNilEntry indicates a nil entry or output slice where one is
	// required.
	ErrNilEntry = errors.New("slq: nil entry")

	// ErrEntrySize indicates an entry or output slice shorter than the
	// queue's entry width.
	ErrEntrySize = errors.New("slq: entry shorter than queue width")
)

// IsWouldBlock reports whether err indicates the operation would block
// (queue full or empty). Delegates to [iox.IsWouldBlock] for wrapped
// error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrFull and ErrEmpty.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
