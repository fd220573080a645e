// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// SpinLock is a test-and-set mutual-exclusion lock that busy-waits with
// CPU pause instructions instead of descheduling.
//
// The zero value is an unlocked SpinLock. It satisfies [sync.Locker].
//
// SpinLock holds contending callers on-core, which is correct when there
// is no scheduler to yield to (pinned polling loops, bare-metal harts) and
// critical sections are short. Under a preemptive scheduler with long
// critical sections, prefer injecting a sync.Mutex via [Builder.WithLock].
//
// The lock is not reentrant: a second Lock from the holder deadlocks.
// There is no timeout and no owner tracking. A SpinLock must not be
// copied after first use.
type SpinLock struct {
	state atomix.Uint64
}

// Lock acquires the lock, spinning until it is available.
//
// The spin reads the lock word with relaxed ordering and only attempts
// the acquire CAS when it observes the lock free, keeping contending
// cores out of the coherence traffic while the lock is held.
func (l *SpinLock) Lock() {
	sw := spin.Wait{}
	for {
		if l.state.LoadRelaxed() == 0 && l.state.CompareAndSwapAcqRel(0, 1) {
			return
		}
		sw.Once()
	}
}

// TryLock acquires the lock without spinning.
// Returns true if the lock was acquired.
func (l *SpinLock) TryLock() bool {
	return l.state.LoadRelaxed() == 0 && l.state.CompareAndSwapAcqRel(0, 1)
}

// Unlock releases the lock.
//
// The release store publishes every write made inside the critical
// section before the next Lock's acquire observes the lock free.
// Unlock of an unheld SpinLock is not detected.
func (l *SpinLock) Unlock() {
	l.state.StoreRelease(0)
}
