// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package slq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip SpinLock-guarded concurrent tests: the lock
// synchronizes through atomix operations the detector cannot observe,
// so correctly serialized accesses are reported as races.
const RaceEnabled = true
