// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// SpinLock synchronizes through atomix operations the race detector
// cannot observe, so these tests report false positives under -race.
// The same exchange runs race-clean with an injected sync.Mutex in
// TestInjectedMutex.

package slq_test

import (
	"encoding/binary"
	"runtime"
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/slq"
)

// TestSpinLockMutualExclusion hammers one counter from many goroutines;
// any lost update means two holders were inside the critical section.
func TestSpinLockMutualExclusion(t *testing.T) {
	var (
		l       slq.SpinLock
		counter int
		wg      sync.WaitGroup
	)

	workers := runtime.GOMAXPROCS(0) * 2
	const perWorker = 20_000

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				l.Lock()
				counter++
				l.Unlock()
			}
		}()
	}
	wg.Wait()

	if want := workers * perWorker; counter != want {
		t.Fatalf("counter: got %d, want %d (lost updates)", counter, want)
	}
}

// TestFifoStress runs multiple producers and consumers against one queue.
// Each entry carries (producer id, per-producer sequence); consumers check
// that sequences from any one producer arrive in order, and that every
// enqueued entry is dequeued exactly once.
func TestFifoStress(t *testing.T) {
	const (
		producers   = 4
		consumers   = 4
		perProducer = 10_000
	)

	q := slq.NewFifo(64, 8)

	var (
		wg       sync.WaitGroup
		consumed atomix.Int64
		lastSeq  [producers * consumers]atomix.Int64 // [consumer*producers+producer]
		seen     = make([]atomix.Int32, producers*perProducer)
	)
	for i := range lastSeq {
		lastSeq[i].StoreRelaxed(-1)
	}

	for p := range producers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			entry := make([]byte, 8)
			backoff := iox.Backoff{}
			for seq := range perProducer {
				binary.NativeEndian.PutUint32(entry, uint32(id))
				binary.NativeEndian.PutUint32(entry[4:], uint32(seq))
				for q.Enqueue(entry) != nil {
					backoff.Wait()
				}
				backoff.Reset()
			}
		}(p)
	}

	total := int64(producers * perProducer)
	for c := range consumers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			out := make([]byte, 8)
			backoff := iox.Backoff{}
			for consumed.LoadRelaxed() < total {
				if err := q.Dequeue(out); err != nil {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				consumed.AddAcqRel(1)

				prod := int(binary.NativeEndian.Uint32(out))
				seq := int64(binary.NativeEndian.Uint32(out[4:]))
				if prod >= producers || seq >= perProducer {
					t.Errorf("corrupt entry: producer %d seq %d", prod, seq)
					return
				}
				if seen[prod*perProducer+int(seq)].Add(1) != 1 {
					t.Errorf("entry (%d,%d) dequeued twice", prod, seq)
					return
				}
				// Per-producer order as observed by this consumer
				slot := &lastSeq[id*producers+prod]
				if prev := slot.LoadRelaxed(); seq <= prev {
					t.Errorf("producer %d order: seq %d after %d", prod, seq, prev)
					return
				}
				slot.StoreRelaxed(seq)
			}
		}(c)
	}

	wg.Wait()

	if got := consumed.LoadRelaxed(); got != total {
		t.Fatalf("consumed: got %d, want %d", got, total)
	}
	for i := range seen {
		if seen[i].Load() != 1 {
			t.Fatalf("entry %d dequeued %d times, want 1", i, seen[i].Load())
		}
	}
	if q.Len() != 0 {
		t.Fatalf("Len after drain: got %d, want 0", q.Len())
	}
}

// TestFifoStressLenBounds samples Len under contention; it must stay
// within [0, capacity] at every observation.
func TestFifoStressLenBounds(t *testing.T) {
	const capacity = 8
	q := slq.NewFifo(capacity, 4)

	var (
		wg   sync.WaitGroup
		stop atomix.Bool
	)

	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entry := []byte{1, 2, 3, 4}
			for !stop.LoadAcquire() {
				_ = q.Enqueue(entry)
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := make([]byte, 4)
			for !stop.LoadAcquire() {
				_ = q.Dequeue(out)
			}
		}()
	}

	for range 200_000 {
		if n := q.Len(); n < 0 || n > capacity {
			stop.StoreRelease(true)
			wg.Wait()
			t.Fatalf("Len out of bounds: %d", n)
		}
	}
	stop.StoreRelease(true)
	wg.Wait()
}

// TestUpdateStressAtomicity interleaves coalescing scans with
// enqueue/dequeue traffic; the scan must never observe a torn entry.
func TestUpdateStressAtomicity(t *testing.T) {
	q := slq.NewFifo(16, 8)

	var (
		wg   sync.WaitGroup
		stop atomix.Bool
	)

	// Entries always carry mirrored halves; a torn copy breaks the mirror.
	wg.Add(1)
	go func() {
		defer wg.Done()
		entry := make([]byte, 8)
		out := make([]byte, 8)
		for i := uint32(0); !stop.LoadAcquire(); i++ {
			binary.NativeEndian.PutUint32(entry, i)
			binary.NativeEndian.PutUint32(entry[4:], ^i)
			if q.Enqueue(entry) != nil {
				_ = q.Dequeue(out)
			}
		}
	}()

	for range 100_000 {
		out := q.Update(func(slot []byte) slq.Outcome {
			lo := binary.NativeEndian.Uint32(slot)
			hi := binary.NativeEndian.Uint32(slot[4:])
			if hi != ^lo {
				t.Errorf("torn entry: %08x %08x", lo, hi)
				return slq.Skip
			}
			return slq.Unchanged
		})
		if out == slq.Skip {
			break
		}
	}
	stop.StoreRelease(true)
	wg.Wait()
}
