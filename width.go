// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slq

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// copyMode selects the slot copy strategy, fixed at construction.
//
// Widths of 1, 2 and 4 bytes move entries with a single native-width
// load/store pair; 8 bytes does the same on 64-bit hosts. Every other
// width falls back to a byte copy. All modes are observably equivalent
// to a byte-for-byte copy; entries carry no endianness semantics.
type copyMode uint8

const (
	copyBytes copyMode = iota
	copy8
	copy16
	copy32
	copy64
)

func copyModeFor(width int) copyMode {
	switch width {
	case 1:
		return copy8
	case 2:
		return copy16
	case 4:
		return copy32
	case 8:
		if bits.UintSize == 64 {
			return copy64
		}
	}
	return copyBytes
}

// storeSlot copies one entry from src into the slot at byte offset off.
// Caller holds the lock and has validated len(src) >= width.
func (f *Fifo) storeSlot(off int, src []byte) {
	switch f.mode {
	case copy8:
		f.buffer[off] = src[0]
	case copy16:
		binary.NativeEndian.PutUint16(f.buffer[off:], binary.NativeEndian.Uint16(src))
	case copy32:
		binary.NativeEndian.PutUint32(f.buffer[off:], binary.NativeEndian.Uint32(src))
	case copy64:
		binary.NativeEndian.PutUint64(f.buffer[off:], binary.NativeEndian.Uint64(src))
	default:
		copy(f.buffer[off:off+f.width], src[:f.width])
	}
}

// loadSlot copies the slot at byte offset off into dst.
// Caller holds the lock and has validated len(dst) >= width.
func (f *Fifo) loadSlot(off int, dst []byte) {
	switch f.mode {
	case copy8:
		dst[0] = f.buffer[off]
	case copy16:
		binary.NativeEndian.PutUint16(dst, binary.NativeEndian.Uint16(f.buffer[off:]))
	case copy32:
		binary.NativeEndian.PutUint32(dst, binary.NativeEndian.Uint32(f.buffer[off:]))
	case copy64:
		binary.NativeEndian.PutUint64(dst, binary.NativeEndian.Uint64(f.buffer[off:]))
	default:
		copy(dst[:f.width], f.buffer[off:off+f.width])
	}
}

// alignedBuffer allocates a byte buffer whose base is 8-byte aligned.
//
// make([]byte, n) gives no alignment guarantee for small n, but [Typed]
// reinterprets slots as element values, so owned buffers are carved from
// a word-aligned allocation. Slot offsets are multiples of the entry
// width, which keeps every slot aligned for any element whose alignment
// divides its size.
func alignedBuffer(size int) []byte {
	words := make([]uint64, (size+7)/8)
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), size)
}
