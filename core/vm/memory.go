package vm

import "github.com/holiman/uint256"

// Memory is the EVM's byte-addressable working memory: conceptually
// infinite, implicitly zero beyond the current high-water mark, and
// word-counted for gas purposes (spec §3/§4.2).
type Memory struct {
	store       []byte
	activeWords uint64 // high-water mark, in 32-byte words
}

// NewMemory returns a new, empty Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Len returns the current byte length of the backing store. Always a
// multiple of 32 once any write has occurred.
func (m *Memory) Len() int { return len(m.store) }

// ActiveWords returns ceil(high_water_mark / 32).
func (m *Memory) ActiveWords() uint64 { return m.activeWords }

// Resize grows the backing store to at least size bytes (zero-padded),
// rounded up to a whole number of 32-byte words, and raises active_words to
// cover the grown store. It never shrinks memory —
// active_words is monotonic non-decreasing within a call (spec §3).
func (m *Memory) Resize(size uint64) {
	if uint64(len(m.store)) >= size {
		return
	}
	words := (size + 31) / 32
	newLen := words * 32
	m.store = append(m.store, make([]byte, newLen-uint64(len(m.store)))...)
	if words > m.activeWords {
		m.activeWords = words
	}
}

// bumpActiveWords records that a read or write touched up to
// offset+length, updating the high-water mark. Per spec §4.2, a
// zero-length access never bumps active_words.
func (m *Memory) bumpActiveWords(offset, length uint64) {
	if length == 0 {
		return
	}
	words := (offset + length + 31) / 32
	if words > m.activeWords {
		m.activeWords = words
	}
}

// Write copies value into memory at offset, extending (zero-padded) memory
// to cover offset+len(value) if necessary.
func (m *Memory) Write(offset uint64, value []byte) {
	if len(value) == 0 {
		return
	}
	m.Resize(offset + uint64(len(value)))
	copy(m.store[offset:], value)
	m.bumpActiveWords(offset, uint64(len(value)))
}

// Write8 writes the low byte of val at offset.
func (m *Memory) Write8(offset uint64, val *uint256.Int) {
	m.Resize(offset + 1)
	m.store[offset] = byte(val.Uint64())
	m.bumpActiveWords(offset, 1)
}

// Write32 writes val as a 32-byte big-endian word at offset.
func (m *Memory) Write32(offset uint64, val *uint256.Int) {
	m.Resize(offset + 32)
	b := val.Bytes32()
	copy(m.store[offset:offset+32], b[:])
	m.bumpActiveWords(offset, 32)
}

// Read returns a fresh copy of length bytes starting at offset,
// zero-extending past the current high-water mark. length == 0 returns an
// empty (non-nil-distinguishing is not load-bearing here) slice and does
// not bump active_words (spec §4.2).
func (m *Memory) Read(offset, length uint64) []byte {
	if length == 0 {
		return []byte{}
	}
	out := make([]byte, length)
	if offset < uint64(len(m.store)) {
		end := offset + length
		if end > uint64(len(m.store)) {
			end = uint64(len(m.store))
		}
		copy(out, m.store[offset:end])
	}
	m.bumpActiveWords(offset, length)
	return out
}

// Slice returns a direct reference into the backing store for
// offset:offset+length. Only valid to call after the caller has already
// resized memory to cover the range (e.g. via the jump table's memorySize
// pre-pass) — used by opcode implementations that read back what they just
// wrote without an extra copy.
func (m *Memory) Slice(offset, length uint64) []byte {
	if length == 0 {
		return nil
	}
	return m.store[offset : offset+length]
}

// ReadZeroed reads length bytes from src (call data or code) starting at
// offset, zero-padding past the end of src. Unlike Read, this never
// touches Memory's active_words accounting — it is a convenience for
// reading environment data that is not memory (spec §4.2).
func ReadZeroed(src []byte, offset, length uint64) []byte {
	out := make([]byte, length)
	if offset >= uint64(len(src)) {
		return out
	}
	end := offset + length
	if end > uint64(len(src)) {
		end = uint64(len(src))
	}
	copy(out, src[offset:end])
	return out
}
