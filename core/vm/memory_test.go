package vm

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"
)

func TestMemoryWriteReadRoundTrip(t *testing.T) {
	m := NewMemory()
	m.Write(0, []byte{1, 2, 3, 4})
	got := m.Read(0, 4)
	if !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Fatalf("Read() = %x, want 01020304", got)
	}
}

func TestMemoryReadPastHighWaterMarkIsZero(t *testing.T) {
	m := NewMemory()
	m.Write(0, []byte{1})
	got := m.Read(64, 32)
	want := make([]byte, 32)
	if !bytes.Equal(got, want) {
		t.Fatalf("Read() past high-water mark = %x, want all zero", got)
	}
}

func TestMemoryWrite32AndWrite8(t *testing.T) {
	m := NewMemory()
	v := uint256.NewInt(0x2a)
	m.Write32(0, v)
	word := m.Read(0, 32)
	want := make([]byte, 32)
	want[31] = 0x2a
	if !bytes.Equal(word, want) {
		t.Fatalf("Write32 round trip = %x, want %x", word, want)
	}

	b := uint256.NewInt(0xff)
	m.Write8(32, b)
	if m.Read(32, 1)[0] != 0xff {
		t.Fatalf("Write8 did not store the low byte")
	}
}

func TestMemoryActiveWordsMonotonic(t *testing.T) {
	m := NewMemory()
	m.Write(0, []byte{1})
	if m.ActiveWords() != 1 {
		t.Fatalf("ActiveWords() = %d, want 1", m.ActiveWords())
	}
	m.Write(64, []byte{1})
	if m.ActiveWords() != 3 {
		t.Fatalf("ActiveWords() = %d, want 3", m.ActiveWords())
	}
	m.Read(0, 1)
	if m.ActiveWords() != 3 {
		t.Fatalf("ActiveWords() shrank after a smaller read: %d", m.ActiveWords())
	}
}

func TestMemoryZeroLengthAccessDoesNotBumpActiveWords(t *testing.T) {
	m := NewMemory()
	m.Read(1000, 0)
	if m.ActiveWords() != 0 {
		t.Fatalf("zero-length read bumped ActiveWords() to %d", m.ActiveWords())
	}
}
