// Package types holds the small set of value types shared across the VM core:
// addresses, hashes, and log records. It deliberately does not carry the
// transaction/block/trie types a full chain client needs — those belong to
// the block/transaction pipeline, which is out of scope for the execution core.
package types

import "encoding/hex"

// AddressLength is the length of an Ethereum-style address in bytes.
const AddressLength = 20

// HashLength is the length of a 32-byte word/hash.
const HashLength = 32

// Address is a 160-bit account identifier.
type Address [AddressLength]byte

// BytesToAddress returns Address with the last 20 bytes of b. If b is longer
// than 20 bytes, it is cropped from the left; if shorter, it is left-padded
// with zeros.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the 0x-prefixed hex encoding of the address.
func (a Address) Hex() string { return "0x" + hex.EncodeToString(a[:]) }

func (a Address) String() string { return a.Hex() }

// IsZero reports whether the address is the zero address.
func (a Address) IsZero() bool { return a == Address{} }

// Hash is a 256-bit word, used both for storage keys/values and for
// general-purpose 32-byte hashes (code hash, topics).
type Hash [HashLength]byte

// BytesToHash returns a Hash containing the last 32 bytes of b.
func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

// Bytes returns the hash as a byte slice.
func (h Hash) Bytes() []byte { return h[:] }

func (h Hash) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

func (h Hash) String() string { return h.Hex() }

// IsZero reports whether the hash is the all-zero word.
func (h Hash) IsZero() bool { return h == Hash{} }

// EmptyCodeHash is the keccak256 hash of an empty byte string — the code hash
// of an account with no code.
var EmptyCodeHash = Hash{0xc5, 0xd2, 0x46, 0x01, 0x86, 0xf7, 0x23, 0x3c, 0x92, 0x7e,
	0x7d, 0xb2, 0xdc, 0xc7, 0x03, 0xc0, 0xe5, 0x00, 0xb6, 0x53, 0xca, 0x82, 0x27,
	0x3b, 0x7b, 0xfa, 0xd8, 0x04, 0x5d, 0x85, 0xa4, 0x70}
