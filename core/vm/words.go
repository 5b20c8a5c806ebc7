package vm

import (
	"github.com/holiman/uint256"

	"github.com/mana-go/evmcore/core/types"
)

// addressFromWord truncates a 256-bit stack word to the low 20 bytes that
// form an Address, as every address-valued opcode operand does (spec §3).
func addressFromWord(w *uint256.Int) types.Address {
	b := w.Bytes20()
	return types.Address(b)
}

// wordToHash renders a 256-bit stack word as a 32-byte storage key/value
// (spec §3 storage is keyed by 32-byte words).
func wordToHash(w *uint256.Int) types.Hash {
	return types.Hash(w.Bytes32())
}

// hashToWord loads a 32-byte hash/storage value back onto the stack as a word.
func hashToWord(h types.Hash) uint256.Int {
	var w uint256.Int
	w.SetBytes32(h[:])
	return w
}

// byteLen returns the number of significant bytes in a 256-bit big-endian
// word, with leading zero bytes stripped — used by EXP's dynamic gas cost
// (spec §4.4 "byte_length(exponent)").
func byteLen(b [32]byte) int {
	for i := 0; i < 32; i++ {
		if b[i] != 0 {
			return 32 - i
		}
	}
	return 0
}
