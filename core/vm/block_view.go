package vm

import (
	"math/big"

	"github.com/mana-go/evmcore/core/types"
)

// Header is the subset of block-header fields the VM core needs: BLOCKHASH,
// COINBASE, TIMESTAMP, NUMBER, DIFFICULTY/PREVRANDAO, GASLIMIT (spec §6).
type Header struct {
	Number     *big.Int
	Timestamp  uint64
	Difficulty *big.Int
	GasLimit   uint64
	Beneficiary types.Address
}

// BlockView provides the EVM with block-level information (spec §6).
type BlockView interface {
	GetBlockHeader() Header
	// GetAncestorHeader returns the header n blocks behind the current
	// one, or nil if n is 0, negative, or further back than the 256
	// ancestors BLOCKHASH may address.
	GetAncestorHeader(n uint64) *Header
}
