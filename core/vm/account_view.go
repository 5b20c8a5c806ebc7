package vm

import (
	"github.com/holiman/uint256"

	"github.com/mana-go/evmcore/core/types"
)

// StorageResult distinguishes "no such account" from "account exists but
// the slot has never been written", per spec §6 get_storage/get_initial_storage.
type StorageResult int

const (
	StorageOK StorageResult = iota
	StorageAccountNotFound
	StorageKeyNotFound
)

// AccountView is the external, mutable world-state abstraction the core
// consumes (spec §6). It is the only mutable resource threaded through a
// call: each nested call receives the current view and returns a
// (possibly modified) view, committed by the caller on success and
// discarded on revert/exceptional-halt (spec §5).
//
// Implementations are expected to support Snapshot/RevertToSnapshot so the
// VM does not have to deep-copy the view on every nested call — this is
// the same contract as go-ethereum's core/vm.StateDB and every other
// implementation in the pack.
type AccountView interface {
	AccountExists(addr types.Address) bool
	EmptyAccount(addr types.Address) bool

	GetBalance(addr types.Address) *uint256.Int
	GetNonce(addr types.Address) uint64
	GetCode(addr types.Address) []byte
	GetCodeHash(addr types.Address) types.Hash

	GetStorage(addr types.Address, key types.Hash) (uint256.Int, StorageResult)
	GetInitialStorage(addr types.Address, key types.Hash) (uint256.Int, StorageResult)
	PutStorage(addr types.Address, key types.Hash, value uint256.Int)
	RemoveStorage(addr types.Address, key types.Hash)

	Transfer(from, to types.Address, value *uint256.Int) error
	IncrementNonce(addr types.Address)
	ClearBalance(addr types.Address)
	CreateAccount(addr types.Address)
	SetCode(addr types.Address, code []byte)

	Snapshot() int
	RevertToSnapshot(id int)
}
