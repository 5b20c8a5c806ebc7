package main

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/mana-go/evmcore/core/types"
	"github.com/mana-go/evmcore/core/vm"
)

// runnerAccount is the in-memory record backing runnerView.
type runnerAccount struct {
	exists  bool
	balance uint256.Int
	nonce   uint64
	code    []byte
	codeHash types.Hash
	storage map[types.Hash]uint256.Int
}

// runnerView is a minimal in-memory vm.AccountView: every account starts
// empty, and CREATE/CALL effects within the run are visible to later steps
// of the same run but never persisted anywhere — evmrun executes exactly
// one program per invocation.
type runnerView struct {
	accounts map[types.Address]*runnerAccount
	snaps    []map[types.Address]*runnerAccount
}

func newRunnerView() *runnerView {
	return &runnerView{accounts: make(map[types.Address]*runnerAccount)}
}

func (v *runnerView) get(addr types.Address) *runnerAccount {
	a, ok := v.accounts[addr]
	if !ok {
		a = &runnerAccount{storage: make(map[types.Hash]uint256.Int)}
		v.accounts[addr] = a
	}
	return a
}

func (v *runnerView) AccountExists(addr types.Address) bool {
	a, ok := v.accounts[addr]
	return ok && a.exists
}

func (v *runnerView) EmptyAccount(addr types.Address) bool {
	a, ok := v.accounts[addr]
	if !ok {
		return true
	}
	return a.nonce == 0 && a.balance.IsZero() && len(a.code) == 0
}

func (v *runnerView) GetBalance(addr types.Address) *uint256.Int { return &v.get(addr).balance }
func (v *runnerView) GetNonce(addr types.Address) uint64         { return v.get(addr).nonce }
func (v *runnerView) GetCode(addr types.Address) []byte          { return v.get(addr).code }
func (v *runnerView) GetCodeHash(addr types.Address) types.Hash  { return v.get(addr).codeHash }

func (v *runnerView) GetStorage(addr types.Address, key types.Hash) (uint256.Int, vm.StorageResult) {
	a := v.get(addr)
	val, ok := a.storage[key]
	if !ok {
		return uint256.Int{}, vm.StorageKeyNotFound
	}
	return val, vm.StorageOK
}

func (v *runnerView) GetInitialStorage(addr types.Address, key types.Hash) (uint256.Int, vm.StorageResult) {
	return v.GetStorage(addr, key)
}

func (v *runnerView) PutStorage(addr types.Address, key types.Hash, value uint256.Int) {
	v.get(addr).storage[key] = value
}

func (v *runnerView) RemoveStorage(addr types.Address, key types.Hash) {
	delete(v.get(addr).storage, key)
}

func (v *runnerView) Transfer(from, to types.Address, value *uint256.Int) error {
	src := v.get(from)
	if src.balance.Lt(value) {
		return vm.ErrInsufficientBalance
	}
	src.balance.Sub(&src.balance, value)
	dst := v.get(to)
	dst.exists = true
	dst.balance.Add(&dst.balance, value)
	return nil
}

func (v *runnerView) IncrementNonce(addr types.Address)  { v.get(addr).nonce++ }
func (v *runnerView) ClearBalance(addr types.Address)    { v.get(addr).balance.Clear() }
func (v *runnerView) CreateAccount(addr types.Address)   { v.get(addr).exists = true }
func (v *runnerView) SetCode(addr types.Address, code []byte) {
	a := v.get(addr)
	a.code = code
	a.codeHash = types.BytesToHash(code)
}

func (v *runnerView) Snapshot() int {
	snap := make(map[types.Address]*runnerAccount, len(v.accounts))
	for k, a := range v.accounts {
		cp := *a
		cp.storage = make(map[types.Hash]uint256.Int, len(a.storage))
		for sk, sv := range a.storage {
			cp.storage[sk] = sv
		}
		snap[k] = &cp
	}
	v.snaps = append(v.snaps, snap)
	return len(v.snaps) - 1
}

func (v *runnerView) RevertToSnapshot(id int) {
	v.accounts = v.snaps[id]
	v.snaps = v.snaps[:id]
}

// runnerBlockView is a fixed, single-block fixture: evmrun has no notion of
// a chain, so NUMBER/TIMESTAMP/etc. resolve to a constant block one, and
// BLOCKHASH never resolves an ancestor.
type runnerBlockView struct{}

func newRunnerBlockView() *runnerBlockView { return &runnerBlockView{} }

func (b *runnerBlockView) GetBlockHeader() vm.Header {
	return vm.Header{
		Number:     big.NewInt(1),
		Timestamp:  0,
		Difficulty: big.NewInt(0),
		GasLimit:   30_000_000,
	}
}

func (b *runnerBlockView) GetAncestorHeader(n uint64) *vm.Header { return nil }
