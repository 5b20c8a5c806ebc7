package vm

import (
	"github.com/holiman/uint256"

	"github.com/mana-go/evmcore/core/types"
)

// account is the in-memory record backing SimpleAccountView, mirroring the
// teacher's mockStateDB test double but holding enough real state (balance,
// nonce, code, storage) to execute actual bytecode rather than stub every
// method out to a zero value.
type account struct {
	exists  bool
	balance uint256.Int
	nonce   uint64
	code    []byte
	codeHash types.Hash
	storage map[types.Hash]uint256.Int
}

// SimpleAccountView is a minimal in-memory AccountView used by this package's own
// tests, grounded on the teacher's mockStateDB pattern (instructions_test.go)
// but backed by real maps so arithmetic/storage opcodes observe genuine
// before/after state instead of hardcoded zeros.
type SimpleAccountView struct {
	accounts map[types.Address]*account
	snaps    []map[types.Address]*account
}

func NewSimpleAccountView() *SimpleAccountView {
	return &SimpleAccountView{accounts: make(map[types.Address]*account)}
}

func (m *SimpleAccountView) get(addr types.Address) *account {
	a, ok := m.accounts[addr]
	if !ok {
		a = &account{storage: make(map[types.Hash]uint256.Int)}
		m.accounts[addr] = a
	}
	return a
}

func (m *SimpleAccountView) SetBalance(addr types.Address, v uint64) {
	a := m.get(addr)
	a.exists = true
	a.balance.SetUint64(v)
}

func (m *SimpleAccountView) SetCodeFor(addr types.Address, code []byte) {
	a := m.get(addr)
	a.exists = true
	a.code = code
	a.codeHash = types.BytesToHash(code)
}

func (m *SimpleAccountView) AccountExists(addr types.Address) bool {
	a, ok := m.accounts[addr]
	return ok && a.exists
}

func (m *SimpleAccountView) EmptyAccount(addr types.Address) bool {
	a, ok := m.accounts[addr]
	if !ok {
		return true
	}
	return a.nonce == 0 && a.balance.IsZero() && len(a.code) == 0
}

func (m *SimpleAccountView) GetBalance(addr types.Address) *uint256.Int {
	return &m.get(addr).balance
}

func (m *SimpleAccountView) GetNonce(addr types.Address) uint64 { return m.get(addr).nonce }

func (m *SimpleAccountView) GetCode(addr types.Address) []byte { return m.get(addr).code }

func (m *SimpleAccountView) GetCodeHash(addr types.Address) types.Hash { return m.get(addr).codeHash }

func (m *SimpleAccountView) GetStorage(addr types.Address, key types.Hash) (uint256.Int, StorageResult) {
	a := m.get(addr)
	v, ok := a.storage[key]
	if !ok {
		return uint256.Int{}, StorageKeyNotFound
	}
	return v, StorageOK
}

func (m *SimpleAccountView) GetInitialStorage(addr types.Address, key types.Hash) (uint256.Int, StorageResult) {
	return m.GetStorage(addr, key)
}

func (m *SimpleAccountView) PutStorage(addr types.Address, key types.Hash, value uint256.Int) {
	m.get(addr).storage[key] = value
}

func (m *SimpleAccountView) RemoveStorage(addr types.Address, key types.Hash) {
	delete(m.get(addr).storage, key)
}

func (m *SimpleAccountView) Transfer(from, to types.Address, value *uint256.Int) error {
	src := m.get(from)
	if src.balance.Lt(value) {
		return ErrInsufficientBalance
	}
	src.balance.Sub(&src.balance, value)
	dst := m.get(to)
	dst.exists = true
	dst.balance.Add(&dst.balance, value)
	return nil
}

func (m *SimpleAccountView) IncrementNonce(addr types.Address) { m.get(addr).nonce++ }

func (m *SimpleAccountView) ClearBalance(addr types.Address) { m.get(addr).balance.Clear() }

func (m *SimpleAccountView) CreateAccount(addr types.Address) { m.get(addr).exists = true }

func (m *SimpleAccountView) SetCode(addr types.Address, code []byte) { m.SetCodeFor(addr, code) }

func (m *SimpleAccountView) Snapshot() int {
	snap := make(map[types.Address]*account, len(m.accounts))
	for k, v := range m.accounts {
		cp := *v
		cp.storage = make(map[types.Hash]uint256.Int, len(v.storage))
		for sk, sv := range v.storage {
			cp.storage[sk] = sv
		}
		snap[k] = &cp
	}
	m.snaps = append(m.snaps, snap)
	return len(m.snaps) - 1
}

func (m *SimpleAccountView) RevertToSnapshot(id int) {
	m.accounts = m.snaps[id]
	m.snaps = m.snaps[:id]
}

// SimpleBlockView is a fixed block/ancestor fixture for tests.
type SimpleBlockView struct {
	header    Header
	ancestors map[uint64]*Header
}

func (b *SimpleBlockView) GetBlockHeader() Header { return b.header }

func (b *SimpleBlockView) GetAncestorHeader(n uint64) *Header {
	if n == 0 || n > 256 {
		return nil
	}
	return b.ancestors[n]
}
