package vm

import (
	"github.com/holiman/uint256"

	"github.com/mana-go/evmcore/core/types"
)

// ExecEnv is the immutable (for the duration of one call frame) execution
// environment: code, identity, value, call data, depth/static flags, and
// references to the account/block views and fork config (spec §3/§4.7).
// AccountView is the one field that is not semantically immutable — it
// reflects writes committed by nested sub-calls that returned successfully.
type ExecEnv struct {
	Address types.Address // callee (code owner's storage address for CALL/STATICCALL/CREATE)
	Caller  types.Address
	Origin  types.Address

	GasPrice *uint256.Int
	Input    []byte
	Value    *uint256.Int
	Code     []byte
	CodeHash types.Hash

	Depth  int
	Static bool

	AccountView AccountView
	BlockView   BlockView
	Config      Config
}
