package vm

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"

	"github.com/mana-go/evmcore/core/types"
)

// CallKind identifies which of the four CALL-family opcodes is invoking
// MessageCall, since each rewrites ExecEnv's identity fields differently
// (spec §4.7).
type CallKind int

const (
	CallKindCall CallKind = iota
	CallKindCallCode
	CallKindDelegateCall
	CallKindStaticCall
)

// CallRequest bundles MessageCall's inputs (spec §4.7).
type CallRequest struct {
	Kind       CallKind
	Sender     types.Address
	Recipient  types.Address
	CodeOwner  types.Address
	Value      *uint256.Int
	Gas        uint64
	Input      []byte
	OutOffset  uint64
	OutSize    uint64
}

// CallOutcome is what MessageCall reports back to the opcode that invoked it.
type CallOutcome struct {
	Success  bool
	GasLeft  uint64
	Output   []byte
	Reverted bool
}

// MessageCall implements spec §4.7: pre-checks, child ExecEnv construction,
// sub-interpreter or precompile dispatch, and outcome merging.
func (in *Interpreter) MessageCall(f *Frame, req CallRequest) CallOutcome {
	if f.Env.Depth+1 > MaxCallDepth {
		if req.CodeOwner == ripemd160Address {
			f.Sub.Touch(req.Recipient)
		}
		f.LastReturnData = nil
		return CallOutcome{}
	}
	if (req.Kind == CallKindCall || req.Kind == CallKindCallCode) && !req.Value.IsZero() {
		if f.Env.AccountView.GetBalance(req.Sender).Lt(req.Value) {
			if req.CodeOwner == ripemd160Address {
				f.Sub.Touch(req.Recipient)
			}
			f.LastReturnData = nil
			return CallOutcome{}
		}
	}

	snapshot := f.Env.AccountView.Snapshot()

	if req.Kind == CallKindCall && req.Recipient != f.Env.Address && !req.Value.IsZero() {
		if err := f.Env.AccountView.Transfer(req.Sender, req.Recipient, req.Value); err != nil {
			f.Env.AccountView.RevertToSnapshot(snapshot)
			f.LastReturnData = nil
			return CallOutcome{}
		}
	}

	childEnv := &ExecEnv{
		Caller:      req.Sender,
		Origin:      f.Env.Origin,
		GasPrice:    f.Env.GasPrice,
		Input:       req.Input,
		Code:        f.Env.AccountView.GetCode(req.CodeOwner),
		CodeHash:    f.Env.AccountView.GetCodeHash(req.CodeOwner),
		Depth:       f.Env.Depth + 1,
		Static:      f.Env.Static || req.Kind == CallKindStaticCall,
		AccountView: f.Env.AccountView,
		BlockView:   f.Env.BlockView,
		Config:      f.Env.Config,
	}
	switch req.Kind {
	case CallKindDelegateCall:
		childEnv.Address = f.Env.Address
		childEnv.Caller = f.Env.Caller
		childEnv.Value = f.Env.Value
	case CallKindCallCode:
		childEnv.Address = f.Env.Address
		childEnv.Value = req.Value
	default:
		childEnv.Address = req.Recipient
		childEnv.Value = req.Value
	}

	var result RunResult
	if pre, ok := lookupPrecompile(req.CodeOwner, f.Env.Config); ok {
		result = runPrecompile(pre, req.Input, req.Gas)
	} else {
		result = in.Run(req.Gas, childEnv)
	}

	f.Sub.Touch(req.Recipient)

	switch {
	case result.Err != nil && !result.Reverted:
		f.Env.AccountView.RevertToSnapshot(snapshot)
		return CallOutcome{GasLeft: 0}
	case result.Reverted:
		f.Env.AccountView.RevertToSnapshot(snapshot)
		f.Memory.Write(req.OutOffset, fitTo(result.Output, req.OutSize))
		f.LastReturnData = result.Output
		return CallOutcome{GasLeft: result.Gas, Output: result.Output, Reverted: true}
	default:
		f.Memory.Write(req.OutOffset, fitTo(result.Output, req.OutSize))
		f.LastReturnData = result.Output
		f.Sub.Merge(result.Sub)
		return CallOutcome{Success: true, GasLeft: result.Gas, Output: result.Output}
	}
}

// fitTo truncates or zero-pads data to exactly size bytes, the write
// discipline for copying call output into the caller's memory window
// (spec §4.7).
func fitTo(data []byte, size uint64) []byte {
	out := make([]byte, size)
	copy(out, data)
	return out
}

// deriveCreateAddress computes the CREATE address: the low 20 bytes of
// keccak256(rlp([sender, nonce])) (spec §3).
func deriveCreateAddress(sender types.Address, nonce uint64) types.Address {
	data, _ := rlp.EncodeToBytes([]interface{}{sender.Bytes(), nonce})
	return types.BytesToAddress(crypto.Keccak256(data)[12:])
}

// deriveCreate2Address computes the CREATE2 address: the low 20 bytes of
// keccak256(0xff || sender || salt || keccak256(initcode)) (spec §3).
func deriveCreate2Address(sender types.Address, salt [32]byte, initCode []byte) types.Address {
	codeHash := crypto.Keccak256(initCode)
	buf := make([]byte, 0, 1+20+32+32)
	buf = append(buf, 0xff)
	buf = append(buf, sender.Bytes()...)
	buf = append(buf, salt[:]...)
	buf = append(buf, codeHash...)
	return types.BytesToAddress(crypto.Keccak256(buf)[12:])
}

// CreateOutcome is what a CREATE/CREATE2 execution reports to the opcode.
type CreateOutcome struct {
	Success bool
	Address types.Address
	GasLeft uint64
}

// Create implements the CREATE/CREATE2 sub-VM invocation at newAddr (derived
// by the calling opcode): transfer value, run init-code in a fresh frame, and on success
// charge GasCreateDataByte per deployed byte and install the code (spec
// §4.6).
func (in *Interpreter) Create(f *Frame, value *uint256.Int, initCode []byte, newAddr types.Address, gas uint64) CreateOutcome {
	if f.Env.Depth+1 > MaxCallDepth {
		return CreateOutcome{}
	}
	if f.Env.AccountView.GetBalance(f.Env.Address).Lt(value) {
		return CreateOutcome{}
	}
	if f.Env.AccountView.AccountExists(newAddr) && !f.Env.AccountView.EmptyAccount(newAddr) {
		return CreateOutcome{}
	}

	snapshot := f.Env.AccountView.Snapshot()

	f.Env.AccountView.CreateAccount(newAddr)
	f.Env.AccountView.IncrementNonce(newAddr)
	if !value.IsZero() {
		if err := f.Env.AccountView.Transfer(f.Env.Address, newAddr, value); err != nil {
			f.Env.AccountView.RevertToSnapshot(snapshot)
			return CreateOutcome{}
		}
	}

	childEnv := &ExecEnv{
		Address:     newAddr,
		Caller:      f.Env.Address,
		Origin:      f.Env.Origin,
		GasPrice:    f.Env.GasPrice,
		Value:       value,
		Code:        initCode,
		Depth:       f.Env.Depth + 1,
		Static:      false,
		AccountView: f.Env.AccountView,
		BlockView:   f.Env.BlockView,
		Config:      f.Env.Config,
	}

	result := in.Run(gas, childEnv)
	if result.Err != nil || result.Reverted {
		f.Env.AccountView.RevertToSnapshot(snapshot)
		f.LastReturnData = result.Output
		return CreateOutcome{GasLeft: 0}
	}

	code := result.Output
	if f.Env.Config.MaxCodeSize > 0 && len(code) > f.Env.Config.MaxCodeSize {
		f.Env.AccountView.RevertToSnapshot(snapshot)
		return CreateOutcome{GasLeft: 0}
	}
	codeCost := uint64(len(code)) * GasCreateDataByte
	if result.Gas < codeCost {
		f.Env.AccountView.RevertToSnapshot(snapshot)
		return CreateOutcome{GasLeft: 0}
	}
	f.Env.AccountView.SetCode(newAddr, code)
	f.Sub.Merge(result.Sub)
	f.Sub.Touch(newAddr)
	f.LastReturnData = nil

	return CreateOutcome{Success: true, Address: newAddr, GasLeft: result.Gas - codeCost}
}
