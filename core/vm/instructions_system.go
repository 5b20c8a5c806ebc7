package vm

import (
	"github.com/holiman/uint256"
)

// CREATE(value, offset, length): derive the new address from sender and
// nonce, run init-code in a fresh frame, and on success install the
// returned code (spec §4.6).
func opCreate(f *Frame) ([]byte, error) {
	value, offset, length := f.Stack.pop(), f.Stack.pop(), f.Stack.pop()
	initCode := f.Memory.Read(offset.Uint64(), length.Uint64())

	nonce := f.Env.AccountView.GetNonce(f.Env.Address)
	newAddr := deriveCreateAddress(f.Env.Address, nonce)

	gas := f.Gas
	outcome := f.vm.Create(f, &value, initCode, newAddr, gas)
	f.Gas = outcome.GasLeft

	var pushed uint256.Int
	if outcome.Success {
		pushed.SetBytes(newAddr.Bytes())
	}
	f.Stack.push(&pushed)
	return nil, nil
}

// CREATE2(value, offset, length, salt): like CREATE but with a
// salt-deterministic address (spec §3/§4.6).
func opCreate2(f *Frame) ([]byte, error) {
	value, offset, length, salt := f.Stack.pop(), f.Stack.pop(), f.Stack.pop(), f.Stack.pop()
	initCode := f.Memory.Read(offset.Uint64(), length.Uint64())

	saltBytes := salt.Bytes32()
	newAddr := deriveCreate2Address(f.Env.Address, saltBytes, initCode)

	gas := f.Gas
	outcome := f.vm.Create(f, &value, initCode, newAddr, gas)
	f.Gas = outcome.GasLeft

	var pushed uint256.Int
	if outcome.Success {
		pushed.SetBytes(newAddr.Bytes())
	}
	f.Stack.push(&pushed)
	return nil, nil
}

func callFamily(kind CallKind, hasValue bool) executionFunc {
	return func(f *Frame) ([]byte, error) {
		gasW := f.Stack.pop()
		addrW := f.Stack.pop()

		var value uint256.Int
		if hasValue {
			value = f.Stack.pop()
		}

		argsOffset, argsLength := f.Stack.pop(), f.Stack.pop()
		outOffset, outLength := f.Stack.pop(), f.Stack.pop()

		recipient := addressFromWord(&addrW)
		sender := f.Env.Address
		codeOwner := recipient

		input := f.Memory.Read(argsOffset.Uint64(), argsLength.Uint64())

		outcome := f.vm.MessageCall(f, CallRequest{
			Kind:      kind,
			Sender:    sender,
			Recipient: recipient,
			CodeOwner: codeOwner,
			Value:     &value,
			Gas:       gasW.Uint64(),
			Input:     input,
			OutOffset: outOffset.Uint64(),
			OutSize:   outLength.Uint64(),
		})
		f.Gas += outcome.GasLeft

		var pushed uint256.Int
		if outcome.Success {
			pushed.SetOne()
		}
		f.Stack.push(&pushed)
		return nil, nil
	}
}

func opCall(f *Frame) ([]byte, error)         { return callFamily(CallKindCall, true)(f) }
func opCallCode(f *Frame) ([]byte, error)     { return callFamily(CallKindCallCode, true)(f) }
func opDelegateCall(f *Frame) ([]byte, error) { return callFamily(CallKindDelegateCall, false)(f) }
func opStaticCall(f *Frame) ([]byte, error)   { return callFamily(CallKindStaticCall, false)(f) }

func opReturn(f *Frame) ([]byte, error) {
	offset, length := f.Stack.pop(), f.Stack.pop()
	return f.Memory.Read(offset.Uint64(), length.Uint64()), nil
}

func opRevert(f *Frame) ([]byte, error) {
	offset, length := f.Stack.pop(), f.Stack.pop()
	return f.Memory.Read(offset.Uint64(), length.Uint64()), ErrExecutionReverted
}

// SELFDESTRUCT(beneficiary): transfer the entire balance to beneficiary and
// mark self for destruction at the end of the enclosing transaction (spec
// §4.6). Destruction itself — removing the account from state — is the
// block/transaction pipeline's concern (spec §1); the core only records the
// intent in sub-state.
func opSelfDestruct(f *Frame) ([]byte, error) {
	beneficiaryW := f.Stack.pop()
	beneficiary := addressFromWord(&beneficiaryW)
	balance := f.Env.AccountView.GetBalance(f.Env.Address)
	if !balance.IsZero() {
		_ = f.Env.AccountView.Transfer(f.Env.Address, beneficiary, balance)
	}
	f.Env.AccountView.ClearBalance(f.Env.Address)
	if !f.Sub.QueueSelfDestruct(f.Env.Address) {
		f.Sub.Refund += int64(GasSelfdestructRefund)
	}
	f.Sub.Touch(beneficiary)
	return nil, nil
}
