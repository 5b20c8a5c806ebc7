package vm

import "github.com/holiman/uint256"

// gasMemoryExpansion returns the incremental cost of growing active memory
// from its current size up to memSize bytes (spec §4.4). memSize is already
// word-aligned by the caller (the interpreter loop, via an operation's
// memorySize). Returns 0 if memSize does not exceed the current high-water
// mark — memory only ever grows within a call.
func gasMemoryExpansion(f *Frame, memSize uint64) uint64 {
	if memSize == 0 {
		return 0
	}
	newWords := memSize / 32
	if newWords <= f.Memory.ActiveWords() {
		return 0
	}
	return memoryGasCost(newWords) - memoryGasCost(f.Memory.ActiveWords())
}

func gasExp(f *Frame, memorySize uint64) (uint64, error) {
	exp := f.Stack.back(1)
	b := exp.Bytes32()
	n := byteLen(b)
	return uint64(n) * f.Env.Config.ExpByteCost, nil
}

func gasKeccak256(f *Frame, memorySize uint64) (uint64, error) {
	length := f.Stack.back(1)
	cost := gasMemoryExpansion(f, memorySize)
	words := toWordSize(length.Uint64())
	return cost + 30 + 6*words, nil
}

func gasCopyWords(length uint64) uint64 {
	return 3 * toWordSize(length)
}

func gasCallDataCopy(f *Frame, memorySize uint64) (uint64, error) {
	length := f.Stack.back(2)
	return gasMemoryExpansion(f, memorySize) + gasCopyWords(length.Uint64()), nil
}

func gasCodeCopy(f *Frame, memorySize uint64) (uint64, error) {
	length := f.Stack.back(2)
	return gasMemoryExpansion(f, memorySize) + gasCopyWords(length.Uint64()), nil
}

func gasExtCodeCopy(f *Frame, memorySize uint64) (uint64, error) {
	length := f.Stack.back(3)
	return gasMemoryExpansion(f, memorySize) + f.Env.Config.ExtCodeCopyCost + gasCopyWords(length.Uint64()), nil
}

func gasReturnDataCopy(f *Frame, memorySize uint64) (uint64, error) {
	offset := f.Stack.back(1)
	length := f.Stack.back(2)
	var end uint256.Int
	_, overflow := end.AddOverflow(offset, length)
	if overflow || !end.IsUint64() || end.Uint64() > uint64(len(f.LastReturnData)) {
		return 0, ErrOutOfMemoryBounds
	}
	return gasMemoryExpansion(f, memorySize) + gasCopyWords(length.Uint64()), nil
}

func gasLog(n int) dynamicGasFunc {
	return func(f *Frame, memorySize uint64) (uint64, error) {
		length := f.Stack.back(1)
		cost := gasMemoryExpansion(f, memorySize)
		cost += GasLogTopic * uint64(n)
		cost += GasLogData * length.Uint64()
		return cost, nil
	}
}

// gasSstore implements both the legacy flat schedule and the EIP-1283/2200
// tuple-based schedule, selected by Config.EIP1283SstoreRefund (spec §4.4,
// §11 Open Question decision 2).
func gasSstore(f *Frame, memorySize uint64) (uint64, error) {
	key := f.Stack.back(0)
	newVal := f.Stack.back(1)

	addr := f.Env.Address
	keyHash := wordToHash(key)
	current, _ := f.Env.AccountView.GetStorage(addr, keyHash)

	if !f.Env.Config.EIP1283SstoreRefund {
		if current.IsZero() && !newVal.IsZero() {
			return GasSstoreSet, nil
		}
		if !current.IsZero() && newVal.IsZero() {
			f.Sub.Refund += int64(GasSstoreRefundLegacy)
		}
		return GasSstoreReset, nil
	}

	if current.Eq(newVal) {
		return sloadGasCost(f), nil
	}

	original, _ := f.Env.AccountView.GetInitialStorage(addr, keyHash)

	if original.Eq(&current) {
		if original.IsZero() {
			return GasSstoreSet, nil
		}
		if newVal.IsZero() {
			f.Sub.Refund += sstoreClearRefund()
		}
		return GasSstoreReset, nil
	}

	// Dirty slot: cost is always the warm-read tier; refunds correct for
	// the net effect relative to the original value (EIP-1283 reference
	// semantics).
	if !original.IsZero() {
		if current.IsZero() {
			f.Sub.Refund -= sstoreClearRefund()
		}
		if newVal.IsZero() {
			f.Sub.Refund += sstoreClearRefund()
		}
	}
	if original.Eq(newVal) {
		if original.IsZero() {
			f.Sub.Refund += int64(GasSstoreSet - sloadGasCost(f))
		} else {
			f.Sub.Refund += int64(GasSstoreReset - sloadGasCost(f))
		}
	}
	return sloadGasCost(f), nil
}

func sloadGasCost(f *Frame) uint64 {
	if f.Env.Config.SloadCost != 0 {
		return f.Env.Config.SloadCost
	}
	return GasSlowStep
}

// sstoreClearRefund is the EIP-1283/2200 refund for clearing a slot to
// zero. Istanbul (EIP-2200) keeps the same 15000 number Constantinople used.
func sstoreClearRefund() int64 {
	return int64(GasSstoreRefundLegacy)
}

func gasSload(f *Frame, memorySize uint64) (uint64, error) {
	return sloadGasCost(f), nil
}

func gasBalance(f *Frame, memorySize uint64) (uint64, error) {
	return f.Env.Config.BalanceCost, nil
}

func gasExtCodeSize(f *Frame, memorySize uint64) (uint64, error) {
	return f.Env.Config.BalanceCost, nil
}

func gasExtCodeHash(f *Frame, memorySize uint64) (uint64, error) {
	return f.Env.Config.BalanceCost, nil
}

// gasSelfDestruct charges the fork-dependent SELFDESTRUCT cost, which may
// depend on whether the beneficiary account must be newly created (spec
// §4.4).
func gasSelfDestruct(f *Frame, memorySize uint64) (uint64, error) {
	beneficiary := addressFromWord(f.Stack.back(0))
	newAccount := f.Env.Config.EmptyAccountValueTransfer &&
		!f.Env.AccountView.AccountExists(beneficiary) &&
		!f.Env.AccountView.GetBalance(f.Env.Address).IsZero()
	if f.Env.Config.SelfDestructCost == nil {
		return 0, nil
	}
	return f.Env.Config.SelfDestructCost(newAccount), nil
}

// gasCallFamily is shared by CALL/CALLCODE/DELEGATECALL/STATICCALL: base
// call_cost, the value-transfer surcharge (CALL and CALLCODE), the
// new-account surcharge (CALL only),
// memory expansion for the two data/return windows, and the EIP-150
// 63/64ths forwarding clamp which rewrites the stack's requested-gas value
// in place.
func gasCallFamily(hasValue, canCreateAccount bool) dynamicGasFunc {
	return func(f *Frame, memorySize uint64) (uint64, error) {
		cost := f.Env.Config.CallCost
		cost += gasMemoryExpansion(f, memorySize)

		var transfersValue bool
		if hasValue {
			value := f.Stack.back(2)
			transfersValue = !value.IsZero()
			if transfersValue {
				cost += CallValueTransferGas
			}
		}

		if canCreateAccount {
			addr := addressFromWord(f.Stack.back(1))
			empty := !f.Env.AccountView.AccountExists(addr)
			if f.Env.Config.EmptyAccountValueTransfer {
				empty = f.Env.AccountView.EmptyAccount(addr) && transfersValue
			}
			if empty {
				cost += CallNewAccountGas
			}
		}

		requested := f.Stack.back(0)
		var available uint64
		if f.Gas > cost {
			available = f.Gas - cost
		}
		chargedForward := clampForwardedGas(requested, available)
		childGas := chargedForward
		if transfersValue {
			childGas += CallStipend
		}
		requested.SetUint64(childGas)

		// The stipend is conjured for the child, not debited from the
		// caller (spec §4.4): only chargedForward is added to cost, so
		// f.Gas -= cost leaves exactly G-c-forwarded behind, matching
		// what opCall's f.Gas += outcome.GasLeft expects to refund into.
		return cost + chargedForward, nil
	}
}

// clampForwardedGas applies the EIP-150 "all but one 64th" rule: if the
// caller requested more gas than it can spare after paying the call's own
// cost, forward only 63/64ths of what remains (spec §4.4/§4.5 step 3).
func clampForwardedGas(requested *uint256.Int, available uint64) uint64 {
	if !requested.IsUint64() || requested.Uint64() > available {
		// floor(available * 63/64), computed without overflowing uint64.
		q, r := available/CallGasFraction, available%CallGasFraction
		return q*(CallGasFraction-1) + r*(CallGasFraction-1)/CallGasFraction
	}
	return requested.Uint64()
}

func gasCall(f *Frame, memorySize uint64) (uint64, error) {
	return gasCallFamily(true, true)(f, memorySize)
}

func gasCallCode(f *Frame, memorySize uint64) (uint64, error) {
	return gasCallFamily(true, false)(f, memorySize)
}

func gasDelegateCall(f *Frame, memorySize uint64) (uint64, error) {
	return gasCallFamily(false, false)(f, memorySize)
}

func gasStaticCall(f *Frame, memorySize uint64) (uint64, error) {
	return gasCallFamily(false, false)(f, memorySize)
}

// gasCreate and gasCreate2 charge memory expansion for the init-code window
// (CREATE2 additionally hashes that window at a per-word rate, folded in
// here since, unlike CALL, the hash happens before the child frame runs).
func gasCreate(f *Frame, memorySize uint64) (uint64, error) {
	return gasMemoryExpansion(f, memorySize), nil
}

func gasCreate2(f *Frame, memorySize uint64) (uint64, error) {
	length := f.Stack.back(2)
	return gasMemoryExpansion(f, memorySize) + 6*toWordSize(length.Uint64()), nil
}
