package vm

import "github.com/holiman/uint256"

// calcMemSize64 computes offset+length for a memory-touching operation,
// reporting overflow if the sum does not fit in a uint64 (spec §4.2). A
// zero length never requires memory and is reported as size 0.
func calcMemSize64(offset, length *uint256.Int) (uint64, bool) {
	if length.IsZero() {
		return 0, false
	}
	if !length.IsUint64() {
		return 0, true
	}
	var end uint256.Int
	if _, overflow := end.AddOverflow(offset, length); overflow {
		return 0, true
	}
	if !end.IsUint64() {
		return 0, true
	}
	return end.Uint64(), false
}

func memorySize1(argOffset int) memorySizeFunc {
	return func(stack *Stack) (uint64, bool) {
		offset := stack.back(argOffset)
		if !offset.IsUint64() {
			return 0, true
		}
		return offset.Uint64() + 32, false
	}
}

func memorySizeByte(argOffset int) memorySizeFunc {
	return func(stack *Stack) (uint64, bool) {
		offset := stack.back(argOffset)
		if !offset.IsUint64() {
			return 0, true
		}
		return offset.Uint64() + 1, false
	}
}

func memoryOffsetLength(offsetIdx, lengthIdx int) memorySizeFunc {
	return func(stack *Stack) (uint64, bool) {
		return calcMemSize64(stack.back(offsetIdx), stack.back(lengthIdx))
	}
}

func memoryCallWindows(argsOffsetIdx, argsLenIdx, retOffsetIdx, retLenIdx int) memorySizeFunc {
	return func(stack *Stack) (uint64, bool) {
		argsEnd, overflow := calcMemSize64(stack.back(argsOffsetIdx), stack.back(argsLenIdx))
		if overflow {
			return 0, true
		}
		retEnd, overflow := calcMemSize64(stack.back(retOffsetIdx), stack.back(retLenIdx))
		if overflow {
			return 0, true
		}
		if argsEnd > retEnd {
			return argsEnd, false
		}
		return retEnd, false
	}
}

// newJumpTable builds the single canonical opcode table (spec §9 design
// note). Fork gating is resolved per-dispatch via each entry's available
// closure rather than by constructing one table per hardfork.
func newJumpTable() JumpTable {
	var tbl JumpTable

	tbl[STOP] = &operation{execute: opStop, constantGas: GasZero, halts: true}

	tbl[ADD] = &operation{execute: opAdd, constantGas: GasFastestStep, inputs: 2, outputs: 1}
	tbl[MUL] = &operation{execute: opMul, constantGas: GasFastStep, inputs: 2, outputs: 1}
	tbl[SUB] = &operation{execute: opSub, constantGas: GasFastestStep, inputs: 2, outputs: 1}
	tbl[DIV] = &operation{execute: opDiv, constantGas: GasFastStep, inputs: 2, outputs: 1}
	tbl[SDIV] = &operation{execute: opSdiv, constantGas: GasFastStep, inputs: 2, outputs: 1}
	tbl[MOD] = &operation{execute: opMod, constantGas: GasFastStep, inputs: 2, outputs: 1}
	tbl[SMOD] = &operation{execute: opSmod, constantGas: GasFastStep, inputs: 2, outputs: 1}
	tbl[ADDMOD] = &operation{execute: opAddMod, constantGas: GasMidStep, inputs: 3, outputs: 1}
	tbl[MULMOD] = &operation{execute: opMulMod, constantGas: GasMidStep, inputs: 3, outputs: 1}
	tbl[EXP] = &operation{execute: opExp, constantGas: GasSlowStep, dynamicGas: gasExp, inputs: 2, outputs: 1}
	tbl[SIGNEXTEND] = &operation{execute: opSignExtend, constantGas: GasFastStep, inputs: 2, outputs: 1}

	tbl[LT] = &operation{execute: opLt, constantGas: GasFastestStep, inputs: 2, outputs: 1}
	tbl[GT] = &operation{execute: opGt, constantGas: GasFastestStep, inputs: 2, outputs: 1}
	tbl[SLT] = &operation{execute: opSlt, constantGas: GasFastestStep, inputs: 2, outputs: 1}
	tbl[SGT] = &operation{execute: opSgt, constantGas: GasFastestStep, inputs: 2, outputs: 1}
	tbl[EQ] = &operation{execute: opEq, constantGas: GasFastestStep, inputs: 2, outputs: 1}
	tbl[ISZERO] = &operation{execute: opIsZero, constantGas: GasFastestStep, inputs: 1, outputs: 1}
	tbl[AND] = &operation{execute: opAnd, constantGas: GasFastestStep, inputs: 2, outputs: 1}
	tbl[OR] = &operation{execute: opOr, constantGas: GasFastestStep, inputs: 2, outputs: 1}
	tbl[XOR] = &operation{execute: opXor, constantGas: GasFastestStep, inputs: 2, outputs: 1}
	tbl[NOT] = &operation{execute: opNot, constantGas: GasFastestStep, inputs: 1, outputs: 1}
	tbl[BYTE] = &operation{execute: opByte, constantGas: GasFastestStep, inputs: 2, outputs: 1}
	tbl[SHL] = &operation{execute: opShl, constantGas: GasFastestStep, inputs: 2, outputs: 1, available: hasShiftOps}
	tbl[SHR] = &operation{execute: opShr, constantGas: GasFastestStep, inputs: 2, outputs: 1, available: hasShiftOps}
	tbl[SAR] = &operation{execute: opSar, constantGas: GasFastestStep, inputs: 2, outputs: 1, available: hasShiftOps}

	tbl[KECCAK256] = &operation{execute: opKeccak256, dynamicGas: gasKeccak256, inputs: 2, outputs: 1, memorySize: memoryOffsetLength(0, 1)}

	tbl[ADDRESS] = &operation{execute: opAddress, constantGas: GasQuickStep, outputs: 1}
	tbl[BALANCE] = &operation{execute: opBalance, dynamicGas: gasBalance, inputs: 1, outputs: 1}
	tbl[ORIGIN] = &operation{execute: opOrigin, constantGas: GasQuickStep, outputs: 1}
	tbl[CALLER] = &operation{execute: opCaller, constantGas: GasQuickStep, outputs: 1}
	tbl[CALLVALUE] = &operation{execute: opCallValue, constantGas: GasQuickStep, outputs: 1}
	tbl[CALLDATALOAD] = &operation{execute: opCallDataLoad, constantGas: GasFastestStep, inputs: 1, outputs: 1}
	tbl[CALLDATASIZE] = &operation{execute: opCallDataSize, constantGas: GasQuickStep, outputs: 1}
	tbl[CALLDATACOPY] = &operation{execute: opCallDataCopy, constantGas: GasFastestStep, dynamicGas: gasCallDataCopy, inputs: 3, memorySize: memoryOffsetLength(0, 2)}
	tbl[CODESIZE] = &operation{execute: opCodeSize, constantGas: GasQuickStep, outputs: 1}
	tbl[CODECOPY] = &operation{execute: opCodeCopy, constantGas: GasFastestStep, dynamicGas: gasCodeCopy, inputs: 3, memorySize: memoryOffsetLength(0, 2)}
	tbl[GASPRICE] = &operation{execute: opGasPrice, constantGas: GasQuickStep, outputs: 1}
	tbl[EXTCODESIZE] = &operation{execute: opExtCodeSize, dynamicGas: gasExtCodeSize, inputs: 1, outputs: 1}
	tbl[EXTCODECOPY] = &operation{execute: opExtCodeCopy, dynamicGas: gasExtCodeCopy, inputs: 4, memorySize: memoryOffsetLength(1, 3)}
	tbl[RETURNDATASIZE] = &operation{execute: opReturnDataSize, constantGas: GasQuickStep, outputs: 1, available: hasReturnData}
	tbl[RETURNDATACOPY] = &operation{execute: opReturnDataCopy, constantGas: GasFastestStep, dynamicGas: gasReturnDataCopy, inputs: 3, memorySize: memoryOffsetLength(0, 2), available: hasReturnData}
	tbl[EXTCODEHASH] = &operation{execute: opExtCodeHash, dynamicGas: gasExtCodeHash, inputs: 1, outputs: 1, available: hasExtCodeHash}

	tbl[BLOCKHASH] = &operation{execute: opBlockHash, constantGas: GasBlockhash, inputs: 1, outputs: 1}
	tbl[COINBASE] = &operation{execute: opCoinbase, constantGas: GasQuickStep, outputs: 1}
	tbl[TIMESTAMP] = &operation{execute: opTimestamp, constantGas: GasQuickStep, outputs: 1}
	tbl[NUMBER] = &operation{execute: opNumber, constantGas: GasQuickStep, outputs: 1}
	tbl[DIFFICULTY] = &operation{execute: opDifficulty, constantGas: GasQuickStep, outputs: 1}
	tbl[GASLIMIT] = &operation{execute: opGasLimit, constantGas: GasQuickStep, outputs: 1}

	tbl[POP] = &operation{execute: opPop, constantGas: GasQuickStep, inputs: 1}
	tbl[MLOAD] = &operation{execute: opMload, constantGas: GasFastestStep, dynamicGas: gasMemoryExpansionOnly, inputs: 1, outputs: 1, memorySize: memorySize1(0)}
	tbl[MSTORE] = &operation{execute: opMstore, constantGas: GasFastestStep, dynamicGas: gasMemoryExpansionOnly, inputs: 2, memorySize: memorySize1(0)}
	tbl[MSTORE8] = &operation{execute: opMstore8, constantGas: GasFastestStep, dynamicGas: gasMemoryExpansionByte, inputs: 2, memorySize: memorySizeByte(0)}
	tbl[SLOAD] = &operation{execute: opSload, dynamicGas: gasSload, inputs: 1, outputs: 1}
	tbl[SSTORE] = &operation{execute: opSstore, dynamicGas: gasSstore, inputs: 2, writes: true}
	tbl[JUMP] = &operation{execute: opJump, constantGas: GasMidStep, inputs: 1, jumps: true}
	tbl[JUMPI] = &operation{execute: opJumpi, constantGas: GasSlowStep, inputs: 2, jumps: true}
	tbl[PC] = &operation{execute: opPc, constantGas: GasQuickStep, outputs: 1}
	tbl[MSIZE] = &operation{execute: opMsize, constantGas: GasQuickStep, outputs: 1}
	tbl[GAS] = &operation{execute: opGasOp, constantGas: GasQuickStep, outputs: 1}
	tbl[JUMPDEST] = &operation{execute: opJumpdest, constantGas: GasJumpDest}

	for i := 0; i < 32; i++ {
		n := i + 1
		tbl[PUSH1+OpCode(i)] = &operation{execute: makePush(n), constantGas: GasFastestStep, outputs: 1, jumps: true}
	}
	for i := 1; i <= 16; i++ {
		n := i
		tbl[DUP1+OpCode(i-1)] = &operation{execute: makeDup(n), constantGas: GasFastestStep, inputs: n, outputs: n + 1}
		tbl[SWAP1+OpCode(i-1)] = &operation{execute: makeSwap(n), constantGas: GasFastestStep, inputs: n + 1, outputs: n + 1}
	}
	for i := 0; i <= 4; i++ {
		n := i
		tbl[LOG0+OpCode(i)] = &operation{
			execute:     makeLog(n),
			constantGas: GasLogTopic,
			dynamicGas:  gasLog(n),
			inputs:      2 + n,
			memorySize:  memoryOffsetLength(0, 1),
			writes:      true,
		}
	}

	tbl[CREATE] = &operation{execute: opCreate, constantGas: GasCreate, dynamicGas: gasCreate, inputs: 3, outputs: 1, memorySize: memoryOffsetLength(1, 2), writes: true}
	tbl[CALL] = &operation{execute: opCall, dynamicGas: gasCall, inputs: 7, outputs: 1, memorySize: memoryCallWindows(3, 4, 5, 6)}
	tbl[CALLCODE] = &operation{execute: opCallCode, dynamicGas: gasCallCode, inputs: 7, outputs: 1, memorySize: memoryCallWindows(3, 4, 5, 6)}
	tbl[RETURN] = &operation{execute: opReturn, dynamicGas: gasMemoryExpansionOnly, inputs: 2, memorySize: memoryOffsetLength(0, 1), halts: true}
	tbl[DELEGATECALL] = &operation{execute: opDelegateCall, dynamicGas: gasDelegateCall, inputs: 6, outputs: 1, memorySize: memoryCallWindows(2, 3, 4, 5), available: hasDelegateCall}
	tbl[CREATE2] = &operation{execute: opCreate2, constantGas: GasCreate, dynamicGas: gasCreate2, inputs: 4, outputs: 1, memorySize: memoryOffsetLength(1, 2), writes: true, available: hasCreate2}
	tbl[STATICCALL] = &operation{execute: opStaticCall, dynamicGas: gasStaticCall, inputs: 6, outputs: 1, memorySize: memoryCallWindows(2, 3, 4, 5), available: hasStaticCall}
	tbl[REVERT] = &operation{execute: opRevert, dynamicGas: gasMemoryExpansionOnly, inputs: 2, memorySize: memoryOffsetLength(0, 1), halts: true, available: hasRevert}
	tbl[INVALID] = nil
	tbl[SELFDESTRUCT] = &operation{execute: opSelfDestruct, dynamicGas: gasSelfDestruct, inputs: 1, halts: true, writes: true}

	return tbl
}

func gasMemoryExpansionOnly(f *Frame, memorySize uint64) (uint64, error) {
	return gasMemoryExpansion(f, memorySize), nil
}

func gasMemoryExpansionByte(f *Frame, memorySize uint64) (uint64, error) {
	return gasMemoryExpansion(f, memorySize), nil
}

func hasShiftOps(cfg Config) bool    { return cfg.HasShiftOps }
func hasReturnData(cfg Config) bool  { return cfg.HasReturnData }
func hasExtCodeHash(cfg Config) bool { return cfg.HasExtCodeHash }
func hasDelegateCall(cfg Config) bool { return cfg.HasDelegateCall }
func hasCreate2(cfg Config) bool     { return cfg.HasCreate2 }
func hasStaticCall(cfg Config) bool  { return cfg.HasStaticCall }
func hasRevert(cfg Config) bool      { return cfg.HasRevert }
