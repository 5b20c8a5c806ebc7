package vm

// jumpdestAnalysis scans code left-to-right, skipping PUSH immediates, and
// returns the set of byte offsets that are valid JUMP/JUMPI targets — i.e.
// offsets holding a JUMPDEST that is reached as an actual instruction
// boundary, not as a PUSH immediate byte that happens to equal 0x5b
// (spec §4.3).
func jumpdestAnalysis(code []byte) map[uint64]struct{} {
	dests := make(map[uint64]struct{})
	for pc := uint64(0); pc < uint64(len(code)); {
		op := OpCode(code[pc])
		if op == JUMPDEST {
			dests[pc] = struct{}{}
			pc++
			continue
		}
		if op.IsPush() {
			pc += uint64(op.PushSize()) + 1
			continue
		}
		pc++
	}
	return dests
}

// codeGetOp returns the opcode byte at pc, or STOP (0x00) if pc is past the
// end of code — the conventional "ran off the end of the program" case,
// equivalent to an implicit STOP (spec §8 scenario 2).
func codeGetOp(code []byte, pc uint64) OpCode {
	if pc >= uint64(len(code)) {
		return STOP
	}
	return OpCode(code[pc])
}

// codeGetImmediate returns the n bytes immediately following a PUSH
// opcode at pc, zero-padded if code ends before n bytes are available
// (spec §4.3).
func codeGetImmediate(code []byte, pc uint64, n int) []byte {
	return ReadZeroed(code, pc+1, uint64(n))
}
