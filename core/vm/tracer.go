package vm

import "github.com/holiman/uint256"

// EVMLogger observes the interpreter's step loop one opcode at a time
// (spec §4.5 step loop; SPEC_FULL.md §10 supplemented feature). It is
// scoped to the two calls runFrame itself needs — a successful dispatch
// and a halting one — rather than the teacher's full CaptureStart/End
// pair, since start/end framing belongs to whatever drives Run, not to
// the frame loop.
type EVMLogger interface {
	// CaptureState is invoked immediately before an opcode executes, once
	// its gas has been charged.
	CaptureState(pc uint64, op OpCode, gas, cost uint64, stack *Stack, memory *Memory, depth int)
	// CaptureFault is invoked in place of CaptureState when dispatch itself
	// halted exceptionally (stack underflow, out of gas, and so on) before
	// the opcode's executionFunc ran.
	CaptureFault(pc uint64, op OpCode, gas, cost uint64, depth int, err error)
}

// StructLogEntry is one recorded step.
type StructLogEntry struct {
	Pc      uint64
	Op      OpCode
	Gas     uint64
	GasCost uint64
	Depth   int
	Stack   []uint256.Int
	Err     error
}

// StructLogTracer accumulates a full step trace in memory — the
// "structured logging" tracer every geth-style EVM ships alongside the
// interpreter for debugging and conformance testing.
type StructLogTracer struct {
	Logs []StructLogEntry
}

// NewStructLogTracer returns an empty StructLogTracer.
func NewStructLogTracer() *StructLogTracer {
	return &StructLogTracer{}
}

func (t *StructLogTracer) CaptureState(pc uint64, op OpCode, gas, cost uint64, stack *Stack, memory *Memory, depth int) {
	t.Logs = append(t.Logs, StructLogEntry{
		Pc:      pc,
		Op:      op,
		Gas:     gas,
		GasCost: cost,
		Depth:   depth,
		Stack:   copyStackData(stack),
	})
}

func (t *StructLogTracer) CaptureFault(pc uint64, op OpCode, gas, cost uint64, depth int, err error) {
	t.Logs = append(t.Logs, StructLogEntry{
		Pc:      pc,
		Op:      op,
		Gas:     gas,
		GasCost: cost,
		Depth:   depth,
		Err:     err,
	})
}

// copyStackData snapshots the stack so later mutation can't alias an
// already-recorded step.
func copyStackData(stack *Stack) []uint256.Int {
	data := stack.Data()
	out := make([]uint256.Int, len(data))
	copy(out, data)
	return out
}
