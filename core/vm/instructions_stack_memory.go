package vm

import (
	"github.com/holiman/uint256"

	"github.com/mana-go/evmcore/core/types"
)

func opStop(f *Frame) ([]byte, error) {
	return nil, nil
}

func opPop(f *Frame) ([]byte, error) {
	f.Stack.pop()
	return nil, nil
}

func opMload(f *Frame) ([]byte, error) {
	offset := f.Stack.peek()
	data := f.Memory.Read(offset.Uint64(), 32)
	offset.SetBytes(data)
	return nil, nil
}

func opMstore(f *Frame) ([]byte, error) {
	offset, val := f.Stack.pop(), f.Stack.pop()
	f.Memory.Write32(offset.Uint64(), &val)
	return nil, nil
}

func opMstore8(f *Frame) ([]byte, error) {
	offset, val := f.Stack.pop(), f.Stack.pop()
	f.Memory.Write8(offset.Uint64(), &val)
	return nil, nil
}

func opSload(f *Frame) ([]byte, error) {
	key := f.Stack.peek()
	val, _ := f.Env.AccountView.GetStorage(f.Env.Address, wordToHash(key))
	key.Set(&val)
	return nil, nil
}

func opSstore(f *Frame) ([]byte, error) {
	key, val := f.Stack.pop(), f.Stack.pop()
	h := wordToHash(&key)
	if val.IsZero() {
		f.Env.AccountView.RemoveStorage(f.Env.Address, h)
	} else {
		f.Env.AccountView.PutStorage(f.Env.Address, h, val)
	}
	return nil, nil
}

// opJump and opJumpi validate the jump target against the frame's
// precomputed JUMPDEST set (spec §4.6 "JUMPI only branches ... validity of
// target is checked only in that case").
func opJump(f *Frame) ([]byte, error) {
	target := f.Stack.pop()
	if !target.IsUint64() {
		return nil, ErrInvalidJumpDestination
	}
	return nil, jumpTo(f, target.Uint64())
}

func opJumpi(f *Frame) ([]byte, error) {
	target, cond := f.Stack.pop(), f.Stack.pop()
	if cond.IsZero() {
		f.PC++
		return nil, nil
	}
	if !target.IsUint64() {
		return nil, ErrInvalidJumpDestination
	}
	return nil, jumpTo(f, target.Uint64())
}

func opPc(f *Frame) ([]byte, error) {
	var w uint256.Int
	w.SetUint64(f.PC)
	f.Stack.push(&w)
	return nil, nil
}

func opMsize(f *Frame) ([]byte, error) {
	var w uint256.Int
	w.SetUint64(uint64(f.Memory.Len()))
	f.Stack.push(&w)
	return nil, nil
}

func opGasOp(f *Frame) ([]byte, error) {
	var w uint256.Int
	w.SetUint64(f.Gas)
	f.Stack.push(&w)
	return nil, nil
}

func opJumpdest(f *Frame) ([]byte, error) {
	return nil, nil
}

// makePush returns the executionFunc for PUSH1..PUSH32: it reads n
// immediate bytes following the opcode and pushes them as a zero-padded
// word, then advances PC past the immediate itself (spec §4.5 step 6).
func makePush(n int) executionFunc {
	return func(f *Frame) ([]byte, error) {
		imm := codeGetImmediate(f.Env.Code, f.PC, n)
		var w uint256.Int
		w.SetBytes(imm)
		f.Stack.push(&w)
		f.PC += uint64(1 + n)
		return nil, nil
	}
}

// makeDup returns the executionFunc for DUPi: push a copy of the i-th
// element from the top, counting the current top as 1.
func makeDup(n int) executionFunc {
	return func(f *Frame) ([]byte, error) {
		f.Stack.dup(n)
		return nil, nil
	}
}

// makeSwap returns the executionFunc for SWAPi: exchange the top with the
// element i positions below it.
func makeSwap(n int) executionFunc {
	return func(f *Frame) ([]byte, error) {
		f.Stack.swap(n)
		return nil, nil
	}
}

// makeLog returns the executionFunc for LOGn: append {self, topics,
// memory[offset,length]} to the frame's sub-state (spec §4.6).
func makeLog(n int) executionFunc {
	return func(f *Frame) ([]byte, error) {
		offset, length := f.Stack.pop(), f.Stack.pop()
		topics := make([]types.Hash, n)
		for i := 0; i < n; i++ {
			t := f.Stack.pop()
			topics[i] = wordToHash(&t)
		}
		data := f.Memory.Read(offset.Uint64(), length.Uint64())
		f.Sub.AddLog(types.Log{Address: f.Env.Address, Topics: topics, Data: data})
		return nil, nil
	}
}
