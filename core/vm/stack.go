package vm

import "github.com/holiman/uint256"

// stackLimit is the maximum number of items the operand stack may hold at
// any point during execution (spec §3/§4.1).
const stackLimit = 1024

// Stack is the EVM operand stack: a bounded LIFO of 256-bit words. The head
// of data is the top of the stack.
type Stack struct {
	data []uint256.Int
}

// newStack returns a new, empty stack with a small pre-allocated backing
// array — most EVM programs never come close to the 1024 limit.
func newStack() *Stack {
	return &Stack{data: make([]uint256.Int, 0, 16)}
}

// Len returns the current number of items on the stack.
func (st *Stack) Len() int { return len(st.data) }

// push pushes val onto the stack. The caller (the interpreter loop) is
// responsible for the stackLimit check via the operation's inputs/outputs;
// push itself never fails.
func (st *Stack) push(val *uint256.Int) {
	st.data = append(st.data, *val)
}

// pop removes and returns the top element.
func (st *Stack) pop() uint256.Int {
	v := st.data[len(st.data)-1]
	st.data = st.data[:len(st.data)-1]
	return v
}

// peek returns a pointer to the top element without removing it.
func (st *Stack) peek() *uint256.Int {
	return &st.data[len(st.data)-1]
}

// back returns a pointer to the n-th element from the top (0 = top).
func (st *Stack) back(n int) *uint256.Int {
	return &st.data[len(st.data)-1-n]
}

// swap exchanges the top element with the element n positions below it
// (n = 1..16, per SWAP1..SWAP16).
func (st *Stack) swap(n int) {
	top := len(st.data) - 1
	st.data[top], st.data[top-n] = st.data[top-n], st.data[top]
}

// dup pushes a copy of the element n positions from the top, counting the
// current top as position 1 (n = 1..16, per DUP1..DUP16).
func (st *Stack) dup(n int) {
	st.data = append(st.data, st.data[len(st.data)-n])
}

// data exposes the underlying slice (bottom to top) for tracers/tests.
func (st *Stack) Data() []uint256.Int { return st.data }
