package vm

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestStackPushPop(t *testing.T) {
	st := newStack()
	a, b := uint256.NewInt(1), uint256.NewInt(2)
	st.push(a)
	st.push(b)
	if st.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", st.Len())
	}
	top := st.pop()
	if top.Uint64() != 2 {
		t.Fatalf("pop() = %d, want 2", top.Uint64())
	}
	if st.Len() != 1 {
		t.Fatalf("Len() after pop = %d, want 1", st.Len())
	}
}

func TestStackDupSwap(t *testing.T) {
	st := newStack()
	st.push(uint256.NewInt(1))
	st.push(uint256.NewInt(2))
	st.push(uint256.NewInt(3))

	st.dup(2) // duplicate the element one below top (value 2)
	if got := st.peek().Uint64(); got != 2 {
		t.Fatalf("after dup(2), top = %d, want 2", got)
	}

	st.swap(1) // exchange top (2) with the element below it (3)
	if got := st.peek().Uint64(); got != 3 {
		t.Fatalf("after swap(1), top = %d, want 3", got)
	}
}

func TestStackPeekAliasesTop(t *testing.T) {
	st := newStack()
	st.push(uint256.NewInt(7))
	p := st.peek()
	p.AddUint64(p, 1)
	if st.pop().Uint64() != 8 {
		t.Fatalf("peek() did not alias the top element")
	}
}
