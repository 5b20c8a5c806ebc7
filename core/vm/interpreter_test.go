package vm

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/holiman/uint256"

	"github.com/mana-go/evmcore/core/types"
)

func newTestEnv(code []byte, cfg Config) *ExecEnv {
	view := NewSimpleAccountView()
	block := &SimpleBlockView{header: Header{Number: big.NewInt(1), Difficulty: big.NewInt(0)}}
	zero := new(uint256.Int)
	return &ExecEnv{
		Address:     types.BytesToAddress([]byte{0xaa}),
		Caller:      types.BytesToAddress([]byte{0xbb}),
		Origin:      types.BytesToAddress([]byte{0xbb}),
		GasPrice:    zero,
		Value:       zero,
		Input:       nil,
		Code:        code,
		Depth:       0,
		AccountView: view,
		BlockView:   block,
		Config:      cfg,
	}
}

func runCode(t *testing.T, code []byte, gas uint64) RunResult {
	t.Helper()
	in := NewInterpreter()
	return in.Run(gas, newTestEnv(code, IstanbulConfig()))
}

func TestAddMStoreReturn(t *testing.T) {
	code := []byte{
		byte(PUSH1), 3,
		byte(PUSH1), 5,
		byte(ADD),
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}
	result := runCode(t, code, 24)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	want := make([]byte, 32)
	want[31] = 8
	if !bytes.Equal(result.Output, want) {
		t.Fatalf("output = %x, want %x", result.Output, want)
	}
	if result.Gas != 0 {
		t.Fatalf("remaining gas = %d, want 0", result.Gas)
	}
}

func TestImplicitStop(t *testing.T) {
	code := []byte{byte(PUSH1), 3, byte(PUSH1), 5, byte(ADD)}
	result := runCode(t, code, 9)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Output) != 0 {
		t.Fatalf("output = %x, want empty", result.Output)
	}
	if result.Gas != 0 {
		t.Fatalf("remaining gas = %d, want 0", result.Gas)
	}
}

func TestStackUnderflowHalt(t *testing.T) {
	code := []byte{byte(ADD)}
	result := runCode(t, code, 5)
	if !errors.Is(result.Err, ErrStackUnderflow) {
		t.Fatalf("err = %v, want ErrStackUnderflow", result.Err)
	}
	if len(result.Output) != 0 {
		t.Fatalf("output = %x, want empty", result.Output)
	}
	if result.Gas != 0 {
		t.Fatalf("remaining gas = %d, want 0", result.Gas)
	}
}

func TestJumpToJumpdest(t *testing.T) {
	code := []byte{
		byte(PUSH1), 4,
		byte(JUMP),
		byte(INVALID),
		byte(JUMPDEST),
		byte(STOP),
	}
	result := runCode(t, code, 100)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if len(result.Output) != 0 {
		t.Fatalf("output = %x, want empty", result.Output)
	}
	if want := uint64(100 - (3 + 8 + 1)); result.Gas != want {
		t.Fatalf("remaining gas = %d, want %d", result.Gas, want)
	}
}

func TestJumpToNonDest(t *testing.T) {
	code := []byte{byte(PUSH1), 3, byte(JUMP), byte(STOP)}
	result := runCode(t, code, 100)
	if !errors.Is(result.Err, ErrInvalidJumpDestination) {
		t.Fatalf("err = %v, want ErrInvalidJumpDestination", result.Err)
	}
	if result.Gas != 0 {
		t.Fatalf("remaining gas = %d, want 0", result.Gas)
	}
}

func TestSstoreSloadRoundTrip(t *testing.T) {
	code := []byte{
		byte(PUSH1), 42,
		byte(PUSH1), 7,
		byte(SSTORE),
		byte(PUSH1), 7,
		byte(SLOAD),
		byte(PUSH1), 0,
		byte(MSTORE),
		byte(PUSH1), 32,
		byte(PUSH1), 0,
		byte(RETURN),
	}
	result := runCode(t, code, 100000)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	want := make([]byte, 32)
	want[31] = 42
	if !bytes.Equal(result.Output, want) {
		t.Fatalf("output = %x, want %x", result.Output, want)
	}
}
