package vm

import (
	"bytes"
	"testing"

	"github.com/mana-go/evmcore/core/types"
)

func TestLookupPrecompileAlwaysOn(t *testing.T) {
	cfg := FrontierConfig()
	for i := byte(1); i <= 4; i++ {
		if _, ok := lookupPrecompile(types.BytesToAddress([]byte{i}), cfg); !ok {
			t.Errorf("address 0x%02x not available under FrontierConfig", i)
		}
	}
	if _, ok := lookupPrecompile(types.BytesToAddress([]byte{5}), cfg); ok {
		t.Errorf("modexp (0x05) available before Byzantium")
	}
}

func TestLookupPrecompileForkGated(t *testing.T) {
	cfg := ByzantiumConfig()
	for i := byte(5); i <= 8; i++ {
		if _, ok := lookupPrecompile(types.BytesToAddress([]byte{i}), cfg); !ok {
			t.Errorf("address 0x%02x not available under ByzantiumConfig", i)
		}
	}
}

func TestIdentityPrecompile(t *testing.T) {
	p := &identity{}
	input := []byte("hello world")
	out, err := p.Run(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Fatalf("identity output = %x, want %x", out, input)
	}
	if got := p.RequiredGas(input); got != GasIdentityBase+GasIdentityWord*1 {
		t.Fatalf("RequiredGas(11 bytes) = %d, want %d", got, GasIdentityBase+GasIdentityWord)
	}
}

func TestSha256Precompile(t *testing.T) {
	p := &sha256hash{}
	if got := p.RequiredGas(make([]byte, 40)); got != GasSha256Base+GasSha256Word*2 {
		t.Fatalf("RequiredGas(40 bytes) = %d, want %d", got, GasSha256Base+GasSha256Word*2)
	}
}

func TestRipemd160Precompile(t *testing.T) {
	p := &ripemd160hash{}
	out, err := p.Run([]byte("abc"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 32 {
		t.Fatalf("ripemd160 output length = %d, want 32 (left-padded)", len(out))
	}
	for _, b := range out[:12] {
		if b != 0 {
			t.Fatalf("ripemd160 output not left-padded with zeros: %x", out)
		}
	}
}

func TestEcrecoverRejectsMalformedV(t *testing.T) {
	p := &ecrecover{}
	input := make([]byte, 128)
	input[63] = 26 // v = 26, neither 27 nor 28
	out, err := p.Run(input)
	if err != nil {
		t.Fatalf("invalid input must not be a Go error, got %v", err)
	}
	if out != nil {
		t.Fatalf("invalid v must yield nil output, got %x", out)
	}
}

func TestRunPrecompileInsufficientGasFails(t *testing.T) {
	result := runPrecompile(&ecrecover{}, make([]byte, 128), GasEcrecover-1)
	if result.Err != ErrOutOfGas {
		t.Fatalf("err = %v, want ErrOutOfGas", result.Err)
	}
}

func TestRunPrecompileInvalidInputIsSuccessWithEmptyOutput(t *testing.T) {
	// Malformed v is an "invalid input" per spec §4.8/§7: success, empty
	// output, gas still charged — not an exceptional halt.
	input := make([]byte, 128)
	input[63] = 26
	result := runPrecompile(&ecrecover{}, input, GasEcrecover)
	if result.Err != nil {
		t.Fatalf("invalid precompile input must not surface as an error: %v", result.Err)
	}
	if result.Output != nil {
		t.Fatalf("expected empty output, got %x", result.Output)
	}
	if result.Gas != 0 {
		t.Fatalf("gas left = %d, want 0 (exactly GasEcrecover charged)", result.Gas)
	}
}

func TestBn256PairingRejectsNonMultipleOf192(t *testing.T) {
	p := &bn256Pairing{}
	if _, err := p.Run(make([]byte, 100)); err == nil {
		t.Fatalf("expected error for input not a multiple of 192 bytes")
	}
}

func TestBn256PairingGasFormula(t *testing.T) {
	p := &bn256Pairing{}
	if got := p.RequiredGas(make([]byte, 384)); got != GasBn128PairingBase+GasBn128PairingPerPair*2 {
		t.Fatalf("RequiredGas(2 pairs) = %d, want %d", got, GasBn128PairingBase+GasBn128PairingPerPair*2)
	}
}
