package vm

import (
	"testing"

	"github.com/holiman/uint256"
)

func TestMemoryGasCostFormula(t *testing.T) {
	cases := []struct {
		words uint64
		want  uint64
	}{
		{0, 0},
		{1, 3},
		{22, 66 + 22*22/512},
		{512, 512*3 + 512},
	}
	for _, c := range cases {
		if got := memoryGasCost(c.words); got != c.want {
			t.Errorf("memoryGasCost(%d) = %d, want %d", c.words, got, c.want)
		}
	}
}

func TestGasMemoryExpansionOnlyChargesIncrement(t *testing.T) {
	f := &Frame{Memory: NewMemory()}
	first := gasMemoryExpansion(f, 32)
	if first != memoryGasCost(1) {
		t.Fatalf("first expansion = %d, want %d", first, memoryGasCost(1))
	}
	f.Memory.Resize(32)

	second := gasMemoryExpansion(f, 32)
	if second != 0 {
		t.Fatalf("re-expanding to the same size charged %d, want 0", second)
	}
}

func TestClampForwardedGasEIP150(t *testing.T) {
	requested := uint256.NewInt(1000)
	if got := clampForwardedGas(requested, 100); got != 98 {
		t.Fatalf("requesting more than available: got %d, want 98 (floor of 100*63/64)", got)
	}

	requested = uint256.NewInt(10)
	if got := clampForwardedGas(requested, 1000); got != 10 {
		t.Fatalf("requesting less than available: got %d, want 10 (exactly requested)", got)
	}
}

func TestModExpComplexityPiecewise(t *testing.T) {
	if got := modExpComplexity(8); got != 64 {
		t.Fatalf("modExpComplexity(8) = %d, want 64", got)
	}
	if got := modExpComplexity(100); got != 100*100/4+96*100-3072 {
		t.Fatalf("modExpComplexity(100) = %d, want piecewise mid-range value", got)
	}
	if got := modExpComplexity(2000); got != 2000*2000/16+480*2000-199680 {
		t.Fatalf("modExpComplexity(2000) = %d, want piecewise large-range value", got)
	}
}

func TestToWordSizeRoundsUp(t *testing.T) {
	cases := map[uint64]uint64{0: 0, 1: 1, 32: 1, 33: 2, 64: 2}
	for size, want := range cases {
		if got := toWordSize(size); got != want {
			t.Errorf("toWordSize(%d) = %d, want %d", size, got, want)
		}
	}
}
