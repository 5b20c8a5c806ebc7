package vm

import "math/big"

// maxModExpLen bounds base/exponent/modulus lengths (spec §4.8 "reject
// lengths > 24577").
const maxModExpLen = 24577

// bigModExp implements the modexp precompile (0x05, spec §4.8): arbitrary
// precision modular exponentiation, gated behind Config.HasModExpBuiltin.
type bigModExp struct{}

func (c *bigModExp) RequiredGas(input []byte) uint64 {
	input = padRight(input, 96)

	baseLen := new(big.Int).SetBytes(input[0:32])
	expLen := new(big.Int).SetBytes(input[32:64])
	modLen := new(big.Int).SetBytes(input[64:96])

	if baseLen.BitLen() > 32 || expLen.BitLen() > 32 || modLen.BitLen() > 32 {
		return 0
	}
	bLen, eLen, mLen := baseLen.Uint64(), expLen.Uint64(), modLen.Uint64()
	if bLen > maxModExpLen || eLen > maxModExpLen || mLen > maxModExpLen {
		return 0
	}

	adjExpLen := adjustedExpLen(eLen, bLen, input[96:])

	maxLen := bLen
	if mLen > maxLen {
		maxLen = mLen
	}
	f := modExpComplexity(maxLen)

	e := adjExpLen
	if e < 1 {
		e = 1
	}
	gas := (f * e) / GasModExpQuadDivisor
	if gas < GasModExpMin {
		gas = GasModExpMin
	}
	return gas
}

func (c *bigModExp) Run(input []byte) ([]byte, error) {
	input = padRight(input, 96)

	baseLen := new(big.Int).SetBytes(input[0:32])
	expLen := new(big.Int).SetBytes(input[32:64])
	modLen := new(big.Int).SetBytes(input[64:96])

	if baseLen.BitLen() > 32 || expLen.BitLen() > 32 || modLen.BitLen() > 32 {
		return nil, errInvalidPrecompileInput
	}
	bLen, eLen, mLen := baseLen.Uint64(), expLen.Uint64(), modLen.Uint64()
	if bLen > maxModExpLen || eLen > maxModExpLen || mLen > maxModExpLen {
		return nil, errInvalidPrecompileInput
	}

	data := input[96:]
	base := getDataSlice(data, 0, bLen)
	exp := getDataSlice(data, bLen, eLen)
	mod := getDataSlice(data, bLen+eLen, mLen)

	modVal := new(big.Int).SetBytes(mod)
	if modVal.Sign() == 0 {
		return make([]byte, mLen), nil
	}

	baseVal := new(big.Int).SetBytes(base)
	expVal := new(big.Int).SetBytes(exp)
	result := new(big.Int).Exp(baseVal, expVal, modVal)

	out := result.Bytes()
	padded := make([]byte, mLen)
	copy(padded[mLen-uint64(len(out)):], out)
	return padded, nil
}

// modExpComplexity is f(x) from spec §4.8, the multiplication-complexity
// function keyed to max(base_len, mod_len).
func modExpComplexity(x uint64) uint64 {
	switch {
	case x <= 64:
		return x * x
	case x <= 1024:
		return x*x/4 + 96*x - 3072
	default:
		return x*x/16 + 480*x - 199680
	}
}

// adjustedExpLen derives E' from the high bits of the exponent (spec §4.8):
// for short exponents, the index of the value's highest set bit (bit-length
// minus one, 0 for a zero exponent); for long ones, that index for its
// leading 32 bytes plus 8 per remaining byte.
func adjustedExpLen(expLen, baseLen uint64, data []byte) uint64 {
	if expLen <= 32 {
		expData := getDataSlice(data, baseLen, expLen)
		exp := new(big.Int).SetBytes(expData)
		if exp.Sign() == 0 {
			return 0
		}
		return uint64(exp.BitLen() - 1)
	}
	firstExpData := getDataSlice(data, baseLen, 32)
	firstExp := new(big.Int).SetBytes(firstExpData)
	adj := uint64(0)
	if firstExp.Sign() > 0 {
		adj = uint64(firstExp.BitLen() - 1)
	}
	return adj + 8*(expLen-32)
}
