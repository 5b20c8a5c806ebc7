package vm

import (
	"math/big"

	"github.com/ethereum/go-ethereum/crypto/bn256/cloudflare"
)

// newCurvePoint decodes a 64-byte (x, y) pair into a bn256 G1 point (spec
// §4.8 "deserialize points, check on-curve").
func newCurvePoint(data []byte) (*bn256.G1, error) {
	p := new(bn256.G1)
	buf := getDataSlice(data, 0, 64)
	if _, err := p.Unmarshal(buf); err != nil {
		return nil, err
	}
	return p, nil
}

// newTwistPoint decodes a 128-byte (x, y) pair of field-extension
// coordinates into a bn256 G2 point.
func newTwistPoint(data []byte) (*bn256.G2, error) {
	p := new(bn256.G2)
	buf := getDataSlice(data, 0, 128)
	if _, err := p.Unmarshal(buf); err != nil {
		return nil, err
	}
	return p, nil
}

// --- bn256Add (0x06) ---

type bn256Add struct{}

func (c *bn256Add) RequiredGas(input []byte) uint64 { return GasBn128Add }

func (c *bn256Add) Run(input []byte) ([]byte, error) {
	x, err := newCurvePoint(getDataSlice(input, 0, 64))
	if err != nil {
		return nil, errInvalidPrecompileInput
	}
	y, err := newCurvePoint(getDataSlice(input, 64, 64))
	if err != nil {
		return nil, errInvalidPrecompileInput
	}
	res := new(bn256.G1)
	res.Add(x, y)
	return res.Marshal(), nil
}

// --- bn256ScalarMul (0x07) ---

type bn256ScalarMul struct{}

func (c *bn256ScalarMul) RequiredGas(input []byte) uint64 { return GasBn128Mul }

func (c *bn256ScalarMul) Run(input []byte) ([]byte, error) {
	p, err := newCurvePoint(getDataSlice(input, 0, 64))
	if err != nil {
		return nil, errInvalidPrecompileInput
	}
	scalar := new(big.Int).SetBytes(getDataSlice(input, 64, 32))
	res := new(bn256.G1)
	res.ScalarMult(p, scalar)
	return res.Marshal(), nil
}

// --- bn256Pairing (0x08) ---

const bn256PairingElementLen = 192

type bn256Pairing struct{}

func (c *bn256Pairing) RequiredGas(input []byte) uint64 {
	k := uint64(len(input)) / bn256PairingElementLen
	return GasBn128PairingBase + GasBn128PairingPerPair*k
}

func (c *bn256Pairing) Run(input []byte) ([]byte, error) {
	if len(input)%bn256PairingElementLen != 0 {
		return nil, errInvalidPrecompileInput
	}

	var g1s []*bn256.G1
	var g2s []*bn256.G2
	for i := 0; i < len(input); i += bn256PairingElementLen {
		g1, err := newCurvePoint(input[i : i+64])
		if err != nil {
			return nil, errInvalidPrecompileInput
		}
		g2, err := newTwistPoint(input[i+64 : i+bn256PairingElementLen])
		if err != nil {
			return nil, errInvalidPrecompileInput
		}
		g1s = append(g1s, g1)
		g2s = append(g2s, g2)
	}

	success := bn256.PairingCheck(g1s, g2s)
	out := make([]byte, 32)
	if success {
		out[31] = 1
	}
	return out, nil
}
