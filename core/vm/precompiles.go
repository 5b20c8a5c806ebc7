package vm

import (
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/ripemd160"

	"github.com/mana-go/evmcore/core/types"
)

// PrecompiledContract is the interface every native precompile implements:
// a pure gas function and a pure execution function (spec §4.8).
type PrecompiledContract interface {
	RequiredGas(input []byte) uint64
	Run(input []byte) ([]byte, error)
}

// ripemd160Address is referenced by MessageCall's EIP-161 dust-account
// touch rule (spec §4.7): a call targeting ripemd160 marks it touched even
// when the depth or balance pre-check short-circuits the call, matching a
// quirk in mainnet history that later forks codified.
var ripemd160Address = types.BytesToAddress([]byte{3})

// alwaysOnPrecompiles are available from genesis (spec §4.8 addresses
// 0x01-0x04).
var alwaysOnPrecompiles = map[types.Address]PrecompiledContract{
	types.BytesToAddress([]byte{1}): &ecrecover{},
	types.BytesToAddress([]byte{2}): &sha256hash{},
	ripemd160Address:                &ripemd160hash{},
	types.BytesToAddress([]byte{4}): &identity{},
}

// forkGatedPrecompiles are the Byzantium-era additions (spec §4.8 addresses
// 0x05-0x08), each gated by its own Config flag since forks introduced them
// independently of one another in real history.
var forkGatedPrecompiles = map[types.Address]struct {
	enabled func(cfg Config) bool
	contract PrecompiledContract
}{
	types.BytesToAddress([]byte{5}): {func(cfg Config) bool { return cfg.HasModExpBuiltin }, &bigModExp{}},
	types.BytesToAddress([]byte{6}): {func(cfg Config) bool { return cfg.HasECAddBuiltin }, &bn256Add{}},
	types.BytesToAddress([]byte{7}): {func(cfg Config) bool { return cfg.HasECMulBuiltin }, &bn256ScalarMul{}},
	types.BytesToAddress([]byte{8}): {func(cfg Config) bool { return cfg.HasECPairBuiltin }, &bn256Pairing{}},
}

// lookupPrecompile resolves addr to its PrecompiledContract under cfg, if
// any (spec §4.7 "code_owner names a precompile").
func lookupPrecompile(addr types.Address, cfg Config) (PrecompiledContract, bool) {
	if p, ok := alwaysOnPrecompiles[addr]; ok {
		return p, true
	}
	if gated, ok := forkGatedPrecompiles[addr]; ok && gated.enabled(cfg) {
		return gated.contract, true
	}
	return nil, false
}

// runPrecompile charges RequiredGas up front; a failure inside Run is spec
// §4.8's "invalid input" outcome — success with empty output, not an
// exceptional halt — so only insufficient gas produces an error result.
func runPrecompile(p PrecompiledContract, input []byte, gas uint64) RunResult {
	cost := p.RequiredGas(input)
	if gas < cost {
		return RunResult{Err: ErrOutOfGas}
	}
	output, err := p.Run(input)
	if err != nil {
		return RunResult{Gas: gas - cost}
	}
	return RunResult{Gas: gas - cost, Output: output}
}

// --- ecrecover (0x01) ---

type ecrecover struct{}

func (c *ecrecover) RequiredGas(input []byte) uint64 { return GasEcrecover }

func (c *ecrecover) Run(input []byte) ([]byte, error) {
	input = padRight(input, 128)

	hash := input[0:32]
	v := new(big.Int).SetBytes(input[32:64])
	r := new(big.Int).SetBytes(input[64:96])
	s := new(big.Int).SetBytes(input[96:128])

	if v.BitLen() > 8 {
		return nil, nil
	}
	vByte := byte(v.Uint64())
	if vByte != 27 && vByte != 28 {
		return nil, nil
	}
	if !crypto.ValidateSignatureValues(vByte-27, r, s, true) {
		return nil, nil
	}

	sig := make([]byte, 65)
	rBytes, sBytes := r.Bytes(), s.Bytes()
	copy(sig[32-len(rBytes):32], rBytes)
	copy(sig[64-len(sBytes):64], sBytes)
	sig[64] = vByte - 27

	pub, err := crypto.Ecrecover(hash, sig)
	if err != nil {
		return nil, nil
	}

	addr := crypto.Keccak256(pub[1:])
	result := make([]byte, 32)
	copy(result[12:], addr[12:])
	return result, nil
}

// --- sha256hash (0x02) ---

type sha256hash struct{}

func (c *sha256hash) RequiredGas(input []byte) uint64 {
	return GasSha256Base + GasSha256Word*wordCount(len(input))
}

func (c *sha256hash) Run(input []byte) ([]byte, error) {
	h := sha256.Sum256(input)
	return h[:], nil
}

// --- ripemd160hash (0x03) ---

type ripemd160hash struct{}

func (c *ripemd160hash) RequiredGas(input []byte) uint64 {
	return GasRipemdBase + GasRipemdWord*wordCount(len(input))
}

func (c *ripemd160hash) Run(input []byte) ([]byte, error) {
	h := ripemd160.New()
	h.Write(input)
	digest := h.Sum(nil)
	result := make([]byte, 32)
	copy(result[12:], digest)
	return result, nil
}

// --- identity (0x04) ---

type identity struct{}

func (c *identity) RequiredGas(input []byte) uint64 {
	return GasIdentityBase + GasIdentityWord*wordCount(len(input))
}

func (c *identity) Run(input []byte) ([]byte, error) {
	out := make([]byte, len(input))
	copy(out, input)
	return out, nil
}

// --- shared helpers ---

// wordCount returns ceil(size/32), the 32-byte word count used by every
// per-word precompile gas formula (spec §4.8).
func wordCount(size int) uint64 {
	if size == 0 {
		return 0
	}
	return uint64((size + 31) / 32)
}

func padRight(data []byte, minLen int) []byte {
	if len(data) >= minLen {
		return data
	}
	padded := make([]byte, minLen)
	copy(padded, data)
	return padded
}

// getDataSlice extracts data[offset:offset+length], zero-padding past the
// end of data, the convention modexp and bn128 inputs share for
// under-length payloads (spec §4.8).
func getDataSlice(data []byte, offset, length uint64) []byte {
	if length == 0 {
		return nil
	}
	result := make([]byte, length)
	if offset >= uint64(len(data)) {
		return result
	}
	end := offset + length
	if end > uint64(len(data)) {
		end = uint64(len(data))
	}
	copy(result, data[offset:end])
	return result
}

var errInvalidPrecompileInput = errors.New("precompile: invalid input")
