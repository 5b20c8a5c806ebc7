package vm

// Static gas tiers (spec §4.4). Names follow the Yellow Paper's W_* tier
// labels as the teacher and the rest of the corpus name them.
const (
	GasZero       uint64 = 0  // STOP, RETURN, REVERT
	GasQuickStep  uint64 = 2  // "base" tier
	GasFastestStep uint64 = 3 // "verylow"
	GasFastStep   uint64 = 5  // "low"
	GasMidStep    uint64 = 8  // "mid"
	GasSlowStep   uint64 = 10 // "high"

	GasJumpDest uint64 = 1
	GasCreate   uint64 = 32000
	GasBlockhash uint64 = 20

	GasSstoreSet   uint64 = 20000
	GasSstoreReset uint64 = 5000
	GasSstoreRefundLegacy uint64 = 15000
	GasSelfdestructRefund uint64 = 24000

	GasLogTopic uint64 = 375
	GasLogData  uint64 = 8

	GasCreateDataByte uint64 = 200

	// CallGasFraction is the EIP-150 "all but one 64th" divisor.
	CallGasFraction uint64 = 64

	CallValueTransferGas uint64 = 9000
	CallNewAccountGas    uint64 = 25000
	CallStipend          uint64 = 2300

	MaxStackDepth int = 1024
	MaxCallDepth  int = 1024

	// Precompile gas tiers (spec §4.8).
	GasEcrecover uint64 = 3000

	GasSha256Base uint64 = 60
	GasSha256Word uint64 = 12

	GasRipemdBase uint64 = 600
	GasRipemdWord uint64 = 120

	GasIdentityBase uint64 = 15
	GasIdentityWord uint64 = 3

	GasModExpMin   uint64 = 200
	GasModExpQuadDivisor uint64 = 20

	GasBn128Add     uint64 = 500
	GasBn128Mul     uint64 = 40000
	GasBn128PairingBase uint64 = 100000
	GasBn128PairingPerPair uint64 = 80000
)

// toWordSize rounds size (in bytes) up to the number of 32-byte words it
// spans, i.e. ceil(size/32).
func toWordSize(size uint64) uint64 {
	if size == 0 {
		return 0
	}
	return (size + 31) / 32
}

// memoryGasCost returns C_mem(a) = 3a + floor(a^2/512) for a words of
// active memory (spec §4.4).
func memoryGasCost(words uint64) uint64 {
	return words*GasFastestStep + (words*words)/512
}
