package vm

// Config is the fork configuration consulted by the jump table and gas
// functions to decide opcode availability and cost (spec §3 "Fork config",
// §9 design note: a single jump table plus a per-dispatch availability
// check, rather than the teacher's cascade of one jump table per named
// hardfork). Field names follow spec §3 verbatim.
type Config struct {
	HasDelegateCall  bool
	HasRevert        bool
	HasStaticCall    bool
	HasReturnData    bool
	HasShiftOps      bool
	HasExtCodeHash   bool
	HasCreate2       bool
	HasModExpBuiltin bool
	HasECAddBuiltin  bool
	HasECMulBuiltin  bool
	HasECPairBuiltin bool

	// EmptyAccountValueTransfer: when true (post-EIP-161/Spurious Dragon),
	// CALL charges the new-account surcharge only when it transfers value to
	// an empty account, and SELFDESTRUCT reports a new beneficiary only when
	// the beneficiary does not exist and the balance is non-zero. When false,
	// CALL charges the surcharge for any nonexistent recipient.
	EmptyAccountValueTransfer bool

	// EIP1283SstoreRefund selects the (initial, current, new)-tuple SSTORE
	// gas/refund schedule instead of the legacy flat 5000/20000 schedule.
	EIP1283SstoreRefund bool

	ExpByteCost     uint64
	BalanceCost     uint64
	ExtCodeCopyCost uint64
	CallCost        uint64
	SloadCost       uint64

	// SelfDestructCost returns the gas charged for SELFDESTRUCT, which may
	// depend on whether the beneficiary is a new account (spec §4.4).
	SelfDestructCost func(newAccount bool) uint64

	// FailNestedOperationLackOfGas is set for Frontier and Homestead and
	// cleared from Tangerine Whistle on. No gas or call function reads it:
	// under every fork config, CALL-family forwarding is clamped to all but
	// one 64th of the available gas, and an inner call is never failed for
	// lack of the gas it requested.
	FailNestedOperationLackOfGas bool

	// MaxCodeSize bounds deployed contract code (0 disables the check,
	// the Frontier/Homestead behavior before EIP-170).
	MaxCodeSize int
}

// FrontierConfig returns the genesis fork configuration: no DELEGATECALL,
// no REVERT, no CREATE2, flat legacy gas schedule.
func FrontierConfig() Config {
	return Config{
		ExpByteCost:     10,
		BalanceCost:     20,
		ExtCodeCopyCost: 20,
		CallCost:        40,
		SloadCost:       50,
		SelfDestructCost: func(newAccount bool) uint64 {
			return 0
		},
		FailNestedOperationLackOfGas: true,
	}
}

// HomesteadConfig adds DELEGATECALL.
func HomesteadConfig() Config {
	cfg := FrontierConfig()
	cfg.HasDelegateCall = true
	return cfg
}

// TangerineWhistleConfig (EIP-150) reprices BALANCE/EXTCODE*/CALL-family/SLOAD
// and clears FailNestedOperationLackOfGas. The all-but-one-64th forwarding
// clamp is not gated on this fork: it applies under every config.
func TangerineWhistleConfig() Config {
	cfg := HomesteadConfig()
	cfg.BalanceCost = 400
	cfg.ExtCodeCopyCost = 700
	cfg.CallCost = 700
	cfg.SloadCost = 200
	cfg.FailNestedOperationLackOfGas = false
	return cfg
}

// SpuriousDragonConfig (EIP-158/161) stops creating empty accounts on
// zero-value calls and raises the exponent byte cost.
func SpuriousDragonConfig() Config {
	cfg := TangerineWhistleConfig()
	cfg.EmptyAccountValueTransfer = true
	cfg.MaxCodeSize = 24576
	cfg.ExpByteCost = 50
	return cfg
}

// ByzantiumConfig adds REVERT, STATICCALL, RETURNDATA*, and the modexp/
// bn128 precompiles (0x05-0x08).
func ByzantiumConfig() Config {
	cfg := SpuriousDragonConfig()
	cfg.HasRevert = true
	cfg.HasStaticCall = true
	cfg.HasReturnData = true
	cfg.HasModExpBuiltin = true
	cfg.HasECAddBuiltin = true
	cfg.HasECMulBuiltin = true
	cfg.HasECPairBuiltin = true
	cfg.SelfDestructCost = func(newAccount bool) uint64 {
		if newAccount {
			return 25000
		}
		return 0
	}
	return cfg
}

// ConstantinopleConfig adds SHL/SHR/SAR, EXTCODEHASH, CREATE2, and the
// EIP-1283 SSTORE gas/refund schedule.
func ConstantinopleConfig() Config {
	cfg := ByzantiumConfig()
	cfg.HasShiftOps = true
	cfg.HasExtCodeHash = true
	cfg.HasCreate2 = true
	cfg.EIP1283SstoreRefund = true
	cfg.ExpByteCost = 50
	return cfg
}

// PetersburgConfig (Constantinople Fix) reverts the EIP-1283 SSTORE
// schedule (a reentrancy-gas-metering concern found after Constantinople
// shipped) while keeping everything else Constantinople added.
func PetersburgConfig() Config {
	cfg := ConstantinopleConfig()
	cfg.EIP1283SstoreRefund = false
	return cfg
}

// IstanbulConfig reinstates the tuple-based SSTORE schedule under the
// EIP-2200 gas numbers (spec treats this as the same "eip1283_sstore_refund"
// toggle — see DESIGN.md Open Question decisions) and reprices SLOAD/
// BALANCE/EXTCODEHASH.
func IstanbulConfig() Config {
	cfg := PetersburgConfig()
	cfg.EIP1283SstoreRefund = true
	cfg.SloadCost = 800
	cfg.BalanceCost = 700
	return cfg
}
