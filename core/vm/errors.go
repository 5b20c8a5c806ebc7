package vm

import "errors"

// Exceptional halt kinds (spec §7). These are the only errors the
// interpreter loop itself can produce; every one of them causes the
// current call frame's effects to be discarded and its gas set to zero.
var (
	ErrOutOfGas                = errors.New("out of gas")
	ErrStackUnderflow          = errors.New("stack underflow")
	ErrStackOverflow           = errors.New("stack overflow")
	ErrInvalidJumpDestination  = errors.New("invalid jump destination")
	ErrUndefinedInstruction    = errors.New("undefined instruction")
	ErrInvalidInstruction      = errors.New("invalid instruction")
	ErrStaticStateModification = errors.New("static state modification")
	ErrOutOfMemoryBounds       = errors.New("out of memory bounds")
)

// ErrInsufficientBalance is returned by an AccountView's Transfer when the
// sender cannot cover the requested value; MessageCall and Create treat it
// as a pre-check failure rather than an exceptional halt (spec §4.6/§4.7).
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrExecutionReverted is not an exceptional halt: it is the normal-halt
// signal for REVERT, which preserves remaining gas and carries output data
// (spec §4.5, §7).
var ErrExecutionReverted = errors.New("execution reverted")

// isExceptionalHalt reports whether err is one of the eight halt kinds
// above, as opposed to a REVERT or a Go-level plumbing error (e.g. "no
// AccountView configured").
func isExceptionalHalt(err error) bool {
	switch {
	case errors.Is(err, ErrOutOfGas),
		errors.Is(err, ErrStackUnderflow),
		errors.Is(err, ErrStackOverflow),
		errors.Is(err, ErrInvalidJumpDestination),
		errors.Is(err, ErrUndefinedInstruction),
		errors.Is(err, ErrInvalidInstruction),
		errors.Is(err, ErrStaticStateModification),
		errors.Is(err, ErrOutOfMemoryBounds):
		return true
	default:
		return false
	}
}
