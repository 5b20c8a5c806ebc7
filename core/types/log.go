package types

// Log is a single LOG0..LOG4 record emitted during execution. It is appended
// to the sub-state's log list in program order and is never mutated once
// created — a reverted call frame simply drops the slice it built.
type Log struct {
	Address Address
	Topics  []Hash
	Data    []byte
}
