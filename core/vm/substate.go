package vm

import "github.com/mana-go/evmcore/core/types"

// SubState is the transactional side-effect record produced by one call
// frame: logs, the refund counter, accounts queued for destruction, and the
// touched-account set used for post-EIP-161 dead-account cleanup (spec §3).
// It is monotonic within a successful execution and is discarded wholesale
// on exceptional halt or on REVERT of the frame that owns it.
type SubState struct {
	Logs            []types.Log
	Refund          int64
	SelfDestructSet map[types.Address]struct{}
	Touched         map[types.Address]struct{}
}

// NewSubState returns an empty SubState.
func NewSubState() *SubState {
	return &SubState{
		SelfDestructSet: make(map[types.Address]struct{}),
		Touched:         make(map[types.Address]struct{}),
	}
}

// Touch adds addr to the touched set.
func (s *SubState) Touch(addr types.Address) {
	s.Touched[addr] = struct{}{}
}

// QueueSelfDestruct adds addr to the self-destruct set and reports whether
// it was already present (the caller uses this to decide whether to add
// the one-time SELFDESTRUCT refund).
func (s *SubState) QueueSelfDestruct(addr types.Address) (alreadyQueued bool) {
	_, alreadyQueued = s.SelfDestructSet[addr]
	s.SelfDestructSet[addr] = struct{}{}
	return alreadyQueued
}

// AddLog appends a log entry in program order.
func (s *SubState) AddLog(l types.Log) {
	s.Logs = append(s.Logs, l)
}

// Merge folds a child call frame's sub-state into the parent (the receiver)
// on a successful return, per spec §3: union of touched/self-destruct sets,
// concatenation of logs, sum of refunds, minus one GasSelfdestructRefund for
// every self-destruct address the child queued that the parent had already
// queued (dedup — spec §9 "Refund merging").
func (s *SubState) Merge(child *SubState) {
	s.Logs = append(s.Logs, child.Logs...)
	s.Refund += child.Refund

	for addr := range child.SelfDestructSet {
		if _, dup := s.SelfDestructSet[addr]; dup {
			s.Refund -= int64(GasSelfdestructRefund)
		} else {
			s.SelfDestructSet[addr] = struct{}{}
		}
	}
	for addr := range child.Touched {
		s.Touched[addr] = struct{}{}
	}
}
