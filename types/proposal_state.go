package types

import "fmt"

// ProposalState is the lifecycle state of a governance proposal.
type ProposalState uint8

const (
	ProposalStatePending ProposalState = iota
	ProposalStateActive
	ProposalStateCanceled
	ProposalStateDefeated
	ProposalStateSucceeded
	ProposalStateQueued
	ProposalStateExpired
	ProposalStateExecuted
)

var proposalStateNames = [...]string{
	"Pending",
	"Active",
	"Canceled",
	"Defeated",
	"Succeeded",
	"Queued",
	"Expired",
	"Executed",
}

func (s ProposalState) String() string {
	if int(s) < len(proposalStateNames) {
		return proposalStateNames[s]
	}

	return fmt.Sprintf("ProposalState(%d)", uint8(s))
}

// Terminal reports whether no further transition is possible from s.
func (s ProposalState) Terminal() bool {
	switch s {
	case ProposalStateCanceled, ProposalStateDefeated, ProposalStateExpired, ProposalStateExecuted:
		return true
	default:
		return false
	}
}
