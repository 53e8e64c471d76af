package divagov

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/divadao/divagov/internal/core/tally"
	"github.com/divadao/divagov/sdk"
	"github.com/divadao/divagov/types"
)

func (g *Governor) Address() common.Address { return g.address }
func (g *Governor) Name() string            { return g.name }

// Proposal returns a copy of proposal id.
func (g *Governor) Proposal(id common.Hash) (*Proposal, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.proposals[id]
	if !ok {
		return nil, NewUnknownProposalError(id)
	}

	return p.clone(), nil
}

// ProposalVotes returns the against, for and abstain weight cast on proposal id.
func (g *Governor) ProposalVotes(id common.Hash) (tally.Votes, error) {
	if _, err := g.Proposal(id); err != nil {
		return tally.Votes{}, err
	}

	return g.tally.Votes(id), nil
}

// HasVoted reports whether account voted on proposal id.
func (g *Governor) HasVoted(id common.Hash, account common.Address) bool {
	return g.tally.HasVoted(id, account)
}

// ProposalSnapshot returns when voting opens. Voting weight is read at that time.
func (g *Governor) ProposalSnapshot(id common.Hash) (time.Time, error) {
	p, err := g.Proposal(id)
	if err != nil {
		return time.Time{}, err
	}

	return p.VoteStart, nil
}

// ProposalDeadline returns when voting closes.
func (g *Governor) ProposalDeadline(id common.Hash) (time.Time, error) {
	p, err := g.Proposal(id)
	if err != nil {
		return time.Time{}, err
	}

	return p.VoteEnd, nil
}

// ProposalEta returns when a queued proposal becomes executable, or the zero time.
func (g *Governor) ProposalEta(id common.Hash) (time.Time, error) {
	p, err := g.Proposal(id)
	if err != nil {
		return time.Time{}, err
	}

	return p.Eta, nil
}

func (g *Governor) ProposalProposer(id common.Hash) (common.Address, error) {
	p, err := g.Proposal(id)
	if err != nil {
		return common.Address{}, err
	}

	return p.Proposer, nil
}

// Quorum returns a copy of the current quorum.
func (g *Governor) Quorum() *uint256.Int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.quorum.Clone()
}

func (g *Governor) ProposalThreshold() *uint256.Int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.proposalThreshold.Clone()
}

func (g *Governor) VotingDelay() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.votingDelay
}

func (g *Governor) VotingPeriod() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.votingPeriod
}

func (g *Governor) GracePeriod() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.gracePeriod
}

// Delays returns the current duration of every delay tier.
func (g *Governor) Delays() types.DelayConfig {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.delays
}

// Timelock returns the timelock proposals are executed through.
func (g *Governor) Timelock() sdk.TimelockController {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.timelock
}

// VoteSucceeded reports whether proposal id currently meets quorum and its threshold tier.
func (g *Governor) VoteSucceeded(_ context.Context, id common.Hash) (bool, error) {
	p, err := g.Proposal(id)
	if err != nil {
		return false, err
	}

	return g.tally.VoteSucceeded(id, g.Quorum(), p.ThresholdTier), nil
}
