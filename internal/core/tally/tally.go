// Package tally accumulates weighted votes per proposal and evaluates quorum and support.
package tally

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	sdkerrors "github.com/divadao/divagov/sdk/errors"
	"github.com/divadao/divagov/types"
)

var (
	ErrAlreadyVoted    = sdkerrors.Integrity("vote already cast")
	ErrInvalidVoteType = sdkerrors.Validation("invalid value for enum VoteType")
	ErrVoteOverflow    = sdkerrors.Integrity("vote total overflows uint256")
)

// Votes holds the weight cast for each option.
type Votes struct {
	Against *uint256.Int
	For     *uint256.Int
	Abstain *uint256.Int
}

func zeroVotes() Votes {
	return Votes{Against: new(uint256.Int), For: new(uint256.Int), Abstain: new(uint256.Int)}
}

func (v Votes) clone() Votes {
	return Votes{Against: v.Against.Clone(), For: v.For.Clone(), Abstain: v.Abstain.Clone()}
}

type record struct {
	votes  Votes
	voters map[common.Address]types.VoteType
}

// Tally stores the votes of every proposal.
type Tally struct {
	mu        sync.Mutex
	proposals map[common.Hash]*record
}

// New returns an empty tally.
func New() *Tally {
	return &Tally{proposals: make(map[common.Hash]*record)}
}

// CastVote adds weight to the option chosen by voter. Each voter votes once per proposal.
func (t *Tally) CastVote(id common.Hash, voter common.Address, support types.VoteType, weight *uint256.Int) error {
	if !support.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidVoteType, support)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.proposals[id]
	if !ok {
		rec = &record{votes: zeroVotes(), voters: make(map[common.Address]types.VoteType)}
		t.proposals[id] = rec
	}
	if _, voted := rec.voters[voter]; voted {
		return fmt.Errorf("%w: %s on proposal %s", ErrAlreadyVoted, voter.Hex(), id.Hex())
	}

	var bucket *uint256.Int
	switch support {
	case types.VoteAgainst:
		bucket = rec.votes.Against
	case types.VoteFor:
		bucket = rec.votes.For
	default:
		bucket = rec.votes.Abstain
	}

	var sum uint256.Int
	if _, overflow := sum.AddOverflow(bucket, weight); overflow {
		return ErrVoteOverflow
	}
	bucket.Set(&sum)
	rec.voters[voter] = support

	return nil
}

// HasVoted reports whether voter has cast a ballot on proposal id.
func (t *Tally) HasVoted(id common.Hash, voter common.Address) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.proposals[id]
	if !ok {
		return false
	}
	_, voted := rec.voters[voter]

	return voted
}

// Votes returns a copy of the totals of a proposal. Unknown proposals have zero totals.
func (t *Tally) Votes(id common.Hash) Votes {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.proposals[id]
	if !ok {
		return zeroVotes()
	}

	return rec.votes.clone()
}

// QuorumReached reports whether the for and abstain weight of id reaches quorum.
func (t *Tally) QuorumReached(id common.Hash, quorum *uint256.Int) bool {
	return QuorumReached(t.Votes(id), quorum)
}

// Succeeded reports whether the for share of the decisive votes of id exceeds the percentage
// required by tier.
func (t *Tally) Succeeded(id common.Hash, tier types.ThresholdTier) bool {
	return Succeeded(t.Votes(id), tier)
}

// VoteSucceeded is evaluated from the current totals on every call.
func (t *Tally) VoteSucceeded(id common.Hash, quorum *uint256.Int, tier types.ThresholdTier) bool {
	votes := t.Votes(id)

	return QuorumReached(votes, quorum) && Succeeded(votes, tier)
}

// QuorumReached reports for + abstain >= quorum.
func QuorumReached(v Votes, quorum *uint256.Int) bool {
	var participation uint256.Int
	if _, overflow := participation.AddOverflow(v.For, v.Abstain); overflow {
		return true
	}

	return !participation.Lt(quorum)
}

// Succeeded reports for * (100 - required) > against * required for the tier's required
// percentage. Ties fail.
func Succeeded(v Votes, tier types.ThresholdTier) bool {
	required := uint256.NewInt(tier.RequiredPercent())
	complement := uint256.NewInt(100 - tier.RequiredPercent())

	var lhs, rhs uint256.Int
	_, lhsOverflow := lhs.MulOverflow(v.For, complement)
	_, rhsOverflow := rhs.MulOverflow(v.Against, required)
	if !lhsOverflow && !rhsOverflow {
		return lhs.Gt(&rhs)
	}

	bigLHS := new(big.Int).Mul(v.For.ToBig(), complement.ToBig())
	bigRHS := new(big.Int).Mul(v.Against.ToBig(), required.ToBig())

	return bigLHS.Cmp(bigRHS) > 0
}
