// Package divagov is a tiered governance engine. Proposals are classified by the calls they make,
// voted on with delegated token weight, and executed through a timelock whose delay depends on the
// classification.
package divagov

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/divadao/divagov/internal/core/classifier"
	"github.com/divadao/divagov/internal/core/tally"
	"github.com/divadao/divagov/sdk"
	"github.com/divadao/divagov/types"
)

// CountingMode describes how votes are counted, in the ERC-6372 style.
const CountingMode = "support=bravo&quorum=for,abstain"

// Proposal is a governance proposal. Votes are kept by the tally.
type Proposal struct {
	ID              common.Hash
	Targets         []common.Address
	Values          []*big.Int
	Calldatas       [][]byte
	DescriptionHash common.Hash
	Proposer        common.Address
	VoteStart       time.Time
	VoteEnd         time.Time
	DelayTier       types.DelayTier
	ThresholdTier   types.ThresholdTier

	// OperationID is the timelock operation the proposal was queued as. Eta is when it becomes
	// executable; zero until the operation is scheduled.
	OperationID common.Hash
	Eta         time.Time

	Canceled bool
	Executed bool
}

// Calls returns the actions of the proposal.
func (p *Proposal) Calls() []types.Call {
	calls := make([]types.Call, len(p.Targets))
	for i := range p.Targets {
		calls[i] = types.NewCall(p.Targets[i], p.Values[i], p.Calldatas[i])
	}

	return calls
}

func (p *Proposal) clone() *Proposal {
	c := *p
	c.Targets = append([]common.Address(nil), p.Targets...)
	c.Values = append([]*big.Int(nil), p.Values...)
	c.Calldatas = append([][]byte(nil), p.Calldatas...)

	return &c
}

// Option configures a Governor.
type Option func(*Governor)

// WithClock sets the clock voting windows and expiry are measured with. Defaults to the wall clock.
func WithClock(c clock.Clock) Option {
	return func(g *Governor) {
		g.clock = c
	}
}

// WithResolver sets the dispatcher used to look up a new timelock on updateTimelock. Without one
// the timelock cannot be changed.
func WithResolver(r sdk.Dispatcher) Option {
	return func(g *Governor) {
		g.resolver = r
	}
}

var _ sdk.Callable = (*Governor)(nil)

// Governor runs the proposal lifecycle.
type Governor struct {
	mu sync.Mutex

	address           common.Address
	name              string
	votingDelay       time.Duration
	votingPeriod      time.Duration
	gracePeriod       time.Duration
	proposalThreshold *uint256.Int
	quorum            *uint256.Int
	delays            types.DelayConfig

	proposals  map[common.Hash]*Proposal
	classifier *classifier.Classifier
	tally      *tally.Tally

	token    sdk.VotingPowerSource
	timelock sdk.TimelockController
	resolver sdk.Dispatcher
	clock    clock.Clock
}

// New returns a governor at address voting with token weight and executing through timelock. The
// delay tiers of cfg are validated against the timelock minimum delay.
func New(
	ctx context.Context,
	address common.Address,
	cfg types.GovernorConfig,
	token sdk.VotingPowerSource,
	timelock sdk.TimelockController,
	opts ...Option,
) (*Governor, error) {
	minDelay, err := timelock.GetMinDelay(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read timelock min delay: %w", err)
	}
	if err = cfg.Validate(minDelay); err != nil {
		return nil, err
	}

	cls, err := classifier.New(timelock.Address(), cfg.Selectors)
	if err != nil {
		return nil, err
	}

	g := &Governor{
		address:           address,
		name:              cfg.Name,
		votingDelay:       cfg.VotingDelay.Duration,
		votingPeriod:      cfg.VotingPeriod.Duration,
		gracePeriod:       cfg.GracePeriod.Duration,
		proposalThreshold: uint256.MustFromBig((*big.Int)(cfg.ProposalThreshold)),
		quorum:            uint256.MustFromBig((*big.Int)(cfg.QuorumAbsolute)),
		delays:            cfg.Delays,
		proposals:         make(map[common.Hash]*Proposal),
		classifier:        cls,
		tally:             tally.New(),
		token:             token,
		timelock:          timelock,
		clock:             clock.New(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Propose creates a proposal and returns its id. The proposer needs current voting power of at
// least the proposal threshold. Voting opens after the voting delay.
func (g *Governor) Propose(
	ctx context.Context,
	proposer common.Address,
	targets []common.Address,
	values []*big.Int,
	calldatas [][]byte,
	description string,
) (common.Hash, error) {
	if len(targets) != len(values) || len(targets) != len(calldatas) {
		return common.Hash{}, fmt.Errorf("%w: %d targets, %d values, %d calldatas",
			ErrInvalidProposalLength, len(targets), len(values), len(calldatas))
	}
	if len(targets) == 0 {
		return common.Hash{}, ErrEmptyProposal
	}
	if err := types.CheckValues(values...); err != nil {
		return common.Hash{}, err
	}

	votes, err := g.token.GetVotes(ctx, proposer)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to read proposer votes: %w", err)
	}
	threshold := g.ProposalThreshold()
	if votes.Lt(threshold) {
		return common.Hash{}, fmt.Errorf("%w: %s < %s", ErrBelowProposalThreshold, votes.Dec(), threshold.Dec())
	}

	p := &Proposal{
		Targets:         append([]common.Address(nil), targets...),
		Values:          make([]*big.Int, len(values)),
		Calldatas:       append([][]byte(nil), calldatas...),
		DescriptionHash: DescriptionHash(description),
		Proposer:        proposer,
	}
	for i, v := range values {
		p.Values[i] = new(big.Int)
		if v != nil {
			p.Values[i].Set(v)
		}
	}

	p.DelayTier, p.ThresholdTier, err = g.classifier.Classify(p.Calls())
	if err != nil {
		return common.Hash{}, err
	}
	p.ID, err = HashProposal(p.Targets, p.Values, p.Calldatas, p.DescriptionHash)
	if err != nil {
		return common.Hash{}, err
	}

	g.mu.Lock()
	if _, ok := g.proposals[p.ID]; ok {
		g.mu.Unlock()
		return common.Hash{}, fmt.Errorf("%w: %s", ErrProposalAlreadyExists, p.ID.Hex())
	}
	p.VoteStart = g.clock.Now().Add(g.votingDelay)
	p.VoteEnd = p.VoteStart.Add(g.votingPeriod)
	g.proposals[p.ID] = p
	g.mu.Unlock()

	sdk.LoggerFrom(ctx).Infow("Proposal created",
		"id", p.ID.Hex(),
		"proposer", proposer.Hex(),
		"calls", len(p.Targets),
		"delayTier", p.DelayTier.String(),
		"thresholdTier", p.ThresholdTier.String(),
		"voteStart", p.VoteStart.UTC().Format(time.RFC3339),
		"voteEnd", p.VoteEnd.UTC().Format(time.RFC3339),
		"description", description,
	)

	return p.ID, nil
}

// CastVote records the vote of voter with the weight it held when voting opened, and returns that
// weight.
func (g *Governor) CastVote(ctx context.Context, voter common.Address, id common.Hash, support types.VoteType) (*uint256.Int, error) {
	return g.CastVoteWithReason(ctx, voter, id, support, "")
}

// CastVoteWithReason is CastVote with a free-form justification that is logged.
func (g *Governor) CastVoteWithReason(
	ctx context.Context, voter common.Address, id common.Hash, support types.VoteType, reason string,
) (*uint256.Int, error) {
	p, state, err := g.snapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	if state != types.ProposalStateActive {
		return nil, NewUnexpectedStateError(id, state, ErrVoteNotActive)
	}

	weight, err := g.token.GetPastVotes(ctx, voter, p.VoteStart)
	if err != nil {
		return nil, fmt.Errorf("failed to read voting power: %w", err)
	}
	if err := g.tally.CastVote(id, voter, support, weight); err != nil {
		return nil, err
	}

	sdk.LoggerFrom(ctx).Infow("Vote cast",
		"id", id.Hex(), "voter", voter.Hex(), "support", support.String(), "weight", weight.Dec(), "reason", reason)

	return weight, nil
}

// Queue schedules a succeeded proposal in the timelock with the delay of its classified tier and
// returns the timelock operation id.
func (g *Governor) Queue(
	ctx context.Context, targets []common.Address, values []*big.Int, calldatas [][]byte, descriptionHash common.Hash,
) (common.Hash, error) {
	id, err := HashProposal(targets, values, calldatas, descriptionHash)
	if err != nil {
		return common.Hash{}, err
	}
	p, state, err := g.snapshot(ctx, id)
	if err != nil {
		return common.Hash{}, err
	}
	if state != types.ProposalStateSucceeded {
		return common.Hash{}, NewUnexpectedStateError(id, state, ErrProposalNotSuccessful)
	}

	calls := p.Calls()
	salt := TimelockSalt(g.address, descriptionHash)
	tl := g.Timelock()
	opID, err := tl.HashOperationBatch(calls, common.Hash{}, salt)
	if err != nil {
		return common.Hash{}, err
	}

	// Reserve the proposal so a concurrent queue observes it as taken.
	g.mu.Lock()
	stored := g.proposals[id]
	if stored.OperationID != (common.Hash{}) {
		g.mu.Unlock()
		return common.Hash{}, NewUnexpectedStateError(id, types.ProposalStateQueued, ErrProposalNotSuccessful)
	}
	stored.OperationID = opID
	delay := g.delays.For(p.DelayTier)
	g.mu.Unlock()

	eta, err := g.schedule(ctx, tl, calls, salt, delay)
	if err != nil {
		g.mu.Lock()
		stored.OperationID = common.Hash{}
		g.mu.Unlock()

		return common.Hash{}, err
	}

	g.mu.Lock()
	stored.Eta = eta
	g.mu.Unlock()

	sdk.LoggerFrom(ctx).Infow("Proposal queued",
		"id", id.Hex(), "operation", opID.Hex(), "delay", delay.String(), "eta", eta.UTC().Format(time.RFC3339))

	return opID, nil
}

func (g *Governor) schedule(
	ctx context.Context, tl sdk.TimelockController, calls []types.Call, salt common.Hash, delay time.Duration,
) (time.Time, error) {
	opID, err := tl.ScheduleBatch(ctx, g.address, calls, common.Hash{}, salt, delay)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to schedule proposal: %w", err)
	}

	eta, err := tl.GetTimestamp(ctx, opID)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read operation timestamp: %w", err)
	}

	return eta, nil
}

// Execute runs a queued proposal through the timelock. The proposal is marked executed first and
// the mark is cleared if the timelock execution fails without consuming the operation.
func (g *Governor) Execute(
	ctx context.Context, targets []common.Address, values []*big.Int, calldatas [][]byte, descriptionHash common.Hash,
) (common.Hash, error) {
	id, err := HashProposal(targets, values, calldatas, descriptionHash)
	if err != nil {
		return common.Hash{}, err
	}
	p, state, err := g.snapshot(ctx, id)
	if err != nil {
		return common.Hash{}, err
	}
	if state != types.ProposalStateQueued {
		return common.Hash{}, NewUnexpectedStateError(id, state, ErrProposalNotQueued)
	}

	g.mu.Lock()
	stored := g.proposals[id]
	if stored.Executed {
		g.mu.Unlock()
		return common.Hash{}, fmt.Errorf("%w: %s", ErrProposalAlreadyExecuting, id.Hex())
	}
	stored.Executed = true
	g.mu.Unlock()

	tl := g.Timelock()
	salt := TimelockSalt(g.address, descriptionHash)
	err = tl.ExecuteBatch(ctx, g.address, p.Calls(), common.Hash{}, salt)
	if err != nil {
		// A batch that failed after its first call stays consumed in the timelock, and so does the proposal.
		if done, derr := tl.IsOperationDone(ctx, p.OperationID); derr != nil || !done {
			g.mu.Lock()
			stored.Executed = false
			g.mu.Unlock()
		}

		return common.Hash{}, fmt.Errorf("failed to execute proposal %s: %w", id.Hex(), err)
	}

	sdk.LoggerFrom(ctx).Infow("Proposal executed", "id", id.Hex())

	return id, nil
}

// Cancel withdraws a proposal before voting opens. Only the proposer may cancel.
func (g *Governor) Cancel(
	ctx context.Context,
	caller common.Address,
	targets []common.Address,
	values []*big.Int,
	calldatas [][]byte,
	descriptionHash common.Hash,
) (common.Hash, error) {
	id, err := HashProposal(targets, values, calldatas, descriptionHash)
	if err != nil {
		return common.Hash{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.proposals[id]
	if !ok {
		return common.Hash{}, NewUnknownProposalError(id)
	}
	// A pending proposal has no timelock operation, so its state needs no timelock lookup.
	if p.Canceled || !g.clock.Now().Before(p.VoteStart) {
		return common.Hash{}, ErrTooLateToCancel
	}
	if caller != p.Proposer {
		return common.Hash{}, ErrOnlyProposer
	}
	p.Canceled = true

	sdk.LoggerFrom(ctx).Infow("Proposal canceled", "id", id.Hex(), "sender", caller.Hex())

	return id, nil
}

// State returns the lifecycle state of proposal id.
func (g *Governor) State(ctx context.Context, id common.Hash) (types.ProposalState, error) {
	_, state, err := g.snapshot(ctx, id)
	return state, err
}

// snapshot returns a copy of the proposal together with its state. The timelock is queried
// without holding the governor lock.
func (g *Governor) snapshot(ctx context.Context, id common.Hash) (*Proposal, types.ProposalState, error) {
	g.mu.Lock()
	stored, ok := g.proposals[id]
	if !ok {
		g.mu.Unlock()
		return nil, 0, NewUnknownProposalError(id)
	}
	p := stored.clone()
	quorum := g.quorum.Clone()
	grace := g.gracePeriod
	tl := g.timelock
	now := g.clock.Now()
	g.mu.Unlock()

	switch {
	case p.Executed:
		return p, types.ProposalStateExecuted, nil
	case p.Canceled:
		return p, types.ProposalStateCanceled, nil
	case now.Before(p.VoteStart):
		return p, types.ProposalStatePending, nil
	case now.Before(p.VoteEnd):
		return p, types.ProposalStateActive, nil
	case !g.tally.VoteSucceeded(id, quorum, p.ThresholdTier):
		return p, types.ProposalStateDefeated, nil
	case p.Eta.IsZero():
		return p, types.ProposalStateSucceeded, nil
	}

	done, err := tl.IsOperationDone(ctx, p.OperationID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read timelock operation: %w", err)
	}
	if done {
		return p, types.ProposalStateExecuted, nil
	}

	pending, err := tl.IsOperationPending(ctx, p.OperationID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read timelock operation: %w", err)
	}
	if !pending {
		return p, types.ProposalStateCanceled, nil
	}
	if grace > 0 && now.After(p.Eta.Add(grace)) {
		return p, types.ProposalStateExpired, nil
	}

	return p, types.ProposalStateQueued, nil
}
