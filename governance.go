package divagov

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/divadao/divagov/internal/core/classifier"
	"github.com/divadao/divagov/sdk"
	sdkerrors "github.com/divadao/divagov/sdk/errors"
	"github.com/divadao/divagov/types"
)

// The setters below are only reachable from the bound timelock, so every change is the outcome of
// an executed proposal.

// SetVotingDelay changes the delay between proposal creation and the start of voting.
func (g *Governor) SetVotingDelay(ctx context.Context, caller common.Address, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: negative voting delay", sdkerrors.ErrValidation)
	}

	return g.update(ctx, caller, "VotingDelaySet", func() (any, any) {
		old := g.votingDelay
		g.votingDelay = d

		return old, d
	})
}

func (g *Governor) SetVotingPeriod(ctx context.Context, caller common.Address, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: voting period too low", sdkerrors.ErrValidation)
	}

	return g.update(ctx, caller, "VotingPeriodSet", func() (any, any) {
		old := g.votingPeriod
		g.votingPeriod = d

		return old, d
	})
}

func (g *Governor) SetProposalThreshold(ctx context.Context, caller common.Address, threshold *uint256.Int) error {
	return g.update(ctx, caller, "ProposalThresholdSet", func() (any, any) {
		old := g.proposalThreshold
		g.proposalThreshold = threshold.Clone()

		return old.Dec(), threshold.Dec()
	})
}

// UpdateQuorum changes the for plus abstain weight a proposal needs.
func (g *Governor) UpdateQuorum(ctx context.Context, caller common.Address, quorum *uint256.Int) error {
	return g.update(ctx, caller, "QuorumUpdated", func() (any, any) {
		old := g.quorum
		g.quorum = quorum.Clone()

		return old.Dec(), quorum.Dec()
	})
}

// UpdateGracePeriod changes how long a queued proposal stays executable once ready. Zero disables
// expiry.
func (g *Governor) UpdateGracePeriod(ctx context.Context, caller common.Address, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: negative grace period", sdkerrors.ErrValidation)
	}

	return g.update(ctx, caller, "GracePeriodUpdated", func() (any, any) {
		old := g.gracePeriod
		g.gracePeriod = d

		return old, d
	})
}

// UpdateDelay changes the duration of tier. The resulting tiers must still satisfy
// minDelay <= SHORT < DEFAULT < LONG, otherwise nothing changes.
func (g *Governor) UpdateDelay(ctx context.Context, caller common.Address, tier types.DelayTier, d time.Duration) error {
	if err := g.onlyGovernance(caller); err != nil {
		return err
	}
	if !tier.Valid() {
		return fmt.Errorf("%w: %d", types.ErrInvalidTier, tier)
	}
	minDelay, err := g.Timelock().GetMinDelay(ctx)
	if err != nil {
		return fmt.Errorf("failed to read timelock min delay: %w", err)
	}

	g.mu.Lock()
	next := g.delays.With(tier, d)
	if err := next.Validate(minDelay); err != nil {
		g.mu.Unlock()
		return err
	}
	old := g.delays.For(tier)
	g.delays = next
	g.mu.Unlock()

	sdk.LoggerFrom(ctx).Infow("Delay updated", "tier", tier.String(), "old", old.String(), "new", d.String())

	return nil
}

// UpdateTimelock moves execution to the timelock registered at address. The reserved cancellation
// target follows the new timelock.
func (g *Governor) UpdateTimelock(ctx context.Context, caller common.Address, address common.Address) error {
	if err := g.onlyGovernance(caller); err != nil {
		return err
	}
	if g.resolver == nil {
		return fmt.Errorf("%w: no resolver configured", ErrInvalidTimelock)
	}
	callable, ok := g.resolver.Resolve(address)
	if !ok {
		return fmt.Errorf("%w: nothing registered at %s", ErrInvalidTimelock, address.Hex())
	}
	next, ok := callable.(sdk.TimelockController)
	if !ok {
		return fmt.Errorf("%w: %s is not a timelock", ErrInvalidTimelock, address.Hex())
	}

	g.mu.Lock()
	old := g.timelock.Address()
	g.timelock = next
	g.classifier.SetCancelTarget(address)
	g.mu.Unlock()

	sdk.LoggerFrom(ctx).Infow("TimelockChange", "oldTimelock", old.Hex(), "newTimelock", address.Hex())

	return nil
}

// AddDelayConfiguration sets the delay tier of selectors.
func (g *Governor) AddDelayConfiguration(
	ctx context.Context, caller common.Address, selectors []types.Selector, delays []types.DelayTier,
) error {
	if err := g.onlyGovernance(caller); err != nil {
		return err
	}
	if err := g.classifier.ConfigureDelays(selectors, delays); err != nil {
		return err
	}

	sdk.LoggerFrom(ctx).Infow("Delay configuration added", "selectors", len(selectors))

	return nil
}

// AddThresholdConfiguration sets the threshold tier of selectors.
func (g *Governor) AddThresholdConfiguration(
	ctx context.Context, caller common.Address, selectors []types.Selector, thresholds []types.ThresholdTier,
) error {
	if err := g.onlyGovernance(caller); err != nil {
		return err
	}
	if err := g.classifier.ConfigureThresholds(selectors, thresholds); err != nil {
		return err
	}

	sdk.LoggerFrom(ctx).Infow("Threshold configuration added", "selectors", len(selectors))

	return nil
}

// SelectorConfiguration returns the selector table in insertion order.
func (g *Governor) SelectorConfiguration() []classifier.Entry {
	return g.classifier.Entries()
}

// Classify returns the tiers a proposal of calls would be given.
func (g *Governor) Classify(calls []types.Call) (types.DelayTier, types.ThresholdTier, error) {
	return g.classifier.Classify(calls)
}

func (g *Governor) update(ctx context.Context, caller common.Address, event string, apply func() (any, any)) error {
	if err := g.onlyGovernance(caller); err != nil {
		return err
	}

	g.mu.Lock()
	old, next := apply()
	g.mu.Unlock()

	sdk.LoggerFrom(ctx).Infow(event, "old", fmt.Sprint(old), "new", fmt.Sprint(next))

	return nil
}

func (g *Governor) onlyGovernance(caller common.Address) error {
	if caller != g.Timelock().Address() {
		return ErrOnlyGovernance
	}

	return nil
}
