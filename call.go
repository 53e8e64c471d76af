package divagov

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/divadao/divagov/bindings"
	"github.com/divadao/divagov/internal/utils/safecast"
	sdkerrors "github.com/divadao/divagov/sdk/errors"
	"github.com/divadao/divagov/types"
)

// Call executes calldata against the governor entry points. State and hash queries are views and
// have no effect.
func (g *Governor) Call(ctx context.Context, caller common.Address, value *big.Int, data []byte) error {
	if value != nil && value.Sign() != 0 {
		return sdkerrors.ErrNonPayable
	}

	method, args, err := bindings.Decode(bindings.GovernorMetaData, data)
	if err != nil {
		sel, _ := types.SelectorOf(data)
		return fmt.Errorf("%w: %w", sdkerrors.NewUnknownSelectorError(g.address, sel.String()), err)
	}

	switch method.Name {
	case "propose":
		_, err := g.Propose(ctx, caller, args[0].([]common.Address), args[1].([]*big.Int), args[2].([][]byte), args[3].(string))
		return err
	case "queue":
		_, err := g.Queue(ctx, args[0].([]common.Address), args[1].([]*big.Int), args[2].([][]byte), args[3].([32]byte))
		return err
	case "execute":
		_, err := g.Execute(ctx, args[0].([]common.Address), args[1].([]*big.Int), args[2].([][]byte), args[3].([32]byte))
		return err
	case "cancel":
		_, err := g.Cancel(ctx, caller, args[0].([]common.Address), args[1].([]*big.Int), args[2].([][]byte), args[3].([32]byte))
		return err
	case "castVote", "castVoteWithReason":
		reason := ""
		if method.Name == "castVoteWithReason" {
			reason = args[2].(string)
		}
		_, err := g.CastVoteWithReason(ctx, caller, common.BigToHash(args[0].(*big.Int)), types.VoteType(args[1].(uint8)), reason)

		return err
	case "setVotingDelay":
		return withDuration(args[0], func(d time.Duration) error { return g.SetVotingDelay(ctx, caller, d) })
	case "setVotingPeriod":
		return withDuration(args[0], func(d time.Duration) error { return g.SetVotingPeriod(ctx, caller, d) })
	case "updateGracePeriod":
		return withDuration(args[0], func(d time.Duration) error { return g.UpdateGracePeriod(ctx, caller, d) })
	case "updateShortDelay":
		return withDuration(args[0], func(d time.Duration) error { return g.UpdateDelay(ctx, caller, types.DelayTierShort, d) })
	case "updateDefaultDelay":
		return withDuration(args[0], func(d time.Duration) error { return g.UpdateDelay(ctx, caller, types.DelayTierDefault, d) })
	case "updateLongDelay":
		return withDuration(args[0], func(d time.Duration) error { return g.UpdateDelay(ctx, caller, types.DelayTierLong, d) })
	case "setProposalThreshold":
		return g.SetProposalThreshold(ctx, caller, uint256.MustFromBig(args[0].(*big.Int)))
	case "updateQuorum":
		return g.UpdateQuorum(ctx, caller, uint256.MustFromBig(args[0].(*big.Int)))
	case "updateTimelock":
		return g.UpdateTimelock(ctx, caller, args[0].(common.Address))
	case "addDelayConfiguration":
		delays := make([]types.DelayTier, 0, len(args[1].([]uint8)))
		for _, d := range args[1].([]uint8) {
			delays = append(delays, types.DelayTier(d))
		}

		return g.AddDelayConfiguration(ctx, caller, selectorsArg(args[0]), delays)
	case "addThresholdConfiguration":
		thresholds := make([]types.ThresholdTier, 0, len(args[1].([]uint8)))
		for _, th := range args[1].([]uint8) {
			thresholds = append(thresholds, types.ThresholdTier(th))
		}

		return g.AddThresholdConfiguration(ctx, caller, selectorsArg(args[0]), thresholds)
	case "hashProposal", "state":
		return nil
	default:
		return sdkerrors.NewUnknownSelectorError(g.address, method.Sig)
	}
}

func withDuration(v any, apply func(time.Duration) error) error {
	seconds, err := safecast.BigToUint64(v.(*big.Int))
	if err != nil {
		return fmt.Errorf("%w: %w", sdkerrors.ErrValidation, err)
	}
	d, err := types.DurationFromSeconds(seconds)
	if err != nil {
		return fmt.Errorf("%w: %w", sdkerrors.ErrValidation, err)
	}

	return apply(d.Duration)
}

func selectorsArg(v any) []types.Selector {
	raw := v.([][4]byte)
	selectors := make([]types.Selector, len(raw))
	for i, s := range raw {
		selectors[i] = s
	}

	return selectors
}
