package timelock

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/divadao/divagov/bindings"
	"github.com/divadao/divagov/internal/utils/safecast"
	sdkerrors "github.com/divadao/divagov/sdk/errors"
	"github.com/divadao/divagov/types"
)

// Call executes calldata against the timelock entry points. The hashing and getter entry points
// are views and have no effect.
func (t *Timelock) Call(ctx context.Context, caller common.Address, value *big.Int, data []byte) error {
	if value != nil && value.Sign() != 0 {
		return sdkerrors.ErrNonPayable
	}

	method, args, err := bindings.Decode(bindings.TimelockMetaData, data)
	if err != nil {
		sel, _ := types.SelectorOf(data)
		return fmt.Errorf("%w: %w", sdkerrors.NewUnknownSelectorError(t.address, sel.String()), err)
	}

	switch method.Name {
	case "schedule":
		delay, err := secondsArg(args[5])
		if err != nil {
			return err
		}
		call := types.NewCall(args[0].(common.Address), args[1].(*big.Int), args[2].([]byte))
		_, err = t.Schedule(ctx, caller, call, hashArg(args[3]), hashArg(args[4]), delay)

		return err
	case "scheduleBatch":
		calls, err := callsArg(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		delay, err := secondsArg(args[5])
		if err != nil {
			return err
		}
		_, err = t.ScheduleBatch(ctx, caller, calls, hashArg(args[3]), hashArg(args[4]), delay)

		return err
	case "execute":
		call := types.NewCall(args[0].(common.Address), args[1].(*big.Int), args[2].([]byte))
		return t.Execute(ctx, caller, call, hashArg(args[3]), hashArg(args[4]))
	case "executeBatch":
		calls, err := callsArg(args[0], args[1], args[2])
		if err != nil {
			return err
		}

		return t.ExecuteBatch(ctx, caller, calls, hashArg(args[3]), hashArg(args[4]))
	case "cancel":
		return t.Cancel(ctx, caller, hashArg(args[0]))
	case "updateDelay":
		delay, err := secondsArg(args[0])
		if err != nil {
			return err
		}

		return t.UpdateDelay(ctx, caller, delay)
	case "initialiseAndRevokeAdminRole":
		return t.InitialiseAndRevokeAdminRole(ctx, caller, args[0].(common.Address))
	case "hashOperation", "hashOperationBatch", "getMinDelay":
		return nil
	default:
		return sdkerrors.NewUnknownSelectorError(t.address, method.Sig)
	}
}

func hashArg(v any) common.Hash {
	return common.Hash(v.([32]byte))
}

func secondsArg(v any) (time.Duration, error) {
	seconds, err := safecast.BigToUint64(v.(*big.Int))
	if err != nil {
		return 0, fmt.Errorf("%w: delay: %w", sdkerrors.ErrValidation, err)
	}
	d, err := types.DurationFromSeconds(seconds)
	if err != nil {
		return 0, fmt.Errorf("%w: delay: %w", sdkerrors.ErrValidation, err)
	}

	return d.Duration, nil
}

func callsArg(targets, values, payloads any) ([]types.Call, error) {
	ts := targets.([]common.Address)
	vs := values.([]*big.Int)
	ps := payloads.([][]byte)
	if len(ts) != len(vs) || len(ts) != len(ps) {
		return nil, fmt.Errorf("%w: %d targets, %d values, %d payloads", ErrLengthMismatch, len(ts), len(vs), len(ps))
	}

	calls := make([]types.Call, len(ts))
	for i := range ts {
		calls[i] = types.NewCall(ts[i], vs[i], ps[i])
	}

	return calls, nil
}
