package ledger

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/divadao/divagov/bindings"
	sdkerrors "github.com/divadao/divagov/sdk/errors"
	"github.com/divadao/divagov/types"
)

// Call executes calldata against the token entry points. Read-only entry points are accepted and
// have no effect.
func (l *Ledger) Call(ctx context.Context, caller common.Address, value *big.Int, data []byte) error {
	if value != nil && value.Sign() != 0 {
		return sdkerrors.ErrNonPayable
	}

	method, args, err := bindings.Decode(bindings.TokenMetaData, data)
	if err != nil {
		sel, _ := types.SelectorOf(data)
		return fmt.Errorf("%w: %w", sdkerrors.NewUnknownSelectorError(l.address, sel.String()), err)
	}

	switch method.Name {
	case "transfer":
		return l.Transfer(ctx, caller, args[0].(common.Address), amountArg(args[1]))
	case "approve":
		return l.Approve(ctx, caller, args[0].(common.Address), amountArg(args[1]))
	case "transferFrom":
		return l.TransferFrom(ctx, caller, args[0].(common.Address), args[1].(common.Address), amountArg(args[2]))
	case "increaseAllowance":
		return l.IncreaseAllowance(ctx, caller, args[0].(common.Address), amountArg(args[1]))
	case "decreaseAllowance":
		return l.DecreaseAllowance(ctx, caller, args[0].(common.Address), amountArg(args[1]))
	case "burn":
		return l.Burn(ctx, caller, amountArg(args[0]))
	case "unpause":
		return l.Unpause(ctx, caller)
	case "delegate":
		return l.Delegate(ctx, caller, args[0].(common.Address))
	case "delegateFromMerkleDistributor":
		return l.DelegateFromDistributor(ctx, caller, args[0].(common.Address))
	case "mintFoundationDistribution":
		return l.MintFoundationDistribution(ctx, caller, args[0].(common.Address))
	case "balanceOf", "getVotes":
		return nil
	default:
		return sdkerrors.NewUnknownSelectorError(l.address, method.Sig)
	}
}

func amountArg(v any) *uint256.Int {
	return uint256.MustFromBig(v.(*big.Int))
}
