package distributor

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/divadao/divagov/bindings"
	"github.com/divadao/divagov/internal/utils/safecast"
	sdkerrors "github.com/divadao/divagov/sdk/errors"
	"github.com/divadao/divagov/types"
)

// Call executes calldata against the distributor entry points.
func (d *Distributor) Call(ctx context.Context, _ common.Address, value *big.Int, data []byte) error {
	if value != nil && value.Sign() != 0 {
		return sdkerrors.ErrNonPayable
	}

	method, args, err := bindings.Decode(bindings.DistributorMetaData, data)
	if err != nil {
		sel, _ := types.SelectorOf(data)
		return fmt.Errorf("%w: %w", sdkerrors.NewUnknownSelectorError(d.address, sel.String()), err)
	}

	switch method.Name {
	case "claim", "claimAndDelegate":
		index, err := safecast.BigToUint64(args[0].(*big.Int))
		if err != nil {
			return fmt.Errorf("%w: index: %w", sdkerrors.ErrValidation, err)
		}
		amount, overflow := uint256.FromBig(args[2].(*big.Int))
		if overflow {
			return fmt.Errorf("%w: amount overflows", sdkerrors.ErrValidation)
		}
		proof := proofArg(args[3])
		if method.Name == "claim" {
			return d.Claim(ctx, index, args[1].(common.Address), amount, proof)
		}

		return d.ClaimAndDelegate(ctx, index, args[1].(common.Address), amount, proof, common.Hash(args[4].([32]byte)))
	case "withdraw":
		_, err := d.Withdraw(ctx)
		return err
	case "isClaimed":
		return nil
	default:
		return sdkerrors.NewUnknownSelectorError(d.address, method.Sig)
	}
}

func proofArg(v any) []common.Hash {
	raw := v.([][32]byte)
	proof := make([]common.Hash, len(raw))
	for i, p := range raw {
		proof[i] = p
	}

	return proof
}
