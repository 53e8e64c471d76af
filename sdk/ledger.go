package sdk

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// VotingPowerSource reports delegated voting weight.
type VotingPowerSource interface {
	GetVotes(ctx context.Context, account common.Address) (*uint256.Int, error)

	// GetPastVotes returns the weight account held at the given time. Times after the current
	// clock are rejected.
	GetPastVotes(ctx context.Context, account common.Address, at time.Time) (*uint256.Int, error)
}

// ClaimLedger is the token surface used by the claim distributor.
type ClaimLedger interface {
	BalanceOf(ctx context.Context, account common.Address) (*uint256.Int, error)
	Transfer(ctx context.Context, caller common.Address, to common.Address, amount *uint256.Int) error

	// DelegateFromDistributor self-delegates account. Only the registered distributor may call it,
	// and it works while transfers are paused.
	DelegateFromDistributor(ctx context.Context, caller common.Address, account common.Address) error
}
