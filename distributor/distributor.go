// Package distributor implements the merkle claim distributor: each allocation of the tree can be
// claimed once, together with self-delegation, until the claim window ends. Afterwards the
// remainder is swept to a fixed receiver.
package distributor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/bits-and-blooms/bitset"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/divadao/divagov/internal/core/merkle"
	"github.com/divadao/divagov/internal/utils/safecast"
	"github.com/divadao/divagov/sdk"
	sdkerrors "github.com/divadao/divagov/sdk/errors"
	"github.com/divadao/divagov/types"
)

var _ sdk.Callable = (*Distributor)(nil)

// Option configures a Distributor.
type Option func(*Distributor)

// WithClock sets the clock the claim window is checked against. Defaults to the wall clock.
func WithClock(c clock.Clock) Option {
	return func(d *Distributor) {
		d.clock = c
	}
}

// Distributor pays out merkle allocations from its own token balance.
type Distributor struct {
	mu      sync.Mutex
	claimed *bitset.BitSet

	address            common.Address
	token              sdk.ClaimLedger
	merkleRoot         common.Hash
	acceptanceHash     common.Hash
	endTime            time.Time
	nonClaimedReceiver common.Address

	clock clock.Clock
}

// New returns a distributor at address paying out of token. The claim window must end in the
// future.
func New(address common.Address, token sdk.ClaimLedger, cfg types.DistributorConfig, opts ...Option) (*Distributor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Distributor{
		claimed:            bitset.New(cfg.NumClaims),
		address:            address,
		token:              token,
		merkleRoot:         cfg.MerkleRoot,
		acceptanceHash:     cfg.AcceptanceHash,
		endTime:            cfg.EndTime,
		nonClaimedReceiver: cfg.NonClaimedReceiver,
		clock:              clock.New(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if now := d.clock.Now(); !d.endTime.After(now) {
		return nil, fmt.Errorf("%w: %s is not after %s", ErrEndTimeInPast,
			d.endTime.UTC().Format(time.RFC3339), now.UTC().Format(time.RFC3339))
	}

	return d, nil
}

func (d *Distributor) Address() common.Address            { return d.address }
func (d *Distributor) MerkleRoot() common.Hash            { return d.merkleRoot }
func (d *Distributor) AcceptanceHash() common.Hash        { return d.acceptanceHash }
func (d *Distributor) EndTime() time.Time                 { return d.endTime }
func (d *Distributor) NonClaimedReceiver() common.Address { return d.nonClaimedReceiver }

// IsClaimed reports whether the allocation at index has been claimed.
func (d *Distributor) IsClaimed(index uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.isClaimedLocked(index)
}

// Claim is never accepted. Allocations are claimed with ClaimAndDelegate so that claimed tokens
// always carry voting power.
func (d *Distributor) Claim(_ context.Context, index uint64, _ common.Address, _ *uint256.Int, _ []common.Hash) error {
	return NewClaimError(index, ErrNotUsingClaimAndDelegate)
}

// ClaimAndDelegate pays amount to account and self-delegates it, once per index, while the claim
// window is open. acceptanceHash must match the configured terms hash.
func (d *Distributor) ClaimAndDelegate(
	ctx context.Context,
	index uint64,
	account common.Address,
	amount *uint256.Int,
	proof []common.Hash,
	acceptanceHash common.Hash,
) error {
	bit, err := safecast.Uint64ToUint(index)
	if err != nil {
		return NewClaimError(index, fmt.Errorf("%w: %w", sdkerrors.ErrValidation, err))
	}

	d.mu.Lock()
	if err := d.checkClaimLocked(index, account, amount, proof, acceptanceHash); err != nil {
		d.mu.Unlock()
		return NewClaimError(index, err)
	}
	d.claimed.Set(bit)
	d.mu.Unlock()

	if err := d.payout(ctx, account, amount); err != nil {
		d.mu.Lock()
		d.claimed.Clear(bit)
		d.mu.Unlock()

		return NewClaimError(index, err)
	}

	sdk.LoggerFrom(ctx).Infow("Claimed", "index", index, "account", account.Hex(), "amount", amount.Dec())

	return nil
}

func (d *Distributor) checkClaimLocked(
	index uint64, account common.Address, amount *uint256.Int, proof []common.Hash, acceptanceHash common.Hash,
) error {
	if now := d.clock.Now(); now.After(d.endTime) {
		return ErrClaimWindowFinished
	}
	if acceptanceHash != d.acceptanceHash {
		return ErrInvalidAcceptanceHash
	}
	if d.isClaimedLocked(index) {
		return ErrAlreadyClaimed
	}
	if amount == nil || !merkle.VerifyProof(proof, d.merkleRoot, merkle.ClaimLeaf(index, account, amount)) {
		return ErrInvalidProof
	}

	return nil
}

// payout transfers and delegates. A failed delegation returns the transfer so the claim leaves no
// trace.
func (d *Distributor) payout(ctx context.Context, account common.Address, amount *uint256.Int) error {
	if err := d.token.Transfer(ctx, d.address, account, amount); err != nil {
		return fmt.Errorf("failed to transfer claim: %w", err)
	}
	if err := d.token.DelegateFromDistributor(ctx, d.address, account); err != nil {
		if rerr := d.token.Transfer(ctx, account, d.address, amount); rerr != nil {
			return fmt.Errorf("failed to delegate claim: %w (returning the transfer failed: %w)", err, rerr)
		}

		return fmt.Errorf("failed to delegate claim: %w", err)
	}

	return nil
}

// Withdraw sends the unclaimed balance to the non-claimed receiver once the claim window has
// finished, and returns the amount sent. Anyone may call it; once the balance is empty it sends
// nothing.
func (d *Distributor) Withdraw(ctx context.Context) (*uint256.Int, error) {
	if now := d.clock.Now(); !now.After(d.endTime) {
		return nil, fmt.Errorf("%w: window ends at %s", ErrNoWithdrawDuringClaim, d.endTime.UTC().Format(time.RFC3339))
	}

	balance, err := d.token.BalanceOf(ctx, d.address)
	if err != nil {
		return nil, fmt.Errorf("failed to read distributor balance: %w", err)
	}
	if balance.IsZero() {
		return balance, nil
	}
	if err := d.token.Transfer(ctx, d.address, d.nonClaimedReceiver, balance); err != nil {
		return nil, fmt.Errorf("failed to withdraw: %w", err)
	}

	sdk.LoggerFrom(ctx).Infow("Withdrawn", "receiver", d.nonClaimedReceiver.Hex(), "amount", balance.Dec())

	return balance, nil
}

func (d *Distributor) isClaimedLocked(index uint64) bool {
	i, err := safecast.Uint64ToUint(index)
	if err != nil {
		return false
	}

	return d.claimed.Test(i)
}
