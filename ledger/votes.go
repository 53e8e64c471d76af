package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/divadao/divagov/sdk"
)

// Delegate moves caller's voting power to delegatee. Works while transfers are paused.
func (l *Ledger) Delegate(ctx context.Context, caller common.Address, delegatee common.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.delegateLocked(ctx, caller, delegatee)

	return nil
}

// DelegateFromDistributor self-delegates account on behalf of the distributor.
func (l *Ledger) DelegateFromDistributor(ctx context.Context, caller common.Address, account common.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.distributor == (common.Address{}) || caller != l.distributor {
		return ErrOnlyDistributor
	}
	if account == (common.Address{}) {
		return fmt.Errorf("%w: delegator", ErrZeroAddress)
	}
	l.delegateLocked(ctx, account, account)

	return nil
}

// Delegates returns the account voting with account's balance, or the zero address.
func (l *Ledger) Delegates(account common.Address) common.Address {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.delegates[account]
}

// GetVotes returns the voting power currently delegated to account.
func (l *Ledger) GetVotes(_ context.Context, account common.Address) (*uint256.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.votes[account].latest(), nil
}

// GetPastVotes returns the voting power delegated to account at time at.
func (l *Ledger) GetPastVotes(_ context.Context, account common.Address, at time.Time) (*uint256.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkLookupLocked(at); err != nil {
		return nil, err
	}

	return l.votes[account].at(at), nil
}

// GetPastTotalSupply returns the total supply at time at.
func (l *Ledger) GetPastTotalSupply(_ context.Context, at time.Time) (*uint256.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkLookupLocked(at); err != nil {
		return nil, err
	}

	return l.supply.at(at), nil
}

func (l *Ledger) checkLookupLocked(at time.Time) error {
	if now := l.clock.Now(); at.After(now) {
		return fmt.Errorf("%w: %s is after %s", ErrFutureLookup, at.UTC().Format(time.RFC3339), now.UTC().Format(time.RFC3339))
	}

	return nil
}

func (l *Ledger) delegateLocked(ctx context.Context, delegator, delegatee common.Address) {
	previous := l.delegates[delegator]
	l.delegates[delegator] = delegatee
	l.moveVotingPowerLocked(previous, delegatee, l.balanceLocked(delegator))

	sdk.LoggerFrom(ctx).Infow("Delegate changed",
		"delegator", delegator.Hex(), "from", previous.Hex(), "to", delegatee.Hex())
}

func (l *Ledger) moveVotingPowerLocked(src, dst common.Address, amount *uint256.Int) {
	if src == dst || amount.IsZero() {
		return
	}

	now := l.clock.Now()
	if src != (common.Address{}) {
		next := l.votes[src].latest()
		next.Sub(next, amount)
		l.votes[src] = l.votes[src].push(now, next)
	}
	if dst != (common.Address{}) {
		next := l.votes[dst].latest()
		next.Add(next, amount)
		l.votes[dst] = l.votes[dst].push(now, next)
	}
}
