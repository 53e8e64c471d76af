// Package ledger implements the governance token: balances with a transfer pause, delegated voting
// power with time checkpoints, and the one-shot distribution that bootstraps supply.
package ledger

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/divadao/divagov/sdk"
	"github.com/divadao/divagov/types"
)

// DefaultTransferLockPeriod is how long transfers stay paused after deployment at the least.
const DefaultTransferLockPeriod = 10 * 7 * 24 * time.Hour

// Distribution is an amount minted to an account by the initial distribution.
type Distribution struct {
	To     common.Address `json:"to"`
	Amount *uint256.Int   `json:"amount"`
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the clock used for checkpoints and the transfer lock. Defaults to the wall clock.
func WithClock(c clock.Clock) Option {
	return func(l *Ledger) {
		l.clock = c
	}
}

var _ sdk.VotingPowerSource = (*Ledger)(nil)
var _ sdk.ClaimLedger = (*Ledger)(nil)
var _ sdk.Callable = (*Ledger)(nil)

// Ledger is the governance token.
type Ledger struct {
	mu sync.Mutex

	address          common.Address
	name             string
	symbol           string
	initialSupply    *uint256.Int
	maxSupply        *uint256.Int
	foundationMinter common.Address
	lockPeriod       time.Duration

	clock      clock.Clock
	deployedAt time.Time

	owner            common.Address
	distributor      common.Address
	distributed      bool
	foundationMinted bool
	paused           bool

	totalSupply uint256.Int
	balances    map[common.Address]*uint256.Int
	allowances  map[common.Address]map[common.Address]*uint256.Int
	delegates   map[common.Address]common.Address
	votes       map[common.Address]history
	supply      history
}

// New deploys a ledger at address owned by deployer. Transfers start paused. The foundation minter
// defaults to deployer.
func New(address, deployer common.Address, cfg types.LedgerConfig, opts ...Option) (*Ledger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deployer == (common.Address{}) {
		return nil, fmt.Errorf("%w: deployer", ErrZeroAddress)
	}

	l := &Ledger{
		address:          address,
		name:             cfg.Name,
		symbol:           cfg.Symbol,
		initialSupply:    uint256.MustFromBig((*big.Int)(cfg.InitialSupply)),
		maxSupply:        uint256.MustFromBig((*big.Int)(cfg.TotalSupply)),
		foundationMinter: cfg.FoundationMinter,
		lockPeriod:       cfg.TransferLockPeriod.Duration,
		clock:            clock.New(),
		owner:            deployer,
		paused:           true,
		balances:         make(map[common.Address]*uint256.Int),
		allowances:       make(map[common.Address]map[common.Address]*uint256.Int),
		delegates:        make(map[common.Address]common.Address),
		votes:            make(map[common.Address]history),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.foundationMinter == (common.Address{}) {
		l.foundationMinter = deployer
	}
	if l.lockPeriod == 0 {
		l.lockPeriod = DefaultTransferLockPeriod
	}
	l.deployedAt = l.clock.Now()

	return l, nil
}

func (l *Ledger) Address() common.Address { return l.address }
func (l *Ledger) Name() string            { return l.name }
func (l *Ledger) Symbol() string          { return l.symbol }
func (l *Ledger) Decimals() uint8         { return 18 }

// Owner returns the account allowed to pause, unpause and mint the foundation distribution.
func (l *Ledger) Owner() common.Address {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.owner
}

// Distributor returns the account exempt from the transfer pause and allowed to delegate on behalf
// of claimants.
func (l *Ledger) Distributor() common.Address {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.distributor
}

func (l *Ledger) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.paused
}

func (l *Ledger) TotalSupply() *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.totalSupply.Clone()
}

func (l *Ledger) BalanceOf(_ context.Context, account common.Address) (*uint256.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balanceLocked(account).Clone(), nil
}

// Allowance returns what spender may still move from owner.
func (l *Ledger) Allowance(owner, spender common.Address) *uint256.Int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.allowanceLocked(owner, spender).Clone()
}

// DistributeAndTransferOwnership mints the initial supply once and hands the ledger to newOwner.
// The distributions plus the airdrop must add up to the configured initial supply exactly. The
// airdrop recipient becomes the distributor.
func (l *Ledger) DistributeAndTransferOwnership(
	ctx context.Context, caller common.Address, distributions []Distribution, airdrop Distribution, newOwner common.Address,
) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.owner {
		return ErrNotOwner
	}
	if newOwner == (common.Address{}) {
		return fmt.Errorf("%w: new owner", ErrZeroAddress)
	}
	if airdrop.To == (common.Address{}) {
		return fmt.Errorf("%w: airdrop recipient", ErrZeroAddress)
	}

	all := append(append(make([]Distribution, 0, len(distributions)+1), distributions...), airdrop)
	sum := l.totalSupply.Clone()
	for i, d := range all {
		if d.To == (common.Address{}) {
			return fmt.Errorf("%w: distribution %d", ErrZeroAddress, i)
		}
		if d.Amount == nil {
			continue
		}
		if _, overflow := sum.AddOverflow(sum, d.Amount); overflow {
			return NewInvalidTotalSupplyError(sum, l.initialSupply)
		}
	}
	if l.distributed || !sum.Eq(l.initialSupply) {
		return NewInvalidTotalSupplyError(sum, l.initialSupply)
	}

	for _, d := range all {
		if d.Amount != nil && !d.Amount.IsZero() {
			l.mintLocked(d.To, d.Amount)
		}
	}
	l.distributor = airdrop.To
	l.distributed = true
	previous := l.owner
	l.owner = newOwner

	sdk.LoggerFrom(ctx).Infow("Initial distribution minted",
		"supply", l.totalSupply.Dec(), "distributor", airdrop.To.Hex(), "previousOwner", previous.Hex(), "newOwner", newOwner.Hex())

	return nil
}

// MintFoundationDistribution mints the remainder up to the configured total supply to to. Only the
// foundation minter may call it, once.
func (l *Ledger) MintFoundationDistribution(ctx context.Context, caller common.Address, to common.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.foundationMinter {
		return ErrOnlyFoundationMinter
	}
	if to == (common.Address{}) {
		return fmt.Errorf("%w: foundation recipient", ErrZeroAddress)
	}
	if l.foundationMinted || !l.totalSupply.Lt(l.maxSupply) {
		return NewInvalidTotalSupplyError(&l.totalSupply, l.maxSupply)
	}

	amount := new(uint256.Int).Sub(l.maxSupply, &l.totalSupply)
	l.mintLocked(to, amount)
	l.foundationMinted = true

	sdk.LoggerFrom(ctx).Infow("Foundation distribution minted", "to", to.Hex(), "amount", amount.Dec())

	return nil
}

// Unpause lifts the transfer restriction. Owner only, and not before the lock period has elapsed
// since deployment.
func (l *Ledger) Unpause(ctx context.Context, caller common.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.owner {
		return ErrNotOwner
	}
	unlockAt := l.deployedAt.Add(l.lockPeriod)
	if l.clock.Now().Before(unlockAt) {
		return fmt.Errorf("%w: allowed from %s", ErrTransferabilityCannotBeEnabled, unlockAt.UTC().Format(time.RFC3339))
	}
	l.paused = false

	sdk.LoggerFrom(ctx).Infof("Token transfers unpaused by %s", caller.Hex())

	return nil
}

func (l *Ledger) Transfer(_ context.Context, caller common.Address, to common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.transferLocked(caller, to, amount)
}

func (l *Ledger) Approve(_ context.Context, caller common.Address, spender common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.approveLocked(caller, spender, amount)
}

func (l *Ledger) IncreaseAllowance(_ context.Context, caller common.Address, spender common.Address, added *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var next uint256.Int
	if _, overflow := next.AddOverflow(l.allowanceLocked(caller, spender), added); overflow {
		return fmt.Errorf("%w: allowance overflows", ErrInsufficientAllowance)
	}

	return l.approveLocked(caller, spender, &next)
}

func (l *Ledger) DecreaseAllowance(_ context.Context, caller common.Address, spender common.Address, subtracted *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := l.allowanceLocked(caller, spender)
	if current.Lt(subtracted) {
		return ErrAllowanceBelowZero
	}

	return l.approveLocked(caller, spender, new(uint256.Int).Sub(current, subtracted))
}

// TransferFrom moves amount from from to to on behalf of caller, spending caller's allowance.
func (l *Ledger) TransferFrom(_ context.Context, caller, from, to common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	allowance := l.allowanceLocked(from, caller)
	infinite := allowance.Eq(new(uint256.Int).SetAllOne())
	if !infinite && allowance.Lt(amount) {
		return ErrInsufficientAllowance
	}
	if err := l.transferLocked(from, to, amount); err != nil {
		return err
	}
	if infinite {
		return nil
	}

	return l.approveLocked(from, caller, new(uint256.Int).Sub(allowance, amount))
}

// Burn destroys amount of caller's balance. Allowed while transfers are paused.
func (l *Ledger) Burn(_ context.Context, caller common.Address, amount *uint256.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.balanceLocked(caller)
	if balance.Lt(amount) {
		return fmt.Errorf("%w: burn of %s", ErrInsufficientBalance, amount.Dec())
	}

	balance.Sub(balance, amount)
	l.totalSupply.Sub(&l.totalSupply, amount)
	l.supply = l.supply.push(l.clock.Now(), &l.totalSupply)
	l.moveVotingPowerLocked(l.delegates[caller], common.Address{}, amount)

	return nil
}

func (l *Ledger) transferLocked(from, to common.Address, amount *uint256.Int) error {
	if from == (common.Address{}) || to == (common.Address{}) {
		return fmt.Errorf("%w: transfer from %s to %s", ErrZeroAddress, from.Hex(), to.Hex())
	}
	if l.paused && from != l.distributor && to != l.distributor {
		return ErrProtocolPaused
	}

	balance := l.balanceLocked(from)
	if balance.Lt(amount) {
		return fmt.Errorf("%w: balance %s, amount %s", ErrInsufficientBalance, balance.Dec(), amount.Dec())
	}

	balance.Sub(balance, amount)
	dst := l.balanceLocked(to)
	dst.Add(dst, amount)
	l.moveVotingPowerLocked(l.delegates[from], l.delegates[to], amount)

	return nil
}

func (l *Ledger) mintLocked(to common.Address, amount *uint256.Int) {
	dst := l.balanceLocked(to)
	dst.Add(dst, amount)
	l.totalSupply.Add(&l.totalSupply, amount)
	l.supply = l.supply.push(l.clock.Now(), &l.totalSupply)
	l.moveVotingPowerLocked(common.Address{}, l.delegates[to], amount)
}

func (l *Ledger) approveLocked(owner, spender common.Address, amount *uint256.Int) error {
	if spender == (common.Address{}) {
		return fmt.Errorf("%w: spender", ErrZeroAddress)
	}

	if l.allowances[owner] == nil {
		l.allowances[owner] = make(map[common.Address]*uint256.Int)
	}
	l.allowances[owner][spender] = amount.Clone()

	return nil
}

func (l *Ledger) balanceLocked(account common.Address) *uint256.Int {
	b, ok := l.balances[account]
	if !ok {
		b = new(uint256.Int)
		l.balances[account] = b
	}

	return b
}

func (l *Ledger) allowanceLocked(owner, spender common.Address) *uint256.Int {
	if a, ok := l.allowances[owner][spender]; ok {
		return a
	}

	return new(uint256.Int)
}
