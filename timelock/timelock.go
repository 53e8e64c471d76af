// Package timelock implements the delay-enforcing executor of governance decisions. Operations are
// scheduled with a ready time and executed by an explicit call once that time has passed.
package timelock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"

	"github.com/divadao/divagov/sdk"
	sdkerrors "github.com/divadao/divagov/sdk/errors"
	"github.com/divadao/divagov/types"
)

var _ sdk.TimelockController = (*Timelock)(nil)
var _ sdk.Callable = (*Timelock)(nil)

// Option configures a Timelock.
type Option func(*Timelock)

// WithClock sets the clock readiness is checked against. Defaults to the wall clock.
func WithClock(c clock.Clock) Option {
	return func(t *Timelock) {
		t.clock = c
	}
}

// Timelock schedules operations and executes them through a dispatcher, as itself, once ready.
type Timelock struct {
	mu sync.Mutex

	address     common.Address
	minDelay    time.Duration
	roles       map[types.Role]map[common.Address]bool
	operations  map[common.Hash]*Operation
	initialized bool

	dispatcher sdk.Dispatcher
	clock      clock.Clock
}

// New returns a timelock at address. The configured admin and the timelock itself hold the admin
// role.
func New(address common.Address, cfg types.TimelockConfig, dispatcher sdk.Dispatcher, opts ...Option) (*Timelock, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Timelock{
		address:    address,
		minDelay:   cfg.MinDelay.Duration,
		roles:      make(map[types.Role]map[common.Address]bool),
		operations: make(map[common.Hash]*Operation),
		dispatcher: dispatcher,
		clock:      clock.New(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.grantRoleLocked(types.RoleAdmin, address)
	t.grantRoleLocked(types.RoleAdmin, cfg.Admin)

	return t, nil
}

func (t *Timelock) Address() common.Address {
	return t.address
}

// GetMinDelay returns the minimum delay an operation can be scheduled with.
func (t *Timelock) GetMinDelay(_ context.Context) (time.Duration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.minDelay, nil
}

// HasRole reports whether account holds role.
func (t *Timelock) HasRole(role types.Role, account common.Address) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.roles[role][account]
}

// GrantRole gives role to account. Admin only.
func (t *Timelock) GrantRole(ctx context.Context, caller common.Address, role types.Role, account common.Address) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkRoleLocked(types.RoleAdmin, caller); err != nil {
		return err
	}
	t.grantRoleLocked(role, account)

	sdk.LoggerFrom(ctx).Infow("Role granted", "role", role.String(), "account", account.Hex(), "sender", caller.Hex())

	return nil
}

// RevokeRole takes role from account. Admin only.
func (t *Timelock) RevokeRole(ctx context.Context, caller common.Address, role types.Role, account common.Address) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkRoleLocked(types.RoleAdmin, caller); err != nil {
		return err
	}
	delete(t.roles[role], account)

	sdk.LoggerFrom(ctx).Infow("Role revoked", "role", role.String(), "account", account.Hex(), "sender", caller.Hex())

	return nil
}

// InitialiseAndRevokeAdminRole hands the timelock to governor: it becomes proposer, executor and
// canceller, the timelock may cancel its own operations, and every admin other than the timelock
// itself loses the admin role. It can succeed only once.
func (t *Timelock) InitialiseAndRevokeAdminRole(ctx context.Context, caller common.Address, governor common.Address) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return ErrAlreadyInitialised
	}
	if err := t.checkRoleLocked(types.RoleAdmin, caller); err != nil {
		return err
	}
	if governor == (common.Address{}) {
		return ErrFailToInitialise
	}

	t.grantRoleLocked(types.RoleProposer, governor)
	t.grantRoleLocked(types.RoleExecutor, governor)
	t.grantRoleLocked(types.RoleCanceller, governor)
	t.grantRoleLocked(types.RoleCanceller, t.address)
	revoked := make([]string, 0, len(t.roles[types.RoleAdmin]))
	for account := range t.roles[types.RoleAdmin] {
		if account != t.address {
			delete(t.roles[types.RoleAdmin], account)
			revoked = append(revoked, account.Hex())
		}
	}
	t.initialized = true

	sdk.LoggerFrom(ctx).Infow("Timelock initialised", "governor", governor.Hex(), "revokedAdmins", revoked)

	return nil
}

// Schedule schedules a single call. Proposer only.
func (t *Timelock) Schedule(
	ctx context.Context, caller common.Address, call types.Call, predecessor, salt common.Hash, delay time.Duration,
) (common.Hash, error) {
	id, err := HashOperation(call, predecessor, salt)
	if err != nil {
		return common.Hash{}, err
	}

	return id, t.schedule(ctx, caller, id, delay)
}

// ScheduleBatch schedules calls as one operation. Proposer only.
func (t *Timelock) ScheduleBatch(
	ctx context.Context, caller common.Address, calls []types.Call, predecessor, salt common.Hash, delay time.Duration,
) (common.Hash, error) {
	id, err := HashOperationBatch(calls, predecessor, salt)
	if err != nil {
		return common.Hash{}, err
	}

	return id, t.schedule(ctx, caller, id, delay)
}

func (t *Timelock) schedule(ctx context.Context, caller common.Address, id common.Hash, delay time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkRoleLocked(types.RoleProposer, caller); err != nil {
		return err
	}
	if _, ok := t.operations[id]; ok {
		return NewAlreadyScheduledError(id)
	}
	if delay < t.minDelay {
		return fmt.Errorf("%w: %s is below the minimum of %s", ErrInsufficientDelay, delay, t.minDelay)
	}

	op := &Operation{ID: id, ReadyAt: t.clock.Now().Add(delay)}
	t.operations[id] = op

	sdk.LoggerFrom(ctx).Infow("Operation scheduled",
		"id", id.Hex(), "delay", delay.String(), "readyAt", op.ReadyAt.UTC().Format(time.RFC3339))

	return nil
}

// Execute runs a ready single call operation. Executor only.
func (t *Timelock) Execute(ctx context.Context, caller common.Address, call types.Call, predecessor, salt common.Hash) error {
	id, err := HashOperation(call, predecessor, salt)
	if err != nil {
		return err
	}

	return t.execute(ctx, caller, id, predecessor, []types.Call{call})
}

// ExecuteBatch runs a ready batch operation, dispatching its calls in order. Executor only.
func (t *Timelock) ExecuteBatch(ctx context.Context, caller common.Address, calls []types.Call, predecessor, salt common.Hash) error {
	id, err := HashOperationBatch(calls, predecessor, salt)
	if err != nil {
		return err
	}

	return t.execute(ctx, caller, id, predecessor, calls)
}

// execute marks the operation done before dispatching. The mark is cleared only when the first call
// fails: once a call has landed the operation stays consumed, so a retry cannot apply it twice. The
// lock is released during dispatch so calls may re-enter the timelock.
func (t *Timelock) execute(ctx context.Context, caller common.Address, id, predecessor common.Hash, calls []types.Call) error {
	t.mu.Lock()
	if err := t.checkRoleLocked(types.RoleExecutor, caller); err != nil {
		t.mu.Unlock()
		return err
	}
	op, err := t.readyLocked(id, predecessor)
	if err != nil {
		t.mu.Unlock()
		return err
	}
	op.Executed = true
	t.mu.Unlock()

	for i, call := range calls {
		if err := t.dispatcher.Dispatch(ctx, t.address, call); err != nil {
			if i == 0 {
				t.mu.Lock()
				op.Executed = false
				t.mu.Unlock()
			} else {
				sdk.LoggerFrom(ctx).Warnw("Operation partially executed", "id", id.Hex(), "failedCall", i, "calls", len(calls))
			}

			return fmt.Errorf("%w: call %d to %s: %w", ErrUnderlyingTransactionReverted, i, call.Target.Hex(), err)
		}
	}

	sdk.LoggerFrom(ctx).Infow("Operation executed", "id", id.Hex(), "calls", len(calls))

	return nil
}

func (t *Timelock) readyLocked(id, predecessor common.Hash) (*Operation, error) {
	op, ok := t.operations[id]
	if !ok {
		return nil, NewNotScheduledError(id)
	}
	if op.Executed {
		return nil, NewAlreadyExecutedError(id)
	}
	if now := t.clock.Now(); !op.Ready(now) {
		return nil, fmt.Errorf("%w: ready at %s", ErrOperationNotReady, op.ReadyAt.UTC().Format(time.RFC3339))
	}
	if predecessor != (common.Hash{}) {
		if dep, ok := t.operations[predecessor]; !ok || !dep.Executed {
			return nil, fmt.Errorf("%w: %s", ErrMissingDependency, predecessor.Hex())
		}
	}

	return op, nil
}

// Cancel removes a pending operation. Canceller only.
func (t *Timelock) Cancel(ctx context.Context, caller common.Address, id common.Hash) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.checkRoleLocked(types.RoleCanceller, caller); err != nil {
		return err
	}
	op, ok := t.operations[id]
	if !ok || !op.Pending() {
		return fmt.Errorf("%w: %s", ErrOperationCannotBeCancelled, id.Hex())
	}
	delete(t.operations, id)

	sdk.LoggerFrom(ctx).Infow("Operation cancelled", "id", id.Hex(), "sender", caller.Hex())

	return nil
}

// UpdateDelay changes the minimum delay. Only the timelock itself may call it, so a change must go
// through a scheduled operation.
func (t *Timelock) UpdateDelay(ctx context.Context, caller common.Address, newDelay time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if caller != t.address {
		return ErrCallerNotTimelock
	}
	if newDelay < 0 {
		return fmt.Errorf("%w: negative delay %s", ErrInsufficientDelay, newDelay)
	}
	previous := t.minDelay
	t.minDelay = newDelay

	sdk.LoggerFrom(ctx).Infow("Min delay changed", "oldDuration", previous.String(), "newDuration", newDelay.String())

	return nil
}

func (t *Timelock) HashOperation(call types.Call, predecessor, salt common.Hash) (common.Hash, error) {
	return HashOperation(call, predecessor, salt)
}

// HashOperationBatch returns the id calls would be scheduled under as a batch.
func (t *Timelock) HashOperationBatch(calls []types.Call, predecessor, salt common.Hash) (common.Hash, error) {
	return HashOperationBatch(calls, predecessor, salt)
}

// Operation returns a copy of the operation with id, if it is known.
func (t *Timelock) Operation(id common.Hash) (Operation, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	op, ok := t.operations[id]
	if !ok {
		return Operation{}, false
	}

	return *op, true
}

func (t *Timelock) IsOperation(_ context.Context, id common.Hash) (bool, error) {
	_, ok := t.Operation(id)
	return ok, nil
}

func (t *Timelock) IsOperationPending(_ context.Context, id common.Hash) (bool, error) {
	op, ok := t.Operation(id)
	return ok && op.Pending(), nil
}

func (t *Timelock) IsOperationReady(_ context.Context, id common.Hash) (bool, error) {
	op, ok := t.Operation(id)
	return ok && op.Ready(t.clock.Now()), nil
}

func (t *Timelock) IsOperationDone(_ context.Context, id common.Hash) (bool, error) {
	op, ok := t.Operation(id)
	return ok && op.Executed, nil
}

// GetTimestamp returns when the operation becomes ready. Unknown operations report the zero time.
func (t *Timelock) GetTimestamp(_ context.Context, id common.Hash) (time.Time, error) {
	op, _ := t.Operation(id)
	return op.ReadyAt, nil
}

func (t *Timelock) checkRoleLocked(role types.Role, account common.Address) error {
	if !t.roles[role][account] {
		return sdkerrors.NewMissingRoleError(account, role.String())
	}

	return nil
}

func (t *Timelock) grantRoleLocked(role types.Role, account common.Address) {
	if t.roles[role] == nil {
		t.roles[role] = make(map[common.Address]bool)
	}
	t.roles[role][account] = true
}
