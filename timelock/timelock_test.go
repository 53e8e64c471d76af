package timelock

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/divadao/divagov/bindings"
	sdkerrors "github.com/divadao/divagov/sdk/errors"
	"github.com/divadao/divagov/sdk/mocks"
	"github.com/divadao/divagov/types"
)

var (
	timelockAddr = common.HexToAddress("0x7100")
	admin        = common.HexToAddress("0xad31")
	governor     = common.HexToAddress("0x9000")
	stranger     = common.HexToAddress("0x5555")
	target       = common.HexToAddress("0x7a76")

	minDelay = 2 * time.Hour
)

func testConfig() types.TimelockConfig {
	return types.TimelockConfig{MinDelay: types.NewDuration(minDelay), Admin: admin}
}

// newInitialisedTimelock returns a timelock handed over to governor.
func newInitialisedTimelock(t *testing.T, dispatcher *mocks.Dispatcher) (*Timelock, *clock.Mock) {
	t.Helper()

	clk := clock.NewMock()
	clk.Set(time.Unix(1_700_000_000, 0))

	tl, err := New(timelockAddr, testConfig(), dispatcher, WithClock(clk))
	require.NoError(t, err)
	require.NoError(t, tl.InitialiseAndRevokeAdminRole(context.Background(), admin, governor))

	return tl, clk
}

func testCalls() []types.Call {
	return []types.Call{
		types.NewCall(target, nil, []byte{0x01, 0x02, 0x03, 0x04}),
		types.NewCall(target, big.NewInt(0), []byte{0x05, 0x06, 0x07, 0x08, 0x09}),
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tl, err := New(timelockAddr, testConfig(), mocks.NewDispatcher(t))
	require.NoError(t, err)
	assert.Equal(t, timelockAddr, tl.Address())
	assert.True(t, tl.HasRole(types.RoleAdmin, admin))
	assert.True(t, tl.HasRole(types.RoleAdmin, timelockAddr))

	delay, err := tl.GetMinDelay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, minDelay, delay)

	_, err = New(timelockAddr, types.TimelockConfig{MinDelay: types.NewDuration(time.Hour)}, mocks.NewDispatcher(t))
	require.ErrorIs(t, err, types.ErrInvalidConfig)
}

func TestTimelock_InitialiseAndRevokeAdminRole(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tl, err := New(timelockAddr, testConfig(), mocks.NewDispatcher(t))
	require.NoError(t, err)

	err = tl.InitialiseAndRevokeAdminRole(ctx, stranger, governor)
	var missing *sdkerrors.MissingRoleError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, stranger, missing.Account)
	assert.Equal(t, "admin", missing.Role)

	err = tl.InitialiseAndRevokeAdminRole(ctx, admin, common.Address{})
	require.ErrorIs(t, err, ErrFailToInitialise)
	assert.True(t, tl.HasRole(types.RoleAdmin, admin))
	assert.False(t, tl.HasRole(types.RoleProposer, common.Address{}))

	require.NoError(t, tl.GrantRole(ctx, admin, types.RoleAdmin, stranger))
	require.NoError(t, tl.InitialiseAndRevokeAdminRole(ctx, admin, governor))
	assert.False(t, tl.HasRole(types.RoleAdmin, stranger))
	assert.True(t, tl.HasRole(types.RoleAdmin, timelockAddr))
	for _, role := range []types.Role{types.RoleProposer, types.RoleExecutor, types.RoleCanceller} {
		assert.True(t, tl.HasRole(role, governor), role.String())
	}
	assert.True(t, tl.HasRole(types.RoleCanceller, timelockAddr))
	assert.False(t, tl.HasRole(types.RoleAdmin, admin))

	err = tl.InitialiseAndRevokeAdminRole(ctx, timelockAddr, stranger)
	require.ErrorIs(t, err, ErrAlreadyInitialised)
	require.ErrorIs(t, err, sdkerrors.ErrIntegrity)
	assert.False(t, tl.HasRole(types.RoleProposer, stranger))
}

func TestTimelock_ScheduleBatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		caller  common.Address
		delay   time.Duration
		wantErr error
	}{
		{name: "success", caller: governor, delay: minDelay},
		{name: "not proposer", caller: stranger, delay: minDelay, wantErr: sdkerrors.ErrAuthorization},
		{name: "delay below minimum", caller: governor, delay: minDelay - time.Second, wantErr: ErrInsufficientDelay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			tl, clk := newInitialisedTimelock(t, mocks.NewDispatcher(t))

			id, err := tl.ScheduleBatch(ctx, tt.caller, testCalls(), common.Hash{}, common.Hash{0x01}, tt.delay)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				isOp, err := tl.IsOperation(ctx, id)
				require.NoError(t, err)
				assert.False(t, isOp)

				return
			}
			require.NoError(t, err)

			want, err := HashOperationBatch(testCalls(), common.Hash{}, common.Hash{0x01})
			require.NoError(t, err)
			assert.Equal(t, want, id)

			readyAt, err := tl.GetTimestamp(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, clk.Now().Add(tt.delay), readyAt)

			pending, err := tl.IsOperationPending(ctx, id)
			require.NoError(t, err)
			assert.True(t, pending)

			_, err = tl.ScheduleBatch(ctx, tt.caller, testCalls(), common.Hash{}, common.Hash{0x01}, tt.delay)
			var stateErr *OperationStateError
			require.ErrorAs(t, err, &stateErr)
			assert.Equal(t, id, stateErr.ID)
			require.ErrorIs(t, err, sdkerrors.ErrIntegrity)
		})
	}
}

func TestTimelock_ExecuteBatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dispatcher := mocks.NewDispatcher(t)
	tl, clk := newInitialisedTimelock(t, dispatcher)

	calls := testCalls()
	salt := common.Hash{0x02}
	id, err := tl.ScheduleBatch(ctx, governor, calls, common.Hash{}, salt, minDelay)
	require.NoError(t, err)

	err = tl.ExecuteBatch(ctx, stranger, calls, common.Hash{}, salt)
	require.ErrorIs(t, err, sdkerrors.ErrAuthorization)

	clk.Add(minDelay - time.Second)
	err = tl.ExecuteBatch(ctx, governor, calls, common.Hash{}, salt)
	require.ErrorIs(t, err, ErrOperationNotReady)
	require.ErrorIs(t, err, sdkerrors.ErrTemporal)

	clk.Add(time.Second)
	ready, err := tl.IsOperationReady(ctx, id)
	require.NoError(t, err)
	assert.True(t, ready)

	for _, call := range calls {
		dispatcher.EXPECT().Dispatch(mock.Anything, timelockAddr, call).Return(nil).Once()
	}
	require.NoError(t, tl.ExecuteBatch(ctx, governor, calls, common.Hash{}, salt))

	done, err := tl.IsOperationDone(ctx, id)
	require.NoError(t, err)
	assert.True(t, done)

	pending, err := tl.IsOperationPending(ctx, id)
	require.NoError(t, err)
	assert.False(t, pending)

	err = tl.ExecuteBatch(ctx, governor, calls, common.Hash{}, salt)
	require.ErrorIs(t, err, sdkerrors.ErrIntegrity)
}

func TestTimelock_ExecuteBatch_Reverted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		failAt       int
		wantExecuted bool
	}{
		{name: "first call reverts", failAt: 0, wantExecuted: false},
		{name: "later call reverts", failAt: 1, wantExecuted: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			dispatcher := mocks.NewDispatcher(t)
			tl, clk := newInitialisedTimelock(t, dispatcher)

			calls := testCalls()
			id, err := tl.ScheduleBatch(ctx, governor, calls, common.Hash{}, common.Hash{}, minDelay)
			require.NoError(t, err)
			clk.Add(minDelay)

			failure := errors.New("execution reverted")
			for i := range tt.failAt {
				dispatcher.EXPECT().Dispatch(mock.Anything, timelockAddr, calls[i]).Return(nil).Once()
			}
			dispatcher.EXPECT().Dispatch(mock.Anything, timelockAddr, calls[tt.failAt]).Return(failure).Once()

			err = tl.ExecuteBatch(ctx, governor, calls, common.Hash{}, common.Hash{})
			require.ErrorIs(t, err, ErrUnderlyingTransactionReverted)
			require.ErrorIs(t, err, failure)

			op, ok := tl.Operation(id)
			require.True(t, ok)
			assert.Equal(t, tt.wantExecuted, op.Executed)
			assert.Equal(t, !tt.wantExecuted, op.Pending())

			if tt.wantExecuted {
				err = tl.ExecuteBatch(ctx, governor, calls, common.Hash{}, common.Hash{})
				require.ErrorIs(t, err, sdkerrors.ErrIntegrity)
			}
		})
	}
}

func TestTimelock_Execute_Predecessor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dispatcher := mocks.NewDispatcher(t)
	tl, clk := newInitialisedTimelock(t, dispatcher)

	first := types.NewCall(target, nil, []byte{0xaa, 0xbb, 0xcc, 0xdd})
	second := types.NewCall(target, nil, []byte{0x11, 0x22, 0x33, 0x44})

	firstID, err := tl.Schedule(ctx, governor, first, common.Hash{}, common.Hash{}, minDelay)
	require.NoError(t, err)
	_, err = tl.Schedule(ctx, governor, second, firstID, common.Hash{}, minDelay)
	require.NoError(t, err)
	clk.Add(minDelay)

	err = tl.Execute(ctx, governor, second, firstID, common.Hash{})
	require.ErrorIs(t, err, ErrMissingDependency)

	dispatcher.EXPECT().Dispatch(mock.Anything, timelockAddr, first).Return(nil).Once()
	dispatcher.EXPECT().Dispatch(mock.Anything, timelockAddr, second).Return(nil).Once()
	require.NoError(t, tl.Execute(ctx, governor, first, common.Hash{}, common.Hash{}))
	require.NoError(t, tl.Execute(ctx, governor, second, firstID, common.Hash{}))
}

func TestTimelock_Execute_NotScheduled(t *testing.T) {
	t.Parallel()

	tl, _ := newInitialisedTimelock(t, mocks.NewDispatcher(t))

	err := tl.Execute(context.Background(), governor, testCalls()[0], common.Hash{}, common.Hash{})
	var stateErr *OperationStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "not scheduled", stateErr.State)
}

func TestTimelock_Cancel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dispatcher := mocks.NewDispatcher(t)
	tl, clk := newInitialisedTimelock(t, dispatcher)

	calls := testCalls()
	id, err := tl.ScheduleBatch(ctx, governor, calls, common.Hash{}, common.Hash{}, minDelay)
	require.NoError(t, err)

	err = tl.Cancel(ctx, stranger, id)
	require.ErrorIs(t, err, sdkerrors.ErrAuthorization)

	require.NoError(t, tl.Cancel(ctx, governor, id))
	isOp, err := tl.IsOperation(ctx, id)
	require.NoError(t, err)
	assert.False(t, isOp)

	readyAt, err := tl.GetTimestamp(ctx, id)
	require.NoError(t, err)
	assert.True(t, readyAt.IsZero())

	require.ErrorIs(t, tl.Cancel(ctx, governor, id), ErrOperationCannotBeCancelled)

	// Executed operations cannot be cancelled.
	id, err = tl.ScheduleBatch(ctx, governor, calls, common.Hash{}, common.Hash{}, minDelay)
	require.NoError(t, err)
	clk.Add(minDelay)
	dispatcher.EXPECT().Dispatch(mock.Anything, timelockAddr, mock.Anything).Return(nil).Times(len(calls))
	require.NoError(t, tl.ExecuteBatch(ctx, governor, calls, common.Hash{}, common.Hash{}))

	err = tl.Cancel(ctx, governor, id)
	require.ErrorIs(t, err, ErrOperationCannotBeCancelled)
	require.ErrorIs(t, err, sdkerrors.ErrIntegrity)
}

// A scheduled operation may cancel another one through the timelock entry points while it executes.
func TestTimelock_ExecuteBatch_CancelsOtherOperation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dispatcher := mocks.NewDispatcher(t)
	tl, clk := newInitialisedTimelock(t, dispatcher)

	victim, err := tl.ScheduleBatch(ctx, governor, testCalls(), common.Hash{}, common.Hash{}, 10*minDelay)
	require.NoError(t, err)

	cancel := types.NewCall(timelockAddr, nil, bindings.MustPack(bindings.TimelockMetaData, "cancel", [32]byte(victim)))
	cancellation := []types.Call{cancel}
	_, err = tl.ScheduleBatch(ctx, governor, cancellation, common.Hash{}, common.Hash{}, minDelay)
	require.NoError(t, err)
	clk.Add(minDelay)

	dispatcher.EXPECT().Dispatch(mock.Anything, timelockAddr, cancel).
		RunAndReturn(func(ctx context.Context, caller common.Address, call types.Call) error {
			return tl.Call(ctx, caller, call.Value, call.Data)
		}).Once()

	require.NoError(t, tl.ExecuteBatch(ctx, governor, cancellation, common.Hash{}, common.Hash{}))

	isOp, err := tl.IsOperation(ctx, victim)
	require.NoError(t, err)
	assert.False(t, isOp)
}

func TestTimelock_UpdateDelay(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tl, _ := newInitialisedTimelock(t, mocks.NewDispatcher(t))

	data := bindings.MustPack(bindings.TimelockMetaData, "updateDelay", big.NewInt(3600))

	err := tl.Call(ctx, governor, nil, data)
	require.ErrorIs(t, err, ErrCallerNotTimelock)

	require.NoError(t, tl.Call(ctx, timelockAddr, big.NewInt(0), data))
	delay, err := tl.GetMinDelay(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, delay)

	require.ErrorIs(t, tl.UpdateDelay(ctx, timelockAddr, -time.Second), ErrInsufficientDelay)
}

func TestTimelock_Call(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tl, _ := newInitialisedTimelock(t, mocks.NewDispatcher(t))

	calls := testCalls()
	targets, values, payloads := types.SplitCalls(calls)
	data := bindings.MustPack(bindings.TimelockMetaData, "scheduleBatch",
		targets, values, payloads, [32]byte{}, [32]byte{0x03}, big.NewInt(int64(minDelay/time.Second)))
	require.NoError(t, tl.Call(ctx, governor, nil, data))

	id, err := HashOperationBatch(calls, common.Hash{}, common.Hash{0x03})
	require.NoError(t, err)
	pending, err := tl.IsOperationPending(ctx, id)
	require.NoError(t, err)
	assert.True(t, pending)

	require.ErrorIs(t, tl.Call(ctx, governor, big.NewInt(1), data), sdkerrors.ErrNonPayable)

	err = tl.Call(ctx, governor, nil, []byte{0xca, 0xfe, 0xba, 0xbe})
	var unknown *sdkerrors.UnknownSelectorError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, timelockAddr, unknown.Target)

	view := bindings.MustPack(bindings.TimelockMetaData, "getMinDelay")
	require.NoError(t, tl.Call(ctx, stranger, nil, view))
}

func TestHashOperation(t *testing.T) {
	t.Parallel()

	call := testCalls()[0]

	a, err := HashOperation(call, common.Hash{}, common.Hash{})
	require.NoError(t, err)
	b, err := HashOperation(call, common.Hash{}, common.Hash{0x01})
	require.NoError(t, err)
	c, err := HashOperationBatch([]types.Call{call}, common.Hash{}, common.Hash{})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c, "single and batch ids use different encodings")

	again, err := HashOperation(call, common.Hash{}, common.Hash{})
	require.NoError(t, err)
	assert.Equal(t, a, again)
}

func TestHashOperation_NegativeValue(t *testing.T) {
	t.Parallel()

	call := types.NewCall(target, big.NewInt(-1), []byte{0x01})

	_, err := HashOperation(call, common.Hash{}, common.Hash{})
	require.ErrorIs(t, err, types.ErrInvalidCallValue)
	_, err = HashOperationBatch([]types.Call{call}, common.Hash{}, common.Hash{})
	require.ErrorIs(t, err, types.ErrInvalidCallValue)
}
