package distributor

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/divadao/divagov/bindings"
	"github.com/divadao/divagov/ledger"
	sdkerrors "github.com/divadao/divagov/sdk/errors"
	"github.com/divadao/divagov/sdk/mocks"
	"github.com/divadao/divagov/types"
)

var (
	tokenAddr       = common.HexToAddress("0x7070")
	distributorAddr = common.HexToAddress("0xd157")
	deployer        = common.HexToAddress("0xde9")
	receiver        = common.HexToAddress("0xfeed")
	treasury        = common.HexToAddress("0x7ea5")

	acceptanceHash = crypto.Keccak256Hash([]byte("I accept the terms of the Diva DAO token distribution"))
)

type fixture struct {
	distributor *Distributor
	ledger      *ledger.Ledger
	clock       *clock.Mock
	tree        *BalanceTree
	accounts    []common.Address
	endTime     time.Time
}

func allocations() map[common.Address]*uint256.Int {
	return map[common.Address]*uint256.Int{
		common.HexToAddress("0x3000000000000000000000000000000000000003"): uint256.NewInt(300),
		common.HexToAddress("0x1000000000000000000000000000000000000001"): uint256.NewInt(100),
		common.HexToAddress("0x2000000000000000000000000000000000000002"): uint256.NewInt(200),
	}
}

// newFixture deploys a paused ledger whose airdrop of 900 goes to a distributor of allocations().
func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx := context.Background()
	clk := clock.NewMock()
	clk.Set(time.Unix(1_700_000_000, 0))

	tree, err := NewBalanceTree(allocations())
	require.NoError(t, err)

	l, err := ledger.New(tokenAddr, deployer, types.LedgerConfig{
		Name:          "Diva Token",
		Symbol:        "DIVA",
		InitialSupply: (*math.HexOrDecimal256)(big.NewInt(1000)),
		TotalSupply:   (*math.HexOrDecimal256)(big.NewInt(1000)),
	}, ledger.WithClock(clk))
	require.NoError(t, err)
	require.NoError(t, l.DistributeAndTransferOwnership(ctx, deployer,
		[]ledger.Distribution{{To: treasury, Amount: uint256.NewInt(100)}},
		ledger.Distribution{To: distributorAddr, Amount: uint256.NewInt(900)},
		deployer,
	))

	endTime := clk.Now().Add(30 * 24 * time.Hour)
	d, err := New(distributorAddr, l, types.DistributorConfig{
		MerkleRoot:         tree.Root(),
		EndTime:            endTime,
		AcceptanceHash:     acceptanceHash,
		NonClaimedReceiver: receiver,
		NumClaims:          uint(tree.Len()),
	}, WithClock(clk))
	require.NoError(t, err)

	return &fixture{
		distributor: d,
		ledger:      l,
		clock:       clk,
		tree:        tree,
		accounts: []common.Address{
			common.HexToAddress("0x1000000000000000000000000000000000000001"),
			common.HexToAddress("0x2000000000000000000000000000000000000002"),
			common.HexToAddress("0x3000000000000000000000000000000000000003"),
		},
		endTime: endTime,
	}
}

func (f *fixture) claim(t *testing.T, account common.Address) (uint64, *uint256.Int, []common.Hash) {
	t.Helper()

	c, err := f.tree.Claim(account)
	require.NoError(t, err)

	return c.Index, uint256.MustFromBig((*big.Int)(c.Amount)), c.Proof
}

func balance(t *testing.T, l *ledger.Ledger, account common.Address) uint64 {
	t.Helper()

	b, err := l.BalanceOf(context.Background(), account)
	require.NoError(t, err)

	return b.Uint64()
}

func TestNew(t *testing.T) {
	t.Parallel()

	clk := clock.NewMock()
	clk.Set(time.Unix(1_700_000_000, 0))
	cfg := types.DistributorConfig{
		MerkleRoot:         common.Hash{0x01},
		EndTime:            clk.Now(),
		AcceptanceHash:     acceptanceHash,
		NonClaimedReceiver: receiver,
	}

	_, err := New(distributorAddr, mocks.NewClaimLedger(t), cfg, WithClock(clk))
	require.ErrorIs(t, err, ErrEndTimeInPast)

	cfg.EndTime = clk.Now().Add(time.Second)
	d, err := New(distributorAddr, mocks.NewClaimLedger(t), cfg, WithClock(clk))
	require.NoError(t, err)
	assert.Equal(t, cfg.MerkleRoot, d.MerkleRoot())
	assert.Equal(t, receiver, d.NonClaimedReceiver())

	cfg.AcceptanceHash = common.Hash{}
	_, err = New(distributorAddr, mocks.NewClaimLedger(t), cfg, WithClock(clk))
	require.ErrorIs(t, err, types.ErrInvalidConfig)
}

func TestDistributor_ClaimAndDelegate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)
	account := f.accounts[1]
	index, amount, proof := f.claim(t, account)
	require.Equal(t, uint64(1), index)

	// The last instant of the window is still open.
	f.clock.Set(f.endTime)
	require.NoError(t, f.distributor.ClaimAndDelegate(ctx, index, account, amount, proof, acceptanceHash))

	assert.True(t, f.distributor.IsClaimed(index))
	assert.False(t, f.distributor.IsClaimed(0))
	assert.Equal(t, uint64(200), balance(t, f.ledger, account))
	assert.Equal(t, uint64(700), balance(t, f.ledger, distributorAddr))
	assert.True(t, f.ledger.Paused())
	assert.Equal(t, account, f.ledger.Delegates(account))

	votes, err := f.ledger.GetVotes(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, uint64(200), votes.Uint64())

	err = f.distributor.ClaimAndDelegate(ctx, index, account, amount, proof, acceptanceHash)
	require.ErrorIs(t, err, ErrAlreadyClaimed)
	require.ErrorIs(t, err, sdkerrors.ErrIntegrity)
	assert.Equal(t, uint64(200), balance(t, f.ledger, account))
}

func TestDistributor_ClaimAndDelegate_Rejected(t *testing.T) {
	t.Parallel()

	flip := func(b []byte, i int) { b[i] ^= 0x01 }

	tests := []struct {
		name    string
		mutate  func(f *fixture, account *common.Address, amount *uint256.Int, proof []common.Hash, hash *common.Hash)
		wantErr error
	}{
		{
			name: "window finished",
			mutate: func(f *fixture, _ *common.Address, _ *uint256.Int, _ []common.Hash, _ *common.Hash) {
				f.clock.Set(f.endTime.Add(time.Second))
			},
			wantErr: ErrClaimWindowFinished,
		},
		{
			name: "wrong acceptance hash",
			mutate: func(_ *fixture, _ *common.Address, _ *uint256.Int, _ []common.Hash, hash *common.Hash) {
				flip(hash[:], 31)
			},
			wantErr: ErrInvalidAcceptanceHash,
		},
		{
			name: "flipped proof byte",
			mutate: func(_ *fixture, _ *common.Address, _ *uint256.Int, proof []common.Hash, _ *common.Hash) {
				flip(proof[0][:], 7)
			},
			wantErr: ErrInvalidProof,
		},
		{
			name: "flipped amount byte",
			mutate: func(_ *fixture, _ *common.Address, amount *uint256.Int, _ []common.Hash, _ *common.Hash) {
				b := amount.Bytes32()
				flip(b[:], 30)
				amount.SetBytes32(b[:])
			},
			wantErr: ErrInvalidProof,
		},
		{
			name: "flipped account byte",
			mutate: func(_ *fixture, account *common.Address, _ *uint256.Int, _ []common.Hash, _ *common.Hash) {
				flip(account[:], 0)
			},
			wantErr: ErrInvalidProof,
		},
		{
			name: "empty proof",
			mutate: func(_ *fixture, _ *common.Address, _ *uint256.Int, proof []common.Hash, _ *common.Hash) {
				for i := range proof {
					proof[i] = common.Hash{}
				}
			},
			wantErr: ErrInvalidProof,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			f := newFixture(t)
			account := f.accounts[2]
			index, amount, proof := f.claim(t, account)
			hash := acceptanceHash

			tt.mutate(f, &account, amount, proof, &hash)

			err := f.distributor.ClaimAndDelegate(ctx, index, account, amount, proof, hash)
			require.ErrorIs(t, err, tt.wantErr)

			var claimErr *ClaimError
			require.ErrorAs(t, err, &claimErr)
			assert.Equal(t, index, claimErr.Index)
			assert.False(t, f.distributor.IsClaimed(index))
			assert.Equal(t, uint64(900), balance(t, f.ledger, distributorAddr))
		})
	}
}

func TestDistributor_Claim(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	account := f.accounts[0]
	index, amount, proof := f.claim(t, account)

	err := f.distributor.Claim(context.Background(), index, account, amount, proof)
	require.ErrorIs(t, err, ErrNotUsingClaimAndDelegate)
	assert.False(t, f.distributor.IsClaimed(index))
	assert.Equal(t, uint64(0), balance(t, f.ledger, account))
}

func TestDistributor_ClaimAndDelegate_DelegationFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clk := clock.NewMock()
	tree, err := NewBalanceTree(allocations())
	require.NoError(t, err)

	token := mocks.NewClaimLedger(t)
	d, err := New(distributorAddr, token, types.DistributorConfig{
		MerkleRoot:         tree.Root(),
		EndTime:            clk.Now().Add(time.Hour),
		AcceptanceHash:     acceptanceHash,
		NonClaimedReceiver: receiver,
	}, WithClock(clk))
	require.NoError(t, err)

	account := common.HexToAddress("0x1000000000000000000000000000000000000001")
	c, err := tree.Claim(account)
	require.NoError(t, err)
	amount := uint256.MustFromBig((*big.Int)(c.Amount))

	failure := errors.New("only merkle distributor")
	token.EXPECT().Transfer(mock.Anything, distributorAddr, account, amount).Return(nil).Once()
	token.EXPECT().DelegateFromDistributor(mock.Anything, distributorAddr, account).Return(failure).Once()
	token.EXPECT().Transfer(mock.Anything, account, distributorAddr, amount).Return(nil).Once()

	err = d.ClaimAndDelegate(ctx, c.Index, account, amount, c.Proof, acceptanceHash)
	require.ErrorIs(t, err, failure)
	assert.False(t, d.IsClaimed(c.Index))
}

func TestDistributor_Withdraw(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	account := f.accounts[0]
	index, amount, proof := f.claim(t, account)
	require.NoError(t, f.distributor.ClaimAndDelegate(ctx, index, account, amount, proof, acceptanceHash))

	f.clock.Set(f.endTime.Add(-time.Second))
	_, err := f.distributor.Withdraw(ctx)
	require.ErrorIs(t, err, ErrNoWithdrawDuringClaim)
	require.ErrorIs(t, err, sdkerrors.ErrTemporal)

	f.clock.Set(f.endTime)
	_, err = f.distributor.Withdraw(ctx)
	require.ErrorIs(t, err, ErrNoWithdrawDuringClaim)

	f.clock.Set(f.endTime.Add(time.Second))
	sent, err := f.distributor.Withdraw(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(800), sent.Uint64())
	assert.Equal(t, uint64(800), balance(t, f.ledger, receiver))
	assert.Equal(t, uint64(0), balance(t, f.ledger, distributorAddr))

	sent, err = f.distributor.Withdraw(ctx)
	require.NoError(t, err)
	assert.True(t, sent.IsZero())
	assert.Equal(t, uint64(800), balance(t, f.ledger, receiver))
}

func TestDistributor_ClaimAtMostOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)

	for _, account := range f.accounts {
		index, amount, proof := f.claim(t, account)
		require.NoError(t, f.distributor.ClaimAndDelegate(ctx, index, account, amount, proof, acceptanceHash))
		require.ErrorIs(t, f.distributor.ClaimAndDelegate(ctx, index, account, amount, proof, acceptanceHash), ErrAlreadyClaimed)
	}
	assert.Equal(t, uint64(300), balance(t, f.ledger, distributorAddr))
}

func TestDistributor_Call(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)
	account := f.accounts[2]
	index, amount, proof := f.claim(t, account)

	rawProof := make([][32]byte, len(proof))
	for i, p := range proof {
		rawProof[i] = p
	}

	data := bindings.MustPack(bindings.DistributorMetaData, "claim",
		new(big.Int).SetUint64(index), account, amount.ToBig(), rawProof)
	require.ErrorIs(t, f.distributor.Call(ctx, account, nil, data), ErrNotUsingClaimAndDelegate)

	data = bindings.MustPack(bindings.DistributorMetaData, "claimAndDelegate",
		new(big.Int).SetUint64(index), account, amount.ToBig(), rawProof, [32]byte(acceptanceHash))
	require.ErrorIs(t, f.distributor.Call(ctx, account, big.NewInt(1), data), sdkerrors.ErrNonPayable)
	require.NoError(t, f.distributor.Call(ctx, account, nil, data))
	assert.True(t, f.distributor.IsClaimed(index))

	data = bindings.MustPack(bindings.DistributorMetaData, "withdraw")
	require.ErrorIs(t, f.distributor.Call(ctx, account, nil, data), ErrNoWithdrawDuringClaim)
}
