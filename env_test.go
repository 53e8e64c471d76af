package divagov

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/divadao/divagov/bindings"
	"github.com/divadao/divagov/distributor"
	"github.com/divadao/divagov/internal/core/classifier"
	"github.com/divadao/divagov/ledger"
	"github.com/divadao/divagov/sdk"
	"github.com/divadao/divagov/timelock"
	"github.com/divadao/divagov/types"
)

var (
	tokenAddr       = common.HexToAddress("0x1000000000000000000000000000000000000a01")
	timelockAddr    = common.HexToAddress("0x1000000000000000000000000000000000000a02")
	governorAddr    = common.HexToAddress("0x1000000000000000000000000000000000000a03")
	distributorAddr = common.HexToAddress("0x1000000000000000000000000000000000000a04")

	deployer = common.HexToAddress("0xde00000000000000000000000000000000000001")
	alice    = common.HexToAddress("0xa1000000000000000000000000000000000000a1")
	bob      = common.HexToAddress("0xb0000000000000000000000000000000000000b0")
	carol    = common.HexToAddress("0xc0000000000000000000000000000000000000c0")
	dave     = common.HexToAddress("0xd0000000000000000000000000000000000000d0")
	stranger = common.HexToAddress("0x5000000000000000000000000000000000000005")

	acceptanceHash = crypto.Keccak256Hash([]byte("terms"))
)

const (
	minDelay     = time.Hour
	shortDelay   = 2 * time.Hour
	defaultDelay = 144 * time.Hour
	longDelay    = 240 * time.Hour
	votingDelay  = time.Hour
	votingPeriod = 24 * time.Hour
	gracePeriod  = 14 * 24 * time.Hour
)

func mustSelector(t *testing.T, method string) types.Selector {
	t.Helper()

	sel, err := bindings.SelectorOf(bindings.GovernorMetaData, method)
	require.NoError(t, err)

	return sel
}

func governorConfig(t *testing.T) types.GovernorConfig {
	t.Helper()

	return types.GovernorConfig{
		Name:              "DivaGovernor",
		VotingDelay:       types.NewDuration(votingDelay),
		VotingPeriod:      types.NewDuration(votingPeriod),
		ProposalThreshold: (*math.HexOrDecimal256)(big.NewInt(100)),
		QuorumAbsolute:    (*math.HexOrDecimal256)(big.NewInt(1_000)),
		GracePeriod:       types.NewDuration(gracePeriod),
		Delays: types.DelayConfig{
			Short:   types.NewDuration(shortDelay),
			Default: types.NewDuration(defaultDelay),
			Long:    types.NewDuration(longDelay),
		},
		Selectors: types.SelectorConfig{
			FunctionSelectors: []types.Selector{
				mustSelector(t, "updateQuorum"),
				classifier.CancelSelector,
				mustSelector(t, "setVotingDelay"),
			},
			FunctionDelays:     []types.DelayTier{types.DelayTierDefault, types.DelayTierShort, types.DelayTierLong},
			FunctionThresholds: []types.ThresholdTier{types.ThresholdTierModerate, types.ThresholdTierLarge, types.ThresholdTierLarge},
		},
	}
}

// testEnv is a deployed system: token, timelock, governor and claim distributor wired through a
// router, with the timelock handed to the governor and the token owned by the timelock.
type testEnv struct {
	ctx         context.Context
	clock       *clock.Mock
	router      *Router
	ledger      *ledger.Ledger
	timelock    *timelock.Timelock
	governor    *Governor
	distributor *distributor.Distributor
	claims      *distributor.BalanceTree
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx := sdk.WithLogger(context.Background(), zaptest.NewLogger(t).Sugar())
	clk := clock.NewMock()
	clk.Set(time.Unix(1_700_000_000, 0))
	router := NewRouter()

	tok, err := ledger.New(tokenAddr, deployer, types.LedgerConfig{
		Name:          "Diva Token",
		Symbol:        "DIVA",
		InitialSupply: (*math.HexOrDecimal256)(big.NewInt(100_000)),
		TotalSupply:   (*math.HexOrDecimal256)(big.NewInt(100_000)),
	}, ledger.WithClock(clk))
	require.NoError(t, err)

	tl, err := timelock.New(timelockAddr, types.TimelockConfig{MinDelay: types.NewDuration(minDelay), Admin: deployer},
		router, timelock.WithClock(clk))
	require.NoError(t, err)

	gov, err := New(ctx, governorAddr, governorConfig(t), tok, tl, WithClock(clk), WithResolver(router))
	require.NoError(t, err)
	require.NoError(t, tl.InitialiseAndRevokeAdminRole(ctx, deployer, governorAddr))

	claims, err := distributor.NewBalanceTree(map[common.Address]*uint256.Int{
		dave:  uint256.NewInt(2_000),
		carol: uint256.NewInt(500),
	})
	require.NoError(t, err)

	dist, err := distributor.New(distributorAddr, tok, types.DistributorConfig{
		MerkleRoot:         claims.Root(),
		EndTime:            clk.Now().Add(90 * 24 * time.Hour),
		AcceptanceHash:     acceptanceHash,
		NonClaimedReceiver: timelockAddr,
	}, distributor.WithClock(clk))
	require.NoError(t, err)

	require.NoError(t, tok.DistributeAndTransferOwnership(ctx, deployer,
		[]ledger.Distribution{
			{To: alice, Amount: uint256.NewInt(10_000)},
			{To: bob, Amount: uint256.NewInt(5_000)},
			{To: carol, Amount: uint256.NewInt(300)},
		},
		ledger.Distribution{To: distributorAddr, Amount: uint256.NewInt(84_700)},
		timelockAddr,
	))

	for addr, c := range map[common.Address]sdk.Callable{
		tokenAddr:       tok,
		timelockAddr:    tl,
		governorAddr:    gov,
		distributorAddr: dist,
	} {
		require.NoError(t, router.Register(addr, c))
	}

	for _, account := range []common.Address{alice, bob, carol} {
		require.NoError(t, tok.Delegate(ctx, account, account))
	}
	clk.Add(time.Second)

	return &testEnv{
		ctx:         ctx,
		clock:       clk,
		router:      router,
		ledger:      tok,
		timelock:    tl,
		governor:    gov,
		distributor: dist,
		claims:      claims,
	}
}

func (e *testEnv) request(t *testing.T, description string, calls ...types.Call) *ProposalRequest {
	t.Helper()

	b := NewProposalBuilder().SetDescription(description)
	for _, c := range calls {
		b.AddCall(c.Target, c.Value, c.Data)
	}
	req, err := b.Build()
	require.NoError(t, err)

	return req
}

func (e *testEnv) propose(t *testing.T, proposer common.Address, req *ProposalRequest) common.Hash {
	t.Helper()

	id, err := e.governor.Propose(e.ctx, proposer, req.Targets, req.Values, req.Calldatas, req.Description)
	require.NoError(t, err)

	return id
}

// vote opens voting on id, casts every ballot and moves past the deadline.
func (e *testEnv) vote(t *testing.T, id common.Hash, ballots map[common.Address]types.VoteType) {
	t.Helper()

	start, err := e.governor.ProposalSnapshot(id)
	require.NoError(t, err)
	if e.clock.Now().Before(start) {
		e.clock.Set(start)
	}
	for voter, support := range ballots {
		_, err := e.governor.CastVote(e.ctx, voter, id, support)
		require.NoError(t, err)
	}

	end, err := e.governor.ProposalDeadline(id)
	require.NoError(t, err)
	e.clock.Set(end)
}

func (e *testEnv) queue(t *testing.T, req *ProposalRequest) common.Hash {
	t.Helper()

	opID, err := e.governor.Queue(e.ctx, req.Targets, req.Values, req.Calldatas, req.DescriptionHash())
	require.NoError(t, err)

	return opID
}

func (e *testEnv) execute(t *testing.T, req *ProposalRequest) error {
	t.Helper()

	_, err := e.governor.Execute(e.ctx, req.Targets, req.Values, req.Calldatas, req.DescriptionHash())

	return err
}

// pass takes req from proposal to a ready timelock operation and returns the proposal id.
func (e *testEnv) pass(t *testing.T, req *ProposalRequest) common.Hash {
	t.Helper()

	id := e.propose(t, alice, req)
	e.vote(t, id, map[common.Address]types.VoteType{alice: types.VoteFor})
	e.queue(t, req)

	eta, err := e.governor.ProposalEta(id)
	require.NoError(t, err)
	e.clock.Set(eta)

	return id
}

func (e *testEnv) state(t *testing.T, id common.Hash) types.ProposalState {
	t.Helper()

	s, err := e.governor.State(e.ctx, id)
	require.NoError(t, err)

	return s
}

func governorCall(t *testing.T, method string, args ...any) types.Call {
	t.Helper()

	return types.NewCall(governorAddr, nil, bindings.MustPack(bindings.GovernorMetaData, method, args...))
}
