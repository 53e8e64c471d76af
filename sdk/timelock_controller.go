package sdk

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/divadao/divagov/types"
)

// TimelockController is the part of the timelock a governance engine drives: scheduling and
// executing batches it proposed.
type TimelockController interface {
	TimelockInspector

	Address() common.Address
	HashOperationBatch(calls []types.Call, predecessor common.Hash, salt common.Hash) (common.Hash, error)
	ScheduleBatch(ctx context.Context, caller common.Address, calls []types.Call, predecessor common.Hash, salt common.Hash, delay time.Duration) (common.Hash, error)
	ExecuteBatch(ctx context.Context, caller common.Address, calls []types.Call, predecessor common.Hash, salt common.Hash) error
}
