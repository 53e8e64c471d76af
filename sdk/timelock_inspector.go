package sdk

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type TimelockInspector interface {
	IsOperation(ctx context.Context, opID common.Hash) (bool, error)
	IsOperationPending(ctx context.Context, opID common.Hash) (bool, error)
	IsOperationReady(ctx context.Context, opID common.Hash) (bool, error)
	IsOperationDone(ctx context.Context, opID common.Hash) (bool, error)

	// GetTimestamp returns the time at which the operation becomes ready, or the zero time when
	// the operation is not scheduled.
	GetTimestamp(ctx context.Context, opID common.Hash) (time.Time, error)
	GetMinDelay(ctx context.Context) (time.Duration, error)
}
