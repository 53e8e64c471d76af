package timelock

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/divadao/divagov/internal/utils/abi"
	"github.com/divadao/divagov/types"
)

const (
	operationABI      = `[{"type":"address"},{"type":"uint256"},{"type":"bytes"},{"type":"bytes32"},{"type":"bytes32"}]`
	operationBatchABI = `[{"type":"address[]"},{"type":"uint256[]"},{"type":"bytes[]"},{"type":"bytes32"},{"type":"bytes32"}]`
)

// Operation is a scheduled call or batch of calls. An id that is not in the timelock is unset.
type Operation struct {
	ID       common.Hash `json:"id"`
	ReadyAt  time.Time   `json:"readyAt"`
	Executed bool        `json:"executed"`
}

// Pending reports whether the operation is scheduled and not yet executed.
func (o Operation) Pending() bool {
	return !o.Executed
}

// Ready reports whether the operation is pending and its delay has elapsed at now.
func (o Operation) Ready(now time.Time) bool {
	return o.Pending() && !now.Before(o.ReadyAt)
}

// HashOperation returns the id of a single call operation.
func HashOperation(call types.Call, predecessor, salt common.Hash) (common.Hash, error) {
	if err := types.CheckValues(call.Value); err != nil {
		return common.Hash{}, err
	}
	id, err := abi.Keccak256(operationABI,
		call.Target, call.ValueOrZero(), []byte(call.Data), [32]byte(predecessor), [32]byte(salt))
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to hash operation: %w", err)
	}

	return id, nil
}

// HashOperationBatch returns the id of a batch operation.
func HashOperationBatch(calls []types.Call, predecessor, salt common.Hash) (common.Hash, error) {
	targets, values, calldatas := types.SplitCalls(calls)
	if err := types.CheckValues(values...); err != nil {
		return common.Hash{}, err
	}

	id, err := abi.Keccak256(operationBatchABI,
		targets, values, calldatas, [32]byte(predecessor), [32]byte(salt))
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to hash operation batch: %w", err)
	}

	return id, nil
}
