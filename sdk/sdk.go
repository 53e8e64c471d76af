package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/divadao/divagov/types"
)

// Callable is a component addressable by calldata. caller is the account the call originates
// from, value the amount of native value it carries.
type Callable interface {
	Call(ctx context.Context, caller common.Address, value *big.Int, data []byte) error
}

// Dispatcher routes calls to the component registered at the call target.
type Dispatcher interface {
	Dispatch(ctx context.Context, caller common.Address, call types.Call) error
	Resolve(address common.Address) (Callable, bool)
}
