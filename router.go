package divagov

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/divadao/divagov/sdk"
	sdkerrors "github.com/divadao/divagov/sdk/errors"
	"github.com/divadao/divagov/types"
)

var _ sdk.Dispatcher = (*Router)(nil)

// Router is the in-process execution runtime: it delivers calls to the component registered at
// their target address.
type Router struct {
	mu     sync.RWMutex
	routes map[common.Address]sdk.Callable
}

// NewRouter returns a router with no targets registered.
func NewRouter() *Router {
	return &Router{routes: make(map[common.Address]sdk.Callable)}
}

// Register makes callable reachable at address.
func (r *Router) Register(address common.Address, callable sdk.Callable) error {
	if address == (common.Address{}) {
		return fmt.Errorf("%w: cannot register the zero address", sdkerrors.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.routes[address]; ok {
		return fmt.Errorf("%w: %s", ErrRouteExists, address.Hex())
	}
	r.routes[address] = callable

	return nil
}

// Resolve returns the component registered at address.
func (r *Router) Resolve(address common.Address) (sdk.Callable, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.routes[address]

	return c, ok
}

// Dispatch delivers call to its target as caller. The routing lock is not held during the call.
func (r *Router) Dispatch(ctx context.Context, caller common.Address, call types.Call) error {
	callable, ok := r.Resolve(call.Target)
	if !ok {
		return NewUnknownTargetError(call.Target)
	}

	return callable.Call(ctx, caller, call.ValueOrZero(), call.Data)
}
