package timelock

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	sdkerrors "github.com/divadao/divagov/sdk/errors"
)

var (
	ErrInsufficientDelay          = sdkerrors.Validation("insufficient delay")
	ErrLengthMismatch             = sdkerrors.Validation("length mismatch")
	ErrFailToInitialise           = sdkerrors.Validation("fail to initialise timelock controller")
	ErrOperationNotReady          = sdkerrors.Temporal("operation is not ready")
	ErrMissingDependency          = sdkerrors.Temporal("missing dependency")
	ErrCallerNotTimelock          = sdkerrors.Authorization("caller must be timelock")
	ErrAlreadyInitialised         = sdkerrors.Integrity("timelock controller already initialised")
	ErrOperationCannotBeCancelled = sdkerrors.Integrity("operation cannot be cancelled")

	// ErrUnderlyingTransactionReverted wraps the failure of a call dispatched by an execution.
	ErrUnderlyingTransactionReverted = errors.New("underlying transaction reverted")
)

// OperationStateError is returned when an operation is not in the state an entry point requires.
type OperationStateError struct {
	ID    common.Hash
	State string
	err   error
}

func (e *OperationStateError) Error() string {
	return fmt.Sprintf("operation %s is %s", e.ID.Hex(), e.State)
}

func (e *OperationStateError) Unwrap() error {
	return e.err
}

// NewAlreadyScheduledError is returned by Schedule for an id that is already known.
func NewAlreadyScheduledError(id common.Hash) *OperationStateError {
	return &OperationStateError{ID: id, State: "already scheduled", err: sdkerrors.ErrIntegrity}
}

// NewNotScheduledError is returned by Execute for an id that was never scheduled or was canceled.
func NewNotScheduledError(id common.Hash) *OperationStateError {
	return &OperationStateError{ID: id, State: "not scheduled", err: sdkerrors.ErrValidation}
}

// NewAlreadyExecutedError is returned by Execute for an id that is done.
func NewAlreadyExecutedError(id common.Hash) *OperationStateError {
	return &OperationStateError{ID: id, State: "already executed", err: sdkerrors.ErrIntegrity}
}
