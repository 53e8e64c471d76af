package distributor

import (
	"fmt"

	sdkerrors "github.com/divadao/divagov/sdk/errors"
)

var (
	ErrNotUsingClaimAndDelegate = sdkerrors.Validation("claiming without delegating is not allowed, use ClaimAndDelegate")
	ErrInvalidAcceptanceHash    = sdkerrors.Validation("invalid acceptance hash")
	ErrEndTimeInPast            = sdkerrors.Validation("end time in the past")
	ErrInvalidAllocation        = sdkerrors.Validation("invalid allocation")
	ErrClaimWindowFinished      = sdkerrors.Temporal("claim window finished")
	ErrNoWithdrawDuringClaim    = sdkerrors.Temporal("no withdraw during claim window")
	ErrAlreadyClaimed           = sdkerrors.Integrity("drop already claimed")
	ErrInvalidProof             = sdkerrors.Integrity("invalid proof")
)

// ClaimError identifies the claim index a rejection applies to.
type ClaimError struct {
	Index uint64
	Err   error
}

func NewClaimError(index uint64, err error) *ClaimError {
	return &ClaimError{Index: index, Err: err}
}

func (e *ClaimError) Error() string {
	return fmt.Sprintf("claim %d: %s", e.Index, e.Err.Error())
}

func (e *ClaimError) Unwrap() error {
	return e.Err
}
