package divagov

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	sdkerrors "github.com/divadao/divagov/sdk/errors"
	"github.com/divadao/divagov/types"
)

var (
	ErrInvalidProposalLength    = sdkerrors.Validation("invalid proposal length")
	ErrEmptyProposal            = sdkerrors.Validation("empty proposal")
	ErrInvalidTimelock          = sdkerrors.Validation("invalid timelock")
	ErrRouteExists              = sdkerrors.Validation("route already registered")
	ErrVoteNotActive            = sdkerrors.Temporal("vote not currently active")
	ErrTooLateToCancel          = sdkerrors.Temporal("too late to cancel")
	ErrBelowProposalThreshold   = sdkerrors.Authorization("proposer votes below proposal threshold")
	ErrOnlyGovernance           = sdkerrors.Authorization("onlyGovernance")
	ErrOnlyProposer             = sdkerrors.Authorization("only the proposer can cancel")
	ErrProposalAlreadyExists    = sdkerrors.Integrity("proposal already exists")
	ErrProposalNotSuccessful    = sdkerrors.Integrity("proposal not successful")
	ErrProposalNotQueued        = sdkerrors.Integrity("proposal not queued")
	ErrProposalAlreadyExecuting = sdkerrors.Integrity("proposal already executing")
)

// UnknownProposalError is returned for an id no proposal was created with.
type UnknownProposalError struct {
	ID common.Hash
}

func NewUnknownProposalError(id common.Hash) *UnknownProposalError {
	return &UnknownProposalError{ID: id}
}

func (e *UnknownProposalError) Error() string {
	return fmt.Sprintf("unknown proposal id %s", e.ID.Hex())
}

func (e *UnknownProposalError) Unwrap() error {
	return sdkerrors.ErrValidation
}

// UnexpectedStateError reports the state a proposal was in when an operation required another.
type UnexpectedStateError struct {
	ID    common.Hash
	State types.ProposalState
	Err   error
}

func NewUnexpectedStateError(id common.Hash, state types.ProposalState, err error) *UnexpectedStateError {
	return &UnexpectedStateError{ID: id, State: state, Err: err}
}

func (e *UnexpectedStateError) Error() string {
	return fmt.Sprintf("%s: proposal %s is %s", e.Err.Error(), e.ID.Hex(), e.State)
}

func (e *UnexpectedStateError) Unwrap() error {
	return e.Err
}

// UnknownTargetError is returned when a call targets an address with nothing registered at it.
type UnknownTargetError struct {
	Target common.Address
}

func NewUnknownTargetError(target common.Address) *UnknownTargetError {
	return &UnknownTargetError{Target: target}
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("no callable registered at %s", e.Target.Hex())
}

func (e *UnknownTargetError) Unwrap() error {
	return sdkerrors.ErrValidation
}
