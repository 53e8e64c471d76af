// Package sdkerrors holds the error taxonomy shared by every component. Concrete errors wrap one of
// the category sentinels so callers can decide whether retrying can ever help.
package sdkerrors

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrValidation marks malformed input. Rejected before any state mutation.
	ErrValidation = errors.New("validation failed")

	// ErrTemporal marks a call made at the wrong time. Only meaningful to retry after time advances.
	ErrTemporal = errors.New("temporal condition not met")

	// ErrAuthorization marks a caller lacking the permission for the operation.
	ErrAuthorization = errors.New("unauthorized")

	// ErrIntegrity marks a replay or forgery on a specific id or index.
	ErrIntegrity = errors.New("integrity violation")
)

// Validation returns a sentinel error with the given message classified as ErrValidation.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Temporal returns a sentinel error with the given message classified as ErrTemporal.
func Temporal(msg string) error {
	return fmt.Errorf("%w: %s", ErrTemporal, msg)
}

// Authorization returns a sentinel error with the given message classified as ErrAuthorization.
func Authorization(msg string) error {
	return fmt.Errorf("%w: %s", ErrAuthorization, msg)
}

// Integrity returns a sentinel error with the given message classified as ErrIntegrity.
func Integrity(msg string) error {
	return fmt.Errorf("%w: %s", ErrIntegrity, msg)
}

// MissingRoleError is returned when an account calls an entry point restricted to a role it does
// not hold.
type MissingRoleError struct {
	Account common.Address
	Role    string
}

func (e *MissingRoleError) Error() string {
	return fmt.Sprintf("account %s is missing role %s", e.Account.Hex(), e.Role)
}

func (e *MissingRoleError) Unwrap() error {
	return ErrAuthorization
}

func NewMissingRoleError(account common.Address, role string) *MissingRoleError {
	return &MissingRoleError{Account: account, Role: role}
}

// UnknownSelectorError is returned when calldata targets a function the callee does not expose.
type UnknownSelectorError struct {
	Target   common.Address
	Selector string
}

func (e *UnknownSelectorError) Error() string {
	return fmt.Sprintf("function selector %s not recognized by %s", e.Selector, e.Target.Hex())
}

func (e *UnknownSelectorError) Unwrap() error {
	return ErrValidation
}

func NewUnknownSelectorError(target common.Address, selector string) *UnknownSelectorError {
	return &UnknownSelectorError{Target: target, Selector: selector}
}

// ErrNonPayable is returned when a call carries value to an entry point that cannot receive it.
var ErrNonPayable = Validation("function is not payable")
