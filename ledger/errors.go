package ledger

import (
	"fmt"

	sdkerrors "github.com/divadao/divagov/sdk/errors"
)

var (
	ErrProtocolPaused                 = sdkerrors.Authorization("protocol paused")
	ErrNotOwner                       = sdkerrors.Authorization("caller is not the owner")
	ErrOnlyDistributor                = sdkerrors.Authorization("only merkle distributor can call this method")
	ErrOnlyFoundationMinter           = sdkerrors.Authorization("only foundation minter can call this")
	ErrTransferabilityCannotBeEnabled = sdkerrors.Temporal("transferability cannot be enabled yet")
	ErrFutureLookup                   = sdkerrors.Temporal("future lookup")
	ErrInvalidTotalSupply             = sdkerrors.Integrity("invalid total supply")
	ErrZeroAddress                    = sdkerrors.Validation("zero address")
	ErrInsufficientBalance            = sdkerrors.Validation("transfer amount exceeds balance")
	ErrInsufficientAllowance          = sdkerrors.Validation("insufficient allowance")
	ErrAllowanceBelowZero             = sdkerrors.Validation("decreased allowance below zero")
)

// InvalidTotalSupplyError reports the supply a distribution would produce against the expected one.
type InvalidTotalSupplyError struct {
	Got      string
	Expected string
}

func NewInvalidTotalSupplyError(got, expected fmt.Stringer) *InvalidTotalSupplyError {
	return &InvalidTotalSupplyError{Got: got.String(), Expected: expected.String()}
}

func (e *InvalidTotalSupplyError) Error() string {
	return fmt.Sprintf("%s: got %s, expected %s", ErrInvalidTotalSupply.Error(), e.Got, e.Expected)
}

func (e *InvalidTotalSupplyError) Unwrap() error {
	return ErrInvalidTotalSupply
}
