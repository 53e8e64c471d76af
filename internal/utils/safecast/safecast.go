// Package safecast implements functions to safely cast types to avoid panics
package safecast

import (
	"fmt"
	"math"
	"math/big"

	"github.com/spf13/cast"
)

const errUint64RangeExceeded = "value %s exceeds uint64 range"

// IntToUint64 safely converts an int to uint64 using cast and checks for negative values
func IntToUint64(value int) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %d is negative, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}

// Uint64ToUint safely converts a uint64 to uint using cast and checks for overflow
func Uint64ToUint(value uint64) (uint, error) {
	if value > math.MaxUint {
		return 0, fmt.Errorf("value %d exceeds uint range", value)
	}

	return cast.ToUintE(value)
}

// Uint64ToInt64 safely converts a uint64 to int64 using cast and checks for overflow
func Uint64ToInt64(value uint64) (int64, error) {
	if value > math.MaxInt64 {
		return 0, fmt.Errorf("value %d exceeds int64 range", value)
	}

	return cast.ToInt64E(value)
}

// BigToUint64 safely converts a calldata integer to uint64
func BigToUint64(value *big.Int) (uint64, error) {
	if value == nil || value.Sign() < 0 {
		return 0, fmt.Errorf("value %v is negative or missing, cannot convert to uint64", value)
	}
	if !value.IsUint64() {
		return 0, fmt.Errorf(errUint64RangeExceeded, value.String())
	}

	return value.Uint64(), nil
}
