package types

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"

	sdkerrors "github.com/divadao/divagov/sdk/errors"
)

// ErrInvalidCallValue is returned for a call value outside the uint256 range.
var ErrInvalidCallValue = fmt.Errorf("%w: call value out of uint256 range", sdkerrors.ErrValidation)

// Call is a single action of a proposal or timelock operation: a call of Data on Target carrying
// Value.
type Call struct {
	Target common.Address `json:"target" validate:"required"`
	Value  *big.Int       `json:"value"`
	Data   hexutil.Bytes  `json:"data"`
}

// NewCall returns a Call with a nil value normalized to zero.
func NewCall(target common.Address, value *big.Int, data []byte) Call {
	if value == nil {
		value = new(big.Int)
	}

	return Call{Target: target, Value: value, Data: data}
}

// HasValue reports whether the call transfers a non-zero value.
func (c Call) HasValue() bool {
	return c.Value != nil && c.Value.Sign() != 0
}

// Selector returns the function selector of the call data.
func (c Call) Selector() (Selector, error) {
	return SelectorOf(c.Data)
}

// ValueOrZero returns the call value, never nil.
func (c Call) ValueOrZero() *big.Int {
	if c.Value == nil {
		return new(big.Int)
	}

	return c.Value
}

type callJSON struct {
	Target common.Address        `json:"target"`
	Value  *math.HexOrDecimal256 `json:"value,omitempty"`
	Data   hexutil.Bytes         `json:"data"`
}

func (c Call) MarshalJSON() ([]byte, error) {
	return json.Marshal(callJSON{
		Target: c.Target,
		Value:  (*math.HexOrDecimal256)(c.ValueOrZero()),
		Data:   c.Data,
	})
}

func (c *Call) UnmarshalJSON(b []byte) error {
	var raw callJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	c.Target = raw.Target
	c.Value = new(big.Int)
	if raw.Value != nil {
		c.Value = (*big.Int)(raw.Value)
	}
	c.Data = raw.Data

	return nil
}

// CheckValues rejects negative values and values wider than 256 bits. A nil value reads as zero.
func CheckValues(values ...*big.Int) error {
	for i, v := range values {
		if v != nil && (v.Sign() < 0 || v.BitLen() > 256) {
			return fmt.Errorf("%w: value %d is %s", ErrInvalidCallValue, i, v)
		}
	}

	return nil
}

// SplitCalls converts calls into the parallel target/value/calldata arrays used by the governor.
func SplitCalls(calls []Call) ([]common.Address, []*big.Int, [][]byte) {
	targets := make([]common.Address, len(calls))
	values := make([]*big.Int, len(calls))
	calldatas := make([][]byte, len(calls))
	for i, c := range calls {
		targets[i] = c.Target
		values[i] = c.ValueOrZero()
		calldatas[i] = c.Data
	}

	return targets, values, calldatas
}
