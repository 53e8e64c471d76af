package types

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// SelectorLength is the size of a function selector in bytes.
const SelectorLength = 4

var ErrCalldataTooShort = errors.New("calldata shorter than a function selector")

// Selector is the 4-byte function identifier at the start of calldata.
type Selector [SelectorLength]byte

// SelectorFromSignature returns the first four bytes of keccak256(signature), e.g. for
// "updateQuorum(uint256)".
func SelectorFromSignature(signature string) Selector {
	var s Selector
	copy(s[:], crypto.Keccak256([]byte(signature))[:SelectorLength])

	return s
}

// SelectorOf extracts the selector from calldata.
func SelectorOf(data []byte) (Selector, error) {
	if len(data) < SelectorLength {
		return Selector{}, fmt.Errorf("%w: %d bytes", ErrCalldataTooShort, len(data))
	}

	var s Selector
	copy(s[:], data[:SelectorLength])

	return s, nil
}

// HexToSelector parses a 0x-prefixed 4-byte hex string.
func HexToSelector(h string) (Selector, error) {
	b, err := hexutil.Decode(h)
	if err != nil {
		return Selector{}, err
	}
	if len(b) != SelectorLength {
		return Selector{}, fmt.Errorf("selector %s must be %d bytes", h, SelectorLength)
	}

	var s Selector
	copy(s[:], b)

	return s, nil
}

func (s Selector) String() string {
	return hexutil.Encode(s[:])
}

func (s Selector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Selector) UnmarshalText(text []byte) error {
	parsed, err := HexToSelector(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}
