package abi

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Encode is the equivalent of abi.encode. abiStr lists the argument types as a JSON array, e.g.
// `[{"type":"address[]"},{"type":"bytes32"}]`.
func Encode(abiStr string, values ...any) ([]byte, error) {
	inAbi, err := argumentsABI(abiStr)
	if err != nil {
		return nil, err
	}

	res, err := inAbi.Pack("method", values...)
	if err != nil {
		return nil, err
	}

	// Drop the selector of the placeholder method.
	return res[4:], nil
}

// Keccak256 returns keccak256(abi.encode(values...)). Proposal and operation ids are derived
// with it.
func Keccak256(abiStr string, values ...any) (common.Hash, error) {
	encoded, err := Encode(abiStr, values...)
	if err != nil {
		return common.Hash{}, err
	}

	return crypto.Keccak256Hash(encoded), nil
}

func argumentsABI(abiStr string) (abi.ABI, error) {
	def := fmt.Sprintf(`[{ "name" : "method", "type": "function", "inputs": %s}]`, abiStr)
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("invalid argument list %s: %w", abiStr, err)
	}

	return parsed, nil
}
