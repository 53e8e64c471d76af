// Package bindings holds the ABI of every entry point reachable by calldata, and helpers to pack
// and decode calls against them.
package bindings

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/divadao/divagov/types"
)

// Pack encodes a call to method, selector included.
func Pack(md *bind.MetaData, method string, args ...any) ([]byte, error) {
	parsed, err := md.GetAbi()
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	data, err := parsed.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	return data, nil
}

// MustPack is Pack that panics on error. Useful for tests and static calldata.
func MustPack(md *bind.MetaData, method string, args ...any) []byte {
	data, err := Pack(md, method, args...)
	if err != nil {
		panic(err)
	}

	return data
}

// Decode resolves the method called by data and unpacks its arguments.
func Decode(md *bind.MetaData, data []byte) (*abi.Method, []any, error) {
	sel, err := types.SelectorOf(data)
	if err != nil {
		return nil, nil, err
	}

	parsed, err := md.GetAbi()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	method, err := parsed.MethodById(sel[:])
	if err != nil {
		return nil, nil, err
	}

	args, err := method.Inputs.Unpack(data[types.SelectorLength:])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to unpack %s arguments: %w", method.Name, err)
	}

	return method, args, nil
}

// SelectorOf returns the selector of method.
func SelectorOf(md *bind.MetaData, method string) (types.Selector, error) {
	parsed, err := md.GetAbi()
	if err != nil {
		return types.Selector{}, fmt.Errorf("failed to parse ABI: %w", err)
	}

	m, ok := parsed.Methods[method]
	if !ok {
		return types.Selector{}, fmt.Errorf("method %s not found", method)
	}

	var sel types.Selector
	copy(sel[:], m.ID)

	return sel, nil
}
