package merkle

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// ClaimLeaf returns keccak256(abi.encodePacked(uint256 index, address account, uint256 amount)).
func ClaimLeaf(index uint64, account common.Address, amount *uint256.Int) common.Hash {
	var buf [32 + common.AddressLength + 32]byte

	idx := uint256.NewInt(index).Bytes32()
	copy(buf[:32], idx[:])
	copy(buf[32:32+common.AddressLength], account[:])
	amt := amount.Bytes32()
	copy(buf[32+common.AddressLength:], amt[:])

	return crypto.Keccak256Hash(buf[:])
}
