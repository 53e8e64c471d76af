package divagov

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/divadao/divagov/internal/utils/abi"
	"github.com/divadao/divagov/types"
)

const proposalABI = `[{"type":"address[]"},{"type":"uint256[]"},{"type":"bytes[]"},{"type":"bytes32"}]`

// HashProposal returns keccak256(abi.encode(targets, values, calldatas, descriptionHash)).
func HashProposal(targets []common.Address, values []*big.Int, calldatas [][]byte, descriptionHash common.Hash) (common.Hash, error) {
	if err := types.CheckValues(values...); err != nil {
		return common.Hash{}, err
	}
	normalized := make([]*big.Int, len(values))
	for i, v := range values {
		if v == nil {
			v = new(big.Int)
		}
		normalized[i] = v
	}

	id, err := abi.Keccak256(proposalABI, targets, normalized, calldatas, [32]byte(descriptionHash))
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to hash proposal: %w", err)
	}

	return id, nil
}

// DescriptionHash returns keccak256 of the UTF-8 bytes of description.
func DescriptionHash(description string) common.Hash {
	return crypto.Keccak256Hash([]byte(description))
}

// TimelockSalt returns the salt a governor at governor schedules its proposals with: the governor
// address, left aligned, XOR the description hash.
func TimelockSalt(governor common.Address, descriptionHash common.Hash) common.Hash {
	salt := descriptionHash
	for i := range common.AddressLength {
		salt[i] ^= governor[i]
	}

	return salt
}
