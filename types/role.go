package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Role identifies a timelock permission. Values are keccak256 of the role name.
type Role common.Hash

var (
	RoleAdmin     = newRole("TIMELOCK_ADMIN_ROLE")
	RoleProposer  = newRole("PROPOSER_ROLE")
	RoleExecutor  = newRole("EXECUTOR_ROLE")
	RoleCanceller = newRole("CANCELLER_ROLE")
)

var roleNames = map[Role]string{
	RoleAdmin:     "admin",
	RoleProposer:  "proposer",
	RoleExecutor:  "executor",
	RoleCanceller: "canceller",
}

func newRole(name string) Role {
	return Role(crypto.Keccak256Hash([]byte(name)))
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}

	return common.Hash(r).Hex()
}
