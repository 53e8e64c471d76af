package distributor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"

	"github.com/divadao/divagov/internal/core/merkle"
	"github.com/divadao/divagov/internal/utils/safecast"
)

// Claim is the proof material an account needs to claim its allocation.
type Claim struct {
	Index  uint64                `json:"index"`
	Amount *math.HexOrDecimal256 `json:"amount"`
	Proof  []common.Hash         `json:"proof"`
}

// ClaimsFile is the published output of a balance tree.
type ClaimsFile struct {
	MerkleRoot common.Hash              `json:"merkleRoot"`
	TokenTotal *math.HexOrDecimal256    `json:"tokenTotal"`
	Claims     map[common.Address]Claim `json:"claims"`
}

// ReadClaimsFile decodes a ClaimsFile from r.
func ReadClaimsFile(r io.Reader) (*ClaimsFile, error) {
	var f ClaimsFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode claims file: %w", err)
	}

	return &f, nil
}

// WriteClaimsFile encodes f to w as indented JSON.
func WriteClaimsFile(w io.Writer, f *ClaimsFile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(f)
}

// Verify reports whether the claim of account proves against the file's root.
func (f *ClaimsFile) Verify(account common.Address) (Claim, bool) {
	c, ok := f.Claims[account]
	if !ok || c.Amount == nil {
		return c, false
	}
	amount, overflow := uint256.FromBig((*big.Int)(c.Amount))
	if overflow {
		return c, false
	}

	return c, merkle.VerifyProof(c.Proof, f.MerkleRoot, merkle.ClaimLeaf(c.Index, account, amount))
}

// BalanceTree is the merkle tree over a set of allocations. Accounts are ordered ascending by
// address and the index of an allocation is its position in that order.
type BalanceTree struct {
	accounts []common.Address
	amounts  map[common.Address]*uint256.Int
	tree     *merkle.Tree
}

// NewBalanceTree builds the tree for allocations. Every amount must be positive.
func NewBalanceTree(allocations map[common.Address]*uint256.Int) (*BalanceTree, error) {
	if len(allocations) == 0 {
		return nil, fmt.Errorf("%w: no allocations", ErrInvalidAllocation)
	}

	accounts := make([]common.Address, 0, len(allocations))
	amounts := make(map[common.Address]*uint256.Int, len(allocations))
	for account, amount := range allocations {
		if account == (common.Address{}) {
			return nil, fmt.Errorf("%w: zero address", ErrInvalidAllocation)
		}
		if amount == nil || amount.IsZero() {
			return nil, fmt.Errorf("%w: non-positive amount for %s", ErrInvalidAllocation, account.Hex())
		}
		accounts = append(accounts, account)
		amounts[account] = amount.Clone()
	}
	slices.SortFunc(accounts, func(a, b common.Address) int {
		return bytes.Compare(a[:], b[:])
	})

	leaves := make([]common.Hash, len(accounts))
	for i, account := range accounts {
		index, err := safecast.IntToUint64(i)
		if err != nil {
			return nil, err
		}
		leaves[i] = merkle.ClaimLeaf(index, account, amounts[account])
	}

	return &BalanceTree{accounts: accounts, amounts: amounts, tree: merkle.NewTree(leaves)}, nil
}

// NewBalanceTreeFromFile builds the tree for allocations given as account to amount JSON, amounts
// in decimal or 0x-prefixed hex. Keys naming the same account in different letter case are rejected.
func NewBalanceTreeFromFile(r io.Reader) (*BalanceTree, error) {
	var raw map[string]*math.HexOrDecimal256
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode allocations: %w", err)
	}

	allocations := make(map[common.Address]*uint256.Int, len(raw))
	for key, amount := range raw {
		if !common.IsHexAddress(key) {
			return nil, fmt.Errorf("%w: invalid account %q", ErrInvalidAllocation, key)
		}
		account := common.HexToAddress(key)
		if _, dup := allocations[account]; dup {
			return nil, fmt.Errorf("%w: duplicate account %s", ErrInvalidAllocation, account.Hex())
		}
		if amount == nil || (*big.Int)(amount).Sign() < 0 {
			return nil, fmt.Errorf("%w: non-positive amount for %s", ErrInvalidAllocation, account.Hex())
		}
		v, overflow := uint256.FromBig((*big.Int)(amount))
		if overflow {
			return nil, fmt.Errorf("%w: amount for %s overflows", ErrInvalidAllocation, account.Hex())
		}
		allocations[account] = v
	}

	return NewBalanceTree(allocations)
}

func (b *BalanceTree) Root() common.Hash {
	return b.tree.Root
}

// Len returns the number of allocations.
func (b *BalanceTree) Len() int {
	return len(b.accounts)
}

// Total returns the sum of all allocations.
func (b *BalanceTree) Total() *big.Int {
	total := new(big.Int)
	for _, amount := range b.amounts {
		total.Add(total, amount.ToBig())
	}

	return total
}

// Claim returns the claim of account.
func (b *BalanceTree) Claim(account common.Address) (Claim, error) {
	i, ok := slices.BinarySearchFunc(b.accounts, account, func(a, t common.Address) int {
		return bytes.Compare(a[:], t[:])
	})
	if !ok {
		return Claim{}, fmt.Errorf("%w: no allocation for %s", ErrInvalidAllocation, account.Hex())
	}

	return b.claimAt(i)
}

// ClaimsFile returns the publishable claims of every account.
func (b *BalanceTree) ClaimsFile() (*ClaimsFile, error) {
	claims := make(map[common.Address]Claim, len(b.accounts))
	for i, account := range b.accounts {
		c, err := b.claimAt(i)
		if err != nil {
			return nil, err
		}
		claims[account] = c
	}

	return &ClaimsFile{
		MerkleRoot: b.tree.Root,
		TokenTotal: (*math.HexOrDecimal256)(b.Total()),
		Claims:     claims,
	}, nil
}

func (b *BalanceTree) claimAt(i int) (Claim, error) {
	proof, err := b.tree.ProofAt(i)
	if err != nil {
		return Claim{}, err
	}
	index, err := safecast.IntToUint64(i)
	if err != nil {
		return Claim{}, err
	}

	return Claim{
		Index:  index,
		Amount: (*math.HexOrDecimal256)(b.amounts[b.accounts[i]].ToBig()),
		Proof:  proof,
	}, nil
}
