package merkle

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// TreeNodeNotFoundError indicates that a target hash could not be found in the tree.
type TreeNodeNotFoundError struct {
	TargetHash common.Hash
}

func NewTreeNodeNotFoundError(targetHash common.Hash) *TreeNodeNotFoundError {
	return &TreeNodeNotFoundError{TargetHash: targetHash}
}

func (e *TreeNodeNotFoundError) Error() string {
	return "merkle tree does not contain hash: " + e.TargetHash.String()
}

// LeafIndexOutOfRangeError indicates a proof was requested for a position past the last leaf.
type LeafIndexOutOfRangeError struct {
	Index  int
	Leaves int
}

func NewLeafIndexOutOfRangeError(index, leaves int) *LeafIndexOutOfRangeError {
	return &LeafIndexOutOfRangeError{Index: index, Leaves: leaves}
}

func (e *LeafIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("leaf index %d out of range for tree with %d leaves", e.Index, e.Leaves)
}
