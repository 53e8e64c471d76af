package merkle

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrEmptyTree is returned when proofs are requested from a tree built without leaves.
var ErrEmptyTree = errors.New("merkle tree has no leaves")

// Tree is a keccak256 merkle tree whose parent nodes hash the sorted pair of their children, so a
// proof is a plain list of siblings with no left/right flags.
type Tree struct {
	// Root is the hash at the top of the tree. The zero hash for an empty tree.
	Root common.Hash

	// Layers holds every layer below the root, leaves first. Layers with an odd number of nodes
	// are padded by repeating their last node.
	Layers [][]common.Hash
}

// NewTree builds a tree over leaves in the order given.
func NewTree(leaves []common.Hash) *Tree {
	tree := &Tree{Layers: make([][]common.Hash, 0)}
	if len(leaves) == 0 {
		return tree
	}

	layer := make([]common.Hash, len(leaves))
	copy(layer, leaves)

	for len(layer) > 1 {
		if len(layer)%2 == 1 {
			layer = append(layer, layer[len(layer)-1])
		}
		tree.Layers = append(tree.Layers, layer)

		parents := make([]common.Hash, 0, len(layer)/2)
		for i := 0; i < len(layer); i += 2 {
			parents = append(parents, hashPair(layer[i], layer[i+1]))
		}
		layer = parents
	}
	tree.Root = layer[0]

	return tree
}

// Leaves returns the bottom layer, including the padding node of an odd leaf count. Nil for an
// empty tree.
func (t *Tree) Leaves() []common.Hash {
	if len(t.Layers) == 0 {
		if t.Root == (common.Hash{}) {
			return nil
		}

		return []common.Hash{t.Root}
	}

	return t.Layers[0]
}

// GetProof returns the sibling path from leaf up to the root.
func (t *Tree) GetProof(leaf common.Hash) ([]common.Hash, error) {
	for i, h := range t.Leaves() {
		if h == leaf {
			return t.ProofAt(i)
		}
	}

	return nil, NewTreeNodeNotFoundError(leaf)
}

// ProofAt returns the sibling path of the leaf at position i.
func (t *Tree) ProofAt(i int) ([]common.Hash, error) {
	leaves := t.Leaves()
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	if i < 0 || i >= len(leaves) {
		return nil, NewLeafIndexOutOfRangeError(i, len(leaves))
	}

	proof := make([]common.Hash, 0, len(t.Layers))
	for _, layer := range t.Layers {
		proof = append(proof, layer[i^1])
		i /= 2
	}

	return proof, nil
}

// GetProofs returns the proof of every leaf keyed by the leaf hash.
func (t *Tree) GetProofs() (map[common.Hash][]common.Hash, error) {
	leaves := t.Leaves()
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}

	proofs := make(map[common.Hash][]common.Hash, len(leaves))
	for i, leaf := range leaves {
		if _, ok := proofs[leaf]; ok {
			continue
		}
		proof, err := t.ProofAt(i)
		if err != nil {
			return nil, err
		}
		proofs[leaf] = proof
	}

	return proofs, nil
}

// ProcessProof folds proof into leaf and returns the resulting root.
func ProcessProof(proof []common.Hash, leaf common.Hash) common.Hash {
	computed := leaf
	for _, sibling := range proof {
		computed = hashPair(computed, sibling)
	}

	return computed
}

// VerifyProof reports whether proof links leaf to root.
func VerifyProof(proof []common.Hash, root common.Hash, leaf common.Hash) bool {
	return ProcessProof(proof, leaf) == root
}

func hashPair(a, b common.Hash) common.Hash {
	if a.Cmp(b) < 0 {
		return efficientHash(a, b)
	}

	return efficientHash(b, a)
}

func efficientHash(a, b common.Hash) common.Hash {
	var buf [2 * common.HashLength]byte
	copy(buf[:common.HashLength], a[:])
	copy(buf[common.HashLength:], b[:])

	return crypto.Keccak256Hash(buf[:])
}
