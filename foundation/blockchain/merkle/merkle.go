// Package merkle provides merkle tree support so a block header can commit
// to the exact set and order of transactions the block carries.
package merkle

import (
	"crypto/sha256"
	"errors"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Hashable represents the behavior concrete data must exhibit to be
// used as a leaf in the merkle tree.
type Hashable interface {
	Hash() ([]byte, error)
}

// =============================================================================

// Tree represents a merkle tree built over a set of leaf values. The
// leaf order is significant, a different order produces a different root.
type Tree[T Hashable] struct {
	root   []byte
	values []T
}

// NewTree constructs a merkle tree from the specified values.
func NewTree[T Hashable](values []T) (*Tree[T], error) {
	if len(values) == 0 {
		return nil, errors.New("cannot construct tree with no content")
	}

	var leafs [][]byte
	for _, value := range values {
		hash, err := value.Hash()
		if err != nil {
			return nil, err
		}
		leafs = append(leafs, hash)
	}

	// An odd number of leafs duplicates the last one so every leaf has
	// a sibling to pair with. A single leaf pairs with itself.
	if len(leafs)%2 == 1 {
		leafs = append(leafs, leafs[len(leafs)-1])
	}

	// Fold pairs of hashes level by level until a single root remains.
	for len(leafs) > 1 {
		if len(leafs)%2 == 1 {
			leafs = append(leafs, leafs[len(leafs)-1])
		}

		var level [][]byte
		for i := 0; i < len(leafs); i += 2 {
			hash := sha256.Sum256(append(leafs[i], leafs[i+1]...))
			level = append(level, hash[:])
		}
		leafs = level
	}

	t := Tree[T]{
		root:   leafs[0],
		values: values,
	}

	return &t, nil
}

// RootHex returns the merkle root of the tree in hex format.
func (t *Tree[T]) RootHex() string {
	return hexutil.Encode(t.root)
}

// Values returns the leaf values the tree was built from in their
// original order.
func (t *Tree[T]) Values() []T {
	return t.values
}

// =============================================================================

// RootHex computes the merkle root for the specified values in hex
// format without keeping the tree around.
func RootHex[T Hashable](values []T) (string, error) {
	t, err := NewTree(values)
	if err != nil {
		return "", err
	}

	return t.RootHex(), nil
}
