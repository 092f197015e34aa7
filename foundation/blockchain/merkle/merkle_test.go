package merkle_test

import (
	"crypto/sha256"
	"testing"

	"github.com/minichain/minichain/foundation/blockchain/merkle"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// leaf implements the Hashable interface for testing.
type leaf string

func (l leaf) Hash() ([]byte, error) {
	hash := sha256.Sum256([]byte(l))
	return hash[:], nil
}

func leafs(values ...string) []leaf {
	ls := make([]leaf, len(values))
	for i, v := range values {
		ls[i] = leaf(v)
	}
	return ls
}

// =============================================================================

func Test_Tree(t *testing.T) {
	t.Log("Given the need to validate merkle tree construction.")
	{
		t.Logf("\tTest 0:\tWhen building a tree over no values.")
		{
			if _, err := merkle.NewTree([]leaf{}); err == nil {
				t.Fatalf("\t%s\tTest 0:\tShould not be able to build an empty tree.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould not be able to build an empty tree.", success)
		}

		t.Logf("\tTest 1:\tWhen building the same tree twice.")
		{
			r1, err := merkle.RootHex(leafs("a", "b", "c", "d"))
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to compute a root: %v", failed, err)
			}
			r2, err := merkle.RootHex(leafs("a", "b", "c", "d"))
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to compute a root: %v", failed, err)
			}

			if r1 != r2 {
				t.Fatalf("\t%s\tTest 1:\tShould get the same root: got %s, exp %s", failed, r2, r1)
			}
			t.Logf("\t%s\tTest 1:\tShould get the same root.", success)
		}

		t.Logf("\tTest 2:\tWhen building trees over the same values in a different order.")
		{
			r1, err := merkle.RootHex(leafs("a", "b"))
			if err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould be able to compute a root: %v", failed, err)
			}
			r2, err := merkle.RootHex(leafs("b", "a"))
			if err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould be able to compute a root: %v", failed, err)
			}

			if r1 == r2 {
				t.Fatalf("\t%s\tTest 2:\tShould get different roots for different orders.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould get different roots for different orders.", success)
		}

		t.Logf("\tTest 3:\tWhen building a tree over an odd number of values.")
		{
			r1, err := merkle.RootHex(leafs("a", "b", "c"))
			if err != nil {
				t.Fatalf("\t%s\tTest 3:\tShould be able to compute a root: %v", failed, err)
			}

			// The last leaf is duplicated so every leaf has a sibling.
			r2, err := merkle.RootHex(leafs("a", "b", "c", "c"))
			if err != nil {
				t.Fatalf("\t%s\tTest 3:\tShould be able to compute a root: %v", failed, err)
			}

			if r1 != r2 {
				t.Fatalf("\t%s\tTest 3:\tShould duplicate the last leaf: got %s, exp %s", failed, r1, r2)
			}
			t.Logf("\t%s\tTest 3:\tShould duplicate the last leaf.", success)
		}

		t.Logf("\tTest 4:\tWhen keeping the tree around.")
		{
			tree, err := merkle.NewTree(leafs("a", "b", "c"))
			if err != nil {
				t.Fatalf("\t%s\tTest 4:\tShould be able to build the tree: %v", failed, err)
			}

			values := tree.Values()
			if len(values) != 3 {
				t.Fatalf("\t%s\tTest 4:\tShould keep the original leaf values: got %d, exp 3", failed, len(values))
			}
			t.Logf("\t%s\tTest 4:\tShould keep the original leaf values.", success)
		}
	}
}
