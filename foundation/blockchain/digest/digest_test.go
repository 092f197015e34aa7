package digest_test

import (
	"testing"

	"github.com/minichain/minichain/foundation/blockchain/digest"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Hash(t *testing.T) {
	type data struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}

	t.Log("Given the need to validate hashing is deterministic.")
	{
		t.Logf("\tTest 0:\tWhen hashing the same value twice.")
		{
			v := data{Name: "a", Value: 10}

			h1 := digest.Hash(v)
			h2 := digest.Hash(v)

			if h1 != h2 {
				t.Fatalf("\t%s\tTest 0:\tShould produce the same hash: got %s, exp %s", failed, h2, h1)
			}
			t.Logf("\t%s\tTest 0:\tShould produce the same hash.", success)

			if len(h1) != len(digest.ZeroHash) {
				t.Fatalf("\t%s\tTest 0:\tShould produce a hash of the fixed length: got %d", failed, len(h1))
			}
			t.Logf("\t%s\tTest 0:\tShould produce a hash of the fixed length.", success)
		}

		t.Logf("\tTest 1:\tWhen hashing two values that differ in one field.")
		{
			h1 := digest.Hash(data{Name: "a", Value: 10})
			h2 := digest.Hash(data{Name: "a", Value: 11})

			if h1 == h2 {
				t.Fatalf("\t%s\tTest 1:\tShould produce different hashes.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould produce different hashes.", success)
		}
	}
}

func Test_Solved(t *testing.T) {
	type table struct {
		name       string
		difficulty uint
		hash       string
		solved     bool
	}

	tt := []table{
		{"zero", 1, digest.ZeroHash, true},
		{"one_zero", 1, "0x0a00000000000000000000000000000000000000000000000000000000000000", true},
		{"not_solved", 1, "0xa000000000000000000000000000000000000000000000000000000000000000", false},
		{"two_zeros", 2, "0x00a0000000000000000000000000000000000000000000000000000000000000", true},
		{"short_hash", 1, "0x00", false},
		{"too_difficult", 65, digest.ZeroHash, false},
	}

	t.Log("Given the need to validate the proof of work predicate.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen checking %s at difficulty %d.", testID, tst.name, tst.difficulty)
			{
				if got := digest.Solved(tst.difficulty, tst.hash); got != tst.solved {
					t.Errorf("\t%s\tTest %d:\tShould get the right verdict: got %v, exp %v", failed, testID, got, tst.solved)
					continue
				}
				t.Logf("\t%s\tTest %d:\tShould get the right verdict.", success, testID)
			}
		}
	}
}
