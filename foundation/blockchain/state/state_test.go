package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/minichain/minichain/foundation/blockchain/database"
	"github.com/minichain/minichain/foundation/blockchain/digest"
	"github.com/minichain/minichain/foundation/blockchain/genesis"
	"github.com/minichain/minichain/foundation/blockchain/state"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// newState bootstraps a chain session at difficulty 1 with a mining
// reward of 5.
func newState(t *testing.T) *state.State {
	t.Helper()

	st, err := state.New(state.Config{
		BeneficiaryID: "m1",
		Genesis:       genesis.New(1, 5),
	})
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct the state: %v", failed, err)
	}

	return st
}

// =============================================================================

func Test_MineScenario(t *testing.T) {
	t.Log("Given the need to validate the submit and mine workflow.")
	{
		t.Logf("\tTest 0:\tWhen submitting one transaction and mining at difficulty 1.")
		{
			st := newState(t)
			genesisHash := st.RetrieveLatestBlock().Hash

			tx := st.SubmitTransaction("a", "b", 10)

			bd, err := st.MineNextBlock(context.Background())
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to mine the block: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to mine the block.", success)

			if bd.Header.Number != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould have block number 1: got %d", failed, bd.Header.Number)
			}
			t.Logf("\t%s\tTest 0:\tShould have block number 1.", success)

			if bd.Header.ParentHash != genesisHash {
				t.Fatalf("\t%s\tTest 0:\tShould link to the genesis hash.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould link to the genesis hash.", success)

			if len(bd.Trans) != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould carry two transactions: got %d", failed, len(bd.Trans))
			}
			t.Logf("\t%s\tTest 0:\tShould carry two transactions.", success)

			if bd.Trans[0].ID != tx.ID || bd.Trans[0].From != "a" || bd.Trans[0].To != "b" || bd.Trans[0].Value != 10 {
				t.Fatalf("\t%s\tTest 0:\tShould carry the submitted transaction first: got %v", failed, bd.Trans[0])
			}
			t.Logf("\t%s\tTest 0:\tShould carry the submitted transaction first.", success)

			reward := bd.Trans[1]
			if !reward.IsReward() || reward.From != database.CoinbaseAccount || reward.To != "m1" || reward.Value != 5 {
				t.Fatalf("\t%s\tTest 0:\tShould carry the reward transaction last: got %v", failed, reward)
			}
			t.Logf("\t%s\tTest 0:\tShould carry the reward transaction last.", success)

			if !digest.Solved(1, bd.Hash) {
				t.Fatalf("\t%s\tTest 0:\tShould have at least 1 leading zero hex digit: got %s", failed, bd.Hash)
			}
			t.Logf("\t%s\tTest 0:\tShould have at least 1 leading zero hex digit.", success)

			if count := len(st.RetrieveMempool()); count != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould leave the pool empty after mining: got %d", failed, count)
			}
			t.Logf("\t%s\tTest 0:\tShould leave the pool empty after mining.", success)

			if err := st.Validate(); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould pass validation on the two block chain: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould pass validation on the two block chain.", success)
		}

		t.Logf("\tTest 1:\tWhen mining with an empty pool.")
		{
			st := newState(t)

			bd, err := st.MineNextBlock(context.Background())
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to mine the block: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould be able to mine the block.", success)

			if len(bd.Trans) != 1 || !bd.Trans[0].IsReward() {
				t.Fatalf("\t%s\tTest 1:\tShould carry exactly the reward transaction: got %d", failed, len(bd.Trans))
			}
			t.Logf("\t%s\tTest 1:\tShould carry exactly the reward transaction.", success)
		}

		t.Logf("\tTest 2:\tWhen mining a sequence of blocks.")
		{
			st := newState(t)

			st.SubmitTransaction("a", "b", 10)
			if _, err := st.MineNextBlock(context.Background()); err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould be able to mine the block: %v", failed, err)
			}

			st.SubmitTransaction("b", "c", 20)
			st.SubmitTransaction("c", "a", 5)
			if _, err := st.MineNextBlock(context.Background()); err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould be able to mine the block: %v", failed, err)
			}

			blocks := st.RetrieveBlocks()
			if len(blocks) != 3 {
				t.Fatalf("\t%s\tTest 2:\tShould have a chain of length 3: got %d", failed, len(blocks))
			}
			t.Logf("\t%s\tTest 2:\tShould have a chain of length 3.", success)

			if err := st.Validate(); err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould pass validation: %v", failed, err)
			}
			t.Logf("\t%s\tTest 2:\tShould pass validation.", success)

			blocks[1].Trans[0].Value = 1_000_000
			if err := database.ValidateBlocks(blocks); err == nil {
				t.Fatalf("\t%s\tTest 2:\tShould fail validation after tampering.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould fail validation after tampering.", success)
		}
	}
}

func Test_Settings(t *testing.T) {
	t.Log("Given the need to validate settings changes.")
	{
		t.Logf("\tTest 0:\tWhen setting an invalid difficulty.")
		{
			st := newState(t)

			for _, value := range []int{0, -1} {
				if err := st.SetDifficulty(value); !errors.Is(err, state.ErrInvalidParameter) {
					t.Fatalf("\t%s\tTest 0:\tShould reject difficulty %d: got %v", failed, value, err)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould reject non-positive difficulties.", success)

			if stg := st.RetrieveSettings(); stg.Difficulty != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould leave the difficulty unchanged: got %d", failed, stg.Difficulty)
			}
			t.Logf("\t%s\tTest 0:\tShould leave the difficulty unchanged.", success)
		}

		t.Logf("\tTest 1:\tWhen setting an invalid reward.")
		{
			st := newState(t)

			if err := st.SetReward(-5); !errors.Is(err, state.ErrInvalidParameter) {
				t.Fatalf("\t%s\tTest 1:\tShould reject a negative reward: got %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould reject a negative reward.", success)

			if stg := st.RetrieveSettings(); stg.MiningReward != 5 {
				t.Fatalf("\t%s\tTest 1:\tShould leave the reward unchanged: got %g", failed, stg.MiningReward)
			}
			t.Logf("\t%s\tTest 1:\tShould leave the reward unchanged.", success)
		}

		t.Logf("\tTest 2:\tWhen changing settings between mined blocks.")
		{
			st := newState(t)

			if err := st.SetDifficulty(2); err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould be able to raise the difficulty: %v", failed, err)
			}
			if err := st.SetReward(7); err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould be able to change the reward: %v", failed, err)
			}

			bd, err := st.MineNextBlock(context.Background())
			if err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould be able to mine the block: %v", failed, err)
			}

			if bd.Header.Difficulty != 2 || !digest.Solved(2, bd.Hash) {
				t.Fatalf("\t%s\tTest 2:\tShould mine the next block at the new difficulty: got %d", failed, bd.Header.Difficulty)
			}
			t.Logf("\t%s\tTest 2:\tShould mine the next block at the new difficulty.", success)

			if reward := bd.Trans[len(bd.Trans)-1]; reward.Value != 7 {
				t.Fatalf("\t%s\tTest 2:\tShould credit the new reward: got %g", failed, reward.Value)
			}
			t.Logf("\t%s\tTest 2:\tShould credit the new reward.", success)

			// The genesis block was mined at difficulty 1 and must
			// still validate after the change.
			if err := st.Validate(); err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould keep historical blocks valid: %v", failed, err)
			}
			t.Logf("\t%s\tTest 2:\tShould keep historical blocks valid.", success)
		}
	}
}

func Test_InvalidStartup(t *testing.T) {
	t.Log("Given the need to validate the startup values.")
	{
		t.Logf("\tTest 0:\tWhen bootstrapping with difficulty 0.")
		{
			_, err := state.New(state.Config{
				BeneficiaryID: "m1",
				Genesis:       genesis.New(0, 5),
			})
			if !errors.Is(err, state.ErrInvalidParameter) {
				t.Fatalf("\t%s\tTest 0:\tShould reject difficulty 0: got %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould reject difficulty 0.", success)
		}
	}
}
