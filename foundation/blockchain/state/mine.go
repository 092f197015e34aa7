package state

import (
	"context"

	"github.com/minichain/minichain/foundation/blockchain/database"
	"github.com/minichain/minichain/foundation/blockchain/miner"
)

// MineNextBlock assembles a candidate from the pending pool plus the
// mining reward transaction, performs the proof of work and appends
// the solved block to the chain. The pool is drained in the same
// critical section the block is written in, so a transaction can never
// be duplicated into two blocks or lost between drain and append.
//
// Mining an empty pool is valid and produces a block carrying just the
// reward transaction.
func (s *State) MineNextBlock(ctx context.Context) (database.BlockData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil || s.db.Height() == 0 {
		return database.BlockData{}, ErrEmptyMiningSession
	}

	s.evHandler("state: MineNextBlock: MINING: pending[%d]", s.mempool.Count())

	block, err := database.NewBlock(s.beneficiaryID, s.settings.Difficulty, s.settings.MiningReward, s.db.LatestBlock(), s.mempool.Copy())
	if err != nil {
		return database.BlockData{}, err
	}

	result, err := miner.Mine(ctx, block, miner.Config{Difficulty: s.settings.Difficulty}, s.evHandler)
	if err != nil {
		return database.BlockData{}, err
	}

	bd, err := s.db.Write(result.Block)
	if err != nil {
		return database.BlockData{}, err
	}

	// The pending transactions are now part of the chain.
	s.mempool.Truncate()

	s.evHandler("state: MineNextBlock: MINED: blk[%d]: attempts[%d]: hash[%s]", bd.Header.Number, result.Attempts, bd.Hash)

	return bd, nil
}
