package state

import "github.com/minichain/minichain/foundation/blockchain/database"

// SubmitTransaction constructs a new transaction between the two
// specified accounts and adds it to the pending pool. Submission
// always succeeds, accounts are opaque labels and no balance is
// checked. The transaction waits in the pool until the next block is
// mined.
func (s *State) SubmitTransaction(from string, to string, value float64) database.Tx {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := database.NewTx(from, to, value)
	count := s.mempool.Add(tx)

	s.evHandler("state: SubmitTransaction: tx[%s]: pending[%d]", tx, count)

	return tx
}
