package state

import (
	"github.com/minichain/minichain/foundation/blockchain/database"
	"github.com/minichain/minichain/foundation/blockchain/genesis"
)

// Validate scans the whole chain and reports every integrity
// violation found. A nil return means the chain is intact. The
// returned error is a database.ValidateErrors set whose first entry is
// the violation closest to genesis.
func (s *State) Validate() error {
	return s.db.Validate()
}

// RetrieveLatestBlock returns the current tip of the chain.
func (s *State) RetrieveLatestBlock() database.BlockData {
	return s.db.LatestBlock()
}

// RetrieveBlocks returns a copy of the chain from genesis to tip.
func (s *State) RetrieveBlocks() []database.BlockData {
	return s.db.AllBlocks()
}

// RetrieveMempool returns a copy of the pending transactions in
// submission order.
func (s *State) RetrieveMempool() []database.Tx {
	return s.mempool.Copy()
}

// RetrieveSettings returns the mining settings currently in force.
func (s *State) RetrieveSettings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settings
}

// RetrieveGenesis returns the settings the chain was bootstrapped with.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// RetrieveBeneficiaryID returns the account being credited with
// mining rewards.
func (s *State) RetrieveBeneficiaryID() string {
	return s.beneficiaryID
}
