package database

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// CoinbaseAccount is the fixed sender label for mining reward transactions.
// It is not a real account, no balance is ever tracked for it.
const CoinbaseAccount = "coinbase"

// TxDataReward marks a transaction as a mining reward.
const TxDataReward = "reward"

// =============================================================================

// Tx represents a transfer between two accounts. Accounts are opaque
// labels, a transaction is never signed or checked against a balance.
type Tx struct {
	ID    string  `json:"id"`
	From  string  `json:"from"`
	To    string  `json:"to"`
	Value float64 `json:"value"`
	Data  string  `json:"data,omitempty"`
}

// NewTx constructs a new transaction between two accounts.
func NewTx(from string, to string, value float64) Tx {
	return Tx{
		ID:    uuid.NewString(),
		From:  from,
		To:    to,
		Value: value,
	}
}

// NewRewardTx constructs the transaction that credits the miner of a
// block with the configured mining reward.
func NewRewardTx(beneficiaryID string, value float64) Tx {
	return Tx{
		ID:    uuid.NewString(),
		From:  CoinbaseAccount,
		To:    beneficiaryID,
		Value: value,
		Data:  TxDataReward,
	}
}

// IsReward tests if the transaction is a mining reward.
func (tx Tx) IsReward() bool {
	return tx.Data == TxDataReward
}

// Hash implements the merkle Hashable interface for computing the
// transaction root of a block.
func (tx Tx) Hash() ([]byte, error) {
	data, err := json.Marshal(tx)
	if err != nil {
		return nil, err
	}

	hash := sha256.Sum256(data)
	return hash[:], nil
}

// String implements the fmt.Stringer interface for event logging.
func (tx Tx) String() string {
	return fmt.Sprintf("%s:%s->%s[%g]", tx.ID[:8], tx.From, tx.To, tx.Value)
}
