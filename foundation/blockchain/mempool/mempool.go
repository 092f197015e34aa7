// Package mempool maintains the pool of transactions waiting to be
// mined into the next block.
package mempool

import (
	"sync"

	"github.com/minichain/minichain/foundation/blockchain/database"
)

// Mempool represents the ordered set of pending transactions. The
// submission order is preserved, the next block carries the
// transactions in the order they arrived.
type Mempool struct {
	mu   sync.RWMutex
	pool []database.Tx
}

// New constructs a new mempool for pending transactions.
func New() *Mempool {
	return &Mempool{}
}

// Add appends a transaction to the pool. Transactions are accepted
// unconditionally, there is no identity or balance validation.
func (mp *Mempool) Add(tx database.Tx) int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)
	return len(mp.pool)
}

// Count returns the current number of transactions in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Copy returns a read-only copy of the pending transactions in
// submission order.
func (mp *Mempool) Copy() []database.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	txs := make([]database.Tx, len(mp.pool))
	copy(txs, mp.pool)
	return txs
}

// Drain returns the pending transactions in submission order and
// empties the pool in one step.
func (mp *Mempool) Drain() []database.Tx {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	txs := mp.pool
	mp.pool = nil
	return txs
}

// Truncate clears all the transactions from the pool.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = nil
}
