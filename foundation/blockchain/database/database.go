// Package database maintains the in-memory chain of blocks and the
// transaction and block types the blockchain is built from.
package database

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minichain/minichain/foundation/blockchain/digest"
	"github.com/minichain/minichain/foundation/blockchain/merkle"
)

// Database manages the chain of blocks. Blocks are owned exclusively
// by the database and are append only, a stored block is never shared
// by reference or mutated.
type Database struct {
	mu          sync.RWMutex
	blocks      []BlockData
	latestBlock BlockData
	ev          func(v string, args ...any)
}

// New constructs the database from a mined genesis block.
func New(genesisBlock Block, ev func(v string, args ...any)) (*Database, error) {
	if ev == nil {
		ev = func(v string, args ...any) {}
	}

	if genesisBlock.Header.Number != 0 {
		return nil, fmt.Errorf("genesis block number must be 0, got %d", genesisBlock.Header.Number)
	}
	if genesisBlock.Header.ParentHash != digest.ZeroHash {
		return nil, errors.New("genesis block parent hash must be the zero hash")
	}

	bd := NewBlockData(genesisBlock)

	db := Database{
		blocks:      []BlockData{bd},
		latestBlock: bd,
		ev:          ev,
	}

	return &db, nil
}

// LatestBlock returns the current tip of the chain.
func (db *Database) LatestBlock() BlockData {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.latestBlock.Clone()
}

// Height returns the number of blocks in the chain.
func (db *Database) Height() int {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return len(db.blocks)
}

// Write validates the specified mined block against the current tip
// and appends it to the chain.
func (db *Database) Write(block Block) (BlockData, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := block.ValidateBlock(db.latestBlock, db.ev); err != nil {
		return BlockData{}, err
	}

	bd := NewBlockData(block)
	db.blocks = append(db.blocks, bd)
	db.latestBlock = bd

	db.ev("database: Write: blk[%d]: hash[%s]", bd.Header.Number, bd.Hash)

	return bd, nil
}

// AllBlocks returns a copy of the chain from genesis to tip.
func (db *Database) AllBlocks() []BlockData {
	db.mu.RLock()
	defer db.mu.RUnlock()

	blocks := make([]BlockData, len(db.blocks))
	for i, bd := range db.blocks {
		blocks[i] = bd.Clone()
	}
	return blocks
}

// GetBlock returns the contents of the specified block by number.
func (db *Database) GetBlock(num uint64) (BlockData, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if num >= uint64(len(db.blocks)) {
		return BlockData{}, fmt.Errorf("block %d does not exist in the chain", num)
	}
	return db.blocks[num].Clone(), nil
}

// Validate scans the whole chain and checks the integrity of every
// block. The scan never stops early, every violation is collected so
// the earliest one can be reported.
func (db *Database) Validate() error {
	return ValidateBlocks(db.AllBlocks())
}

// =============================================================================

// ValidateBlocks checks the integrity of a chain of stored blocks.
// For every block the stored hash must match a recomputation from the
// stored header, the parent hash must match the stored hash of the
// immediate predecessor, the block number must match its position and
// the transaction root must match the stored transactions. Proof of
// work is not re-checked, the difficulty setting may have changed
// since a block was mined.
func ValidateBlocks(blocks []BlockData) error {
	var ves ValidateErrors

	report := func(num uint64, err error) {
		ves = append(ves, &BlockError{Number: num, Err: err})
	}

	for i, bd := range blocks {
		if bd.Header.Number != uint64(i) {
			report(bd.Header.Number, fmt.Errorf("block number does not match chain position, got %d, exp %d", bd.Header.Number, i))
		}

		if hash := digest.Hash(bd.Header); hash != bd.Hash {
			report(bd.Header.Number, fmt.Errorf("stored hash does not match header, got %s, exp %s", bd.Hash, hash))
		}

		parentHash := digest.ZeroHash
		if i > 0 {
			parentHash = blocks[i-1].Hash
		}
		if bd.Header.ParentHash != parentHash {
			report(bd.Header.Number, fmt.Errorf("parent hash does not match predecessor, got %s, exp %s", bd.Header.ParentHash, parentHash))
		}

		transRoot := digest.ZeroHash
		if len(bd.Trans) > 0 {
			root, err := merkle.RootHex(bd.Trans)
			if err != nil {
				report(bd.Header.Number, err)
				continue
			}
			transRoot = root
		}
		if bd.Header.TransRoot != transRoot {
			report(bd.Header.Number, fmt.Errorf("merkle root does not match transactions, got %s, exp %s", bd.Header.TransRoot, transRoot))
		}
	}

	if len(ves) > 0 {
		return ves
	}
	return nil
}
