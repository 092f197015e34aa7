// Package miner implements the proof of work search for a nonce that
// solves a candidate block at a given difficulty.
package miner

import (
	"context"
	"errors"

	"github.com/minichain/minichain/foundation/blockchain/database"
	"github.com/minichain/minichain/foundation/blockchain/digest"
)

// ErrMaxAttempts is returned when a configured attempt cap is reached
// before a solution is found.
var ErrMaxAttempts = errors.New("maximum mining attempts reached")

// =============================================================================

// Config represents the settings for a single mining operation.
type Config struct {
	Difficulty  uint   // Number of leading 0's needed to solve the hash solution.
	MaxAttempts uint64 // Cap on nonce attempts, 0 means unbounded.
}

// Result represents the outcome of a successful mining operation.
type Result struct {
	Block    database.Block // The solved block including the winning nonce.
	Attempts uint64         // Number of nonce values tried.
}

// =============================================================================

// Mine performs the proof of work search for the specified candidate
// block. The nonce starts at zero and is incremented until the header
// hash carries the required number of leading zero hex digits. Mining
// has no side effects on the chain or the pending pool, the solved
// block is handed back to the caller.
//
// Each unit of difficulty multiplies the expected number of attempts
// by 16, so the search is unbounded unless the context carries a
// deadline or cfg.MaxAttempts is set.
func Mine(ctx context.Context, block database.Block, cfg Config, ev func(v string, args ...any)) (Result, error) {
	if ev == nil {
		ev = func(v string, args ...any) {}
	}

	ev("miner: Mine: blk[%d]: started: difficulty[%d]", block.Header.Number, cfg.Difficulty)
	defer ev("miner: Mine: blk[%d]: completed", block.Header.Number)

	block.Header.Difficulty = cfg.Difficulty
	block.Header.Nonce = 0

	var attempts uint64
	for {
		attempts++
		if attempts%100_000 == 0 {
			ev("miner: Mine: blk[%d]: attempts[%d]", block.Header.Number, attempts)
		}

		if err := ctx.Err(); err != nil {
			ev("miner: Mine: blk[%d]: CANCELLED", block.Header.Number)
			return Result{}, err
		}

		hash := block.Hash()
		if digest.Solved(cfg.Difficulty, hash) {
			ev("miner: Mine: blk[%d]: SOLVED: attempts[%d]: hash[%s]", block.Header.Number, attempts, hash)
			return Result{Block: block, Attempts: attempts}, nil
		}

		if cfg.MaxAttempts != 0 && attempts >= cfg.MaxAttempts {
			return Result{}, ErrMaxAttempts
		}

		block.Header.Nonce++
	}
}
