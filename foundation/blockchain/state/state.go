// Package state is the core API for the blockchain and implements all
// the business rules and processing.
package state

import (
	"context"
	"errors"
	"sync"

	"github.com/minichain/minichain/foundation/blockchain/database"
	"github.com/minichain/minichain/foundation/blockchain/genesis"
	"github.com/minichain/minichain/foundation/blockchain/mempool"
	"github.com/minichain/minichain/foundation/blockchain/miner"
)

// ErrInvalidParameter is returned when a settings change carries a
// value outside its allowed range. The operation has no effect.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrEmptyMiningSession is returned when mining is attempted before
// the chain was initialized. The required startup sequence makes this
// structurally unreachable, seeing it indicates a programming fault.
var ErrEmptyMiningSession = errors.New("mining session not initialized")

// =============================================================================

// EventHandler defines a function that is called when events occur in
// the processing of mining and persisting blocks.
type EventHandler func(v string, args ...any)

// Settings represents the mutable mining configuration. Changes take
// effect on the next mining operation only, a block being mined is
// never affected by a concurrent settings change.
type Settings struct {
	Difficulty   uint
	MiningReward float64
}

// Config represents the configuration required to start the chain.
type Config struct {
	BeneficiaryID string
	Genesis       genesis.Genesis
	EvHandler     EventHandler
}

// State manages the blockchain and the pool of pending transactions.
// Every operation is synchronous and serialized through the state
// mutex, so the pool is always drained atomically with respect to the
// block that consumes it.
type State struct {
	mu sync.Mutex

	beneficiaryID string
	settings      Settings
	evHandler     EventHandler

	genesis genesis.Genesis
	mempool *mempool.Mempool
	db      *database.Database
}

// New constructs the state by mining the genesis block at the startup
// difficulty and building an empty pending pool around it.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	if cfg.Genesis.Difficulty == 0 {
		return nil, errorInvalidParameter("difficulty must be a positive integer")
	}
	if cfg.Genesis.MiningReward < 0 {
		return nil, errorInvalidParameter("mining reward must not be negative")
	}

	ev("state: New: mining genesis block: difficulty[%d]", cfg.Genesis.Difficulty)

	// The genesis block is mined like any other block so the chain
	// starts with a solved tip to link against.
	result, err := miner.Mine(context.Background(), database.NewGenesisBlock(cfg.Genesis.Difficulty), miner.Config{Difficulty: cfg.Genesis.Difficulty}, ev)
	if err != nil {
		return nil, err
	}

	db, err := database.New(result.Block, ev)
	if err != nil {
		return nil, err
	}

	state := State{
		beneficiaryID: cfg.BeneficiaryID,
		settings: Settings{
			Difficulty:   cfg.Genesis.Difficulty,
			MiningReward: cfg.Genesis.MiningReward,
		},
		evHandler: ev,

		genesis: cfg.Genesis,
		mempool: mempool.New(),
		db:      db,
	}

	return &state, nil
}
