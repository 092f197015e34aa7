// Package genesis maintains access to the genesis settings.
package genesis

import (
	"encoding/json"
	"os"
	"time"
)

// Genesis represents the settings the chain is bootstrapped with.
type Genesis struct {
	Date         time.Time `json:"date"`
	Name         string    `json:"name"`          // A friendly name for this running instance.
	Difficulty   uint      `json:"difficulty"`    // How difficult it needs to be to solve the work problem.
	MiningReward float64   `json:"mining_reward"` // Reward for mining a block.
}

// New constructs genesis settings from the specified startup values.
func New(difficulty uint, miningReward float64) Genesis {
	return Genesis{
		Date:         time.Now().UTC(),
		Name:         "minichain",
		Difficulty:   difficulty,
		MiningReward: miningReward,
	}
}

// Load opens and consumes a genesis file.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, err
	}

	var genesis Genesis
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}
