// Package cmd contains the interactive menu app.
package cmd

import (
	"fmt"
	"os"

	"github.com/minichain/minichain/foundation/blockchain/genesis"
	"github.com/minichain/minichain/foundation/blockchain/state"
	"github.com/minichain/minichain/foundation/logger"
	"github.com/spf13/cobra"
)

var (
	minerAddress string
	difficulty   int
	reward       float64
	genesisFile  string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&minerAddress, "miner", "m", "miner1", "Account credited with mining rewards.")
	rootCmd.PersistentFlags().IntVarP(&difficulty, "difficulty", "d", 1, "Number of leading zero hex digits a block hash needs.")
	rootCmd.PersistentFlags().Float64VarP(&reward, "reward", "r", 100, "Reward credited to the miner per mined block.")
	rootCmd.PersistentFlags().StringVarP(&genesisFile, "genesis", "g", "", "Path to a genesis file, overrides the other flags.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log the raw mining events.")
}

var rootCmd = &cobra.Command{
	Use:   "minichain",
	Short: "An educational proof of work ledger",
	Long: `Maintains an in-memory chain of blocks, accepts pending transactions
and produces new blocks via proof of work mining. The entire state is
lost on exit.`,
	RunE: runMenu,
}

// Execute runs the root command and exits on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newState builds the chain session from the command line flags. This
// mines the genesis block, which can take a moment at higher
// difficulties.
func newState() (*state.State, error) {
	gen := genesis.New(uint(difficulty), reward)
	if genesisFile != "" {
		g, err := genesis.Load(genesisFile)
		if err != nil {
			return nil, fmt.Errorf("unable to load genesis file: %w", err)
		}
		gen = g
	}

	ev := state.EventHandler(nil)
	if verbose {
		log, err := logger.New("CLI")
		if err != nil {
			return nil, err
		}
		ev = func(v string, args ...any) {
			log.Infof(v, args...)
		}
	}

	return state.New(state.Config{
		BeneficiaryID: minerAddress,
		Genesis:       gen,
		EvHandler:     ev,
	})
}
