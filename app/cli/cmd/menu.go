package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/minichain/minichain/foundation/blockchain/state"
	"github.com/spf13/cobra"
)

// runMenu drives the interactive loop. Every command runs to
// completion before the next prompt is shown, there is no background
// mining.
func runMenu(_ *cobra.Command, _ []string) error {
	if difficulty <= 0 {
		return fmt.Errorf("difficulty must be a positive integer, got %d", difficulty)
	}

	fmt.Printf("mining genesis block at difficulty %d, please wait\n", difficulty)

	st, err := newState()
	if err != nil {
		return err
	}

	gb := st.RetrieveLatestBlock()
	fmt.Printf("genesis block mined: hash %s\n", gb.Hash)

	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(`
MENU:
1) New transaction
2) Mine block
3) Change difficulty
4) Change reward
5) Show chain
6) Show pending transactions
7) Validate chain
0) Exit

Enter your choice: `)

		choice, ok := readLine(in)
		if !ok {
			return nil
		}

		switch choice {
		case "0":
			fmt.Println("exiting, the chain is not persisted")
			return nil

		case "1":
			newTransaction(st, in)

		case "2":
			mineBlock(st)

		case "3":
			changeDifficulty(st, in)

		case "4":
			changeReward(st, in)

		case "5":
			showChain(st)

		case "6":
			showPending(st)

		case "7":
			validateChain(st)

		default:
			fmt.Println("invalid option selected, please retry")
		}
	}
}

// =============================================================================

func newTransaction(st *state.State, in *bufio.Scanner) {
	from, ok := prompt(in, "sender address: ")
	if !ok || from == "" {
		fmt.Println("sender address must not be empty")
		return
	}

	to, ok := prompt(in, "receiver address: ")
	if !ok || to == "" {
		fmt.Println("receiver address must not be empty")
		return
	}

	input, ok := prompt(in, "amount: ")
	if !ok {
		return
	}
	amount, err := strconv.ParseFloat(input, 64)
	if err != nil {
		fmt.Printf("amount must be a number: %s\n", err)
		return
	}

	tx := st.SubmitTransaction(from, to, amount)
	fmt.Printf("transaction added: %s\n", tx)
}

func mineBlock(st *state.State) {
	fmt.Println("generating block, please wait")

	start := time.Now()
	bd, err := st.MineNextBlock(context.Background())
	if err != nil {
		fmt.Printf("block generation failed: %s\n", err)
		return
	}

	fmt.Printf("block %d mined in %v\n", bd.Header.Number, time.Since(start).Round(time.Millisecond))
	fmt.Printf("  hash:   %s\n", bd.Hash)
	fmt.Printf("  parent: %s\n", bd.Header.ParentHash)
	fmt.Printf("  nonce:  %d\n", bd.Header.Nonce)
	for _, tx := range bd.Trans {
		fmt.Printf("  tx:     %s\n", tx)
	}
}

func changeDifficulty(st *state.State, in *bufio.Scanner) {
	input, ok := prompt(in, "new difficulty: ")
	if !ok {
		return
	}

	value, err := strconv.Atoi(input)
	if err != nil {
		fmt.Printf("difficulty must be an integer: %s\n", err)
		return
	}

	if err := st.SetDifficulty(value); err != nil {
		fmt.Printf("failed to update difficulty: %s\n", err)
		return
	}
	fmt.Println("updated difficulty, takes effect on the next mined block")
}

func changeReward(st *state.State, in *bufio.Scanner) {
	input, ok := prompt(in, "new reward: ")
	if !ok {
		return
	}

	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		fmt.Printf("reward must be a number: %s\n", err)
		return
	}

	if err := st.SetReward(value); err != nil {
		fmt.Printf("failed to update reward: %s\n", err)
		return
	}
	fmt.Println("updated reward, takes effect on the next mined block")
}

func showChain(st *state.State) {
	for _, bd := range st.RetrieveBlocks() {
		ts := time.UnixMilli(int64(bd.Header.TimeStamp)).UTC().Format(time.RFC3339)
		fmt.Printf("block %d  %s  txs[%d]  hash %s  parent %s\n", bd.Header.Number, ts, len(bd.Trans), bd.Hash, bd.Header.ParentHash)
	}
}

func showPending(st *state.State) {
	txs := st.RetrieveMempool()
	if len(txs) == 0 {
		fmt.Println("no pending transactions")
		return
	}

	for _, tx := range txs {
		fmt.Printf("  %s\n", tx)
	}
}

func validateChain(st *state.State) {
	if err := st.Validate(); err != nil {
		fmt.Printf("chain is NOT valid: %s\n", err)
		return
	}
	fmt.Println("chain is valid")
}

// =============================================================================

func prompt(in *bufio.Scanner, label string) (string, bool) {
	fmt.Print("Enter " + label)
	return readLine(in)
}

func readLine(in *bufio.Scanner) (string, bool) {
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}
