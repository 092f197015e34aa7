package database

import (
	"fmt"
	"time"

	"github.com/minichain/minichain/foundation/blockchain/digest"
	"github.com/minichain/minichain/foundation/blockchain/merkle"
)

// BlockHeader represents common information required for each block.
type BlockHeader struct {
	Number        uint64  `json:"number"`        // Position of the block in the chain, genesis is 0.
	ParentHash    string  `json:"parent_hash"`   // Hash of the previous block in the chain.
	TimeStamp     uint64  `json:"timestamp"`     // Time the block was assembled, unix milliseconds.
	BeneficiaryID string  `json:"beneficiary"`   // Account receiving the mining reward.
	Difficulty    uint    `json:"difficulty"`    // Number of leading 0's needed to solve the hash solution.
	MiningReward  float64 `json:"mining_reward"` // Reward credited for mining this block.
	TransRoot     string  `json:"trans_root"`    // Merkle tree root hash for the transactions in this block.
	Nonce         uint64  `json:"nonce"`         // Value identified to solve the hash solution.
}

// Block represents a group of transactions batched together with the
// header that links the block to its parent.
type Block struct {
	Header BlockHeader
	Trans  []Tx
}

// NewGenesisBlock constructs the candidate for the first block in the
// chain. The block carries no transactions and references the zero
// hash as its parent. The caller is responsible for mining it.
func NewGenesisBlock(difficulty uint) Block {
	return Block{
		Header: BlockHeader{
			Number:        0,
			ParentHash:    digest.ZeroHash,
			TimeStamp:     uint64(time.Now().UTC().UnixMilli()),
			BeneficiaryID: CoinbaseAccount,
			Difficulty:    difficulty,
			TransRoot:     digest.ZeroHash,
		},
	}
}

// NewBlock constructs the candidate for the next block in the chain
// from the set of pending transactions. The mining reward transaction
// is appended last. The caller is responsible for mining the block
// before it can be written to the chain.
func NewBlock(beneficiaryID string, difficulty uint, miningReward float64, parent BlockData, pending []Tx) (Block, error) {
	trans := make([]Tx, 0, len(pending)+1)
	trans = append(trans, pending...)
	trans = append(trans, NewRewardTx(beneficiaryID, miningReward))

	// The header commits to the exact transaction set through the
	// merkle root, so hashing the header alone covers the block.
	transRoot, err := merkle.RootHex(trans)
	if err != nil {
		return Block{}, err
	}

	b := Block{
		Header: BlockHeader{
			Number:        parent.Header.Number + 1,
			ParentHash:    parent.Hash,
			TimeStamp:     uint64(time.Now().UTC().UnixMilli()),
			BeneficiaryID: beneficiaryID,
			Difficulty:    difficulty,
			MiningReward:  miningReward,
			TransRoot:     transRoot,
			Nonce:         0,
		},
		Trans: trans,
	}

	return b, nil
}

// Hash returns the unique hash for the block by hashing the header.
func (b Block) Hash() string {
	return digest.Hash(b.Header)
}

// ValidateBlock takes a block and validates it to be included into
// the blockchain after the specified parent.
func (b Block) ValidateBlock(parent BlockData, ev func(v string, args ...any)) error {
	nextNumber := parent.Header.Number + 1

	ev("database: ValidateBlock: blk[%d]: check: block number is the next number", b.Header.Number)

	if b.Header.Number != nextNumber {
		return fmt.Errorf("this block is not the next number, got %d, exp %d", b.Header.Number, nextNumber)
	}

	ev("database: ValidateBlock: blk[%d]: check: parent hash matches parent block", b.Header.Number)

	if b.Header.ParentHash != parent.Hash {
		return fmt.Errorf("parent block hash doesn't match our known parent, got %s, exp %s", b.Header.ParentHash, parent.Hash)
	}

	ev("database: ValidateBlock: blk[%d]: check: block hash has been solved", b.Header.Number)

	hash := b.Hash()
	if !digest.Solved(b.Header.Difficulty, hash) {
		return fmt.Errorf("%s invalid block hash", hash)
	}

	ev("database: ValidateBlock: blk[%d]: check: merkle root matches transactions", b.Header.Number)

	transRoot, err := merkle.RootHex(b.Trans)
	if err != nil {
		return err
	}
	if b.Header.TransRoot != transRoot {
		return fmt.Errorf("merkle root does not match transactions, got %s, exp %s", transRoot, b.Header.TransRoot)
	}

	return nil
}

// =============================================================================

// BlockData represents a block as it is stored in the chain, with the
// hash captured at the moment the block was accepted. Once stored, a
// block is never mutated.
type BlockData struct {
	Hash   string      `json:"hash"`
	Header BlockHeader `json:"header"`
	Trans  []Tx        `json:"trans"`
}

// NewBlockData constructs the value that is stored in the chain. The
// transaction slice is copied so the stored block is never shared with
// the candidate it was mined from.
func NewBlockData(block Block) BlockData {
	trans := make([]Tx, len(block.Trans))
	copy(trans, block.Trans)

	return BlockData{
		Hash:   block.Hash(),
		Header: block.Header,
		Trans:  trans,
	}
}

// Clone returns a copy of the stored block whose transaction slice is
// independent of the original.
func (bd BlockData) Clone() BlockData {
	trans := make([]Tx, len(bd.Trans))
	copy(trans, bd.Trans)
	bd.Trans = trans

	return bd
}

// ToBlock converts a stored block back into a block value.
func ToBlock(bd BlockData) Block {
	return Block{
		Header: bd.Header,
		Trans:  bd.Trans,
	}
}
