package public

import "github.com/minichain/minichain/foundation/blockchain/database"

// newTx is what a client submits to add a pending transaction.
type newTx struct {
	From  string  `json:"from" validate:"required"`
	To    string  `json:"to" validate:"required"`
	Value float64 `json:"value" validate:"required"`
}

// settings is what a client submits to change the mining
// configuration. Either field may be omitted to leave it unchanged.
type settings struct {
	Difficulty *int     `json:"difficulty" validate:"omitempty,gt=0"`
	Reward     *float64 `json:"reward" validate:"omitempty,gte=0"`
}

// blockSummary is the representation of a block sent back to clients.
type blockSummary struct {
	Number     uint64 `json:"number"`
	TimeStamp  uint64 `json:"timestamp"`
	TransCount int    `json:"trans_count"`
	Hash       string `json:"hash"`
	ParentHash string `json:"parent_hash"`
	Difficulty uint   `json:"difficulty"`
	Nonce      uint64 `json:"nonce"`
}

func toBlockSummary(bd database.BlockData) blockSummary {
	return blockSummary{
		Number:     bd.Header.Number,
		TimeStamp:  bd.Header.TimeStamp,
		TransCount: len(bd.Trans),
		Hash:       bd.Hash,
		ParentHash: bd.Header.ParentHash,
		Difficulty: bd.Header.Difficulty,
		Nonce:      bd.Header.Nonce,
	}
}
