package database

import (
	"fmt"
	"strings"
)

// BlockError represents a validation failure located at a specific
// block in the chain.
type BlockError struct {
	Number uint64
	Err    error
}

// Error implements the error interface.
func (be *BlockError) Error() string {
	return fmt.Sprintf("block[%d]: %s", be.Number, be.Err)
}

// =============================================================================

// ValidateErrors represents the set of validation failures found while
// scanning the chain. The set is ordered by block number, so the first
// entry is the earliest violation.
type ValidateErrors []*BlockError

// Error implements the error interface.
func (ves ValidateErrors) Error() string {
	var sb strings.Builder
	for i, be := range ves {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(be.Error())
	}

	return sb.String()
}

// Earliest returns the violation closest to the genesis block.
func (ves ValidateErrors) Earliest() *BlockError {
	if len(ves) == 0 {
		return nil
	}
	return ves[0]
}
