// Package digest provides the hashing support for blocks and the
// proof of work target check.
package digest

import (
	"crypto/sha256"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ZeroHash represents a hash code of zeros.
const ZeroHash string = "0x0000000000000000000000000000000000000000000000000000000000000000"

// hashLength is the length of a hex encoded sha256 hash with the 0x
// prefix.
const hashLength = 66

// Hash returns a unique string for the specified value. The value is
// serialized to JSON and the sha256 sum of the bytes is hex encoded
// with a 0x prefix.
func Hash(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ZeroHash
	}

	hash := sha256.Sum256(data)
	return hexutil.Encode(hash[:])
}

// Solved reports whether the specified hash meets the proof of work
// target of difficulty leading zero hex digits.
func Solved(difficulty uint, hash string) bool {
	if len(hash) != hashLength {
		return false
	}
	if difficulty > 64 {
		return false
	}

	for _, digit := range hash[2 : 2+difficulty] {
		if digit != '0' {
			return false
		}
	}
	return true
}
