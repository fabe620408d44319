package txcodec

import (
	"crypto/sha256"

	"github.com/KarpelesLab/cryptutil"
)

// Hash256 computes double SHA-256 (SHA-256 of SHA-256) of buf, the hash
// used throughout the Bitcoin wire format for transaction ids and
// signature preimages.
func Hash256(buf []byte) [32]byte {
	h := cryptutil.Hash(buf, sha256.New, sha256.New)
	var out [32]byte
	copy(out[:], h)
	return out
}
