package fileutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashBytes returns the short content hash recorded for scanned sources.
func HashBytes(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])[:16]
}
