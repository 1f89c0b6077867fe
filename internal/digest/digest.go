package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Size is the checksum length in bytes (hex string is twice as long).
const Size = 16

// Sequence returns the hex BLAKE2b-128 checksum of seq.
func Sequence(seq string) string {
	h, err := blake2b.New(Size, nil)
	if err != nil {
		// Only an invalid size or oversized key can fail; both are constants here.
		panic(err)
	}
	h.Write([]byte(seq))
	return hex.EncodeToString(h.Sum(nil))
}

// ETag formats a checksum as a strong HTTP entity tag.
func ETag(sum string) string { return `"` + sum + `"` }
