package privacy

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

const pseudonymBytes = 16

// PseudonymizePIN returns a keyed BLAKE2b digest of pin for logs and span
// attributes. Equal inputs under the same key give equal pseudonyms, so
// callers should pass the canonical long form when one is available.
// Keys longer than 64 bytes are first reduced with BLAKE2b-512.
func PseudonymizePIN(key []byte, pin string) string {
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}
	h, err := blake2b.New(pseudonymBytes, key)
	if err != nil {
		// Only reachable with an oversized key, handled above.
		panic(err)
	}
	h.Write([]byte(pin))
	return "pnr_" + hex.EncodeToString(h.Sum(nil))
}
