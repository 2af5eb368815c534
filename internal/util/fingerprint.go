package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint computes a stable short hash over the given key parts. Used to
// synthesize group keys for findings that carry no location.
func Fingerprint(parts ...string) string {
	h := sha256.New()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{'|'})
		}
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
