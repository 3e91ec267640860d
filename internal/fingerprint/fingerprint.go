// Package fingerprint derives short content hashes for vendored files.
//
// A fingerprint is the first 16 hex characters of the SHA-256 of the exact
// bytes given. No line-ending or encoding normalization is performed. The
// truncation keeps ledgers readable; fingerprints identify content, they are
// not a security boundary.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// Size is the length of a fingerprint in hex characters.
const Size = 16

// Fingerprint identifies file content. The zero value means "absent".
type Fingerprint string

// Of returns the fingerprint of content.
func Of(content []byte) Fingerprint {
	sum := sha256.Sum256(content)
	return Fingerprint(hex.EncodeToString(sum[:])[:Size])
}

// OfString returns the fingerprint of s.
func OfString(s string) Fingerprint {
	return Of([]byte(s))
}

// IsZero reports whether f is absent.
func (f Fingerprint) IsZero() bool {
	return f == ""
}

func (f Fingerprint) String() string {
	return string(f)
}
