package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Digester derives credential digests from plaintext passwords. The scheme is
// a single SHA-256 over password || salt || secret, hex encoded (64 chars).
// Salt is a fixed application-wide literal and Secret is process-wide
// configuration; both must stay stable for stored digests to keep verifying.
type Digester struct {
	Salt   string
	Secret string
}

// Digest returns the 64-hex-character credential digest for a password.
func (d Digester) Digest(password string) string {
	sum := sha256.Sum256([]byte(password + d.Salt + d.Secret))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether password derives the stored digest. The comparison
// is constant time.
func (d Digester) Verify(password, storedDigest string) bool {
	computed := d.Digest(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedDigest)) == 1
}
