package utils

import (
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// PasswordDigest computes the stored digest for a password and its salt:
// a single SHA3-256 pass over "password#salt", hex encoded.
//
// This is deliberately a plain hash, not an iterated KDF. Existing stored
// digests depend on this exact construction; hardening it means a
// versioned migration of every user row, not a swap here.
func PasswordDigest(password, salt string) string {
	sum := sha3.Sum256([]byte(password + "#" + salt))
	return hex.EncodeToString(sum[:])
}

// NewSecret returns a fresh random identifier, used for both password
// salts and bearer tokens.
func NewSecret() string {
	return uuid.NewString()
}
