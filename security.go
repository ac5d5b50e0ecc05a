package techquiry

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"

	"github.com/goliatone/go-errors"
	"golang.org/x/crypto/pbkdf2"
)

// Password hashing parameters. The algorithm is fixed for the whole
// application; records hashed with different parameters will not verify.
const (
	hashIterations = 210_000
	hashKeyLength  = 32
	saltLength     = 16
)

// GenerateSalt returns a fresh random per-record salt.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to generate password salt")
	}
	return salt, nil
}

// HashPassword derives the stored hash of the given plaintext using
// PBKDF2-SHA256 with the given salt. Deterministic: the same password and
// salt always produce the same hash.
func HashPassword(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, hashIterations, hashKeyLength, sha256.New)
}

// VerifyPassword recomputes the hash of password under salt and compares it
// to the expected hash in constant time.
func VerifyPassword(password string, salt, expected []byte) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(computed, expected) == 1
}
