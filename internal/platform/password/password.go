// Package password hashes and verifies user credentials.
//
// Credentials are stored as "pbkdf2:sha256:<iterations>$<salt>$<hex key>".
// bcrypt credentials ("$2a$..." and friends) are accepted on verify.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 work factor used when none is configured.
	DefaultIterations = 600000

	saltLength   = 16
	keyLength    = sha256.Size
	saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	methodPrefix = "pbkdf2:sha256"
)

// Hasher derives and checks salted PBKDF2-SHA256 credentials.
type Hasher struct {
	iterations int
}

// NewHasher creates a Hasher. Non-positive iterations fall back to DefaultIterations.
func NewHasher(iterations int) *Hasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &Hasher{iterations: iterations}
}

// Hash returns the encoded credential for plaintext with a fresh random salt.
func (h *Hasher) Hash(plaintext string) (string, error) {
	salt, err := randomSalt(saltLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(plaintext), []byte(salt), h.iterations, keyLength, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s", methodPrefix, h.iterations, salt, hex.EncodeToString(key)), nil
}

// Verify reports whether plaintext matches credential.
// Malformed or unsupported credentials never match.
func (h *Hasher) Verify(credential, plaintext string) bool {
	if isBcrypt(credential) {
		return bcrypt.CompareHashAndPassword([]byte(credential), []byte(plaintext)) == nil
	}

	method, salt, encodedKey, ok := split(credential)
	if !ok {
		return false
	}
	iterations, ok := parseMethod(method)
	if !ok {
		return false
	}
	want, err := hex.DecodeString(encodedKey)
	if err != nil || len(want) == 0 {
		return false
	}

	got := pbkdf2.Key([]byte(plaintext), []byte(salt), iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func isBcrypt(credential string) bool {
	return strings.HasPrefix(credential, "$2a$") ||
		strings.HasPrefix(credential, "$2b$") ||
		strings.HasPrefix(credential, "$2y$")
}

func split(credential string) (method, salt, key string, ok bool) {
	parts := strings.Split(credential, "$")
	if len(parts) != 3 || parts[1] == "" {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

// parseMethod accepts "pbkdf2:sha256" and "pbkdf2:sha256:<n>".
func parseMethod(method string) (int, bool) {
	if method == methodPrefix {
		return DefaultIterations, true
	}
	rest, found := strings.CutPrefix(method, methodPrefix+":")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func randomSalt(n int) (string, error) {
	max := big.NewInt(int64(len(saltAlphabet)))
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(saltAlphabet[idx.Int64()])
	}
	return b.String(), nil
}
