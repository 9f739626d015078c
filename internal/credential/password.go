// Package credential hashes passwords and issues signed access tokens.
package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

var ErrEmptyPassword = errors.New("empty password")

// Params are the argon2id cost parameters.
type Params struct {
	Memory      uint32 // KiB
	Time        uint32
	Parallelism uint8
	KeyLen      uint32
}

var DefaultParams = Params{Memory: 64 * 1024, Time: 3, Parallelism: 1, KeyLen: 32}

const (
	saltLen = 16

	legacyIterations = 100_000
	legacyKeyLen     = 32
)

// PasswordHasher derives and checks password credentials.
type PasswordHasher struct {
	params Params
}

func NewPasswordHasher(params Params) *PasswordHasher {
	return &PasswordHasher{params: params}
}

// Hash returns a PHC string: $argon2id$v=19$m=...,t=...,p=...$<saltB64>$<keyB64>
func (h *PasswordHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	p := h.params
	key := argon2.IDKey([]byte(plain), salt, p.Time, p.Memory, p.Parallelism, p.KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether plain matches stored. It accepts argon2id PHC strings
// and the older base64salt:base64key PBKDF2-SHA256 form. Malformed input is a
// mismatch.
func (h *PasswordHasher) Verify(plain, stored string) bool {
	if plain == "" || stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$argon2id$") {
		return verifyArgon2(plain, stored)
	}
	return verifyLegacy(plain, stored)
}

func verifyArgon2(plain, phc string) bool {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, key
	parts := strings.Split(phc, "$")
	if len(parts) != 6 {
		return false
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}
	var m, t uint32
	var p uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	stored, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(stored) == 0 {
		return false
	}
	key := argon2.IDKey([]byte(plain), salt, t, m, p, uint32(len(stored)))
	return subtle.ConstantTimeCompare(key, stored) == 1
}

func verifyLegacy(plain, stored string) bool {
	saltB64, keyB64, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}
	salt, err := base64.StdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}
	want, err := base64.StdEncoding.DecodeString(keyB64)
	if err != nil || len(want) != legacyKeyLen {
		return false
	}
	key := pbkdf2.Key([]byte(plain), salt, legacyIterations, legacyKeyLen, sha256.New)
	return subtle.ConstantTimeCompare(key, want) == 1
}
