package credential

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

var testParams = Params{Memory: 1024, Time: 1, Parallelism: 1, KeyLen: 32}

func TestHash_VerifyRoundTrip(t *testing.T) {
	h := NewPasswordHasher(testParams)

	stored, err := h.Hash("correct horse")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored, "$argon2id$v=19$m=1024,t=1,p=1$"))
	assert.True(t, h.Verify("correct horse", stored))
	assert.False(t, h.Verify("correct horsE", stored))
}

func TestHash_SaltsDiffer(t *testing.T) {
	h := NewPasswordHasher(testParams)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHash_EmptyPassword(t *testing.T) {
	_, err := NewPasswordHasher(testParams).Hash("")

	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerify_Malformed(t *testing.T) {
	h := NewPasswordHasher(testParams)

	for _, stored := range []string{
		"",
		"no-separator",
		"$argon2id$v=19$m=1024,t=1,p=1$onlysalt",
		"$argon2id$v=18$m=1024,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5",
		"***:***",
	} {
		assert.False(t, h.Verify("anything", stored), stored)
	}
}

func TestVerify_LegacyPBKDF2(t *testing.T) {
	salt := []byte("0123456789abcdef")
	key := pbkdf2.Key([]byte("legacy-pass"), salt, 100_000, 32, sha256.New)
	stored := base64.StdEncoding.EncodeToString(salt) + ":" + base64.StdEncoding.EncodeToString(key)

	h := NewPasswordHasher(testParams)
	assert.True(t, h.Verify("legacy-pass", stored))
	assert.False(t, h.Verify("other-pass", stored))
}
