package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	t.Setenv("JWT_KEY", "test-signing-key")
	t.Setenv("MONGO_URI", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("PORT", "")

	env, err := ProcessEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", env.MongoURI)
	assert.Equal(t, "9446", env.Port)
	assert.Equal(t, 8*time.Hour, env.JWTTTL)
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	t.Setenv("JWT_KEY", "test-signing-key")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("MONGO_DB", "finance")
	t.Setenv("JWT_ISSUER", "finance-server")
	t.Setenv("JWT_TTL", "30m")

	env, err := ProcessEnvironmentVariables()

	require.NoError(t, err)
	assert.Equal(t, "mongodb://mongo:27017", env.MongoURI)
	assert.Equal(t, "finance", env.MongoDatabase)
	assert.Equal(t, "finance-server", env.JWTIssuer)
	assert.Equal(t, 30*time.Minute, env.JWTTTL)
}

func TestProcessEnvironmentVariables_MissingJWTKey(t *testing.T) {
	t.Setenv("JWT_KEY", "")

	_, err := ProcessEnvironmentVariables()

	assert.ErrorIs(t, err, ErrMissingJWTKey)
}

func TestProcessEnvironmentVariables_BadTTL(t *testing.T) {
	t.Setenv("JWT_KEY", "test-signing-key")
	t.Setenv("JWT_TTL", "eight hours")

	_, err := ProcessEnvironmentVariables()

	assert.Error(t, err)
}
