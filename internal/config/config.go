package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingJWTKey = errors.New("JWT_KEY must be set")

type Config struct {
	MongoURI      string
	MongoDatabase string
	JWTKey        string
	JWTIssuer     string
	JWTAudience   string
	JWTTTL        time.Duration
	Port          string
	LogLevel      string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is fine; the process environment is used as-is.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "finanzas",
		JWTTTL:        8 * time.Hour,
		Port:          "9446",
		LogLevel:      "info",
	}

	envMongoURI := os.Getenv("MONGO_URI")
	envMongoDB := os.Getenv("MONGO_DB")
	envJWTKey := os.Getenv("JWT_KEY")
	envJWTIssuer := os.Getenv("JWT_ISSUER")
	envJWTAudience := os.Getenv("JWT_AUDIENCE")
	envJWTTTL := os.Getenv("JWT_TTL")
	envPort := os.Getenv("PORT")
	envLogLevel := os.Getenv("LOG_LEVEL")

	if len(envMongoURI) != 0 {
		env.MongoURI = envMongoURI
	}

	if len(envMongoDB) != 0 {
		env.MongoDatabase = envMongoDB
	}

	if len(envJWTKey) != 0 {
		env.JWTKey = envJWTKey
	}

	if len(envJWTIssuer) != 0 {
		env.JWTIssuer = envJWTIssuer
	}

	if len(envJWTAudience) != 0 {
		env.JWTAudience = envJWTAudience
	}

	if len(envJWTTTL) != 0 {
		ttl, err := time.ParseDuration(envJWTTTL)
		if err != nil {
			return nil, fmt.Errorf("JWT_TTL: %w", err)
		}
		env.JWTTTL = ttl
	}

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envLogLevel) != 0 {
		env.LogLevel = envLogLevel
	}

	if len(env.JWTKey) == 0 {
		return nil, ErrMissingJWTKey
	}

	return &env, nil
}
