package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &StructuredConfig{}

	cfg.applyDefaults()

	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.Auth.TokenDuration)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

func TestApplyDefaults_DoesNotOverrideExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		Auth: Auth{
			TokenIssuer:   "custom-issuer",
			TokenDuration: time.Hour,
		},
		Server: Server{
			HTTPAddress:    "localhost:9999",
			RequestTimeout: 5 * time.Second,
		},
	}

	cfg.applyDefaults()

	assert.Equal(t, "custom-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
}

func TestValidate_MissingSignKey(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/estatehub"}},
	}
	cfg.applyDefaults()

	err := cfg.validate()

	require.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := &StructuredConfig{
		Auth: Auth{TokenSignKey: "secret"},
	}
	cfg.applyDefaults()

	err := cfg.validate()

	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestValidate_CompleteConfig(t *testing.T) {
	cfg := &StructuredConfig{
		Auth:    Auth{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/estatehub"}},
	}
	cfg.applyDefaults()

	require.NoError(t, cfg.validate())
}
