package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("JWT_ALGORITHM", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres", cfg.DBDriver)
	require.Equal(t, "5432", cfg.DBPort)
	require.Equal(t, "HS256", cfg.JWTAlgorithm)
	require.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_MySQLDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "3306", cfg.DBPort)
}
