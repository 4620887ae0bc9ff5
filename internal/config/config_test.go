package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("sin JWT_SECRET falla", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("valores por defecto", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secreto")
		t.Setenv("SERVER_PORT", "")
		t.Setenv("DB_HOST", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "4000", cfg.ServerPort)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "disable", cfg.DBSSLMode)
	})

	t.Run("el entorno manda", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secreto")
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("DB_NAME", "asistencia_test")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "asistencia_test", cfg.DBName)
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "clave",
		DBName:     "asistencia",
		DBSSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5432 user=postgres password=clave dbname=asistencia sslmode=disable",
		cfg.GetDBConnString(),
	)
}
