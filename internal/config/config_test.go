package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"entidad/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, "admin", cfg.DBUser)
	assert.Equal(t, "entidad_db", cfg.DBName)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "local", cfg.CodespaceName)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, ":3000", cfg.ListenAddr())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.interno")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "productos_db")
	t.Setenv("CODESPACE_NAME", "mi-codespace")

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "db.interno", cfg.DBHost)
	assert.Equal(t, 5433, cfg.DBPort)
	assert.Equal(t, "productos_db", cfg.DBName)
	assert.Equal(t, "mi-codespace", cfg.CodespaceName)
	assert.Equal(t, ":8080", cfg.ListenAddr())
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "10.0.0.5")
	t.Setenv("DB_PASSWORD", "secreto")

	cfg := config.Load()

	assert.Equal(t,
		"host=10.0.0.5 port=5432 user=admin password=secreto dbname=entidad_db sslmode=disable",
		cfg.DSN(),
	)
}
