package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8080},
		Storage: StorageConfig{Driver: "memory"},
		Admin: AdminConfig{
			ID:        "vpqtl43",
			Password:  "TNwhdrla12!",
			JWTSecret: "secret",
			TokenTTL:  time.Hour,
		},
		Content: ContentConfig{BoardPageSize: 9},
	}
}

func TestValidateConfig_AcceptsDefaults(t *testing.T) {
	assert.NoError(t, validateConfig(validTestConfig()))
}

func TestValidateConfig_RejectsUnknownDriver(t *testing.T) {
	cfg := validTestConfig()
	cfg.Storage.Driver = "sqlite"
	assert.Error(t, validateConfig(cfg))
}

func TestValidateConfig_PostgresRequiresHostAndName(t *testing.T) {
	cfg := validTestConfig()
	cfg.Storage.Driver = "postgres"
	assert.Error(t, validateConfig(cfg))

	cfg.Storage.Host = "localhost"
	assert.Error(t, validateConfig(cfg))

	cfg.Storage.Name = "gospelarchive"
	assert.NoError(t, validateConfig(cfg))
}

func TestValidateConfig_RequiresAdminGate(t *testing.T) {
	cfg := validTestConfig()
	cfg.Admin.Password = ""
	assert.Error(t, validateConfig(cfg))

	cfg = validTestConfig()
	cfg.Admin.JWTSecret = ""
	assert.Error(t, validateConfig(cfg))
}

func TestValidateConfig_RejectsBadPortAndPageSize(t *testing.T) {
	cfg := validTestConfig()
	cfg.Server.Port = 0
	assert.Error(t, validateConfig(cfg))

	cfg = validTestConfig()
	cfg.Content.BoardPageSize = 0
	assert.Error(t, validateConfig(cfg))
}

func TestGetDSN(t *testing.T) {
	cfg := StorageConfig{
		Host: "db", Port: 5432, User: "postgres", Password: "pw", Name: "archive", SSLMode: "disable",
	}
	require.Equal(t, "host=db port=5432 user=postgres password=pw dbname=archive sslmode=disable", cfg.GetDSN())
}

func TestRedisGetAddr(t *testing.T) {
	cfg := RedisConfig{Host: "cache", Port: 6379}
	assert.Equal(t, "cache:6379", cfg.GetAddr())
}
