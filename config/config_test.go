package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, ":8000", cfg.Server.HTTPPort)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, "es", cfg.I18n.DefaultLanguage)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Nil(t, cfg.Kafka.Brokers)
	assert.Nil(t, cfg.I18n.Files)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "25")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("I18N_FILES", "/etc/comics/active.fr.json")

	cfg := LoadEnv()

	assert.Equal(t, ":9090", cfg.Server.HTTPPort)
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.True(t, cfg.Logger.DisableCaller)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, []string{"/etc/comics/active.fr.json"}, cfg.I18n.Files)
}

func TestLoadEnvEmptySliceDisables(t *testing.T) {
	t.Setenv("ELASTICSEARCH_ADDRESSES", "")

	cfg := LoadEnv()

	assert.Nil(t, cfg.Elastic.Addresses)
}
