package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "news")
	t.Setenv("DB_NAME", "nc_news")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "5432", cfg.DbPort)
	assert.Equal(t, "disable", cfg.DbSSLMode)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "logs", cfg.LogDir)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Zero(t, cfg.DbMaxConns)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "news")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "nc_news_test")
	t.Setenv("DB_MAX_CONNS", "12")
	t.Setenv("LOGLEVEL", "DEBUG")
	t.Setenv("ENV", "test")
	t.Setenv("CORS_ORIGINS", "http://a.example, http://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, int32(12), cfg.DbMaxConns)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "postgres://news:secret@db:5432/nc_news_test?sslmode=disable", cfg.GetDSN())
	assert.Equal(t, "postgres://news:***@db:5432/nc_news_test?sslmode=disable", cfg.GetDSNSafe())

	warnings, err := cfg.Validate()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:      "9090",
			DbHost:    "localhost",
			DbPort:    "5432",
			DbUser:    "news",
			DbPass:    "secret",
			DbName:    "nc_news",
			DbSSLMode: "require",
			LogLevel:  "info",
			Env:       "prod",
		}
	}

	t.Run("valid", func(t *testing.T) {
		warnings, err := valid().Validate()
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("missing db host", func(t *testing.T) {
		cfg := valid()
		cfg.DbHost = ""
		_, err := cfg.Validate()
		assert.Error(t, err)
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := valid()
		cfg.Port = "http"
		_, err := cfg.Validate()
		assert.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		cfg := valid()
		cfg.LogLevel = "verbose"
		_, err := cfg.Validate()
		assert.Error(t, err)
	})

	t.Run("warnings", func(t *testing.T) {
		cfg := valid()
		cfg.DbPass = ""
		cfg.DbSSLMode = "disable"
		cfg.CORSOrigins = []string{"*"}
		warnings, err := cfg.Validate()
		require.NoError(t, err)
		assert.Len(t, warnings, 3)
	})
}
