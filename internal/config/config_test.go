package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		type Config struct {
			HTTP config.HTTP
			Auth config.Auth
			Log  config.Log
		}

		cfg, err := config.New[Config]()
		require.NoError(t, err)

		assert.Equal(t, uint32(3000), cfg.HTTP.Port)
		assert.True(t, cfg.HTTP.Swagger)
		assert.Empty(t, cfg.Auth.APIKey)
		assert.Equal(t, config.LogFormatJSON, cfg.Log.Format)
		assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	})

	t.Run("Should read values from environment", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("API_KEY", "s3cret")
		t.Setenv("LOG_FORMAT", "text")

		type Config struct {
			HTTP config.HTTP
			Auth config.Auth
			Log  config.Log
		}

		cfg, err := config.New[Config]()
		require.NoError(t, err)

		assert.Equal(t, uint32(8080), cfg.HTTP.Port)
		assert.Equal(t, "s3cret", cfg.Auth.APIKey)
		assert.Equal(t, config.LogFormatText, cfg.Log.Format)
	})

	t.Run("Should reject unknown log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "yaml")

		_, err := config.New[config.Log]()
		assert.Error(t, err)
	})
}
