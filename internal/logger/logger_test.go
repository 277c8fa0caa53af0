package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bagdasarian/freetime-finder/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("production, уровень warn", func(t *testing.T) {
		l, err := New(config.LogConfig{Env: "production", Level: "warn"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zap.InfoLevel))
		assert.True(t, l.Core().Enabled(zap.WarnLevel))
	})

	t.Run("development, уровень debug", func(t *testing.T) {
		l, err := New(config.LogConfig{Env: "development", Level: "debug"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zap.DebugLevel))
	})

	t.Run("ошибка: неизвестный уровень", func(t *testing.T) {
		_, err := New(config.LogConfig{Level: "loud"})
		assert.Error(t, err)
	})
}
