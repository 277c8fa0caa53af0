package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bagdasarian/freetime-finder/internal/config"
)

const snapshotYAML = `
timezone: UTC
now: 2025-03-10T08:00:00Z
group:
  id: 7
  tier: FREE
  members:
    - user_id: 1
    - user_id: 2
slots:
  - user_id: 1
    type: ONE_TIME
    start_at: 2025-03-10T08:00:00Z
    end_at: 2025-03-10T10:00:00Z
  - user_id: 2
    type: ONE_TIME
    start_at: 2025-03-10T12:00:00Z
    end_at: 2025-03-10T13:00:00Z
`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "group.yaml")
	require.NoError(t, os.WriteFile(path, []byte(snapshotYAML), 0o600))
	return path
}

func testConfig() *config.Config {
	return &config.Config{Finder: config.FinderConfig{RecurrenceMode: "process", Parallelism: 2, DefaultLimit: 5}}
}

func TestRunFind(t *testing.T) {
	t.Run("все участники", func(t *testing.T) {
		var out bytes.Buffer
		err := runFind(&out, testConfig(), &findOptions{file: writeSnapshot(t), limit: -1})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 4)
		assert.Contains(t, lines[0], "group 7 (FREE)")
		assert.Contains(t, lines[0], "found 3")
		assert.Equal(t, "2025-03-10T00:00:00Z  2025-03-10T08:00:00Z  480 min", lines[1])
		assert.Equal(t, "2025-03-10T10:00:00Z  2025-03-10T12:00:00Z  120 min", lines[2])
		assert.True(t, strings.HasPrefix(lines[3], "2025-03-10T13:00:00Z  2025-03-17T00:00:00Z"))
	})

	t.Run("выбранный участник и лимит", func(t *testing.T) {
		var out bytes.Buffer
		err := runFind(&out, testConfig(), &findOptions{file: writeSnapshot(t), members: "2", limit: 1})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "found 2")
		assert.Equal(t, "2025-03-10T00:00:00Z  2025-03-10T12:00:00Z  720 min", lines[1])
	})

	t.Run("ошибка: неизвестный режим", func(t *testing.T) {
		err := runFind(&bytes.Buffer{}, testConfig(), &findOptions{file: writeSnapshot(t), mode: "weird"})
		assert.Error(t, err)
	})

	t.Run("ошибка: некорректный now", func(t *testing.T) {
		err := runFind(&bytes.Buffer{}, testConfig(), &findOptions{file: writeSnapshot(t), now: "yesterday"})
		assert.Error(t, err)
	})

	t.Run("ошибка: некорректный список участников", func(t *testing.T) {
		err := runFind(&bytes.Buffer{}, testConfig(), &findOptions{file: writeSnapshot(t), members: "1,x"})
		assert.Error(t, err)
	})
}

func TestNewFinder(t *testing.T) {
	t.Run("пояс и режим из конфигурации", func(t *testing.T) {
		f, err := newFinder(config.FinderConfig{RecurrenceMode: "member", Timezone: "UTC", Parallelism: 2}, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "UTC", f.Location().String())
	})

	t.Run("ошибка: неизвестный пояс не подменяется локальным", func(t *testing.T) {
		_, err := newFinder(config.FinderConfig{RecurrenceMode: "process", Timezone: "Europe/Mocsow"}, zap.NewNop())
		assert.ErrorContains(t, err, "FINDER_TIMEZONE")
	})

	t.Run("ошибка: неизвестный режим", func(t *testing.T) {
		_, err := newFinder(config.FinderConfig{RecurrenceMode: "weird"}, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestPrintPlans(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printPlans(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "TIER")
	assert.True(t, strings.HasPrefix(lines[1], "FREE"))
	assert.Contains(t, lines[3], "BUSINESS")
}
