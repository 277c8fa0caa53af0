package snapshot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

const sample = `
timezone: Europe/Moscow
now: 2025-03-10T08:00:00Z
group:
  id: 42
  title: Команда
  tier: group_pro
  members:
    - user_id: 1
      username: alice
      timezone: Asia/Tokyo
    - user_id: 2
slots:
  - id: a
    user_id: 1
    type: ONE_TIME
    start_at: 2025-03-10T10:00:00Z
    end_at: 2025-03-10T11:00:00Z
  - id: b
    user_id: 2
    type: cyclic_weekly
    day_of_week: wed
    start_time_local: "22:00"
    end_time_local: "02:00"
  - id: c
    user_id: 2
    type: CYCLIC_WEEKLY
    day_of_week: 0
    start_time_local: "09:00"
    end_time_local: "10:00"
`

func TestParse(t *testing.T) {
	snap, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "Europe/Moscow", snap.Location.String())
	assert.True(t, snap.Now.Equal(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)))

	assert.Equal(t, int64(42), snap.Group.ID)
	assert.Equal(t, domain.TierGroupPro, snap.Group.Tier)
	require.Len(t, snap.Group.Members, 2)
	assert.Equal(t, "Asia/Tokyo", snap.Group.Members[0].Timezone)
	assert.Equal(t, domain.DefaultTimezone, snap.Group.Members[1].Timezone)

	require.Len(t, snap.Slots, 3)
	assert.Equal(t, int64(42), snap.Slots[0].GroupID)
	assert.Equal(t, domain.OneTime{
		StartAt: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC),
	}, snap.Slots[0].Period)
	assert.Equal(t, domain.CyclicWeekly{DayOfWeek: time.Wednesday, StartTimeLocal: "22:00", EndTimeLocal: "02:00"}, snap.Slots[1].Period)
	assert.Equal(t, time.Sunday, snap.Slots[2].Period.(domain.CyclicWeekly).DayOfWeek)
}

func TestParse_Defaults(t *testing.T) {
	snap, err := Parse([]byte("group:\n  id: 1\n  members:\n    - user_id: 5\n"))
	require.NoError(t, err)

	assert.Nil(t, snap.Location)
	assert.True(t, snap.Now.IsZero())
	assert.Equal(t, domain.TierFree, snap.Group.Tier)
	assert.Empty(t, snap.Slots)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "неизвестный тариф", data: "group:\n  id: 1\n  tier: GOLD\n"},
		{name: "неизвестный пояс", data: "timezone: Moon/Base\ngroup:\n  id: 1\n"},
		{name: "now не RFC 3339", data: "now: tomorrow\ngroup:\n  id: 1\n"},
		{name: "участник без id", data: "group:\n  id: 1\n  members:\n    - username: x\n"},
		{name: "неизвестный тип слота", data: "group:\n  id: 1\nslots:\n  - user_id: 1\n    type: DAILY\n"},
		{name: "день недели вне диапазона", data: "group:\n  id: 1\nslots:\n  - user_id: 1\n    type: CYCLIC_WEEKLY\n    day_of_week: 9\n"},
		{
			name: "разовый слот с началом после конца",
			data: "group:\n  id: 1\nslots:\n  - user_id: 1\n    type: ONE_TIME\n    start_at: 2025-03-10T11:00:00Z\n    end_at: 2025-03-10T10:00:00Z\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)
		})
	}

	t.Run("битый YAML", func(t *testing.T) {
		_, err := Parse([]byte("group: ["))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	snap, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, snap.Slots, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
