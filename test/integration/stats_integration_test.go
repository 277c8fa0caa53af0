//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

func TestStatsIntegration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	svc := newServices(t, db)

	registerUsers(t, svc, 1, 2)
	_, err := svc.groups.CreateGroup(ctx, &domain.Group{ID: 9, Title: "stats"}, 1)
	require.NoError(t, err)
	_, err = svc.groups.JoinGroup(ctx, 9, 2)
	require.NoError(t, err)

	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	for i := range 2 {
		_, err := svc.slots.AddSlot(ctx, &domain.BusySlot{
			GroupID: 9, UserID: 1,
			Period: domain.OneTime{StartAt: start.Add(time.Duration(i) * 2 * time.Hour), EndAt: start.Add(time.Duration(i)*2*time.Hour + time.Hour)},
		})
		require.NoError(t, err)
	}
	_, err = svc.slots.AddSlot(ctx, &domain.BusySlot{
		GroupID: 9, UserID: 1,
		Period: domain.CyclicWeekly{DayOfWeek: time.Friday, StartTimeLocal: "18:00", EndTimeLocal: "20:00"},
	})
	require.NoError(t, err)

	stats, err := svc.stats.GetGroupStats(ctx, 9)
	require.NoError(t, err)

	require.Len(t, stats.MemberStats, 2)
	assert.Equal(t, int64(1), stats.MemberStats[0].UserID)
	assert.Equal(t, 3, stats.MemberStats[0].SlotCount)
	assert.Equal(t, 0, stats.MemberStats[1].SlotCount, "участник без слотов тоже в статистике")

	byType := make(map[domain.SlotType]int)
	for _, s := range stats.TypeStats {
		byType[s.Type] = s.Count
	}
	assert.Equal(t, 2, byType[domain.SlotOneTime])
	assert.Equal(t, 1, byType[domain.SlotCyclicWeekly])
}
