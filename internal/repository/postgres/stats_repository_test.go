package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

func TestStatsRepository_GetMemberSlotStats(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStatsRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM group_members gm").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "slot_count"}).
			AddRow(int64(1), "alice", 4).
			AddRow(int64(2), "bob", 0))

	stats, err := repo.GetMemberSlotStats(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, int64(1), stats[0].UserID)
	assert.Equal(t, 4, stats[0].SlotCount)
	assert.Equal(t, 0, stats[1].SlotCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_GetSlotStatsByType(t *testing.T) {
	t.Run("все типы, включая нулевые", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewStatsRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"type", "count"}).
				AddRow("CYCLIC_WEEKLY", 3).
				AddRow("ONE_TIME", 0))

		stats, err := repo.GetSlotStatsByType(context.Background(), 3)

		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, domain.SlotCyclicWeekly, stats[0].Type)
		assert.Equal(t, 3, stats[0].Count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка базы данных", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewStatsRepository(db)

		mock.ExpectQuery("SELECT").WillReturnError(errors.New("db down"))

		_, err := repo.GetSlotStatsByType(context.Background(), 3)
		assert.Error(t, err)
	})
}
