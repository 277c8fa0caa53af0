package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/freetime-finder/internal/domain"
	"github.com/bagdasarian/freetime-finder/internal/repository"
)

func setupGroupRepo(t *testing.T) (*groupRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewGroupRepository(db), mock
}

func TestGroupRepository_Create(t *testing.T) {
	t.Run("успешное создание группы", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		now := time.Now()
		group := &domain.Group{ID: -1001, Title: "Study group", Tier: domain.TierFree}

		mock.ExpectQuery("INSERT INTO groups").
			WithArgs(int64(-1001), "Study group", "FREE", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

		err := repo.Create(context.Background(), group)

		require.NoError(t, err)
		assert.Equal(t, now, group.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: группа уже существует", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		// ON CONFLICT DO NOTHING не возвращает строк
		mock.ExpectQuery("INSERT INTO groups").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}))

		err := repo.Create(context.Background(), &domain.Group{ID: 1, Title: "dup", Tier: domain.TierFree})

		assert.True(t, errors.Is(err, repository.ErrAlreadyExists))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroupRepository_CreateWithMember(t *testing.T) {
	t.Run("группа и создатель в одной транзакции", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO groups").
			WithArgs(int64(5), "Band", "GROUP_PRO", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectExec("INSERT INTO group_members").
			WithArgs(int64(5), int64(10), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.CreateWithMember(context.Background(), &domain.Group{ID: 5, Title: "Band", Tier: domain.TierGroupPro}, 10)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка при добавлении участника откатывает транзакцию", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO groups").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectExec("INSERT INTO group_members").
			WillReturnError(errors.New("foreign key violation"))
		mock.ExpectRollback()

		err := repo.CreateWithMember(context.Background(), &domain.Group{ID: 5, Title: "Band", Tier: domain.TierFree}, 10)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroupRepository_Upsert(t *testing.T) {
	t.Run("существующая группа сохраняет тариф", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		now := time.Now()
		group := &domain.Group{ID: 3, Title: "Renamed", Tier: domain.TierFree}

		rows := sqlmock.NewRows([]string{"tier", "created_at", "updated_at"}).
			AddRow("BUSINESS", now.Add(-time.Hour), now)
		mock.ExpectQuery("INSERT INTO groups").
			WithArgs(int64(3), "Renamed", "FREE", sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Upsert(context.Background(), group)

		require.NoError(t, err)
		assert.Equal(t, domain.TierBusiness, group.Tier)
		assert.NotNil(t, group.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroupRepository_GetByID(t *testing.T) {
	t.Run("группа с участниками", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM groups").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "tier", "created_at", "updated_at"}).
				AddRow(int64(3), "Team", "GROUP_PRO", now, nil))
		mock.ExpectQuery("SELECT (.+) FROM group_members").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "first_name", "timezone", "joined_at"}).
				AddRow(int64(1), "alice", "Alice", "UTC", now).
				AddRow(int64(2), "bob", "Bob", "Europe/Berlin", now))

		group, err := repo.GetByID(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, domain.TierGroupPro, group.Tier)
		require.Len(t, group.Members, 2)
		assert.Equal(t, []int64{1, 2}, group.MemberIDs())
		assert.Equal(t, "Europe/Berlin", group.Members[1].Timezone)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: группа не найдена", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM groups").WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)

		group, err := repo.GetByID(context.Background(), 9)

		assert.Nil(t, group)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroupRepository_UpdateTier(t *testing.T) {
	t.Run("тариф обновлен", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		mock.ExpectExec("UPDATE groups").
			WithArgs(int64(3), "BUSINESS", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateTier(context.Background(), 3, domain.TierBusiness))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: группа не найдена", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		mock.ExpectExec("UPDATE groups").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateTier(context.Background(), 3, domain.TierBusiness)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
	})
}

func TestGroupRepository_AddMember(t *testing.T) {
	expectLock := func(mock sqlmock.Sqlmock) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM groups").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	}

	t.Run("участник добавлен", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		expectLock(mock)
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(3), int64(8)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("SELECT COUNT").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectExec("INSERT INTO group_members").
			WithArgs(int64(3), int64(8), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.AddMember(context.Background(), 3, 8, 7))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("уже участник", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		expectLock(mock)
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		err := repo.AddMember(context.Background(), 3, 8, 7)
		assert.True(t, errors.Is(err, repository.ErrAlreadyExists))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("лимит участников достигнут", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		expectLock(mock)
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
		mock.ExpectRollback()

		err := repo.AddMember(context.Background(), 3, 8, 7)
		assert.True(t, errors.Is(err, repository.ErrLimitReached))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: группа не найдена", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM groups").WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err := repo.AddMember(context.Background(), 3, 8, 7)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroupRepository_RemoveMember(t *testing.T) {
	t.Run("участник и его слоты удалены", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM group_members").
			WithArgs(int64(3), int64(8)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM slots").
			WithArgs(int64(3), int64(8)).
			WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectCommit()

		require.NoError(t, repo.RemoveMember(context.Background(), 3, 8))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: не участник", func(t *testing.T) {
		repo, mock := setupGroupRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM group_members").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.RemoveMember(context.Background(), 3, 8)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGroupRepository_ListByUserID(t *testing.T) {
	repo, mock := setupGroupRepo(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM groups g").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "tier", "created_at", "updated_at"}).
			AddRow(int64(10), "A", "FREE", now, nil).
			AddRow(int64(11), "B", "BUSINESS", now, now))

	groups, err := repo.ListByUserID(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, domain.TierBusiness, groups[1].Tier)
	assert.NotNil(t, groups[1].UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
