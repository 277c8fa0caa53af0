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

// setupMockDB создает мок базы данных для тестов
// Автоматически закрывает соединение при завершении теста
func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "не удалось создать мок БД")
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func setupUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewUserRepository(db), mock
}

// TestUserRepository_Upsert - профиль создается или обновляется по id из мессенджера
func TestUserRepository_Upsert(t *testing.T) {
	t.Run("создание нового пользователя", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		now := time.Now()
		user := &domain.User{ID: 42, Username: "alice", FirstName: "Alice", Timezone: "Europe/Moscow"}

		rows := sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, nil)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(int64(42), "alice", "Alice", "Europe/Moscow", sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Upsert(context.Background(), user)

		require.NoError(t, err)
		assert.Equal(t, now, user.CreatedAt)
		assert.Nil(t, user.UpdatedAt, "updated_at должен быть nil при создании")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("обновление существующего пользователя", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		now := time.Now()
		user := &domain.User{ID: 42, Username: "alice_new", Timezone: "UTC"}

		rows := sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now.Add(-24*time.Hour), now)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(int64(42), "alice_new", "", "UTC", sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Upsert(context.Background(), user)

		require.NoError(t, err)
		require.NotNil(t, user.UpdatedAt)
		assert.Equal(t, now, *user.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка базы данных", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("connection refused"))

		err := repo.Upsert(context.Background(), &domain.User{ID: 1})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Run("пользователь найден", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "username", "first_name", "timezone", "created_at", "updated_at"}).
			AddRow(int64(7), "bob", "Bob", "Asia/Yerevan", now, nil)
		mock.ExpectQuery("SELECT (.+) FROM users").WithArgs(int64(7)).WillReturnRows(rows)

		user, err := repo.GetByID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "bob", user.Username)
		assert.Equal(t, "Asia/Yerevan", user.Timezone)
		assert.Nil(t, user.UpdatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: пользователь не найден", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM users").WithArgs(int64(404)).WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByID(context.Background(), 404)

		assert.Nil(t, user)
		assert.True(t, errors.Is(err, repository.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
