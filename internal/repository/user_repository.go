package repository

import (
	"context"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

type UserRepository interface {
	// Upsert создает пользователя или обновляет профиль существующего
	Upsert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
