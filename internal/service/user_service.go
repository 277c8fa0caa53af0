package service

import (
	"context"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

type UserService interface {
	// Register создает или обновляет профиль пользователя
	Register(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}
