package service

import (
	"context"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

type GroupService interface {
	// CreateGroup создает группу, создатель сразу становится участником
	CreateGroup(ctx context.Context, group *domain.Group, creatorID int64) (*domain.Group, error)
	// InitGroup регистрирует чат как группу на тарифе FREE; повторный вызов обновляет только название
	InitGroup(ctx context.Context, groupID int64, title string) (*domain.Group, error)
	GetGroup(ctx context.Context, groupID int64) (*domain.Group, error)
	ListUserGroups(ctx context.Context, userID int64) ([]*domain.Group, error)
	JoinGroup(ctx context.Context, groupID, userID int64) (*domain.Group, error)
	LeaveGroup(ctx context.Context, groupID, userID int64) error
	ChangeTier(ctx context.Context, groupID int64, tier domain.PlanTier) (*domain.Group, error)
}
