package repository

import (
	"context"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

type GroupRepository interface {
	// Create возвращает ErrAlreadyExists, если группа с таким id уже есть
	Create(ctx context.Context, group *domain.Group) error
	// CreateWithMember создает группу и добавляет создателя в одной транзакции
	CreateWithMember(ctx context.Context, group *domain.Group, userID int64) error
	// Upsert создает группу с тарифом group.Tier; у существующей обновляется только название
	Upsert(ctx context.Context, group *domain.Group) error
	GetByID(ctx context.Context, id int64) (*domain.Group, error)
	UpdateTier(ctx context.Context, id int64, tier domain.PlanTier) error
	// AddMember возвращает ErrAlreadyExists для существующего участника
	// и ErrLimitReached, если в группе уже maxMembers участников
	AddMember(ctx context.Context, groupID, userID int64, maxMembers int) error
	// RemoveMember удаляет участника вместе с его слотами в группе
	RemoveMember(ctx context.Context, groupID, userID int64) error
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Group, error)
}
