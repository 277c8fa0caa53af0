package repository

import (
	"context"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

type SlotRepository interface {
	Create(ctx context.Context, slot *domain.BusySlot) error
	// Delete удаляет слот, только если он принадлежит userID
	Delete(ctx context.Context, id string, userID int64) error
	ListByGroupID(ctx context.Context, groupID int64) ([]domain.BusySlot, error)
	ListByUser(ctx context.Context, groupID, userID int64) ([]domain.BusySlot, error)
}

// SnapshotRepository читает группу и все ее слоты согласованно, одним снимком
type SnapshotRepository interface {
	LoadGroupSnapshot(ctx context.Context, groupID int64) (*domain.Group, []domain.BusySlot, error)
}
