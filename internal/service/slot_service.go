package service

import (
	"context"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

type SlotService interface {
	AddSlot(ctx context.Context, slot *domain.BusySlot) (*domain.BusySlot, error)
	RemoveSlot(ctx context.Context, slotID string, userID int64) error
	ListGroupSlots(ctx context.Context, groupID int64) ([]domain.BusySlot, error)
	ListMemberSlots(ctx context.Context, groupID, userID int64) ([]domain.BusySlot, error)
}
