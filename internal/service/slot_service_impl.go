package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bagdasarian/freetime-finder/internal/domain"
	"github.com/bagdasarian/freetime-finder/internal/repository"
)

type slotService struct {
	slotRepo  repository.SlotRepository
	groupRepo repository.GroupRepository
	logger    *zap.Logger
}

func NewSlotService(slotRepo repository.SlotRepository, groupRepo repository.GroupRepository, logger *zap.Logger) SlotService {
	return &slotService{
		slotRepo:  slotRepo,
		groupRepo: groupRepo,
		logger:    logger,
	}
}

// AddSlot сохраняет занятость участника группы. id слота генерируется здесь.
func (s *slotService) AddSlot(ctx context.Context, slot *domain.BusySlot) (*domain.BusySlot, error) {
	if err := slot.ValidateStrict(); err != nil {
		return nil, err
	}

	group, err := s.groupRepo.GetByID(ctx, slot.GroupID)
	if err != nil {
		return nil, notFound(err, "group")
	}
	if !group.HasMember(slot.UserID) {
		return nil, domain.ErrNotMember
	}

	slot.ID = uuid.NewString()
	slot.CreatedAt = time.Now()
	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, err
	}

	s.logger.Info("busy slot added",
		zap.String("slot_id", slot.ID),
		zap.Int64("group_id", slot.GroupID),
		zap.Int64("user_id", slot.UserID),
		zap.String("type", string(slot.Type())),
	)

	return slot, nil
}

func (s *slotService) RemoveSlot(ctx context.Context, slotID string, userID int64) error {
	id, err := uuid.Parse(slotID)
	if err != nil {
		return domain.NewValidationError("invalid slot id %q", slotID)
	}

	if err := s.slotRepo.Delete(ctx, id.String(), userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("slot")
		}
		return err
	}

	s.logger.Info("busy slot removed", zap.String("slot_id", slotID), zap.Int64("user_id", userID))
	return nil
}

func (s *slotService) ListGroupSlots(ctx context.Context, groupID int64) ([]domain.BusySlot, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, notFound(err, "group")
	}
	return s.slotRepo.ListByGroupID(ctx, groupID)
}

func (s *slotService) ListMemberSlots(ctx context.Context, groupID, userID int64) ([]domain.BusySlot, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, notFound(err, "group")
	}
	if !group.HasMember(userID) {
		return nil, domain.ErrNotMember
	}
	return s.slotRepo.ListByUser(ctx, groupID, userID)
}
