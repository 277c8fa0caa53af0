package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/bagdasarian/freetime-finder/internal/domain"
	"github.com/bagdasarian/freetime-finder/internal/repository"
)

type groupService struct {
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
	logger    *zap.Logger
}

// NewGroupService создает новый экземпляр GroupService
func NewGroupService(groupRepo repository.GroupRepository, userRepo repository.UserRepository, logger *zap.Logger) GroupService {
	return &groupService{
		groupRepo: groupRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (s *groupService) CreateGroup(ctx context.Context, group *domain.Group, creatorID int64) (*domain.Group, error) {
	group.Title = strings.TrimSpace(group.Title)
	if group.ID == 0 {
		return nil, domain.NewValidationError("group id is required")
	}
	if group.Title == "" {
		return nil, domain.NewValidationError("group title is required")
	}
	if group.Tier == "" {
		group.Tier = domain.TierFree
	}
	if !group.Tier.Valid() {
		return nil, domain.NewValidationError("unknown plan tier %q", group.Tier)
	}

	if _, err := s.userRepo.GetByID(ctx, creatorID); err != nil {
		return nil, notFound(err, "user")
	}

	if err := s.groupRepo.CreateWithMember(ctx, group, creatorID); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, domain.ErrGroupExists
		}
		return nil, err
	}

	s.logger.Info("group created",
		zap.Int64("group_id", group.ID),
		zap.Int64("creator_id", creatorID),
		zap.String("tier", string(group.Tier)),
	)

	return s.GetGroup(ctx, group.ID)
}

func (s *groupService) InitGroup(ctx context.Context, groupID int64, title string) (*domain.Group, error) {
	if groupID == 0 {
		return nil, domain.NewValidationError("group id is required")
	}

	group := &domain.Group{ID: groupID, Title: strings.TrimSpace(title), Tier: domain.TierFree}
	if err := s.groupRepo.Upsert(ctx, group); err != nil {
		return nil, err
	}

	s.logger.Info("group initialized",
		zap.Int64("group_id", groupID),
		zap.String("tier", string(group.Tier)),
	)

	return s.GetGroup(ctx, groupID)
}

func (s *groupService) GetGroup(ctx context.Context, groupID int64) (*domain.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, notFound(err, "group")
	}
	return group, nil
}

func (s *groupService) ListUserGroups(ctx context.Context, userID int64) ([]*domain.Group, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, notFound(err, "user")
	}
	return s.groupRepo.ListByUserID(ctx, userID)
}

// JoinGroup добавляет пользователя в группу в пределах лимита тарифа.
// Повторное вступление не считается ошибкой.
func (s *groupService) JoinGroup(ctx context.Context, groupID, userID int64) (*domain.Group, error) {
	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.HasMember(userID) {
		return group, nil
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, notFound(err, "user")
	}

	policy, ok := domain.PolicyFor(group.Tier)
	if !ok {
		return nil, domain.NewValidationError("unknown plan tier %q", group.Tier)
	}

	err = s.groupRepo.AddMember(ctx, groupID, userID, policy.MaxMembers)
	switch {
	case err == nil, errors.Is(err, repository.ErrAlreadyExists):
	case errors.Is(err, repository.ErrLimitReached):
		s.logger.Info("group is full",
			zap.Int64("group_id", groupID),
			zap.Int("max_members", policy.MaxMembers),
		)
		return nil, domain.ErrGroupFull
	default:
		return nil, notFound(err, "group")
	}

	return s.GetGroup(ctx, groupID)
}

func (s *groupService) LeaveGroup(ctx context.Context, groupID, userID int64) error {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return err
	}

	if err := s.groupRepo.RemoveMember(ctx, groupID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ErrNotMember
		}
		return err
	}

	s.logger.Info("member left group", zap.Int64("group_id", groupID), zap.Int64("user_id", userID))
	return nil
}

func (s *groupService) ChangeTier(ctx context.Context, groupID int64, tier domain.PlanTier) (*domain.Group, error) {
	if !tier.Valid() {
		return nil, domain.NewValidationError("unknown plan tier %q", tier)
	}

	if err := s.groupRepo.UpdateTier(ctx, groupID, tier); err != nil {
		return nil, notFound(err, "group")
	}

	s.logger.Info("group tier changed", zap.Int64("group_id", groupID), zap.String("tier", string(tier)))
	return s.GetGroup(ctx, groupID)
}
