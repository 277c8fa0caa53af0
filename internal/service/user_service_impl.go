package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bagdasarian/freetime-finder/internal/domain"
	"github.com/bagdasarian/freetime-finder/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.ID == 0 {
		return nil, domain.NewValidationError("user id is required")
	}
	if user.Timezone == "" {
		user.Timezone = domain.DefaultTimezone
	}
	if _, err := time.LoadLocation(user.Timezone); err != nil {
		return nil, domain.NewValidationError("unknown timezone %q", user.Timezone)
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		zap.Int64("user_id", user.ID),
		zap.String("timezone", user.Timezone),
	)

	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}
