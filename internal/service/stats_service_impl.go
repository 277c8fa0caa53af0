package service

import (
	"context"

	"github.com/bagdasarian/freetime-finder/internal/domain"
	"github.com/bagdasarian/freetime-finder/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
	groupRepo repository.GroupRepository
}

func NewStatsService(statsRepo repository.StatsRepository, groupRepo repository.GroupRepository) StatsService {
	return &statsService{statsRepo: statsRepo, groupRepo: groupRepo}
}

func (s *statsService) GetGroupStats(ctx context.Context, groupID int64) (*domain.GroupStats, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, notFound(err, "group")
	}

	memberStats, err := s.statsRepo.GetMemberSlotStats(ctx, groupID)
	if err != nil {
		return nil, err
	}

	typeStats, err := s.statsRepo.GetSlotStatsByType(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return &domain.GroupStats{
		GroupID:     groupID,
		MemberStats: memberStats,
		TypeStats:   typeStats,
	}, nil
}
