package service

import (
	"context"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

type StatsService interface {
	GetGroupStats(ctx context.Context, groupID int64) (*domain.GroupStats, error)
}
