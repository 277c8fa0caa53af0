package repository

import (
	"context"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

type StatsRepository interface {
	GetMemberSlotStats(ctx context.Context, groupID int64) ([]*domain.MemberSlotStat, error)
	GetSlotStatsByType(ctx context.Context, groupID int64) ([]*domain.SlotTypeStat, error)
}
