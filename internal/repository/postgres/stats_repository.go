package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

func (r *statsRepository) GetMemberSlotStats(ctx context.Context, groupID int64) ([]*domain.MemberSlotStat, error) {
	query := `
		SELECT u.id, u.username, COUNT(s.id) as slot_count
		FROM group_members gm
		JOIN users u ON u.id = gm.user_id
		LEFT JOIN slots s ON s.group_id = gm.group_id AND s.user_id = gm.user_id
		WHERE gm.group_id = $1
		GROUP BY u.id, u.username
		ORDER BY slot_count DESC, u.id
	`

	rows, err := r.executor.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.MemberSlotStat, 0)
	for rows.Next() {
		stat := &domain.MemberSlotStat{}
		err := rows.Scan(&stat.UserID, &stat.Username, &stat.SlotCount)
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

func (r *statsRepository) GetSlotStatsByType(ctx context.Context, groupID int64) ([]*domain.SlotTypeStat, error) {
	query := `
		SELECT t.type, COUNT(s.id) as count
		FROM (VALUES ('CYCLIC_WEEKLY'), ('ONE_TIME')) AS t(type)
		LEFT JOIN slots s ON s.type = t.type AND s.group_id = $1
		GROUP BY t.type
		ORDER BY t.type
	`

	rows, err := r.executor.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]*domain.SlotTypeStat, 0)
	for rows.Next() {
		stat := &domain.SlotTypeStat{}
		var slotType string
		err := rows.Scan(&slotType, &stat.Count)
		if err != nil {
			return nil, err
		}
		stat.Type = domain.SlotType(slotType)
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}
