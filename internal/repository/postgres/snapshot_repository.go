package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/freetime-finder/internal/domain"
)

type snapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *snapshotRepository {
	return &snapshotRepository{db: db}
}

// LoadGroupSnapshot читает группу с участниками и слоты в одной read-only транзакции
// REPEATABLE READ, чтобы расчет не увидел половину конкурентного изменения.
func (r *snapshotRepository) LoadGroupSnapshot(ctx context.Context, groupID int64) (*domain.Group, []domain.BusySlot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	group, err := getGroup(ctx, tx, groupID)
	if err != nil {
		return nil, nil, err
	}

	slots, err := NewSlotRepositoryWithTx(tx).ListByGroupID(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	return group, slots, nil
}
