package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bagdasarian/freetime-finder/internal/domain"
	"github.com/bagdasarian/freetime-finder/internal/repository"
)

const slotColumns = `id::text, group_id, user_id, type, description, start_at, end_at,
		day_of_week, start_time_local, end_time_local, created_at`

type slotRepository struct {
	executor DBExecutor
}

func NewSlotRepository(db *sql.DB) *slotRepository {
	return &slotRepository{executor: db}
}

func NewSlotRepositoryWithTx(tx *sql.Tx) *slotRepository {
	return &slotRepository{executor: tx}
}

func (r *slotRepository) Create(ctx context.Context, slot *domain.BusySlot) error {
	var (
		startAt, endAt   sql.NullTime
		dayOfWeek        sql.NullInt16
		startLoc, endLoc sql.NullString
	)

	switch p := slot.Period.(type) {
	case domain.OneTime:
		startAt = sql.NullTime{Time: p.StartAt, Valid: true}
		endAt = sql.NullTime{Time: p.EndAt, Valid: true}
	case domain.CyclicWeekly:
		dayOfWeek = sql.NullInt16{Int16: int16(p.DayOfWeek), Valid: true}
		startLoc = sql.NullString{String: p.StartTimeLocal, Valid: true}
		endLoc = sql.NullString{String: p.EndTimeLocal, Valid: true}
	default:
		return fmt.Errorf("unsupported slot period %T", slot.Period)
	}

	query := `
		INSERT INTO slots (id, group_id, user_id, type, description, start_at, end_at,
			day_of_week, start_time_local, end_time_local, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		slot.ID,
		slot.GroupID,
		slot.UserID,
		string(slot.Type()),
		slot.Description,
		startAt,
		endAt,
		dayOfWeek,
		startLoc,
		endLoc,
		time.Now(),
	).Scan(&slot.CreatedAt)
}

func (r *slotRepository) Delete(ctx context.Context, id string, userID int64) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM slots WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("slot %s: %w", id, repository.ErrNotFound)
	}

	return nil
}

func (r *slotRepository) ListByGroupID(ctx context.Context, groupID int64) ([]domain.BusySlot, error) {
	return listSlots(ctx, r.executor, `
		SELECT `+slotColumns+`
		FROM slots
		WHERE group_id = $1
		ORDER BY user_id, created_at, id
	`, groupID)
}

func (r *slotRepository) ListByUser(ctx context.Context, groupID, userID int64) ([]domain.BusySlot, error) {
	return listSlots(ctx, r.executor, `
		SELECT `+slotColumns+`
		FROM slots
		WHERE group_id = $1 AND user_id = $2
		ORDER BY created_at, id
	`, groupID, userID)
}

func listSlots(ctx context.Context, ex DBExecutor, query string, args ...any) ([]domain.BusySlot, error) {
	rows, err := ex.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]domain.BusySlot, 0)
	for rows.Next() {
		var (
			s                domain.BusySlot
			slotType         string
			startAt, endAt   sql.NullTime
			dayOfWeek        sql.NullInt16
			startLoc, endLoc sql.NullString
		)
		err := rows.Scan(
			&s.ID,
			&s.GroupID,
			&s.UserID,
			&slotType,
			&s.Description,
			&startAt,
			&endAt,
			&dayOfWeek,
			&startLoc,
			&endLoc,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		switch domain.SlotType(slotType) {
		case domain.SlotOneTime:
			s.Period = domain.OneTime{StartAt: startAt.Time, EndAt: endAt.Time}
		case domain.SlotCyclicWeekly:
			s.Period = domain.CyclicWeekly{
				DayOfWeek:      time.Weekday(dayOfWeek.Int16),
				StartTimeLocal: startLoc.String,
				EndTimeLocal:   endLoc.String,
			}
		default:
			return nil, fmt.Errorf("slot %s has unknown type %q", s.ID, slotType)
		}
		slots = append(slots, s)
	}

	return slots, rows.Err()
}
