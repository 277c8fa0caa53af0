package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/freetime-finder/internal/domain"
	"github.com/bagdasarian/freetime-finder/internal/repository"
)

type groupRepository struct {
	db *sql.DB
}

func NewGroupRepository(db *sql.DB) *groupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *domain.Group) error {
	return insertGroup(ctx, r.db, group)
}

func (r *groupRepository) CreateWithMember(ctx context.Context, group *domain.Group, userID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertGroup(ctx, tx, group); err != nil {
		return err
	}
	if err := insertMember(ctx, tx, group.ID, userID); err != nil {
		return err
	}

	return tx.Commit()
}

func insertGroup(ctx context.Context, ex DBExecutor, group *domain.Group) error {
	query := `
		INSERT INTO groups (id, title, tier, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
		RETURNING created_at
	`

	err := ex.QueryRowContext(ctx, query, group.ID, group.Title, string(group.Tier), time.Now()).Scan(&group.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("group %d: %w", group.ID, repository.ErrAlreadyExists)
		}
		return err
	}
	group.UpdatedAt = nil

	return nil
}

func insertMember(ctx context.Context, ex DBExecutor, groupID, userID int64) error {
	_, err := ex.ExecContext(ctx, `
		INSERT INTO group_members (group_id, user_id, joined_at)
		VALUES ($1, $2, $3)
	`, groupID, userID, time.Now())
	return err
}

func (r *groupRepository) Upsert(ctx context.Context, group *domain.Group) error {
	query := `
		INSERT INTO groups (id, title, tier, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title, updated_at = $4
		RETURNING tier, created_at, updated_at
	`

	var tier string
	var updatedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, group.ID, group.Title, string(group.Tier), time.Now()).
		Scan(&tier, &group.CreatedAt, &updatedAt)
	if err != nil {
		return err
	}
	group.Tier = domain.PlanTier(tier)
	group.UpdatedAt = nullTimePtr(updatedAt)

	return nil
}

func (r *groupRepository) GetByID(ctx context.Context, id int64) (*domain.Group, error) {
	return getGroup(ctx, r.db, id)
}

func getGroup(ctx context.Context, ex DBExecutor, id int64) (*domain.Group, error) {
	query := `
		SELECT id, title, tier, created_at, updated_at
		FROM groups
		WHERE id = $1
	`

	group := &domain.Group{}
	var tier string
	var updatedAt sql.NullTime
	err := ex.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Title,
		&tier,
		&group.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("group %d: %w", id, repository.ErrNotFound)
		}
		return nil, err
	}
	group.Tier = domain.PlanTier(tier)
	group.UpdatedAt = nullTimePtr(updatedAt)

	members, err := listMembers(ctx, ex, id)
	if err != nil {
		return nil, err
	}
	group.Members = members

	return group, nil
}

func listMembers(ctx context.Context, ex DBExecutor, groupID int64) ([]domain.Member, error) {
	query := `
		SELECT u.id, u.username, u.first_name, u.timezone, gm.joined_at
		FROM group_members gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.joined_at, u.id
	`

	rows, err := ex.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]domain.Member, 0)
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.UserID, &m.Username, &m.FirstName, &m.Timezone, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, rows.Err()
}

func (r *groupRepository) UpdateTier(ctx context.Context, id int64, tier domain.PlanTier) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE groups
		SET tier = $2, updated_at = $3
		WHERE id = $1
	`, id, string(tier), time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("group %d: %w", id, repository.ErrNotFound)
	}

	return nil
}

func (r *groupRepository) AddMember(ctx context.Context, groupID, userID int64, maxMembers int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// блокировка строки группы сериализует конкурентные вступления
	var locked int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM groups WHERE id = $1 FOR UPDATE`, groupID).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("group %d: %w", groupID, repository.ErrNotFound)
		}
		return err
	}

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM group_members WHERE group_id = $1 AND user_id = $2)
	`, groupID, userID).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("member %d of group %d: %w", userID, groupID, repository.ErrAlreadyExists)
	}

	count, err := countMembers(ctx, tx, groupID)
	if err != nil {
		return err
	}
	if maxMembers > 0 && count >= maxMembers {
		return fmt.Errorf("group %d has %d members: %w", groupID, count, repository.ErrLimitReached)
	}

	if err := insertMember(ctx, tx, groupID, userID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *groupRepository) RemoveMember(ctx context.Context, groupID, userID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		DELETE FROM group_members
		WHERE group_id = $1 AND user_id = $2
	`, groupID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("member %d of group %d: %w", userID, groupID, repository.ErrNotFound)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM slots WHERE group_id = $1 AND user_id = $2`, groupID, userID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func countMembers(ctx context.Context, ex DBExecutor, groupID int64) (int, error) {
	var count int
	err := ex.QueryRowContext(ctx, `SELECT COUNT(*) FROM group_members WHERE group_id = $1`, groupID).Scan(&count)
	return count, err
}

func (r *groupRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Group, error) {
	query := `
		SELECT g.id, g.title, g.tier, g.created_at, g.updated_at
		FROM groups g
		JOIN group_members gm ON gm.group_id = g.id
		WHERE gm.user_id = $1
		ORDER BY g.title, g.id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]*domain.Group, 0)
	for rows.Next() {
		group := &domain.Group{}
		var tier string
		var updatedAt sql.NullTime
		if err := rows.Scan(&group.ID, &group.Title, &tier, &group.CreatedAt, &updatedAt); err != nil {
			return nil, err
		}
		group.Tier = domain.PlanTier(tier)
		group.UpdatedAt = nullTimePtr(updatedAt)
		groups = append(groups, group)
	}

	return groups, rows.Err()
}
