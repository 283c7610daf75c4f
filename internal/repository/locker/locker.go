package locker

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"locker-service/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const lockerColumns = "locker_id, token, token_updated_at, active, last_heartbeat, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanLocker(row pgx.Row) (*LockerDB, error) {
	var lockerModel LockerDB
	err := row.Scan(
		&lockerModel.ID,
		&lockerModel.Token,
		&lockerModel.TokenUpdatedAt,
		&lockerModel.Active,
		&lockerModel.LastHeartbeat,
		&lockerModel.CreatedAt,
		&lockerModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lockerModel, nil
}

func (r *Repository) GetLocker(ctx context.Context, lockerID string) (*entities.Locker, error) {
	query := `SELECT ` + lockerColumns + `
		FROM lockers
		WHERE locker_id = $1`

	lockerModel, err := scanLocker(r.querier.QueryRow(ctx, query, lockerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrLockerNotFound
		}
		return nil, fmt.Errorf("unexpected locker repository get error: %w", err)
	}

	return ToDomain(lockerModel), nil
}

// LockLocker must run inside a transaction; the row stays locked until it ends.
func (r *Repository) LockLocker(ctx context.Context, lockerID string) (*entities.Locker, error) {
	query := `SELECT ` + lockerColumns + `
		FROM lockers
		WHERE locker_id = $1
		FOR UPDATE`

	lockerModel, err := scanLocker(r.querier.QueryRow(ctx, query, lockerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrLockerNotFound
		}
		return nil, fmt.Errorf("unexpected locker repository lock error: %w", err)
	}

	return ToDomain(lockerModel), nil
}

func (r *Repository) ListLockers(ctx context.Context) ([]entities.Locker, error) {
	query := `SELECT ` + lockerColumns + `
		FROM lockers
		ORDER BY locker_id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected locker repository list error: %w", err)
	}
	defer rows.Close()

	lockerModels := make([]LockerDB, 0, 16)
	for rows.Next() {
		lockerModel, err := scanLocker(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected locker repository list error: %w", err)
		}
		lockerModels = append(lockerModels, *lockerModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected locker repository list error: %w", err)
	}

	return ToDomainList(lockerModels), nil
}

// CreateLocker inserts the locker if it is new. A token collision with
// another locker leaves nothing inserted and reports entities.ErrConflict.
func (r *Repository) CreateLocker(ctx context.Context, lockerID, token string, at time.Time) (*entities.Locker, error) {
	query := `INSERT INTO lockers (locker_id, token, token_updated_at, created_at, updated_at)
		VALUES ($1, $2, $3, $3, $3)
		ON CONFLICT DO NOTHING`

	if _, err := r.querier.Exec(ctx, query, lockerID, token, at); err != nil {
		return nil, fmt.Errorf("unexpected locker repository create error: %w", err)
	}

	locker, err := r.GetLocker(ctx, lockerID)
	if errors.Is(err, entities.ErrLockerNotFound) {
		return nil, entities.ErrConflict
	}
	return locker, err
}

// UpdateToken stores a new token. A token already held by any locker is
// reported as entities.ErrConflict through the NOT EXISTS guard, which keeps
// the surrounding transaction usable for another attempt. A unique
// violation from a concurrent writer aborts the transaction and is returned
// as a plain error.
func (r *Repository) UpdateToken(ctx context.Context, lockerID, token string, at time.Time) error {
	query := `UPDATE lockers
		SET token = $2, token_updated_at = $3, updated_at = $3
		WHERE locker_id = $1
		  AND NOT EXISTS (SELECT 1 FROM lockers WHERE token = $2)`

	result, err := r.querier.Exec(ctx, query, lockerID, token, at)
	if err != nil {
		return fmt.Errorf("unexpected locker repository update token error: %w", err)
	}

	if result.RowsAffected() == 0 {
		if _, err := r.GetLocker(ctx, lockerID); err != nil {
			return err
		}
		return entities.ErrConflict
	}

	return nil
}

// Touch records a heartbeat. The stored value never moves backwards.
func (r *Repository) Touch(ctx context.Context, lockerID string, at time.Time) error {
	query := `UPDATE lockers
		SET last_heartbeat = GREATEST(COALESCE(last_heartbeat, $2), $2)
		WHERE locker_id = $1`

	result, err := r.querier.Exec(ctx, query, lockerID, at)
	if err != nil {
		return fmt.Errorf("unexpected locker repository touch error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entities.ErrLockerNotFound
	}
	return nil
}

func (r *Repository) SetActive(ctx context.Context, lockerID string, active bool, at time.Time) error {
	query, args, err := qb.
		Update("lockers").
		Set("active", active).
		Set("updated_at", at).
		Where(sq.Eq{"locker_id": lockerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected locker repository set active error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected locker repository set active error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entities.ErrLockerNotFound
	}
	return nil
}
