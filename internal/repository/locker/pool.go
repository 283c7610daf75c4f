package locker

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"locker-service/internal/entities"
	"locker-service/internal/repository"
)

func (r *Repository) AddPoolEntry(ctx context.Context, entry entities.PoolEntry) error {
	query := `INSERT INTO locker_pool (locker_id, resi, customer_id, token, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.querier.Exec(
		ctx,
		query,
		entry.LockerID,
		entry.Resi,
		entry.CustomerID,
		entry.Token,
		entry.Status.String(),
		entry.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return entities.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return entities.ErrLockerNotFound
		}
		return fmt.Errorf("unexpected locker repository add pool entry error: %w", err)
	}

	return nil
}

// FindPendingEntry locks the matching pending entry. shipmentToken narrows
// the match when the courier presented one.
func (r *Repository) FindPendingEntry(
	ctx context.Context,
	lockerID, resi string,
	shipmentToken *string,
) (*entities.PoolEntry, error) {
	builder := qb.
		Select("id", "locker_id", "resi", "customer_id", "token", "status", "created_at", "used_at").
		From("locker_pool").
		Where(sq.Eq{
			"locker_id": lockerID,
			"resi":      resi,
			"status":    entities.PoolEntryPending.String(),
		})

	if shipmentToken != nil {
		builder = builder.Where(sq.Eq{"token": *shipmentToken})
	}

	query, args, err := builder.
		OrderBy("id").
		Limit(1).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected locker repository find pending error: %w", err)
	}

	var entryModel PoolEntryDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&entryModel.ID,
		&entryModel.LockerID,
		&entryModel.Resi,
		&entryModel.CustomerID,
		&entryModel.Token,
		&entryModel.Status,
		&entryModel.CreatedAt,
		&entryModel.UsedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrNoMatchingPendingShipment
		}
		return nil, fmt.Errorf("unexpected locker repository find pending error: %w", err)
	}

	return PoolEntryToDomain(&entryModel), nil
}

// MarkEntryUsed only moves pending entries; anything else reads as no match.
func (r *Repository) MarkEntryUsed(ctx context.Context, entryID int64, at time.Time) error {
	query := `UPDATE locker_pool
		SET status = 'used', used_at = $2
		WHERE id = $1 AND status = 'pending'`

	result, err := r.querier.Exec(ctx, query, entryID, at)
	if err != nil {
		return fmt.Errorf("unexpected locker repository mark used error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entities.ErrNoMatchingPendingShipment
	}
	return nil
}

func (r *Repository) CountPending(ctx context.Context, lockerID string) (int64, error) {
	query := `SELECT COUNT(*) FROM locker_pool WHERE locker_id = $1 AND status = 'pending'`

	var count int64
	if err := r.querier.QueryRow(ctx, query, lockerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected locker repository count pending error: %w", err)
	}
	return count, nil
}
