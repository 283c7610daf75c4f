package locker

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"locker-service/internal/entities"
)

func (r *Repository) AppendHistory(ctx context.Context, record entities.HistoryRecord) error {
	query := `INSERT INTO locker_history
		(locker_id, courier_id, courier_name, courier_plate, resi, delivered_at, token_used)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.querier.Exec(
		ctx,
		query,
		record.LockerID,
		record.CourierID,
		record.CourierName,
		record.CourierPlate,
		record.Resi,
		record.DeliveredAt,
		record.TokenUsed,
	)
	if err != nil {
		return fmt.Errorf("unexpected locker repository append history error: %w", err)
	}
	return nil
}

// ListHistory returns the newest visits first.
func (r *Repository) ListHistory(ctx context.Context, lockerID string, limit uint64) ([]entities.HistoryRecord, error) {
	query, args, err := qb.
		Select("id", "locker_id", "courier_id", "courier_name", "courier_plate", "resi", "delivered_at", "token_used").
		From("locker_history").
		Where(sq.Eq{"locker_id": lockerID}).
		OrderBy("id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected locker repository list history error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected locker repository list history error: %w", err)
	}
	defer rows.Close()

	historyModels := make([]HistoryDB, 0, limit)
	for rows.Next() {
		var h HistoryDB
		err := rows.Scan(
			&h.ID,
			&h.LockerID,
			&h.CourierID,
			&h.CourierName,
			&h.CourierPlate,
			&h.Resi,
			&h.DeliveredAt,
			&h.TokenUsed,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected locker repository list history error: %w", err)
		}
		historyModels = append(historyModels, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected locker repository list history error: %w", err)
	}

	return HistoryToDomainList(historyModels), nil
}
