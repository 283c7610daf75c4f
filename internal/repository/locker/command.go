package locker

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"locker-service/internal/entities"
	"locker-service/internal/repository"
)

// UpsertCommand overwrites the single command slot of the locker.
func (r *Repository) UpsertCommand(ctx context.Context, command entities.Command) error {
	commandModel := CommandFromDomain(&command)
	query := `INSERT INTO locker_commands (locker_id, id, type, resi, source, recipient, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (locker_id) DO UPDATE
		SET id = EXCLUDED.id,
		    type = EXCLUDED.type,
		    resi = EXCLUDED.resi,
		    source = EXCLUDED.source,
		    recipient = EXCLUDED.recipient,
		    created_at = EXCLUDED.created_at`

	_, err := r.querier.Exec(
		ctx,
		query,
		commandModel.LockerID,
		commandModel.ID,
		commandModel.Type,
		commandModel.Resi,
		commandModel.Source,
		commandModel.Recipient,
		commandModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return entities.ErrLockerNotFound
		}
		return fmt.Errorf("unexpected locker repository upsert command error: %w", err)
	}

	return nil
}

// PopCommand deletes and returns the pending command in one statement, so
// concurrent polls never both receive it.
func (r *Repository) PopCommand(ctx context.Context, lockerID string) (*entities.Command, error) {
	query := `DELETE FROM locker_commands
		WHERE locker_id = $1
		RETURNING locker_id, id, type, resi, source, recipient, created_at`

	var commandModel CommandDB
	err := r.querier.QueryRow(ctx, query, lockerID).Scan(
		&commandModel.LockerID,
		&commandModel.ID,
		&commandModel.Type,
		&commandModel.Resi,
		&commandModel.Source,
		&commandModel.Recipient,
		&commandModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrNoCommand
		}
		return nil, fmt.Errorf("unexpected locker repository pop command error: %w", err)
	}

	return CommandToDomain(&commandModel), nil
}

func (r *Repository) HasCommand(ctx context.Context, lockerID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM locker_commands WHERE locker_id = $1)`

	var exists bool
	if err := r.querier.QueryRow(ctx, query, lockerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("unexpected locker repository has command error: %w", err)
	}
	return exists, nil
}
