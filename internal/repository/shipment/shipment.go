package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"locker-service/internal/entities"
	"locker-service/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `resi, locker_id, customer_id, courier_id, courier_name, courier_plate, status,
	created_at, updated_at, delivered_to_locker_at, delivered_to_customer_at, picked_up_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipment entities.Shipment) error {
	shipmentModel := FromDomain(&shipment)
	query := `INSERT INTO shipments
		(resi, locker_id, customer_id, courier_id, courier_name, courier_plate, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.querier.Exec(
		ctx,
		query,
		shipmentModel.Resi,
		shipmentModel.LockerID,
		shipmentModel.CustomerID,
		shipmentModel.CourierID,
		shipmentModel.CourierName,
		shipmentModel.CourierPlate,
		shipmentModel.Status,
		shipmentModel.CreatedAt,
		shipmentModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return entities.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return fmt.Errorf("shipment references unknown locker or courier: %w", entities.ErrInvalidState)
		}
		return fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return nil
}

func (r *Repository) get(ctx context.Context, resi string, forUpdate bool) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE resi = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, resi).Scan(
		&shipmentModel.Resi,
		&shipmentModel.LockerID,
		&shipmentModel.CustomerID,
		&shipmentModel.CourierID,
		&shipmentModel.CourierName,
		&shipmentModel.CourierPlate,
		&shipmentModel.Status,
		&shipmentModel.CreatedAt,
		&shipmentModel.UpdatedAt,
		&shipmentModel.DeliveredToLockerAt,
		&shipmentModel.DeliveredToCustomerAt,
		&shipmentModel.PickedUpAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) GetByResi(ctx context.Context, resi string) (*entities.Shipment, error) {
	return r.get(ctx, resi, false)
}

func (r *Repository) GetByResiForUpdate(ctx context.Context, resi string) (*entities.Shipment, error) {
	return r.get(ctx, resi, true)
}

// ApplyTransition is a compare-and-set on status: the row moves only while
// it still holds transition.From.
func (r *Repository) ApplyTransition(ctx context.Context, transition entities.ShipmentTransition) error {
	builder := qb.
		Update("shipments").
		Set("status", transition.To.String()).
		Set("updated_at", transition.At)

	if column := stampColumn(transition.To); column != "" {
		builder = builder.Set(column, transition.At)
	}

	query, args, err := builder.
		Where(sq.Eq{
			"resi":   transition.Resi,
			"status": transition.From.String(),
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected shipment repository transition error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository transition error: %w", err)
	}

	if result.RowsAffected() == 0 {
		if _, err := r.get(ctx, transition.Resi, false); err != nil {
			return err
		}
		return fmt.Errorf("shipment %s left %s: %w", transition.Resi, transition.From, entities.ErrInvalidTransition)
	}

	return nil
}

func (r *Repository) AppendLog(ctx context.Context, log entities.ShipmentLog) error {
	logModel := LogFromDomain(&log)
	query := `INSERT INTO shipment_logs (resi, locker_id, event, extra, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(ctx, query, logModel.Resi, logModel.LockerID, logModel.Event, logModel.Extra, logModel.CreatedAt)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return entities.ErrShipmentNotFound
		}
		return fmt.Errorf("unexpected shipment repository append log error: %w", err)
	}
	return nil
}

// ListLog returns the log in append order.
func (r *Repository) ListLog(ctx context.Context, resi string) ([]entities.ShipmentLog, error) {
	query := `SELECT id, resi, locker_id, event, extra, created_at
		FROM shipment_logs
		WHERE resi = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, resi)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list log error: %w", err)
	}
	defer rows.Close()

	logModels := make([]ShipmentLogDB, 0, 8)
	for rows.Next() {
		var l ShipmentLogDB
		if err := rows.Scan(&l.ID, &l.Resi, &l.LockerID, &l.Event, &l.Extra, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list log error: %w", err)
		}
		logModels = append(logModels, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list log error: %w", err)
	}

	return LogToDomainList(logModels), nil
}

// CountOpenByCourier counts shipments that still keep the courier busy.
func (r *Repository) CountOpenByCourier(ctx context.Context, courierID int64) (int64, error) {
	open := entities.OpenShipmentStatuses()
	statuses := make([]string, len(open))
	for i, status := range open {
		statuses[i] = status.String()
	}

	query, args, err := qb.
		Select("COUNT(*)").
		From("shipments").
		Where(sq.Eq{
			"courier_id": courierID,
			"status":     statuses,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository count open error: %w", err)
	}

	var count int64
	if err := r.querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("unexpected shipment repository count open error: %w", err)
	}
	return count, nil
}
