//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_assigned_test
package shipment_assigned

import (
	"context"

	"locker-service/internal/entities"
	"locker-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Assign(ctx context.Context, assignment entities.ShipmentAssignment) (*entities.Shipment, error)
}
