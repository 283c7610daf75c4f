//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_shipment_get_test
package customer_shipment_get

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
	GetCustomerShipment(ctx context.Context, resi, customerID string) (*entities.Shipment, error)
}
