//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_state_put_test
package courier_state_put

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
	SetState(ctx context.Context, id int64, state entities.CourierState) (*entities.Courier, error)
}
