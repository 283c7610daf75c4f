//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=locker_active_put_test
package locker_active_put

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
	SetActive(ctx context.Context, lockerID string, active bool) (*entities.LockerView, error)
}
