//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=locker_get_test
package locker_get

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
	GetLocker(ctx context.Context, lockerID string) (*entities.LockerView, error)
}
