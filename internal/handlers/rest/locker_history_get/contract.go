//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=locker_history_get_test
package locker_history_get

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
	History(ctx context.Context, lockerID string, limit uint64) ([]entities.HistoryRecord, error)
}
