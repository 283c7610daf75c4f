//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=controller_heartbeat_post_test
package controller_heartbeat_post

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
	Heartbeat(ctx context.Context, lockerID string) (*entities.Heartbeat, error)
}
