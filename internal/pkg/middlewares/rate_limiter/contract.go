package rate_limiter

import (
	"context"

	"locker-service/pkg/logger"
)

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rate_limiter_test

type Limiter interface {
	Allow() bool
}

// KeyedLimiter counts attempts per key, e.g. per locker id.
type KeyedLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
