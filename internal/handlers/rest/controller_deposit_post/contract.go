//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=controller_deposit_post_test
package controller_deposit_post

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
	Deposit(ctx context.Context, request entities.DepositRequest) (*entities.DepositResult, error)
}
