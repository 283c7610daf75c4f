//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=token_test
package token

import (
	"context"
	"time"

	"locker-service/internal/entities"
)

type Repository interface {
	GetLocker(ctx context.Context, lockerID string) (*entities.Locker, error)
	// CreateLocker inserts the locker unless it already exists and returns
	// whatever row is stored afterwards.
	CreateLocker(ctx context.Context, lockerID, token string, at time.Time) (*entities.Locker, error)
	UpdateToken(ctx context.Context, lockerID, token string, at time.Time) error
}

type Generator interface {
	Generate() (string, error)
}
