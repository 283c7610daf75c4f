//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=locker_test
package locker

import (
	"context"
	"time"

	"locker-service/internal/entities"
)

type Repository interface {
	GetLocker(ctx context.Context, lockerID string) (*entities.Locker, error)
	ListLockers(ctx context.Context) ([]entities.Locker, error)
	Touch(ctx context.Context, lockerID string, at time.Time) error
	SetActive(ctx context.Context, lockerID string, active bool, at time.Time) error
	CountPending(ctx context.Context, lockerID string) (int64, error)
	HasCommand(ctx context.Context, lockerID string) (bool, error)
	UpsertCommand(ctx context.Context, command entities.Command) error
	PopCommand(ctx context.Context, lockerID string) (*entities.Command, error)
	ListHistory(ctx context.Context, lockerID string, limit uint64) ([]entities.HistoryRecord, error)
}

type TokenBroker interface {
	Issue(ctx context.Context, lockerID string) (*entities.Locker, error)
}

type LivenessMonitor interface {
	Now() time.Time
	Status(lastHeartbeat *time.Time) entities.LivenessStatus
}
