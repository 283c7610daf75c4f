//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deposit_test
package deposit

import (
	"context"
	"time"

	"locker-service/internal/entities"
)

type LockerRepository interface {
	// LockLocker reads the locker row with FOR UPDATE.
	LockLocker(ctx context.Context, lockerID string) (*entities.Locker, error)
	FindPendingEntry(ctx context.Context, lockerID, resi string, shipmentToken *string) (*entities.PoolEntry, error)
	MarkEntryUsed(ctx context.Context, entryID int64, at time.Time) error
	AppendHistory(ctx context.Context, record entities.HistoryRecord) error
}

type TokenBroker interface {
	Check(locker *entities.Locker, supplied string) error
	Rotate(ctx context.Context, lockerID string) (string, error)
}

type ShipmentLedger interface {
	Advance(
		ctx context.Context,
		resi string,
		to entities.ShipmentStatus,
		event entities.ShipmentEvent,
		extra map[string]interface{},
	) (*entities.Shipment, error)
}

type CommandQueue interface {
	EnqueueCommand(ctx context.Context, command entities.Command) (*entities.Command, error)
}

type CourierService interface {
	Recalculate(ctx context.Context, id int64) (*entities.Courier, error)
}

type Notifier interface {
	CommandPending(ctx context.Context, command entities.Command) error
}

// KeyLocker serializes work per key inside one process.
type KeyLocker interface {
	Lock(key string) (unlock func())
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
