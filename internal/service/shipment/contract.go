//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"locker-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipment entities.Shipment) error
	GetByResi(ctx context.Context, resi string) (*entities.Shipment, error)
	GetByResiForUpdate(ctx context.Context, resi string) (*entities.Shipment, error)
	// ApplyTransition moves the row only if it is still in transition.From.
	ApplyTransition(ctx context.Context, transition entities.ShipmentTransition) error
	AppendLog(ctx context.Context, log entities.ShipmentLog) error
	ListLog(ctx context.Context, resi string) ([]entities.ShipmentLog, error)
}

type LockerRepository interface {
	GetLocker(ctx context.Context, lockerID string) (*entities.Locker, error)
	AddPoolEntry(ctx context.Context, entry entities.PoolEntry) error
}

type CourierService interface {
	EnsureAssignable(ctx context.Context, id int64) (*entities.Courier, error)
	Recalculate(ctx context.Context, id int64) (*entities.Courier, error)
}

type CommandQueue interface {
	EnqueueCommand(ctx context.Context, command entities.Command) (*entities.Command, error)
}

type Notifier interface {
	CommandPending(ctx context.Context, command entities.Command) error
}

type TokenGenerator interface {
	Generate() (string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
