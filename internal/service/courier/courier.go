package courier

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	"locker-service/internal/entities"
)

type Option func(*Courier)

// WithStickyManualInactive keeps a manually deactivated courier inactive
// through recalculation until an explicit SetState(active).
func WithStickyManualInactive(sticky bool) Option {
	return func(c *Courier) {
		c.stickyManualInactive = sticky
	}
}

type Courier struct {
	repository           Repository
	shipments            ShipmentCounter
	txManager            TxManager
	stickyManualInactive bool
}

func New(repository Repository, shipments ShipmentCounter, txManager TxManager, opts ...Option) *Courier {
	c := &Courier{
		repository: repository,
		shipments:  shipments,
		txManager:  txManager,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (s *Courier) CreateCourier(ctx context.Context, name, plate string) (*entities.Courier, error) {
	if !isValidName(name) {
		return nil, ErrInvalidName
	}

	plate = entities.NormalizePlate(plate)
	if !isValidPlate(plate) {
		return nil, ErrInvalidPlate
	}

	modify := entities.CourierModify{
		Name:           pointer.To(name),
		Plate:          pointer.To(plate),
		State:          pointer.To(entities.DefaultCourierState),
		ManualInactive: pointer.To(false),
	}

	var created *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.repository.Create(ctx, modify)
		if err != nil {
			return fmt.Errorf("create courier: %w", err)
		}

		created, err = s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get created courier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Courier) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	if !isValidCourierID(id) {
		return nil, ErrInvalidCourierID
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}

	return courier, nil
}

// SetState is the operator override. Only active and inactive can be set;
// ongoing is always derived.
func (s *Courier) SetState(ctx context.Context, id int64, state entities.CourierState) (*entities.Courier, error) {
	if !isValidCourierID(id) {
		return nil, ErrInvalidCourierID
	}
	if !isValidManualState(state) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStateValue, state)
	}

	courier, err := s.repository.Update(ctx, entities.CourierModify{
		ID:             pointer.To(id),
		State:          pointer.To(state),
		ManualInactive: pointer.To(state == entities.CourierInactive),
	})
	if err != nil {
		return nil, fmt.Errorf("update courier state: %w", err)
	}

	return courier, nil
}

// Recalculate derives the courier state from its open shipments: any open
// shipment means ongoing, none means inactive. It is idempotent. Open
// follows entities.ShipmentStatus.IsOpen, so completed shipments do not
// keep a courier ongoing.
func (s *Courier) Recalculate(ctx context.Context, id int64) (*entities.Courier, error) {
	var result *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		if s.stickyManualInactive && courier.ManualInactive {
			result = courier
			return nil
		}

		open, err := s.shipments.CountOpenByCourier(ctx, id)
		if err != nil {
			return fmt.Errorf("count open shipments: %w", err)
		}

		next := entities.CourierInactive
		if open > 0 {
			next = entities.CourierOngoing
		}

		if courier.State == next && !courier.ManualInactive {
			result = courier
			return nil
		}

		result, err = s.repository.Update(ctx, entities.CourierModify{
			ID:             pointer.To(id),
			State:          pointer.To(next),
			ManualInactive: pointer.To(false),
		})
		if err != nil {
			return fmt.Errorf("update courier state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// EnsureAssignable returns the courier if it may take a new shipment.
func (s *Courier) EnsureAssignable(ctx context.Context, id int64) (*entities.Courier, error) {
	courier, err := s.GetCourier(ctx, id)
	if err != nil {
		return nil, err
	}

	if courier.State != entities.CourierActive {
		return nil, fmt.Errorf("courier %d is %s: %w", id, courier.State, entities.ErrInvalidState)
	}

	return courier, nil
}
