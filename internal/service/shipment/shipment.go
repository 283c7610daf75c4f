package shipment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"locker-service/internal/entities"
	"locker-service/pkg/logger"
)

type Shipment struct {
	repository Repository
	lockers    LockerRepository
	couriers   CourierService
	commands   CommandQueue
	notifier   Notifier
	tokens     TokenGenerator
	txManager  TxManager
	log        logger.Logger
	now        func() time.Time
}

func New(
	repository Repository,
	lockers LockerRepository,
	couriers CourierService,
	commands CommandQueue,
	notifier Notifier,
	tokens TokenGenerator,
	txManager TxManager,
	log logger.Logger,
) *Shipment {
	return &Shipment{
		repository: repository,
		lockers:    lockers,
		couriers:   couriers,
		commands:   commands,
		notifier:   notifier,
		tokens:     tokens,
		txManager:  txManager,
		log:        log.With(logger.NewField("service", "shipment")),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Assign registers a shipment for a locker: ledger row, pending pool entry
// and the first log record, all in one transaction.
func (s *Shipment) Assign(ctx context.Context, assignment entities.ShipmentAssignment) (*entities.Shipment, error) {
	assignment.Resi = strings.TrimSpace(assignment.Resi)
	assignment.LockerID = strings.TrimSpace(assignment.LockerID)
	if err := validateAssignment(assignment); err != nil {
		return nil, err
	}

	var created entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		locker, err := s.lockers.GetLocker(ctx, assignment.LockerID)
		if err != nil {
			return fmt.Errorf("get locker: %w", err)
		}
		if !locker.Active {
			return entities.ErrLockerInactive
		}

		courier, err := s.couriers.EnsureAssignable(ctx, assignment.CourierID)
		if err != nil {
			return fmt.Errorf("check courier: %w", err)
		}

		shipmentToken, err := s.tokens.Generate()
		if err != nil {
			return fmt.Errorf("generate shipment token: %w", err)
		}

		now := s.now()
		created = entities.Shipment{
			Resi:          assignment.Resi,
			LockerID:      assignment.LockerID,
			CustomerID:    assignment.CustomerID,
			CourierID:     courier.ID,
			CourierName:   courier.Name,
			CourierPlate:  courier.Plate,
			Status:        entities.ShipmentPendingLocker,
			CreatedAt:     now,
			UpdatedAt:     now,
			ShipmentToken: shipmentToken,
		}
		if err := s.repository.Create(ctx, created); err != nil {
			return fmt.Errorf("create shipment: %w", err)
		}

		err = s.lockers.AddPoolEntry(ctx, entities.PoolEntry{
			LockerID:   assignment.LockerID,
			Resi:       assignment.Resi,
			CustomerID: assignment.CustomerID,
			Token:      shipmentToken,
			Status:     entities.PoolEntryPending,
			CreatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("add pool entry: %w", err)
		}

		record := entities.ShipmentLog{
			Resi:      assignment.Resi,
			LockerID:  assignment.LockerID,
			Event:     entities.EventAssigned,
			Extra:     map[string]interface{}{"courier_id": courier.ID},
			CreatedAt: now,
		}
		if err := s.repository.AppendLog(ctx, record); err != nil {
			return fmt.Errorf("append log: %w", err)
		}
		created.Log = []entities.ShipmentLog{record}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Advance moves a shipment to the next status and appends the matching log
// record. Transitions missing from the table are rejected.
func (s *Shipment) Advance(
	ctx context.Context,
	resi string,
	to entities.ShipmentStatus,
	event entities.ShipmentEvent,
	extra map[string]interface{},
) (*entities.Shipment, error) {
	if !isValidResi(resi) {
		return nil, ErrInvalidResi
	}

	var shipment *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		shipment, err = s.repository.GetByResiForUpdate(ctx, resi)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}
		return s.advance(ctx, shipment, to, event, extra)
	})
	if err != nil {
		return nil, err
	}

	return shipment, nil
}

func (s *Shipment) advance(
	ctx context.Context,
	shipment *entities.Shipment,
	to entities.ShipmentStatus,
	event entities.ShipmentEvent,
	extra map[string]interface{},
) error {
	from := shipment.Status
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%s -> %s: %w", from, to, entities.ErrInvalidTransition)
	}

	now := s.now()
	err := s.repository.ApplyTransition(ctx, entities.ShipmentTransition{
		Resi:     shipment.Resi,
		LockerID: shipment.LockerID,
		From:     from,
		To:       to,
		Event:    event,
		Extra:    extra,
		At:       now,
	})
	if err != nil {
		return fmt.Errorf("apply transition: %w", err)
	}

	if err := s.appendLog(ctx, shipment.Resi, shipment.LockerID, event, extra, now); err != nil {
		return err
	}

	shipment.Status = to
	shipment.UpdatedAt = now
	switch to {
	case entities.ShipmentDeliveredToLocker:
		shipment.DeliveredToLockerAt = &now
	case entities.ShipmentDeliveredToCustomer:
		shipment.DeliveredToCustomerAt = &now
	case entities.ShipmentCompleted:
		shipment.PickedUpAt = &now
	}
	return nil
}

func (s *Shipment) appendLog(
	ctx context.Context,
	resi, lockerID string,
	event entities.ShipmentEvent,
	extra map[string]interface{},
	at time.Time,
) error {
	err := s.repository.AppendLog(ctx, entities.ShipmentLog{
		Resi:      resi,
		LockerID:  lockerID,
		Event:     event,
		Extra:     extra,
		CreatedAt: at,
	})
	if err != nil {
		return fmt.Errorf("append log: %w", err)
	}
	return nil
}

// PostLog records a controller event. locker_closed and opened_by_customer
// also advance the shipment when its status allows it.
func (s *Shipment) PostLog(ctx context.Context, record entities.ControllerLog) error {
	if strings.TrimSpace(record.LockerID) == "" {
		return ErrInvalidLockerID
	}
	if !isValidEvent(record.Event) {
		return ErrInvalidEvent
	}

	if record.Resi == nil || strings.TrimSpace(*record.Resi) == "" {
		return s.appendLog(ctx, "", record.LockerID, record.Event, record.Extra, s.now())
	}

	var (
		changed   bool
		courierID int64
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetByResiForUpdate(ctx, strings.TrimSpace(*record.Resi))
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}
		if shipment.LockerID != record.LockerID {
			return fmt.Errorf("shipment is not in locker %s: %w", record.LockerID, entities.ErrShipmentNotFound)
		}
		courierID = shipment.CourierID

		var to entities.ShipmentStatus
		switch record.Event {
		case entities.EventLockerClosed:
			if shipment.Status == entities.ShipmentDeliveredToLocker {
				to = entities.ShipmentReadyForPickup
			}
		case entities.EventOpenedByCustomer:
			if shipment.Status != entities.ShipmentCompleted {
				to = entities.ShipmentCompleted
			}
		}

		if to == "" {
			return s.appendLog(ctx, shipment.Resi, record.LockerID, record.Event, record.Extra, s.now())
		}

		wasOpen := shipment.Status.IsOpen()
		if err := s.advance(ctx, shipment, to, record.Event, record.Extra); err != nil {
			return err
		}
		changed = wasOpen != shipment.Status.IsOpen()
		return nil
	})
	if err != nil {
		return err
	}

	if changed {
		s.recalculate(ctx, courierID)
	}
	return nil
}

// RequestOpen queues an open command for the customer's own shipment.
func (s *Shipment) RequestOpen(ctx context.Context, request entities.OpenRequest) (*entities.Command, error) {
	if !isValidResi(request.Resi) {
		return nil, ErrInvalidResi
	}
	if strings.TrimSpace(request.CustomerID) == "" {
		return nil, ErrInvalidCustomerID
	}

	var (
		command   *entities.Command
		changed   bool
		courierID int64
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetByResiForUpdate(ctx, strings.TrimSpace(request.Resi))
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}
		if shipment.CustomerID != request.CustomerID {
			return entities.ErrNotOwner
		}
		courierID = shipment.CourierID

		extra := map[string]interface{}{}
		if request.CourierType != "" {
			extra["courier_type"] = request.CourierType
		}

		switch shipment.Status {
		case entities.ShipmentDeliveredToLocker, entities.ShipmentReadyForPickup:
			if err := s.advance(ctx, shipment, entities.ShipmentDeliveredToCustomer, entities.EventOpenRequested, extra); err != nil {
				return err
			}
			changed = true
		case entities.ShipmentDeliveredToCustomer:
			if err := s.appendLog(ctx, shipment.Resi, shipment.LockerID, entities.EventOpenRequested, extra, s.now()); err != nil {
				return err
			}
		default:
			return fmt.Errorf("shipment is %s: %w", shipment.Status, entities.ErrInvalidState)
		}

		recipient := request.CustomerID
		command, err = s.commands.EnqueueCommand(ctx, entities.Command{
			LockerID:  shipment.LockerID,
			Type:      entities.CommandOpen,
			Resi:      shipment.Resi,
			Source:    entities.CommandSourceCustomer,
			Recipient: &recipient,
		})
		if err != nil {
			return fmt.Errorf("enqueue command: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, *command)
	if changed {
		s.recalculate(ctx, courierID)
	}
	return command, nil
}

// GetCustomerShipment returns the shipment with its log if customerID owns it.
func (s *Shipment) GetCustomerShipment(ctx context.Context, resi, customerID string) (*entities.Shipment, error) {
	if !isValidResi(resi) {
		return nil, ErrInvalidResi
	}
	if strings.TrimSpace(customerID) == "" {
		return nil, ErrInvalidCustomerID
	}

	shipment, err := s.repository.GetByResi(ctx, strings.TrimSpace(resi))
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	if shipment.CustomerID != customerID {
		return nil, entities.ErrNotOwner
	}

	shipment.Log, err = s.repository.ListLog(ctx, shipment.Resi)
	if err != nil {
		return nil, fmt.Errorf("list log: %w", err)
	}
	return shipment, nil
}

func (s *Shipment) notify(ctx context.Context, command entities.Command) {
	if err := s.notifier.CommandPending(ctx, command); err != nil {
		s.log.Warn("command nudge failed",
			logger.NewField("locker_id", command.LockerID),
			logger.NewField("error", err),
		)
	}
}

// recalculate runs after commit. A failure only delays convergence.
func (s *Shipment) recalculate(ctx context.Context, courierID int64) {
	if _, err := s.couriers.Recalculate(ctx, courierID); err != nil {
		s.log.Error("courier recalculation failed",
			logger.NewField("courier_id", courierID),
			logger.NewField("error", err),
		)
	}
}
