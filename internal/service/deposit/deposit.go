package deposit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"locker-service/internal/entities"
	"locker-service/pkg/logger"
)

// NudgeTimeout bounds the post-commit controller notification.
const NudgeTimeout = 500 * time.Millisecond

type Deposit struct {
	lockers   LockerRepository
	tokens    TokenBroker
	ledger    ShipmentLedger
	commands  CommandQueue
	couriers  CourierService
	notifier  Notifier
	keys      KeyLocker
	txManager TxManager
	log       logger.Logger
	now       func() time.Time
}

func New(
	lockers LockerRepository,
	tokens TokenBroker,
	ledger ShipmentLedger,
	commands CommandQueue,
	couriers CourierService,
	notifier Notifier,
	keys KeyLocker,
	txManager TxManager,
	log logger.Logger,
) *Deposit {
	return &Deposit{
		lockers:   lockers,
		tokens:    tokens,
		ledger:    ledger,
		commands:  commands,
		couriers:  couriers,
		notifier:  notifier,
		keys:      keys,
		txManager: txManager,
		log:       log.With(logger.NewField("service", "deposit")),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Deposit authorizes a courier drop with the locker token. Token check, pool
// match, ledger transition, command enqueue, history and token rotation
// commit together or not at all.
func (d *Deposit) Deposit(ctx context.Context, request entities.DepositRequest) (*entities.DepositResult, error) {
	result, err := d.deposit(ctx, request)
	depositsTotal.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		return nil, err
	}

	nudgeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), NudgeTimeout)
	defer cancel()
	if err := d.notifier.CommandPending(nudgeCtx, result.Command); err != nil {
		d.log.Warn("command nudge failed",
			logger.NewField("locker_id", result.LockerID),
			logger.NewField("error", err),
		)
	}

	if _, err := d.couriers.Recalculate(ctx, result.CourierID); err != nil {
		d.log.Error("courier recalculation failed",
			logger.NewField("courier_id", result.CourierID),
			logger.NewField("error", err),
		)
	}

	return result, nil
}

func (d *Deposit) deposit(ctx context.Context, request entities.DepositRequest) (*entities.DepositResult, error) {
	lockerID := strings.TrimSpace(request.LockerID)
	if lockerID == "" {
		return nil, ErrInvalidLockerID
	}
	resi := strings.TrimSpace(request.Resi)
	if resi == "" {
		return nil, ErrInvalidResi
	}

	unlock := d.keys.Lock(lockerID)
	defer unlock()

	var result *entities.DepositResult
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		locker, err := d.lockers.LockLocker(ctx, lockerID)
		if err != nil {
			return fmt.Errorf("lock locker: %w", err)
		}

		if err := d.tokens.Check(locker, request.Token); err != nil {
			return err
		}

		entry, err := d.lockers.FindPendingEntry(ctx, lockerID, resi, request.ShipmentToken)
		if err != nil {
			return fmt.Errorf("find pending entry: %w", err)
		}

		now := d.now()
		if err := d.lockers.MarkEntryUsed(ctx, entry.ID, now); err != nil {
			return fmt.Errorf("mark entry used: %w", err)
		}

		shipment, err := d.ledger.Advance(ctx, resi, entities.ShipmentDeliveredToLocker, entities.EventDeposited,
			map[string]interface{}{"pool_entry_id": entry.ID})
		if err != nil {
			return fmt.Errorf("advance shipment: %w", err)
		}

		recipient := entry.CustomerID
		command, err := d.commands.EnqueueCommand(ctx, entities.Command{
			LockerID:  lockerID,
			Type:      entities.CommandOpen,
			Resi:      resi,
			Source:    entities.CommandSourceCourier,
			Recipient: &recipient,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("enqueue command: %w", err)
		}

		err = d.lockers.AppendHistory(ctx, entities.HistoryRecord{
			LockerID:     lockerID,
			CourierID:    shipment.CourierID,
			CourierName:  shipment.CourierName,
			CourierPlate: shipment.CourierPlate,
			Resi:         resi,
			DeliveredAt:  now,
			TokenUsed:    locker.Token,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		if _, err := d.tokens.Rotate(ctx, lockerID); err != nil {
			return fmt.Errorf("rotate token: %w", err)
		}

		result = &entities.DepositResult{
			LockerID:     lockerID,
			Resi:         resi,
			CourierID:    shipment.CourierID,
			CourierName:  shipment.CourierName,
			CourierPlate: shipment.CourierPlate,
			DeliveredAt:  now,
			Command:      *command,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
