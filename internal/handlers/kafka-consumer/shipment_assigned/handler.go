package shipment_assigned

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"locker-service/internal/dto"
	"locker-service/internal/entities"
	"locker-service/internal/service/courier"
	"locker-service/internal/service/shipment"
	"locker-service/pkg/logger"
)

// Handler consumes shipment.assigned events and creates the same pool entry
// and ledger row as POST /shipments/assign.
type Handler struct {
	service                  Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, service Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		service:                  service,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("shipment.assigned: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("shipment.assigned: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message. It returns true when the claim
// must stop without committing so the message is delivered again.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event dto.ShipmentAssign
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("shipment.assigned handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("resi", event.Resi),
		logger.NewField("locker_id", event.LockerID),
		logger.NewField("courier_id", event.CourierID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("shipment.assigned processing")

	shipmentEntity, err := h.service.Assign(ctx, event.ToEntity())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.assigned handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, entities.ErrConflict):
			msgLog.Info("shipment.assigned: shipment already assigned, skipping")

		case errors.Is(err, shipment.ErrInvalidResi),
			errors.Is(err, shipment.ErrInvalidLockerID),
			errors.Is(err, shipment.ErrInvalidCustomerID),
			errors.Is(err, shipment.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, entities.ErrLockerNotFound),
			errors.Is(err, entities.ErrCourierNotFound),
			errors.Is(err, entities.ErrInvalidState):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.assigned handler rejected assignment")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("shipment.assigned handler failed, message will be reprocessed")
			return true
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("status", shipmentEntity.Status.String()),
	).Info("shipment.assigned: processed")

	sess.MarkMessage(message, "")
	return false
}
