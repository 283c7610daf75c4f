package app

import (
	"context"
	"time"

	"locker-service/internal/entities"
	controller_command_get "locker-service/internal/handlers/rest/controller_command_get"
	controller_deposit_post "locker-service/internal/handlers/rest/controller_deposit_post"
	controller_heartbeat_post "locker-service/internal/handlers/rest/controller_heartbeat_post"
	controller_logs_post "locker-service/internal/handlers/rest/controller_logs_post"
	controller_token_get "locker-service/internal/handlers/rest/controller_token_get"
	courier_get "locker-service/internal/handlers/rest/courier_get"
	courier_post "locker-service/internal/handlers/rest/courier_post"
	courier_state_put "locker-service/internal/handlers/rest/courier_state_put"
	customer_shipment_get "locker-service/internal/handlers/rest/customer_shipment_get"
	customer_shipment_open_post "locker-service/internal/handlers/rest/customer_shipment_open_post"
	locker_active_put "locker-service/internal/handlers/rest/locker_active_put"
	locker_get "locker-service/internal/handlers/rest/locker_get"
	locker_history_get "locker-service/internal/handlers/rest/locker_history_get"
	shipment_assign_post "locker-service/internal/handlers/rest/shipment_assign_post"
	shipmentService "locker-service/internal/service/shipment"
	"locker-service/pkg/background"
)

type (
	LivenessReportInterval time.Duration
)

type Application struct {
	ServiceLocker     ServiceLocker
	ServiceDeposit    ServiceDeposit
	ServiceShipment   ServiceShipment
	ServiceCourier    ServiceCourier
	BackgroundWorkers *background.Worker
}

type ServiceLocker interface {
	controller_token_get.Service
	controller_heartbeat_post.Service
	controller_command_get.Service
	locker_active_put.Service
	locker_get.Service
	locker_history_get.Service
}

type ServiceDeposit interface {
	controller_deposit_post.Service
}

type ServiceShipment interface {
	shipment_assign_post.Service
	controller_logs_post.Service
	customer_shipment_open_post.Service
	customer_shipment_get.Service
}

type ServiceCourier interface {
	courier_post.Service
	courier_get.Service
	courier_state_put.Service
}

type KafkaWorkerApp struct {
	ShipmentService *shipmentService.Shipment
}

// CommandNotifier tells a controller that a command is waiting for it.
type CommandNotifier interface {
	CommandPending(ctx context.Context, command entities.Command) error
}
