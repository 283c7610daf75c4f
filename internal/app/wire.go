//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"locker-service/internal/handlers/tasks/liveness_report"
	"locker-service/internal/pkg/config"
	courierService "locker-service/internal/service/courier"
	depositService "locker-service/internal/service/deposit"
	lockerService "locker-service/internal/service/locker"
	shipmentService "locker-service/internal/service/shipment"
	"locker-service/pkg/keymutex"
	"locker-service/pkg/logger"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	notifier CommandNotifier,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideLivenessReportInterval,

		provideCourierRepository,
		provideLockerRepository,
		provideShipmentRepository,

		provideLivenessMonitor,
		provideTokenBroker,
		provideServiceCourier,
		provideServiceLocker,
		provideServiceShipment,
		provideServiceDeposit,
		keymutex.New,

		provideLivenessReportTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceLocker), new(*lockerService.Locker)),
		wire.Bind(new(ServiceDeposit), new(*depositService.Deposit)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),

		wire.Bind(new(liveness_report.Service), new(*lockerService.Locker)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-shipment-assigned)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	notifier CommandNotifier,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideCourierRepository,
		provideLockerRepository,
		provideShipmentRepository,

		provideLivenessMonitor,
		provideTokenBroker,
		provideServiceCourier,
		provideServiceLocker,
		provideServiceShipment,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
