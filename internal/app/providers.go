package app

import (
	"context"
	"time"

	"locker-service/internal/handlers/tasks/liveness_report"
	"locker-service/internal/pkg/config"
	courierRepo "locker-service/internal/repository/courier"
	lockerRepo "locker-service/internal/repository/locker"
	shipmentRepo "locker-service/internal/repository/shipment"
	courierService "locker-service/internal/service/courier"
	depositService "locker-service/internal/service/deposit"
	"locker-service/internal/service/liveness"
	lockerService "locker-service/internal/service/locker"
	shipmentService "locker-service/internal/service/shipment"
	"locker-service/internal/service/token"
	"locker-service/pkg/background"
	"locker-service/pkg/keymutex"
	"locker-service/pkg/logger"
	"locker-service/pkg/querier"
	"locker-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// One read-committed manager shared by every service.
func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, tx.WithIsoLevel(pgx.ReadCommitted))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideLockerRepository(querier *querier.Querier) *lockerRepo.Repository {
	return lockerRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideLivenessMonitor(cfg *config.Config) *liveness.Monitor {
	return liveness.New(cfg.Locker.LivenessWindow)
}

func provideTokenBroker(repository *lockerRepo.Repository) *token.Broker {
	return token.New(repository, token.NewRandomGenerator())
}

func provideServiceCourier(
	repository *courierRepo.Repository,
	shipments *shipmentRepo.Repository,
	txManager *tx.Manager,
	cfg *config.Config,
) *courierService.Courier {
	return courierService.New(
		repository,
		shipments,
		txManager,
		courierService.WithStickyManualInactive(cfg.Locker.CourierStickyManualInactive),
	)
}

func provideServiceLocker(
	repository *lockerRepo.Repository,
	tokens *token.Broker,
	monitor *liveness.Monitor,
) *lockerService.Locker {
	return lockerService.New(repository, tokens, monitor)
}

func provideServiceShipment(
	repository *shipmentRepo.Repository,
	lockers *lockerRepo.Repository,
	couriers *courierService.Courier,
	commands *lockerService.Locker,
	notifier CommandNotifier,
	txManager *tx.Manager,
	log logger.Logger,
) *shipmentService.Shipment {
	return shipmentService.New(
		repository,
		lockers,
		couriers,
		commands,
		notifier,
		token.NewRandomGenerator(),
		txManager,
		log,
	)
}

func provideServiceDeposit(
	lockers *lockerRepo.Repository,
	tokens *token.Broker,
	ledger *shipmentService.Shipment,
	commands *lockerService.Locker,
	couriers *courierService.Courier,
	notifier CommandNotifier,
	keys *keymutex.KeyMutex,
	txManager *tx.Manager,
	log logger.Logger,
) *depositService.Deposit {
	return depositService.New(
		lockers,
		tokens,
		ledger,
		commands,
		couriers,
		notifier,
		keys,
		txManager,
		log,
	)
}

func provideLivenessReportInterval(cfg *config.Config) LivenessReportInterval {
	return LivenessReportInterval(cfg.Tasks.LivenessReportInterval)
}

func provideLivenessReportTask(
	log logger.Logger,
	service liveness_report.Service,
	interval LivenessReportInterval,
) *liveness_report.LivenessReport {
	return liveness_report.NewLivenessReport(log, service, time.Duration(interval))
}

func provideTaskList(
	livenessReportTask *liveness_report.LivenessReport,
) []background.Task {
	return []background.Task{
		livenessReportTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
