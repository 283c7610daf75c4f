// Package integration_test wires repository tests to a real Postgres taken
// from POSTGRES_* variables. The schema is migrated once per test binary.
package integration_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"locker-service/internal/pkg/config"
	"locker-service/internal/pkg/migrations"
	"locker-service/internal/pkg/postgres"
	"locker-service/pkg/logger/zap_adapter"
	"locker-service/pkg/querier"
)

const (
	statementTimeout = 2 * time.Second
	testMaxConns     = 8
)

// Child tables first, the CASCADE covers the rest.
const truncateAll = `
	TRUNCATE TABLE shipment_logs, shipments, locker_history, locker_commands,
		locker_pool, lockers, couriers RESTART IDENTITY CASCADE;
`

type suite struct {
	pool    *pgxpool.Pool
	querier *querier.Querier
	err     error
}

var (
	shared     suite
	sharedOnce sync.Once
)

func databaseFromEnv() *config.Database {
	return &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		MaxConns: testMaxConns,
	}
}

func connect() suite {
	ctx := context.Background()
	log := zap_adapter.NewNop()

	pool, err := postgres.NewConnPool(ctx, log, databaseFromEnv())
	if err != nil {
		return suite{err: err}
	}
	if err := migrations.Up(ctx, log, pool); err != nil {
		pool.Close()
		return suite{err: err}
	}

	return suite{pool: pool, querier: querier.New(pool, pgxv5.DefaultCtxGetter)}
}

func get() suite {
	sharedOnce.Do(func() {
		shared = connect()
	})
	if shared.err != nil {
		panic(shared.err)
	}
	return shared
}

func GetQuerier() *querier.Querier {
	return get().querier
}

// GetPool exposes the pool for tests that need their own transaction manager.
func GetPool() *pgxpool.Pool {
	return get().pool
}

func SetupDB(t *testing.T, setupSQL string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), statementTimeout)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSQL)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), statementTimeout)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, truncateAll)
	require.NoError(t, err)
}
