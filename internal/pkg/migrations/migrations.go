// Package migrations applies the embedded goose migrations to Postgres.
package migrations

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"locker-service/pkg/logger"
)

//go:embed sql/*.sql
var files embed.FS

const dir = "sql"

// gooseLogger routes goose output into the service logger.
type gooseLogger struct {
	log logger.Logger
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.log.Error(fmt.Sprintf(format, v...))
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.log.Info(fmt.Sprintf(format, v...))
}

func Up(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	goose.SetBaseFS(files)
	goose.SetLogger(gooseLogger{log: log.With(logger.NewField("component", "migrations"))})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
