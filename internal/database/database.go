// Package database opens the Postgres handle the repositories run on.
package database

import (
	"context"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/extra/bundebug"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zapio"

	"github.com/roommates-project/roommates/internal/config"
)

// Connector hands out a dedicated connection. Callers must Close it.
type Connector interface {
	Conn(ctx context.Context) (bun.Conn, error)
}

var _ Connector = (*bun.DB)(nil)

// DB is the opened handle plus whatever has to be released with it.
type DB struct {
	*bun.DB

	closers []io.Closer
}

func Open(cfg *config.Config) (db *DB, err error) {
	var dbConfig *pgx.ConnConfig
	if dbConfig, err = pgx.ParseConfig(cfg.PostgresURI); err != nil {
		err = fmt.Errorf("unable to parse postgres uri: %w", err)
		return
	}

	sqldb := stdlib.OpenDB(*dbConfig)
	db = &DB{DB: bun.NewDB(sqldb, pgdialect.New())}

	if cfg.Debug {
		var dbLogger io.WriteCloser = &zapio.Writer{Log: zap.L().With(zap.String("section", "bun")), Level: zapcore.DebugLevel}
		db.closers = append(db.closers, dbLogger)

		db.AddQueryHook(bundebug.NewQueryHook(
			bundebug.WithVerbose(true),
			bundebug.WithWriter(dbLogger),
		))
	}

	return
}

func (db *DB) Ping(ctx context.Context) (err error) {
	if _, err = db.ExecContext(ctx, "SELECT 1"); err != nil {
		err = fmt.Errorf("failed to test database connection: %w", err)
	}
	return
}

func (db *DB) Close() error {
	err := db.DB.Close()
	for _, c := range db.closers {
		_ = c.Close()
	}
	return err
}
