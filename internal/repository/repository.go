// Package repository maps CRUD calls onto single bun statements. Every call
// runs on its own connection, acquired from a database.Connector and
// released before returning.
package repository

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/roommates-project/roommates/internal/cctx"
	"github.com/roommates-project/roommates/internal/database"
)

type baseRepository struct {
	connector database.Connector
}

func (r *baseRepository) withConn(ctx context.Context, fn func(conn bun.Conn) error) (err error) {
	var conn bun.Conn
	if conn, err = r.connector.Conn(ctx); err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if err = fn(conn); err != nil {
		cctx.Logger(ctx).Debug("statement failed", zap.Error(err))
	}
	return
}
