package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

func setupMockDB(t *testing.T) (*bun.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := bun.NewDB(sqldb, pgdialect.New())
	t.Cleanup(func() { _ = db.Close() })

	return db, mock
}

type brokenConnector struct {
	err error
}

func (c brokenConnector) Conn(context.Context) (bun.Conn, error) {
	return bun.Conn{}, c.err
}

var errUnreachable = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
