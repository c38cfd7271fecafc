// Package dberr maps driver errors onto the small set of failures callers
// care about: missing rows and constraint rejections.
package dberr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrForeignKeyViolation = fmt.Errorf("foreign key %w", ErrConstraintViolation)
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeForeignKeyViolation = "23503"
	integrityClass          = "23"
)

// Error is a store rejection of a statement.
type Error struct {
	Code       string
	Table      string
	Constraint string
	Message    string

	kind   error
	driver error
}

func (e *Error) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s: %s (%s, constraint %s)", e.kind, e.Message, e.Code, e.Constraint)
	}
	return fmt.Sprintf("%s: %s (%s)", e.kind, e.Message, e.Code)
}

func (e *Error) Unwrap() []error {
	return []error{e.kind, e.driver}
}

// Wrap classifies err. sql.ErrNoRows becomes ErrNotFound, integrity
// violations become *Error, anything else is wrapped with op as context.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, integrityClass) {
		kind := ErrConstraintViolation
		if pgErr.Code == codeForeignKeyViolation {
			kind = ErrForeignKeyViolation
		}

		return fmt.Errorf("%s: %w", op, &Error{
			Code:       pgErr.Code,
			Table:      pgErr.TableName,
			Constraint: pgErr.ConstraintName,
			Message:    pgErr.Message,
			kind:       kind,
			driver:     pgErr,
		})
	}

	return fmt.Errorf("%s: %w", op, err)
}

// CheckAffected turns a result that touched no rows into ErrNotFound.
func CheckAffected(res sql.Result) (err error) {
	var n int64
	if n, err = res.RowsAffected(); err != nil {
		return
	}

	if n == 0 {
		err = ErrNotFound
	}
	return
}
