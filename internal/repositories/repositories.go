package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/artfest/gallery-api/internal/middlewares"
)

// ErrUniqueViolation wraps a Postgres unique constraint violation so the
// service layer can translate concurrent duplicate writes into conflicts.
var ErrUniqueViolation = errors.New("unique constraint violation")

const pgUniqueViolationCode = "23505"

// UniqueViolationError names the violated constraint, letting callers with
// several unique columns on one table tell the conflicts apart.
type UniqueViolationError struct {
	Constraint string
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUniqueViolation, e.Constraint)
}

func (e *UniqueViolationError) Unwrap() error {
	return ErrUniqueViolation
}

// executor returns the per-request transaction when one is present in the
// context, otherwise the shared pool.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// wrapUniqueViolation maps 23505 errors onto ErrUniqueViolation and passes
// everything else through.
func wrapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		return &UniqueViolationError{Constraint: pgErr.ConstraintName}
	}
	return err
}
