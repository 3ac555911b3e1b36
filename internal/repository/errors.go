// Package repository holds the PostgreSQL-backed stores.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("duplicate key value")

	// ErrReference is returned when a foreign key constraint is violated,
	// either because the target is missing or because the row is still referenced.
	ErrReference = errors.New("foreign key violation")

	// ErrStatusChanged is returned when a compare-and-set update matched no row.
	ErrStatusChanged = errors.New("status changed concurrently")
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeUndefinedTable      = "42P01"
)

// mapErr translates driver errors into the package's sentinel errors.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return errors.Join(ErrDuplicate, err)
		case codeForeignKeyViolation:
			return errors.Join(ErrReference, err)
		}
	}
	return err
}

// isUndefinedTable reports whether err comes from querying a table that does not exist.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUndefinedTable
}
