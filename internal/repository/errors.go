package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrDuplicate = errors.New("duplicate key")

const pgUniqueViolation = "23505"

// mapErr переводит нарушение уникальности postgres в ErrDuplicate.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return errors.Join(ErrDuplicate, err)
	}
	return err
}
