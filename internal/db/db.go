package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

type DB struct {
	*sql.DB
}

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation (class 23505). Callers translate this into a conflict.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
