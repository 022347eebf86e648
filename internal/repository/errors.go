package repository

import (
	"errors"

	"github.com/lib/pq"
)

// IsUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
// PostgreSQL error code 23505 = unique_violation.
func IsUniqueViolation(err error) bool {
	return hasCode(err, "23505")
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
// PostgreSQL error code 23503 = foreign_key_violation.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, "23503")
}

// IsSerializationFailure reports a PostgreSQL serialization_failure (40001).
func IsSerializationFailure(err error) bool {
	return hasCode(err, "40001")
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == code
	}
	return false
}
