package db

import "strings"

// IsUniqueViolation reports whether err is a unique constraint violation.
// Both the Postgres and sqlite driver phrasings are recognized.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
