package db

import (
	"errors"
	"testing"
)

func TestIsUniqueViolation(t *testing.T) {
	if IsUniqueViolation(nil) {
		t.Fatal("nil error should not be a violation")
	}
	pgErr := errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`)
	if !IsUniqueViolation(pgErr) {
		t.Fatal("expected postgres duplicate key to match")
	}
	liteErr := errors.New("UNIQUE constraint failed: users.email")
	if !IsUniqueViolation(liteErr) {
		t.Fatal("expected sqlite phrasing to match")
	}
	if IsUniqueViolation(errors.New("connection refused")) {
		t.Fatal("unrelated error should not match")
	}
}
