package db

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	pgx := &pgconn.PgError{Code: "23505", ConstraintName: "profiles_username_key"}
	if !IsUniqueViolation(pgx, "") {
		t.Fatalf("pgx unique violation not detected")
	}
	if !IsUniqueViolation(pgx, "profiles_username_key") {
		t.Fatalf("pgx unique violation with matching constraint not detected")
	}
	if IsUniqueViolation(pgx, "other_constraint") {
		t.Fatalf("pgx unique violation matched wrong constraint")
	}

	pqErr := &pq.Error{Code: "23505", Constraint: "profiles_username_key"}
	if !IsUniqueViolation(pqErr, "profiles_username_key") {
		t.Fatalf("pq unique violation not detected")
	}

	sqliteErr := errors.New("UNIQUE constraint failed: profiles.username")
	if !IsUniqueViolation(sqliteErr, "") {
		t.Fatalf("sqlite unique violation not detected")
	}

	if IsUniqueViolation(nil, "") {
		t.Fatalf("nil error should not match")
	}
	if IsUniqueViolation(errors.New("connection refused"), "") {
		t.Fatalf("unrelated error should not match")
	}
}

func TestIsUndefinedColumn(t *testing.T) {
	pgx := &pgconn.PgError{Code: "42703", ColumnName: "email"}
	if !IsUndefinedColumn(pgx) {
		t.Fatalf("pgx undefined column not detected")
	}

	sqliteErr := errors.New("table profiles has no column named email")
	if !IsUndefinedColumn(sqliteErr) {
		t.Fatalf("sqlite missing column not detected")
	}

	if IsUndefinedColumn(nil) {
		t.Fatalf("nil error should not match")
	}

	otherPgx := &pgconn.PgError{Code: "23505"}
	if IsUndefinedColumn(otherPgx) {
		t.Fatalf("unique violation misclassified as undefined column")
	}
}
