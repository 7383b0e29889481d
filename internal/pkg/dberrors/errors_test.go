package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestConstraintClassification(t *testing.T) {
	unique := &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "applications_student_job_key"}
	fk := &pgconn.PgError{Code: CodeForeignKeyViolation, ConstraintName: "applications_job_id_fkey"}
	wrapped := fmt.Errorf("insert application: %w", unique)

	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{"unique by name", IsDuplicateConstraintError(wrapped, "applications_student_job_key"), true},
		{"unique other name", IsDuplicateConstraintError(wrapped, "analytics_job_id_key"), false},
		{"any unique", IsUniqueViolation(wrapped), true},
		{"fk is not unique", IsUniqueViolation(fk), false},
		{"fk by name", IsForeignKeyViolation(fk, "applications_job_id_fkey"), true},
		{"fk any", IsForeignKeyViolation(fk, ""), true},
		{"fk wrong name", IsForeignKeyViolation(fk, "applications_student_id_fkey"), false},
		{"plain error", IsUniqueViolation(errors.New("boom")), false},
		{"check", IsCheckViolation(&pgconn.PgError{Code: CodeCheckViolation}), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Fatalf("want %v got %v", c.want, c.got)
			}
		})
	}
}
