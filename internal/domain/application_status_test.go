package domain

import (
	"errors"
	"testing"

	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

func TestParseApplicationStatus(t *testing.T) {
	for _, s := range models.ApplicationStatuses {
		got, err := ParseApplicationStatus(string(s))
		if err != nil || got != s {
			t.Fatalf("ParseApplicationStatus(%q) = %q, %v", s, got, err)
		}
	}

	for _, raw := range []string{"", "applied", "HIRED", " APPLIED"} {
		if _, err := ParseApplicationStatus(raw); !errors.Is(err, apperrors.ErrInvalidStatus) {
			t.Fatalf("ParseApplicationStatus(%q): expected ErrInvalidStatus, got %v", raw, err)
		}
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.ApplicationStatus
		want     bool
	}{
		{models.StatusApplied, models.StatusShortlisted, true},
		{models.StatusApplied, models.StatusInterview, true},
		{models.StatusShortlisted, models.StatusTest, true},
		{models.StatusInterview, models.StatusAccepted, true},
		{models.StatusTest, models.StatusRejected, true},
		{models.StatusApplied, models.StatusRejected, true},
		{models.StatusInterview, models.StatusInterview, true},
		{models.StatusRejected, models.StatusRejected, true},
		{models.StatusShortlisted, models.StatusApplied, false},
		{models.StatusAccepted, models.StatusApplied, false},
		{models.StatusAccepted, models.StatusRejected, false},
		{models.StatusRejected, models.StatusShortlisted, false},
		{models.StatusApplied, "HIRED", false},
	}

	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestTransitionPolicy(t *testing.T) {
	strict := TransitionPolicy{Strict: true}
	loose := TransitionPolicy{Strict: false}

	if err := strict.Check(models.StatusAccepted, models.StatusApplied); !errors.Is(err, apperrors.ErrIllegalTransition) {
		t.Fatalf("strict regression: expected ErrIllegalTransition, got %v", err)
	}
	if !errors.Is(strict.Check(models.StatusAccepted, models.StatusApplied), apperrors.ErrConflict) {
		t.Fatalf("illegal transition should be a conflict")
	}
	if err := loose.Check(models.StatusAccepted, models.StatusApplied); err != nil {
		t.Fatalf("loose regression: expected nil, got %v", err)
	}
	if err := strict.Check(models.StatusApplied, models.StatusShortlisted); err != nil {
		t.Fatalf("strict forward: expected nil, got %v", err)
	}

	for _, p := range []TransitionPolicy{strict, loose} {
		if err := p.Check(models.StatusApplied, "HIRED"); !errors.Is(err, apperrors.ErrInvalidStatus) {
			t.Fatalf("strict=%v unknown target: expected ErrInvalidStatus, got %v", p.Strict, err)
		}
	}
}
