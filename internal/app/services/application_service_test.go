package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/tnp/internal/app/auth"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/repositories"
	"github.com/yigit/tnp/internal/domain"
	"github.com/yigit/tnp/internal/pkg/apperrors"
	"github.com/yigit/tnp/internal/pkg/helpers"
)

type applicationFixture struct {
	svc     ApplicationService
	apps    *fakeApplicationRepo
	jobs    *fakeJobRepo
	student *models.Student
	open    *models.JobListing
	closed  *models.JobListing
}

func newApplicationFixture(t *testing.T, strict bool) *applicationFixture {
	t.Helper()

	student := &models.Student{
		ID:             uuid.New(),
		Name:           "Student One",
		Email:          "student1@example.com",
		Branch:         models.BranchCSE,
		GraduationYear: 2026,
		CGPA:           ptr(8.2),
	}
	open := &models.JobListing{
		ID:     uuid.New(),
		Status: models.JobStatusOpen,
		Eligibility: &models.JobEligibility{
			Branches:        []models.Branch{models.BranchCSE, models.BranchIT},
			GraduationYears: []int{2025, 2026},
			MinCGPA:         ptr(7.0),
		},
	}
	closed := &models.JobListing{ID: uuid.New(), Status: models.JobStatusClosed}

	f := &applicationFixture{
		apps:    newFakeApplicationRepo(),
		jobs:    &fakeJobRepo{jobs: []*models.JobListing{open, closed}},
		student: student,
		open:    open,
		closed:  closed,
	}
	f.svc = NewApplicationService(
		f.apps, f.jobs, newFakeStudentRepo(student),
		auth.NewAccessPolicy(),
		domain.TransitionPolicy{Strict: strict},
		zerolog.Nop(),
	)
	return f
}

func (f *applicationFixture) principal() *auth.Principal {
	return &auth.Principal{
		ID:             f.student.ID,
		Role:           models.RoleStudent,
		Email:          f.student.Email,
		Branch:         f.student.Branch,
		GraduationYear: f.student.GraduationYear,
	}
}

func TestApplyCreatesAppliedApplication(t *testing.T) {
	f := newApplicationFixture(t, true)

	app, err := f.svc.Apply(context.Background(), f.principal(), &dto.ApplyRequest{JobID: f.open.ID.String()})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if app.Status != models.StatusApplied || app.StudentID != f.student.ID || app.JobID != f.open.ID {
		t.Fatalf("unexpected application: %+v", app)
	}

	_, err = f.svc.Apply(context.Background(), f.principal(), &dto.ApplyRequest{JobID: f.open.ID.String()})
	if !errors.Is(err, apperrors.ErrDuplicateApplication) {
		t.Fatalf("expected duplicate application, got %v", err)
	}
	if len(f.apps.apps) != 1 {
		t.Fatalf("duplicate apply must not store a second row, have %d", len(f.apps.apps))
	}
}

func TestApplyRejections(t *testing.T) {
	f := newApplicationFixture(t, true)
	other := uuid.New()
	admin := &auth.Principal{ID: uuid.New(), Role: models.RoleAdmin}

	cases := []struct {
		name      string
		principal *auth.Principal
		req       dto.ApplyRequest
		want      error
	}{
		{"closed job", f.principal(), dto.ApplyRequest{JobID: f.closed.ID.String()}, apperrors.ErrJobClosed},
		{"unknown job", f.principal(), dto.ApplyRequest{JobID: uuid.NewString()}, apperrors.ErrResourceNotFound},
		{"on behalf of another student", f.principal(), dto.ApplyRequest{StudentID: other.String(), JobID: f.open.ID.String()}, apperrors.ErrPermissionDenied},
		{"admin principal", admin, dto.ApplyRequest{JobID: f.open.ID.String()}, apperrors.ErrPermissionDenied},
		{"anonymous", nil, dto.ApplyRequest{JobID: f.open.ID.String()}, apperrors.ErrUnauthorized},
		{"malformed job id", f.principal(), dto.ApplyRequest{JobID: "nope"}, apperrors.ErrValidationFailed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := f.svc.Apply(context.Background(), c.principal, &c.req)
			if !errors.Is(err, c.want) {
				t.Fatalf("want %v, got %v", c.want, err)
			}
		})
	}
}

func TestApplyNotEligible(t *testing.T) {
	f := newApplicationFixture(t, true)
	f.open.Eligibility.MinCGPA = ptr(9.0)

	_, err := f.svc.Apply(context.Background(), f.principal(), &dto.ApplyRequest{JobID: f.open.ID.String()})
	if !errors.Is(err, apperrors.ErrNotEligible) {
		t.Fatalf("expected ErrNotEligible, got %v", err)
	}
}

func TestUpdateStatusPipeline(t *testing.T) {
	f := newApplicationFixture(t, true)
	ctx := context.Background()

	app, err := f.svc.CreateApplication(ctx, &dto.CreateApplicationRequest{
		StudentID: f.student.ID.String(),
		JobID:     f.open.ID.String(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, next := range []string{"SHORTLISTED", "TEST", "INTERVIEW", "ACCEPTED"} {
		updated, err := f.svc.UpdateStatus(ctx, app.ID, next)
		if err != nil {
			t.Fatalf("move to %s: %v", next, err)
		}
		if string(updated.Status) != next {
			t.Fatalf("expected %s, got %s", next, updated.Status)
		}
	}

	if _, err := f.svc.UpdateStatus(ctx, app.ID, "REJECTED"); !errors.Is(err, apperrors.ErrIllegalTransition) {
		t.Fatalf("expected illegal transition out of ACCEPTED, got %v", err)
	}
}

func TestUpdateStatusErrors(t *testing.T) {
	f := newApplicationFixture(t, true)
	ctx := context.Background()
	app, err := f.svc.CreateApplication(ctx, &dto.CreateApplicationRequest{
		StudentID: f.student.ID.String(),
		JobID:     f.open.ID.String(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cases := []struct {
		name   string
		id     uuid.UUID
		status string
		want   error
	}{
		{"unknown status", app.ID, "HIRED", apperrors.ErrInvalidStatus},
		{"lowercase status", app.ID, "shortlisted", apperrors.ErrInvalidStatus},
		{"unknown status beats missing row", uuid.New(), "HIRED", apperrors.ErrInvalidStatus},
		{"missing application", uuid.New(), "SHORTLISTED", apperrors.ErrApplicationNotFound},
		{"backwards after shortlist", app.ID, "APPLIED", apperrors.ErrIllegalTransition},
	}

	if _, err := f.svc.UpdateStatus(ctx, app.ID, "SHORTLISTED"); err != nil {
		t.Fatalf("shortlist: %v", err)
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := f.svc.UpdateStatus(ctx, c.id, c.status)
			if !errors.Is(err, c.want) {
				t.Fatalf("want %v, got %v", c.want, err)
			}
		})
	}

	stored, err := f.svc.GetApplication(ctx, app.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Status != models.StatusShortlisted || f.apps.updates != 1 {
		t.Fatalf("rejected updates must leave the row alone, got status %s and %d writes", stored.Status, f.apps.updates)
	}
}

func TestUpdateStatusLostRaceIsConflict(t *testing.T) {
	f := newApplicationFixture(t, true)
	ctx := context.Background()
	app, err := f.svc.CreateApplication(ctx, &dto.CreateApplicationRequest{
		StudentID: f.student.ID.String(),
		JobID:     f.open.ID.String(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	f.apps.interleave = func(a *models.Application) { a.Status = models.StatusRejected }
	_, err = f.svc.UpdateStatus(ctx, app.ID, "SHORTLISTED")
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err.Error() != "cannot move application from APPLIED to SHORTLISTED" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if f.apps.updates != 0 {
		t.Fatalf("lost race must not write, got %d writes", f.apps.updates)
	}
}

func TestUpdateStatusSameStatusIsNoop(t *testing.T) {
	f := newApplicationFixture(t, true)
	ctx := context.Background()
	app, err := f.svc.CreateApplication(ctx, &dto.CreateApplicationRequest{
		StudentID: f.student.ID.String(),
		JobID:     f.open.ID.String(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := f.svc.UpdateStatus(ctx, app.ID, "APPLIED")
	if err != nil {
		t.Fatalf("same status: %v", err)
	}
	if got.Status != models.StatusApplied || f.apps.updates != 0 {
		t.Fatalf("expected no write, got status %s and %d writes", got.Status, f.apps.updates)
	}
}

func TestUpdateStatusLenientAllowsBackwards(t *testing.T) {
	f := newApplicationFixture(t, false)
	ctx := context.Background()
	app, err := f.svc.CreateApplication(ctx, &dto.CreateApplicationRequest{
		StudentID: f.student.ID.String(),
		JobID:     f.open.ID.String(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, s := range []string{"ACCEPTED", "APPLIED"} {
		if _, err := f.svc.UpdateStatus(ctx, app.ID, s); err != nil {
			t.Fatalf("lenient move to %s: %v", s, err)
		}
	}
}

func TestListApplications(t *testing.T) {
	f := newApplicationFixture(t, true)
	ctx := context.Background()
	if _, err := f.svc.Apply(ctx, f.principal(), &dto.ApplyRequest{JobID: f.open.ID.String()}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	mine, err := f.svc.ListMine(ctx, f.student.ID)
	if err != nil || len(mine) != 1 {
		t.Fatalf("expected one own application, got %d (%v)", len(mine), err)
	}

	none, err := f.svc.ListMine(ctx, uuid.New())
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil list, got %v (%v)", none, err)
	}

	if _, err := f.svc.ListByJob(ctx, uuid.New()); !errors.Is(err, apperrors.ErrJobNotFound) {
		t.Fatalf("expected job not found, got %v", err)
	}

	byJob, err := f.svc.ListByJob(ctx, f.open.ID)
	if err != nil || len(byJob) != 1 {
		t.Fatalf("expected one applicant, got %d (%v)", len(byJob), err)
	}

	page, total, err := f.svc.List(ctx, repositories.ApplicationFilter{Status: models.StatusApplied}, helpers.NormalizePage(1, 10))
	if err != nil || total != 1 || len(page) != 1 {
		t.Fatalf("expected one paged result, got %d/%d (%v)", len(page), total, err)
	}
}
