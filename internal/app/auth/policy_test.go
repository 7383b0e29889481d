package auth

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

func TestAuthorize(t *testing.T) {
	policy := NewAccessPolicy()
	admin := &Principal{ID: uuid.New(), Role: models.RoleAdmin, Email: "admin@tnp.com"}
	student := &Principal{ID: uuid.New(), Role: models.RoleStudent, Email: "student1@example.com",
		Branch: models.BranchCSE, GraduationYear: 2026}

	cases := []struct {
		name   string
		p      *Principal
		action Action
		want   error
	}{
		{"anonymous", nil, ActionReadCompany, apperrors.ErrUnauthorized},
		{"admin manages jobs", admin, ActionManageJob, nil},
		{"student cannot manage jobs", student, ActionManageJob, apperrors.ErrPermissionDenied},
		{"student browses jobs", student, ActionBrowseJobs, nil},
		{"admin cannot browse student jobs", admin, ActionBrowseJobs, apperrors.ErrPermissionDenied},
		{"student applies", student, ActionApply, nil},
		{"admin cannot apply", admin, ActionApply, apperrors.ErrPermissionDenied},
		{"any reads announcements", student, ActionReadAnnouncement, nil},
		{"admin reads companies", admin, ActionReadCompany, nil},
		{"student cannot change status", student, ActionManageApplication, apperrors.ErrPermissionDenied},
		{"student cannot touch analytics", student, ActionManageAnalytic, apperrors.ErrPermissionDenied},
		{"unknown action", admin, Action("faculty:manage"), apperrors.ErrPermissionDenied},
		{"unknown role", &Principal{Role: "INSTRUCTOR"}, ActionReadCompany, apperrors.ErrPermissionDenied},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := policy.Authorize(c.p, c.action)
			if c.want == nil {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestAuthorizeApplicant(t *testing.T) {
	policy := NewAccessPolicy()
	student := &Principal{ID: uuid.New(), Role: models.RoleStudent}

	if err := policy.AuthorizeApplicant(student, student.ID); err != nil {
		t.Fatalf("self apply: %v", err)
	}
	if err := policy.AuthorizeApplicant(student, uuid.New()); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("apply for someone else: expected forbidden, got %v", err)
	}
	if err := policy.AuthorizeApplicant(nil, uuid.New()); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("anonymous apply: expected unauthorized, got %v", err)
	}
}

func TestVisibleAnnouncements(t *testing.T) {
	policy := NewAccessPolicy()
	all := &models.Announcement{Title: "Drive", Audience: models.AudienceAll}
	mech := &models.Announcement{Title: "ME only", Audience: models.AudienceBranch,
		FilterData: &models.FilterData{Branches: []models.Branch{models.BranchME}}}
	list := []*models.Announcement{all, mech}

	admin := &Principal{Role: models.RoleAdmin}
	if got := policy.VisibleAnnouncements(admin, list); len(got) != 2 {
		t.Fatalf("admin should see everything, got %d", len(got))
	}

	student := &Principal{Role: models.RoleStudent, Branch: models.BranchCSE, GraduationYear: 2026}
	got := policy.VisibleAnnouncements(student, list)
	if len(got) != 1 || got[0] != all {
		t.Fatalf("student should see only the ALL announcement, got %+v", got)
	}

	if got := policy.VisibleAnnouncements(nil, list); got == nil || len(got) != 0 {
		t.Fatalf("anonymous should see nothing, got %#v", got)
	}
	if got := policy.VisibleAnnouncements(admin, nil); got == nil {
		t.Fatalf("expected empty non-nil slice for admin")
	}
}
