package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/auth"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

func TestAnnouncementVisibility(t *testing.T) {
	svc := NewAnnouncementService(&fakeAnnouncementRepo{}, auth.NewAccessPolicy())
	ctx := context.Background()
	adminID := uuid.New()

	create := func(title, audience string, fd *dto.FilterDataRequest) *models.Announcement {
		t.Helper()
		a, err := svc.CreateAnnouncement(ctx, adminID, &dto.CreateAnnouncementRequest{
			Title: title, Description: "d", Audience: audience, FilterData: fd,
		})
		if err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
		return a
	}
	create("everyone", "ALL", nil)
	ece := create("ece only", "BRANCH", &dto.FilterDataRequest{Branches: []string{"ECE"}})
	create("batch 2026", "BATCH", &dto.FilterDataRequest{GraduationYears: []int{2026}})
	create("branch without filter", "BRANCH", nil)

	admin := &auth.Principal{ID: adminID, Role: models.RoleAdmin}
	all, err := svc.ListAnnouncements(ctx, admin)
	if err != nil || len(all) != 4 {
		t.Fatalf("admin should see all 4, got %d (%v)", len(all), err)
	}
	for i, want := range []string{"branch without filter", "batch 2026", "ece only", "everyone"} {
		if all[i].Title != want {
			t.Fatalf("admin list not newest first: position %d is %q, want %q", i, all[i].Title, want)
		}
	}

	student := &auth.Principal{ID: uuid.New(), Role: models.RoleStudent, Branch: models.BranchCSE, GraduationYear: 2026}
	visible, err := svc.ListAnnouncements(ctx, student)
	if err != nil {
		t.Fatalf("student list: %v", err)
	}
	if len(visible) != 2 || visible[0].Title != "batch 2026" || visible[1].Title != "everyone" {
		t.Fatalf("unexpected student view: %+v", visible)
	}

	if _, err := svc.GetAnnouncement(ctx, student, ece.ID); !errors.Is(err, apperrors.ErrAnnouncementNotFound) {
		t.Fatalf("expected hidden announcement, got %v", err)
	}
	if _, err := svc.ListAnnouncements(ctx, nil); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestUpdateAnnouncementPartial(t *testing.T) {
	repo := &fakeAnnouncementRepo{}
	svc := NewAnnouncementService(repo, auth.NewAccessPolicy())
	ctx := context.Background()

	a, err := svc.CreateAnnouncement(ctx, uuid.New(), &dto.CreateAnnouncementRequest{
		Title: "Drive", Description: "Campus drive", Audience: "ALL",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateAnnouncement(ctx, a.ID, &dto.UpdateAnnouncementRequest{
		Audience:   "BRANCH",
		FilterData: &dto.FilterDataRequest{Branches: []string{"it"}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Drive" || updated.Audience != models.AudienceBranch || updated.FilterData.Branches[0] != models.BranchIT {
		t.Fatalf("unexpected update: %+v", updated)
	}

	if err := svc.DeleteAnnouncement(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteAnnouncement(ctx, a.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
