package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

func TestUpdateProfileCompletes(t *testing.T) {
	student := &models.Student{ID: uuid.New(), Branch: models.BranchIT, GraduationYear: 2025}
	storage := &fakeStorage{}
	svc := NewStudentService(newFakeStudentRepo(student), storage)
	ctx := context.Background()

	got, err := svc.UpdateProfile(ctx, student.ID, &dto.UpdateStudentProfileRequest{
		CGPA:          ptr(8.5),
		ActiveBacklog: ptr(0),
		Phone:         ptr("+919876543210"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ProfileCompleted() {
		t.Fatalf("profile should not be complete without an image")
	}

	got, err = svc.UpdateProfileImage(ctx, student.ID, &multipart.FileHeader{Filename: "me.png"})
	if err != nil {
		t.Fatalf("image: %v", err)
	}
	if !got.ProfileCompleted() {
		t.Fatalf("expected completed profile: %+v", got)
	}

	first := *got.ProfileImg
	if _, err := svc.UpdateProfileImage(ctx, student.ID, &multipart.FileHeader{Filename: "me2.png"}); err != nil {
		t.Fatalf("second image: %v", err)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != first {
		t.Fatalf("expected old image %s to be removed, deleted %v", first, storage.deleted)
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	student := &models.Student{ID: uuid.New()}
	svc := NewStudentService(newFakeStudentRepo(student), &fakeStorage{})

	cases := map[string]*dto.UpdateStudentProfileRequest{
		"cgpa too high":    {CGPA: ptr(10.5)},
		"negative backlog": {ActiveBacklog: ptr(-1)},
		"bad phone":        {Phone: ptr("12ab")},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.UpdateProfile(context.Background(), student.ID, req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	if _, err := svc.GetProfile(context.Background(), uuid.New()); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
