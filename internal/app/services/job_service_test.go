package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/app/repositories"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

func newJobFixture() (JobService, *models.Company, *models.Student) {
	company := &models.Company{ID: uuid.New(), Name: "Acme Corp"}
	student := &models.Student{
		ID:             uuid.New(),
		Branch:         models.BranchCSE,
		GraduationYear: 2026,
		CGPA:           ptr(8.2),
	}
	svc := NewJobService(&fakeJobRepo{}, newFakeCompanyRepo(company), newFakeStudentRepo(student))
	return svc, company, student
}

func TestCreateJobDefaults(t *testing.T) {
	svc, company, _ := newJobFixture()

	job, err := svc.CreateJob(context.Background(), &dto.CreateJobRequest{
		CompanyID:   company.ID.String(),
		JobTitle:    " Backend Intern ",
		JobType:     "INTERNSHIP",
		Description: "Go services",
		Eligibility: dto.EligibilityRequest{Branches: []string{"CSE"}, MinCGPA: ptr(7.0)},
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	if job.Status != models.JobStatusOpen {
		t.Fatalf("expected OPEN by default, got %s", job.Status)
	}
	if job.CompanyName != "Acme Corp" || job.JobTitle != "Backend Intern" {
		t.Fatalf("unexpected job: %+v", job)
	}
	if job.EligibilityID == uuid.Nil || len(job.Eligibility.Branches) != 1 {
		t.Fatalf("eligibility not stored: %+v", job.Eligibility)
	}
}

func TestCreateJobUnknownCompany(t *testing.T) {
	svc, _, _ := newJobFixture()
	_, err := svc.CreateJob(context.Background(), &dto.CreateJobRequest{
		CompanyID: uuid.NewString(),
		JobTitle:  "x",
		JobType:   "FULL_TIME",
	})
	if !errors.Is(err, apperrors.ErrCompanyNotFound) {
		t.Fatalf("expected company not found, got %v", err)
	}
}

func TestUpdateJobReplacesEligibility(t *testing.T) {
	svc, company, _ := newJobFixture()
	ctx := context.Background()
	job, err := svc.CreateJob(ctx, &dto.CreateJobRequest{
		CompanyID: company.ID.String(),
		JobTitle:  "Backend Intern",
		JobType:   "INTERNSHIP",
		Eligibility: dto.EligibilityRequest{
			Branches:        []string{"CSE", "IT"},
			GraduationYears: []int{2025, 2026},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateJob(ctx, job.ID, &dto.UpdateJobRequest{
		Status:      "CLOSED",
		Eligibility: &dto.EligibilityRequest{Branches: []string{"ECE"}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != models.JobStatusClosed || updated.JobTitle != "Backend Intern" {
		t.Fatalf("partial update lost fields: %+v", updated)
	}
	if len(updated.Eligibility.GraduationYears) != 0 || updated.Eligibility.Branches[0] != models.BranchECE {
		t.Fatalf("eligibility not replaced: %+v", updated.Eligibility)
	}
	if updated.Eligibility.ID != job.EligibilityID {
		t.Fatalf("eligibility id changed")
	}
}

func TestFilterJobs(t *testing.T) {
	svc, company, student := newJobFixture()
	ctx := context.Background()

	mk := func(title string, status string, e dto.EligibilityRequest) {
		t.Helper()
		if _, err := svc.CreateJob(ctx, &dto.CreateJobRequest{
			CompanyID: company.ID.String(), JobTitle: title, JobType: "FULL_TIME", Status: status, Eligibility: e,
		}); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}
	mk("open-unrestricted", "", dto.EligibilityRequest{})
	mk("open-cse-7", "", dto.EligibilityRequest{Branches: []string{"CSE"}, MinCGPA: ptr(7.0)})
	mk("open-ece", "", dto.EligibilityRequest{Branches: []string{"ECE"}})
	mk("open-cgpa-9", "", dto.EligibilityRequest{MinCGPA: ptr(9.0)})
	mk("closed-unrestricted", "CLOSED", dto.EligibilityRequest{})

	titles := func(jobs []*models.JobListing) map[string]bool {
		out := map[string]bool{}
		for _, j := range jobs {
			out[j.JobTitle] = true
		}
		return out
	}

	got, err := svc.FilterJobs(ctx, student.ID, dto.JobFilterQuery{})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	want := titles(got)
	if len(got) != 2 || !want["open-unrestricted"] || !want["open-cse-7"] {
		t.Fatalf("unexpected stored-profile result: %v", want)
	}

	got, err = svc.FilterJobs(ctx, student.ID, dto.JobFilterQuery{Branch: "ECE", CGPA: ptr(9.5)})
	if err != nil {
		t.Fatalf("filter override: %v", err)
	}
	want = titles(got)
	if len(got) != 3 || !want["open-ece"] || !want["open-cgpa-9"] || want["closed-unrestricted"] {
		t.Fatalf("unexpected override result: %v", want)
	}

	if _, err := svc.FilterJobs(ctx, uuid.New(), dto.JobFilterQuery{}); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected student not found, got %v", err)
	}
}

func TestListJobsNeverNil(t *testing.T) {
	svc, _, _ := newJobFixture()
	jobs, err := svc.ListJobs(context.Background(), repositories.JobFilter{})
	if err != nil || jobs == nil {
		t.Fatalf("expected empty list, got %v (%v)", jobs, err)
	}
}
