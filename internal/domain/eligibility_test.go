package domain

import (
	"testing"

	"github.com/yigit/tnp/internal/app/models"
)

func f64(v float64) *float64 { return &v }

func TestMatchesJob(t *testing.T) {
	backend := &models.JobEligibility{
		Branches:        []models.Branch{models.BranchCSE, models.BranchIT},
		GraduationYears: []int{2025, 2026},
		MinCGPA:         f64(7.0),
	}

	cases := []struct {
		name string
		e    *models.JobEligibility
		p    Profile
		want bool
	}{
		{"all criteria met", backend, Profile{models.BranchCSE, 2026, f64(8.2)}, true},
		{"cgpa on boundary", backend, Profile{models.BranchIT, 2025, f64(7.0)}, true},
		{"cgpa just below", backend, Profile{models.BranchIT, 2025, f64(6.99)}, false},
		{"branch mismatch", backend, Profile{models.BranchME, 2026, f64(9.0)}, false},
		{"year mismatch", backend, Profile{models.BranchCSE, 2024, f64(9.0)}, false},
		{"missing cgpa with minimum", backend, Profile{models.BranchCSE, 2026, nil}, false},
		{"empty criteria", &models.JobEligibility{}, Profile{models.BranchCE, 2030, nil}, true},
		{"nil eligibility", nil, Profile{models.BranchCE, 2030, nil}, true},
		{"only branch restricted", &models.JobEligibility{Branches: []models.Branch{models.BranchECE}}, Profile{models.BranchECE, 1999, nil}, true},
		{"only min cgpa", &models.JobEligibility{MinCGPA: f64(6)}, Profile{models.BranchME, 2026, f64(6)}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := MatchesJob(c.e, c.p); got != c.want {
				t.Fatalf("MatchesJob = %v, want %v", got, c.want)
			}
		})
	}
}

func TestFilterEligibleJobs(t *testing.T) {
	open := &models.JobListing{JobTitle: "Backend Intern", Status: models.JobStatusOpen,
		Eligibility: &models.JobEligibility{Branches: []models.Branch{models.BranchCSE}}}
	closed := &models.JobListing{JobTitle: "Closed", Status: models.JobStatusClosed}
	other := &models.JobListing{JobTitle: "Civil", Status: models.JobStatusOpen,
		Eligibility: &models.JobEligibility{Branches: []models.Branch{models.BranchCE}}}
	anyone := &models.JobListing{JobTitle: "Anyone", Status: models.JobStatusOpen}

	got := FilterEligibleJobs([]*models.JobListing{open, closed, other, anyone}, Profile{Branch: models.BranchCSE, GraduationYear: 2026})
	if len(got) != 2 || got[0] != open || got[1] != anyone {
		t.Fatalf("unexpected jobs: %+v", got)
	}

	empty := FilterEligibleJobs(nil, Profile{})
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}

func TestMatchesAudience(t *testing.T) {
	p := Profile{Branch: models.BranchCSE, GraduationYear: 2026}

	cases := []struct {
		name string
		a    models.Announcement
		want bool
	}{
		{"all", models.Announcement{Audience: models.AudienceAll}, true},
		{"branch hit", models.Announcement{Audience: models.AudienceBranch,
			FilterData: &models.FilterData{Branches: []models.Branch{models.BranchIT, models.BranchCSE}}}, true},
		{"branch miss", models.Announcement{Audience: models.AudienceBranch,
			FilterData: &models.FilterData{Branches: []models.Branch{models.BranchME}}}, false},
		{"branch without filter", models.Announcement{Audience: models.AudienceBranch}, false},
		{"branch ignores years", models.Announcement{Audience: models.AudienceBranch,
			FilterData: &models.FilterData{GraduationYears: []int{2026}}}, false},
		{"batch hit", models.Announcement{Audience: models.AudienceBatch,
			FilterData: &models.FilterData{GraduationYears: []int{2026}}}, true},
		{"batch miss", models.Announcement{Audience: models.AudienceBatch,
			FilterData: &models.FilterData{GraduationYears: []int{2025}}}, false},
		{"unknown audience", models.Announcement{Audience: "FACULTY"}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := MatchesAudience(&c.a, p); got != c.want {
				t.Fatalf("MatchesAudience = %v, want %v", got, c.want)
			}
		})
	}
}

func TestFilterAnnouncementsKeepsOrder(t *testing.T) {
	a1 := &models.Announcement{Title: "newest", Audience: models.AudienceAll}
	a2 := &models.Announcement{Title: "mech only", Audience: models.AudienceBranch,
		FilterData: &models.FilterData{Branches: []models.Branch{models.BranchME}}}
	a3 := &models.Announcement{Title: "batch", Audience: models.AudienceBatch,
		FilterData: &models.FilterData{GraduationYears: []int{2026}}}

	got := FilterAnnouncements([]*models.Announcement{a1, a2, a3}, Profile{Branch: models.BranchCSE, GraduationYear: 2026})
	if len(got) != 2 || got[0] != a1 || got[1] != a3 {
		t.Fatalf("unexpected announcements: %+v", got)
	}
}
