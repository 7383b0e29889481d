// Package domain holds the placement rules that decide which students see
// which jobs and announcements, and how an application may move through the
// hiring pipeline. Nothing here touches storage or HTTP.
package domain

import (
	"slices"

	"github.com/yigit/tnp/internal/app/models"
)

// Profile is the subset of a student that eligibility and audience rules read.
type Profile struct {
	Branch         models.Branch
	GraduationYear int
	// CGPA is nil until the student completes their profile.
	CGPA *float64
}

// ProfileOf extracts the matching profile from a stored student.
func ProfileOf(s *models.Student) Profile {
	return Profile{
		Branch:         s.Branch,
		GraduationYear: s.GraduationYear,
		CGPA:           s.CGPA,
	}
}

// MatchesJob reports whether profile satisfies every criterion of e.
// Empty lists and a nil minimum CGPA leave that criterion unrestricted.
// A student with no CGPA never satisfies a minimum CGPA.
func MatchesJob(e *models.JobEligibility, p Profile) bool {
	if e == nil {
		return true
	}
	if len(e.Branches) > 0 && !slices.Contains(e.Branches, p.Branch) {
		return false
	}
	if len(e.GraduationYears) > 0 && !slices.Contains(e.GraduationYears, p.GraduationYear) {
		return false
	}
	if e.MinCGPA != nil {
		if p.CGPA == nil || *p.CGPA < *e.MinCGPA {
			return false
		}
	}
	return true
}

// FilterEligibleJobs returns the OPEN jobs whose eligibility the profile meets,
// preserving input order. The result is never nil.
func FilterEligibleJobs(jobs []*models.JobListing, p Profile) []*models.JobListing {
	out := make([]*models.JobListing, 0, len(jobs))
	for _, job := range jobs {
		if job.Status != models.JobStatusOpen {
			continue
		}
		if MatchesJob(job.Eligibility, p) {
			out = append(out, job)
		}
	}
	return out
}

// MatchesAudience reports whether an announcement targets the profile.
// A missing filter list is treated as empty, which matches nobody.
func MatchesAudience(a *models.Announcement, p Profile) bool {
	switch a.Audience {
	case models.AudienceAll:
		return true
	case models.AudienceBranch:
		return a.FilterData != nil && slices.Contains(a.FilterData.Branches, p.Branch)
	case models.AudienceBatch:
		return a.FilterData != nil && slices.Contains(a.FilterData.GraduationYears, p.GraduationYear)
	default:
		return false
	}
}

// FilterAnnouncements keeps the announcements that target p, preserving order.
func FilterAnnouncements(list []*models.Announcement, p Profile) []*models.Announcement {
	out := make([]*models.Announcement, 0, len(list))
	for _, a := range list {
		if MatchesAudience(a, p) {
			out = append(out, a)
		}
	}
	return out
}
