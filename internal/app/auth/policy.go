package auth

import (
	"github.com/google/uuid"
	"github.com/yigit/tnp/internal/app/models"
	"github.com/yigit/tnp/internal/domain"
	"github.com/yigit/tnp/internal/pkg/apperrors"
)

// Action names an operation guarded by the access policy.
type Action string

const (
	ActionManageCompany      Action = "company:manage"
	ActionReadCompany        Action = "company:read"
	ActionManageJob          Action = "job:manage"
	ActionBrowseJobs         Action = "job:browse"
	ActionApply              Action = "application:apply"
	ActionReadOwnApplication Action = "application:read-own"
	ActionManageApplication  Action = "application:manage"
	ActionReadAnnouncement   Action = "announcement:read"
	ActionManageAnnouncement Action = "announcement:manage"
	ActionManageAnalytic     Action = "analytic:manage"
	ActionOwnProfile         Action = "profile:own"
)

var (
	adminOnly   = []models.RoleType{models.RoleAdmin}
	studentOnly = []models.RoleType{models.RoleStudent}
	anyRole     = []models.RoleType{models.RoleAdmin, models.RoleStudent}
)

// DefaultRules maps every action to the roles allowed to perform it.
var DefaultRules = map[Action][]models.RoleType{
	ActionManageCompany:      adminOnly,
	ActionReadCompany:        anyRole,
	ActionManageJob:          adminOnly,
	ActionBrowseJobs:         studentOnly,
	ActionApply:              studentOnly,
	ActionReadOwnApplication: studentOnly,
	ActionManageApplication:  adminOnly,
	ActionReadAnnouncement:   anyRole,
	ActionManageAnnouncement: adminOnly,
	ActionManageAnalytic:     adminOnly,
	ActionOwnProfile:         studentOnly,
}

// AccessPolicy decides whether a principal may perform an action.
type AccessPolicy struct {
	rules map[Action][]models.RoleType
}

// NewAccessPolicy creates a policy with DefaultRules
func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{rules: DefaultRules}
}

// Authorize returns nil when p may perform action. A missing principal is
// Unauthorized; a wrong role or an unknown action is Forbidden.
func (ap *AccessPolicy) Authorize(p *Principal, action Action) error {
	if p == nil {
		return apperrors.NewUnauthorizedError("authentication required")
	}
	roles, ok := ap.rules[action]
	if !ok {
		return apperrors.NewForbiddenError("action is not permitted")
	}
	for _, r := range roles {
		if p.Role == r {
			return nil
		}
	}
	return apperrors.NewForbiddenError("you don't have permission for this action")
}

// AuthorizeApplicant checks that p may submit an application on behalf of
// studentID. Students may only apply for themselves.
func (ap *AccessPolicy) AuthorizeApplicant(p *Principal, studentID uuid.UUID) error {
	if err := ap.Authorize(p, ActionApply); err != nil {
		return err
	}
	if p.ID != studentID {
		return apperrors.NewForbiddenError("students can only apply for themselves")
	}
	return nil
}

// VisibleAnnouncements returns the announcements p may read: everything for
// admins, the audience-filtered subset for students, nothing for anyone else.
func (ap *AccessPolicy) VisibleAnnouncements(p *Principal, list []*models.Announcement) []*models.Announcement {
	switch {
	case p.IsAdmin():
		if list == nil {
			return []*models.Announcement{}
		}
		return list
	case p.IsStudent():
		return domain.FilterAnnouncements(list, p.Profile())
	default:
		return []*models.Announcement{}
	}
}
